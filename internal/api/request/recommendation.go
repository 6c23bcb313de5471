package request

// UpdateRecommendationStatusRequest represents the request body for changing
// the status of a recommendation
type UpdateRecommendationStatusRequest struct {
	Status string `json:"status"`
}
