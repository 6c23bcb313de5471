package request

// CreateHoldingRequest represents the request body for creating a holding
type CreateHoldingRequest struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	SecurityType  string   `json:"securityType"`
	Quantity      float64  `json:"quantity"`
	PurchasePrice float64  `json:"purchasePrice"`
	PurchaseDate  string   `json:"purchaseDate"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
}

// UpdateHoldingRequest represents the request body for updating a holding.
// All fields are optional; only provided fields are changed.
type UpdateHoldingRequest struct {
	Symbol        *string  `json:"symbol,omitempty"`
	Name          *string  `json:"name,omitempty"`
	SecurityType  *string  `json:"securityType,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	PurchaseDate  *string  `json:"purchaseDate,omitempty"`
	CurrentPrice  *float64 `json:"currentPrice,omitempty"`
}

// DeleteHoldingsRequest represents the request body for bulk-deleting holdings
type DeleteHoldingsRequest struct {
	IDs []string `json:"ids"`
}
