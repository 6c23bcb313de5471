package validation

import (
	"fmt"
	"strings"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// ValidateUpdateRecommendationStatus validates a status change request.
// The status must be one of: pending, in_progress, completed, dismissed.
func ValidateUpdateRecommendationStatus(req request.UpdateRecommendationStatusRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Status) == "" {
		errors["status"] = "status is required"
	} else if !model.RecommendationStatus(req.Status).Valid() {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
