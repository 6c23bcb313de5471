package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// ValidateCreateHolding validates a holding creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - symbol: Must be non-empty after trimming
//   - securityType: Must be one of the closed security type set
//   - quantity: Must be positive
//   - purchasePrice: Must be positive
//   - purchaseDate: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.SecurityType) == "" {
		errors["securityType"] = "securityType is required"
	} else if !model.SecurityType(req.SecurityType).Valid() {
		errors["securityType"] = fmt.Sprintf("invalid security type: %s", req.SecurityType)
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.PurchasePrice <= 0.0 {
		errors["purchasePrice"] = "purchasePrice must be positive"
	}

	if strings.TrimSpace(req.PurchaseDate) == "" {
		errors["purchaseDate"] = "purchaseDate is required"
	} else if _, err := time.Parse("2006-01-02", req.PurchaseDate); err != nil {
		errors["purchaseDate"] = err.Error()
	}

	if req.CurrentPrice != nil && *req.CurrentPrice <= 0.0 {
		errors["currentPrice"] = "currentPrice must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateHolding validates a holding update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol cannot be empty"
	}

	if req.SecurityType != nil {
		if !model.SecurityType(*req.SecurityType).Valid() {
			errors["securityType"] = fmt.Sprintf("invalid security type: %s", *req.SecurityType)
		}
	}

	if req.Quantity != nil && *req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.PurchasePrice != nil && *req.PurchasePrice <= 0.0 {
		errors["purchasePrice"] = "purchasePrice must be positive"
	}

	if req.PurchaseDate != nil {
		if _, err := time.Parse("2006-01-02", *req.PurchaseDate); err != nil {
			errors["purchaseDate"] = err.Error()
		}
	}

	if req.CurrentPrice != nil && *req.CurrentPrice <= 0.0 {
		errors["currentPrice"] = "currentPrice must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
