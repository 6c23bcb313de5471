package validation

import (
	"fmt"
	"strings"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// MinimumAge is the youngest age the onboarding form accepts.
const MinimumAge = 18

// MaximumAge bounds the age field against typos.
const MaximumAge = 120

// ValidateSaveProfile validates a profile create-or-replace request.
//
// Required fields:
//   - name: Must be non-empty after trimming
//   - age: Must be between 18 and 120
//   - experienceLevel: Must be one of: beginner, intermediate, advanced
//   - riskTolerance: Must be one of: conservative, moderate, aggressive
//   - timeHorizon: Must be one of: short_term, medium_term, long_term
//
// Monetary fields must be non-negative. Returns a validation Error with
// field-specific error messages if validation fails.
func ValidateSaveProfile(req request.SaveProfileRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Age < MinimumAge || req.Age > MaximumAge {
		errors["age"] = fmt.Sprintf("age must be between %d and %d", MinimumAge, MaximumAge)
	}

	if !model.ExperienceLevel(req.ExperienceLevel).Valid() {
		errors["experienceLevel"] = fmt.Sprintf("invalid experience level: %s", req.ExperienceLevel)
	}

	if !model.RiskTolerance(req.RiskTolerance).Valid() {
		errors["riskTolerance"] = fmt.Sprintf("invalid risk tolerance: %s", req.RiskTolerance)
	}

	if !model.TimeHorizon(req.TimeHorizon).Valid() {
		errors["timeHorizon"] = fmt.Sprintf("invalid time horizon: %s", req.TimeHorizon)
	}

	if req.TargetRetirementAge != nil && *req.TargetRetirementAge <= req.Age {
		errors["targetRetirementAge"] = "targetRetirementAge must be greater than age"
	}

	for field, value := range map[string]float64{
		"monthlyIncome":   req.MonthlyIncome,
		"monthlyExpenses": req.MonthlyExpenses,
		"monthlySavings":  req.MonthlySavings,
		"emergencyFund":   req.EmergencyFund,
		"currentDebt":     req.CurrentDebt,
	} {
		if value < 0.0 {
			errors[field] = fmt.Sprintf("%s cannot be negative", field)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
