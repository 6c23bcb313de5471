package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// ValidateCreateGoal validates a goal creation request.
//
// Required fields:
//   - name: Must be non-empty after trimming
//   - category: Must be one of the closed goal category set
//   - targetAmount: Must be positive
//   - targetDate: Must be in YYYY-MM-DD format
//   - priority: Must be one of: low, medium, high
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	} else if !model.GoalCategory(req.Category).Valid() {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if req.TargetAmount <= 0.0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}

	if req.CurrentAmount < 0.0 {
		errors["currentAmount"] = "currentAmount cannot be negative"
	}

	if strings.TrimSpace(req.TargetDate) == "" {
		errors["targetDate"] = "targetDate is required"
	} else if _, err := time.Parse("2006-01-02", req.TargetDate); err != nil {
		errors["targetDate"] = err.Error()
	}

	if strings.TrimSpace(req.Priority) == "" {
		errors["priority"] = "priority is required"
	} else if !model.GoalPriority(req.Priority).Valid() {
		errors["priority"] = fmt.Sprintf("invalid priority: %s", req.Priority)
	}

	if req.MonthlyContribution < 0.0 {
		errors["monthlyContribution"] = "monthlyContribution cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateGoal validates a goal update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Category != nil && !model.GoalCategory(*req.Category).Valid() {
		errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
	}

	if req.TargetAmount != nil && *req.TargetAmount <= 0.0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}

	if req.CurrentAmount != nil && *req.CurrentAmount < 0.0 {
		errors["currentAmount"] = "currentAmount cannot be negative"
	}

	if req.TargetDate != nil {
		if _, err := time.Parse("2006-01-02", *req.TargetDate); err != nil {
			errors["targetDate"] = err.Error()
		}
	}

	if req.Priority != nil && !model.GoalPriority(*req.Priority).Valid() {
		errors["priority"] = fmt.Sprintf("invalid priority: %s", *req.Priority)
	}

	if req.MonthlyContribution != nil && *req.MonthlyContribution < 0.0 {
		errors["monthlyContribution"] = "monthlyContribution cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
