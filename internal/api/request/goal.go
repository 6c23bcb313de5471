package request

// CreateGoalRequest represents the request body for creating a goal
type CreateGoalRequest struct {
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	TargetDate          string  `json:"targetDate"`
	Priority            string  `json:"priority"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

// UpdateGoalRequest represents the request body for updating a goal.
// All fields are optional; only provided fields are changed.
type UpdateGoalRequest struct {
	Name                *string  `json:"name,omitempty"`
	Category            *string  `json:"category,omitempty"`
	TargetAmount        *float64 `json:"targetAmount,omitempty"`
	CurrentAmount       *float64 `json:"currentAmount,omitempty"`
	TargetDate          *string  `json:"targetDate,omitempty"`
	Priority            *string  `json:"priority,omitempty"`
	MonthlyContribution *float64 `json:"monthlyContribution,omitempty"`
}
