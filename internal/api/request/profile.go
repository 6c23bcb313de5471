package request

// SaveProfileRequest represents the request body for creating or replacing
// the user profile. The profile is a single record, so create and update
// share one shape.
type SaveProfileRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	IncomeRange string `json:"incomeRange,omitempty"`

	ExperienceLevel string   `json:"experienceLevel"`
	RiskTolerance   string   `json:"riskTolerance"`
	KnowledgeTags   []string `json:"knowledgeTags,omitempty"`

	PrimaryGoals        []string           `json:"primaryGoals,omitempty"`
	TimeHorizon         string             `json:"timeHorizon"`
	TargetRetirementAge *int               `json:"targetRetirementAge,omitempty"`
	GoalTargetAmounts   map[string]float64 `json:"goalTargetAmounts,omitempty"`

	ExistingInvestments bool    `json:"existingInvestments"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	MonthlySavings      float64 `json:"monthlySavings"`
	EmergencyFund       float64 `json:"emergencyFund"`
	CurrentDebt         float64 `json:"currentDebt"`

	CommunicationStyle string `json:"communicationStyle,omitempty"`
	UpdateFrequency    string `json:"updateFrequency,omitempty"`
}
