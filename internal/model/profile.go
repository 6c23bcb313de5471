package model

import "time"

// RiskTolerance expresses how much volatility the user says they can accept.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Valid reports whether the risk tolerance is one of the closed set.
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// TimeHorizon expresses how long the user expects to stay invested.
type TimeHorizon string

const (
	HorizonShortTerm  TimeHorizon = "short_term"
	HorizonMediumTerm TimeHorizon = "medium_term"
	HorizonLongTerm   TimeHorizon = "long_term"
)

// Valid reports whether the time horizon is one of the closed set.
func (h TimeHorizon) Valid() bool {
	switch h {
	case HorizonShortTerm, HorizonMediumTerm, HorizonLongTerm:
		return true
	}
	return false
}

// ExperienceLevel expresses the user's self-reported investing experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Valid reports whether the experience level is one of the closed set.
func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// UserProfile is the single authoritative profile record for the
// installation. It is created during onboarding and edited afterwards; there
// is never more than one writer (single user, single process).
//
// The record carries PII (income, debt, savings) and is stored encrypted at
// rest; see the secrets package and the profile repository.
type UserProfile struct {
	// Personal info
	Name        string `json:"name"`
	Age         int    `json:"age"` // >= 18, enforced by the form layer
	IncomeRange string `json:"incomeRange,omitempty"`

	// Investment profile
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	RiskTolerance   RiskTolerance   `json:"riskTolerance"`
	KnowledgeTags   []string        `json:"knowledgeTags,omitempty"`

	// Goals metadata
	PrimaryGoals         []string    `json:"primaryGoals,omitempty"`
	TimeHorizon          TimeHorizon `json:"timeHorizon"`
	TargetRetirementAge  *int        `json:"targetRetirementAge,omitempty"`
	GoalTargetAmounts    map[string]float64 `json:"goalTargetAmounts,omitempty"`

	// Current situation. Monetary fields are monthly unless named otherwise.
	ExistingInvestments bool    `json:"existingInvestments"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	MonthlyExpenses     float64 `json:"monthlyExpenses"`
	MonthlySavings      float64 `json:"monthlySavings"`
	EmergencyFund       float64 `json:"emergencyFund"`
	CurrentDebt         float64 `json:"currentDebt"`

	// Preferences
	CommunicationStyle string `json:"communicationStyle,omitempty"`
	UpdateFrequency    string `json:"updateFrequency,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}
