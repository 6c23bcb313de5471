package model

import "time"

// RecommendationType classifies what a recommendation asks the user to do.
type RecommendationType string

const (
	RecommendationAllocation      RecommendationType = "allocation"
	RecommendationRebalancing     RecommendationType = "rebalancing"
	RecommendationRiskManagement  RecommendationType = "risk_management"
	RecommendationTaxEfficiency   RecommendationType = "tax_efficiency"
	RecommendationGoalAchievement RecommendationType = "goal_achievement"
	RecommendationCostReduction   RecommendationType = "cost_reduction"
)

// Valid reports whether the type is one of the closed set.
func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationAllocation, RecommendationRebalancing, RecommendationRiskManagement,
		RecommendationTaxEfficiency, RecommendationGoalAchievement, RecommendationCostReduction:
		return true
	}
	return false
}

// RecommendationPriority orders recommendations for display.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Valid reports whether the priority is one of the closed set.
func (p RecommendationPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Weight returns the numeric sort weight of the priority. Unknown values
// weigh 0 and sort last.
func (p RecommendationPriority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ImplementationDifficulty hints how involved acting on a recommendation is.
type ImplementationDifficulty string

const (
	DifficultyEasy     ImplementationDifficulty = "easy"
	DifficultyModerate ImplementationDifficulty = "moderate"
	DifficultyComplex  ImplementationDifficulty = "complex"
)

// RecommendationStatus tracks what the user did with a recommendation.
// The engine always emits pending; the other states are caller mutations.
type RecommendationStatus string

const (
	StatusPending    RecommendationStatus = "pending"
	StatusInProgress RecommendationStatus = "in_progress"
	StatusCompleted  RecommendationStatus = "completed"
	StatusDismissed  RecommendationStatus = "dismissed"
)

// Valid reports whether the status is one of the closed set.
func (s RecommendationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDismissed:
		return true
	}
	return false
}

// ActionItem is a single concrete step attached to a recommendation.
type ActionItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ExpectedImpact carries optional magnitude hints for a recommendation.
// All values are percentages; zero means no hint for that dimension.
type ExpectedImpact struct {
	RiskReduction     float64 `json:"riskReduction,omitempty"`
	ReturnImprovement float64 `json:"returnImprovement,omitempty"`
	GoalAcceleration  float64 `json:"goalAcceleration,omitempty"`
}

// Recommendation is an engine output: a prioritized, explainable piece of
// advice with at least one action item. Minted fresh on every generation
// run; the engine never reads prior recommendation state.
type Recommendation struct {
	ID             string                   `json:"id"`
	Type           RecommendationType       `json:"type"`
	Priority       RecommendationPriority   `json:"priority"`
	Title          string                   `json:"title"`
	Description    string                   `json:"description"`
	Reasoning      string                   `json:"reasoning"`
	ActionItems    []ActionItem             `json:"actionItems"`
	ExpectedImpact ExpectedImpact           `json:"expectedImpact"`
	Difficulty     ImplementationDifficulty `json:"implementationDifficulty"`
	Status         RecommendationStatus     `json:"status"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}
