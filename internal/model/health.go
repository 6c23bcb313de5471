package model

// HealthStatus grades a health component by its percentage of max score.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// HealthComponent is one of the four scored dimensions of financial health.
type HealthComponent struct {
	Name        string       `json:"name"`
	Score       int          `json:"score"`
	MaxScore    int          `json:"maxScore"`
	Status      HealthStatus `json:"status"`
	Description string       `json:"description"`
}

// FinancialHealthBreakdown is the full health-scorer output: a 0-100 total,
// the four weighted components, and improvement suggestions for any
// component scoring under 70% of its max.
type FinancialHealthBreakdown struct {
	TotalScore  int               `json:"totalScore"`
	Components  []HealthComponent `json:"components"`
	Suggestions []string          `json:"suggestions"`
}
