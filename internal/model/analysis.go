package model

// HoldingMetrics holds the derived per-holding values. None of these are
// stored; they are computed from the holding on every engine invocation.
type HoldingMetrics struct {
	TotalCostBasis           float64 `json:"totalCostBasis"`
	CurrentValue             float64 `json:"currentValue"`
	UnrealizedGainLoss       float64 `json:"unrealizedGainLoss"`
	UnrealizedGainLossPct    float64 `json:"unrealizedGainLossPercent"`
	IsProfitable             bool    `json:"isProfitable"`
}

// RiskLevel classifies the overall portfolio risk.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskMetrics aggregates the portfolio risk measures.
type RiskMetrics struct {
	ConcentrationRisk    float64   `json:"concentrationRisk"`    // largest holding % of total value
	VolatilityScore      float64   `json:"volatilityScore"`      // 0-100
	RiskScore            int       `json:"riskScore"`            // 0-100 composite
	RiskLevel            RiskLevel `json:"riskLevel"`
	DiversificationScore float64   `json:"diversificationScore"` // max(100 - concentration, 0)
}

// DiversificationResult scores asset-type spread and concentration, with
// human-readable recommendation strings for each threshold breach.
type DiversificationResult struct {
	OverallScore       int      `json:"overallScore"` // 0-100
	SecurityTypeScore  int      `json:"securityTypeScore"`
	ConcentrationScore int      `json:"concentrationScore"`
	DistinctTypes      int      `json:"distinctTypes"`
	LargestHoldingPct  float64  `json:"largestHoldingPercent"`
	Recommendations    []string `json:"recommendations"`
}

// TargetAllocation is the recommended stock/bond split for a profile.
type TargetAllocation struct {
	StockPercent float64 `json:"stockPercent"`
	BondPercent  float64 `json:"bondPercent"`
}

// PortfolioSummary totals the portfolio for dashboard rendering.
type PortfolioSummary struct {
	TotalValue            float64 `json:"totalValue"`
	TotalCostBasis        float64 `json:"totalCostBasis"`
	TotalGainLoss         float64 `json:"totalGainLoss"`
	TotalGainLossPercent  float64 `json:"totalGainLossPercent"`
	HoldingCount          int     `json:"holdingCount"`
}

// AllocationSlice is one security type's share of the portfolio, with the
// drift against the profile-derived target where one applies.
type AllocationSlice struct {
	SecurityType  SecurityType `json:"securityType"`
	Value         float64      `json:"value"`
	Percent       float64      `json:"percent"`
	TargetPercent *float64     `json:"targetPercent,omitempty"`
	Drift         *float64     `json:"drift,omitempty"`
	HoldingCount  int          `json:"holdingCount"`
}

// HoldingPerformance pairs a holding with its derived metrics for the
// top/worst performer lists.
type HoldingPerformance struct {
	Holding Holding        `json:"holding"`
	Metrics HoldingMetrics `json:"metrics"`
}

// PortfolioAnalysis is the aggregate the dashboard renders.
type PortfolioAnalysis struct {
	Summary         PortfolioSummary     `json:"summary"`
	Allocations     []AllocationSlice    `json:"allocations"`
	TopPerformers   []HoldingPerformance `json:"topPerformers"`
	WorstPerformers []HoldingPerformance `json:"worstPerformers"`
	RiskMetrics     RiskMetrics          `json:"riskMetrics"`
}
