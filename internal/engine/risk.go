package engine

import (
	"math"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// AnalyzeRisk derives the portfolio risk metrics: concentration risk,
// value-weighted volatility, a 0-100 composite risk score and its
// low/medium/high classification. An empty portfolio is all zeros at the
// low risk level.
func AnalyzeRisk(holdings []model.Holding) model.RiskMetrics {
	if len(holdings) == 0 {
		return model.RiskMetrics{RiskLevel: model.RiskLevelLow}
	}

	totalValue := PortfolioValue(holdings)

	// Concentration: largest single holding's share of total value.
	var concentration float64
	for _, h := range holdings {
		if totalValue > 0 {
			pct := h.Quantity * h.PriceOrPurchase() / totalValue * 100
			if pct > concentration {
				concentration = pct
			}
		}
	}

	// Volatility: value-weighted average of per-type volatility weights.
	var weightedVol float64
	if totalValue > 0 {
		for _, h := range holdings {
			value := h.Quantity * h.PriceOrPurchase()
			weightedVol += value / totalValue * volatilityWeights[h.SecurityType]
		}
	}
	volatilityScore := math.Min(weightedVol*VolatilityScale, 100)

	var concComponent int
	switch {
	case concentration > RiskConcentrationSevere:
		concComponent = 40
	case concentration > RiskConcentrationHigh:
		concComponent = 30
	case concentration > RiskConcentrationElevated:
		concComponent = 20
	case concentration > RiskConcentrationMild:
		concComponent = 10
	}

	var countPenalty int
	switch {
	case len(holdings) < MinRecommendedHoldings:
		countPenalty = SmallPortfolioPenalty
	case len(holdings) < MediumPortfolioSize:
		countPenalty = MediumPortfolioPenalty
	}

	riskScore := concComponent + int(math.Floor(weightedVol*10)) + countPenalty
	if riskScore > 100 {
		riskScore = 100
	}

	level := model.RiskLevelLow
	switch {
	case riskScore >= RiskScoreHigh:
		level = model.RiskLevelHigh
	case riskScore >= RiskScoreMedium:
		level = model.RiskLevelMedium
	}

	return model.RiskMetrics{
		ConcentrationRisk:    concentration,
		VolatilityScore:      volatilityScore,
		RiskScore:            riskScore,
		RiskLevel:            level,
		DiversificationScore: math.Max(100-concentration, 0),
	}
}
