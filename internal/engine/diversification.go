package engine

import (
	"fmt"
	"sort"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// AnalyzeDiversification scores asset-type spread and concentration on a
// 0-100 scale and emits a recommendation string for each threshold breach.
// An empty portfolio scores 0 with no recommendations beyond the holding
// count warning being skipped (there is nothing to diversify yet).
func AnalyzeDiversification(holdings []model.Holding) model.DiversificationResult {
	if len(holdings) == 0 {
		return model.DiversificationResult{Recommendations: []string{}}
	}

	totalValue := PortfolioValue(holdings)

	types := make(map[model.SecurityType]bool)
	var largestPct float64
	pcts := make([]float64, 0, len(holdings))
	for _, h := range holdings {
		types[h.SecurityType] = true
		var pct float64
		if totalValue > 0 {
			pct = h.Quantity * h.PriceOrPurchase() / totalValue * 100
		}
		pcts = append(pcts, pct)
		if pct > largestPct {
			largestPct = pct
		}
	}

	typeScore := len(types) * PointsPerSecurityType
	if typeScore > SecurityTypeScoreCap {
		typeScore = SecurityTypeScoreCap
	}

	var concentrationScore int
	switch {
	case largestPct <= ConcentrationExcellentPct:
		concentrationScore = ConcentrationScoreExcellent
	case largestPct <= ConcentrationGoodPct:
		concentrationScore = ConcentrationScoreGood
	case largestPct <= ConcentrationFairPct:
		concentrationScore = ConcentrationScoreFair
	default:
		concentrationScore = ConcentrationScorePoor
	}

	recommendations := []string{}
	if len(types) < MinRecommendedTypes {
		recommendations = append(recommendations, fmt.Sprintf(
			"Your portfolio spans only %d security type(s). Spreading across stocks, bonds and funds reduces exposure to any single market.", len(types)))
	}
	if largestPct > TopHeavyHoldingPct {
		recommendations = append(recommendations, fmt.Sprintf(
			"A single holding makes up %.1f%% of your portfolio. Consider trimming it below %d%%.", largestPct, TopHeavyHoldingPct))
	}
	if topThreePercent(pcts) > TopThreeHoldingsPct && len(holdings) > 3 {
		recommendations = append(recommendations,
			"Your three largest holdings dominate the portfolio. Adding smaller positions in other assets would spread the risk.")
	}
	if len(holdings) < MinRecommendedHoldings {
		recommendations = append(recommendations, fmt.Sprintf(
			"With %d holding(s), the portfolio is thin. Aim for at least %d positions for meaningful diversification.", len(holdings), MinRecommendedHoldings))
	} else if len(holdings) > MaxRecommendedHoldings {
		recommendations = append(recommendations, fmt.Sprintf(
			"With %d holdings, the portfolio may be hard to manage. Consider consolidating overlapping positions.", len(holdings)))
	}

	return model.DiversificationResult{
		OverallScore:       typeScore + concentrationScore,
		SecurityTypeScore:  typeScore,
		ConcentrationScore: concentrationScore,
		DistinctTypes:      len(types),
		LargestHoldingPct:  largestPct,
		Recommendations:    recommendations,
	}
}

// topThreePercent returns the combined portfolio percentage of the three
// largest positions.
func topThreePercent(pcts []float64) float64 {
	sorted := make([]float64, len(pcts))
	copy(sorted, pcts)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var sum float64
	for i, pct := range sorted {
		if i >= 3 {
			break
		}
		sum += pct
	}
	return sum
}
