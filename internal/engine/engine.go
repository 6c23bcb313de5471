package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// GenerateRecommendations runs every generator against the shared context
// and assembles the ranked result. Inputs carrying values outside the closed
// enumerations yield an error rather than a panic, so the caller can apply
// its own fallback policy.
func GenerateRecommendations(profile model.UserProfile, holdings []model.Holding, goals []model.Goal, now time.Time) ([]model.Recommendation, error) {
	if err := validateInputs(profile, holdings, goals); err != nil {
		return nil, err
	}

	ctx := NewContext(profile, holdings, goals, now)

	var drafts []Draft
	for _, generate := range generators {
		drafts = append(drafts, generate(ctx)...)
	}

	return Assemble(drafts, now), nil
}

// BuildPortfolioAnalysis computes the dashboard aggregate: summary totals,
// per-type allocation with drift against the profile target, the three best
// and worst performers, and the risk metrics.
func BuildPortfolioAnalysis(profile model.UserProfile, holdings []model.Holding) model.PortfolioAnalysis {
	totalValue := PortfolioValue(holdings)
	totalCost := PortfolioCostBasis(holdings)

	var gainLossPct float64
	if totalCost != 0 {
		gainLossPct = (totalValue - totalCost) / totalCost * 100
	}

	analysis := model.PortfolioAnalysis{
		Summary: model.PortfolioSummary{
			TotalValue:           totalValue,
			TotalCostBasis:       totalCost,
			TotalGainLoss:        totalValue - totalCost,
			TotalGainLossPercent: gainLossPct,
			HoldingCount:         len(holdings),
		},
		Allocations:     buildAllocations(profile, holdings, totalValue),
		TopPerformers:   rankPerformers(holdings, true),
		WorstPerformers: rankPerformers(holdings, false),
		RiskMetrics:     AnalyzeRisk(holdings),
	}
	return analysis
}

// buildAllocations groups holdings by security type, computes each type's
// share of the portfolio and, for stocks and bonds, the drift against the
// profile-derived target split.
func buildAllocations(profile model.UserProfile, holdings []model.Holding, totalValue float64) []model.AllocationSlice {
	if len(holdings) == 0 || totalValue <= 0 {
		return []model.AllocationSlice{}
	}

	byType := make(map[model.SecurityType]*model.AllocationSlice)
	for _, h := range holdings {
		slice, ok := byType[h.SecurityType]
		if !ok {
			slice = &model.AllocationSlice{SecurityType: h.SecurityType}
			byType[h.SecurityType] = slice
		}
		slice.Value += h.Quantity * h.PriceOrPurchase()
		slice.HoldingCount++
	}

	target := TargetAllocationFor(profile)

	// Iterate the closed type list for deterministic output order.
	allocations := make([]model.AllocationSlice, 0, len(byType))
	for _, st := range model.SecurityTypes {
		slice, ok := byType[st]
		if !ok {
			continue
		}
		slice.Percent = slice.Value / totalValue * 100

		switch st {
		case model.SecurityStock:
			tp := target.StockPercent
			drift := slice.Percent - tp
			slice.TargetPercent, slice.Drift = &tp, &drift
		case model.SecurityBond:
			tp := target.BondPercent
			drift := slice.Percent - tp
			slice.TargetPercent, slice.Drift = &tp, &drift
		}

		allocations = append(allocations, *slice)
	}
	return allocations
}

// rankPerformers returns up to three holdings ordered by unrealized
// gain/loss percent, best-first or worst-first.
func rankPerformers(holdings []model.Holding, best bool) []model.HoldingPerformance {
	performances := make([]model.HoldingPerformance, 0, len(holdings))
	for _, h := range holdings {
		performances = append(performances, model.HoldingPerformance{
			Holding: h,
			Metrics: HoldingMetrics(h),
		})
	}

	sort.SliceStable(performances, func(i, j int) bool {
		if best {
			return performances[i].Metrics.UnrealizedGainLossPct > performances[j].Metrics.UnrealizedGainLossPct
		}
		return performances[i].Metrics.UnrealizedGainLossPct < performances[j].Metrics.UnrealizedGainLossPct
	})

	if len(performances) > 3 {
		performances = performances[:3]
	}
	return performances
}

// validateInputs rejects enum values outside the closed sets before any
// generator runs, keeping the engine total over well-formed input.
func validateInputs(profile model.UserProfile, holdings []model.Holding, goals []model.Goal) error {
	if !profile.RiskTolerance.Valid() {
		return fmt.Errorf("profile risk tolerance %q is not a known value", profile.RiskTolerance)
	}
	if !profile.TimeHorizon.Valid() {
		return fmt.Errorf("profile time horizon %q is not a known value", profile.TimeHorizon)
	}
	for _, h := range holdings {
		if !h.SecurityType.Valid() {
			return fmt.Errorf("holding %s has unknown security type %q", h.Symbol, h.SecurityType)
		}
	}
	for _, g := range goals {
		if !g.Category.Valid() {
			return fmt.Errorf("goal %q has unknown category %q", g.Name, g.Category)
		}
	}
	return nil
}
