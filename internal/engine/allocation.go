package engine

import "github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"

// TargetAllocationFor derives the recommended stock/bond split from age,
// risk tolerance and time horizon. The stock percentage always lands in
// [MinStockPercent, MaxStockPercent] regardless of inputs.
func TargetAllocationFor(profile model.UserProfile) model.TargetAllocation {
	stock := float64(100 - profile.Age)
	if stock < MinStockPercent {
		stock = MinStockPercent
	}

	switch profile.RiskTolerance {
	case model.RiskConservative:
		stock += ConservativeAdjustment
	case model.RiskAggressive:
		stock += AggressiveAdjustment
	}
	stock = clampStock(stock)

	switch profile.TimeHorizon {
	case model.HorizonShortTerm:
		stock += ShortHorizonAdjustment
	case model.HorizonLongTerm:
		stock += LongHorizonAdjustment
	}
	stock = clampStock(stock)

	return model.TargetAllocation{
		StockPercent: stock,
		BondPercent:  100 - stock,
	}
}

func clampStock(pct float64) float64 {
	if pct < MinStockPercent {
		return MinStockPercent
	}
	if pct > MaxStockPercent {
		return MaxStockPercent
	}
	return pct
}
