package engine

import "github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"

// HoldingMetrics computes the derived values for a single holding. A zero
// cost basis yields a 0 gain/loss percent rather than a division error;
// negative quantities or prices are a caller contract violation and are not
// guarded here (the form layer owns field validation).
func HoldingMetrics(h model.Holding) model.HoldingMetrics {
	costBasis := h.Quantity * h.PurchasePrice
	currentValue := h.Quantity * h.PriceOrPurchase()
	gainLoss := currentValue - costBasis

	var gainLossPct float64
	if costBasis != 0 {
		gainLossPct = gainLoss / costBasis * 100
	}

	return model.HoldingMetrics{
		TotalCostBasis:        costBasis,
		CurrentValue:          currentValue,
		UnrealizedGainLoss:    gainLoss,
		UnrealizedGainLossPct: gainLossPct,
		IsProfitable:          gainLoss > 0,
	}
}

// PortfolioValue sums the current value of every holding. An empty list is 0.
func PortfolioValue(holdings []model.Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += h.Quantity * h.PriceOrPurchase()
	}
	return total
}

// PortfolioCostBasis sums the cost basis of every holding. An empty list is 0.
func PortfolioCostBasis(holdings []model.Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += h.Quantity * h.PurchasePrice
	}
	return total
}
