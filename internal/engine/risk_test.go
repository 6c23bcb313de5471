package engine_test

import (
	"testing"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/engine"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// TestAnalyzeRisk tests the composite risk score and its classification.
//
// WHY: The risk generators branch on the low/medium/high level, so the
// component sums and the 40/70 cutoffs have to be exact.
func TestAnalyzeRisk(t *testing.T) {
	t.Run("empty portfolio is low risk with zero metrics", func(t *testing.T) {
		// Execute
		risk := engine.AnalyzeRisk(nil)

		// Assert
		if risk.RiskLevel != model.RiskLevelLow {
			t.Errorf("Expected low risk, got %s", risk.RiskLevel)
		}
		if risk.RiskScore != 0 || risk.ConcentrationRisk != 0 || risk.VolatilityScore != 0 {
			t.Errorf("Expected zero metrics, got %+v", risk)
		}
	})

	t.Run("single crypto holding maxes out", func(t *testing.T) {
		// Setup: concentration 100% (40), volatility weight 5 (floor 50),
		// under five holdings (20); capped to 100
		holdings := []model.Holding{
			makeHolding("BTC", model.SecurityCrypto, 1, 50000),
		}

		// Execute
		risk := engine.AnalyzeRisk(holdings)

		// Assert
		if risk.RiskScore != 100 {
			t.Errorf("Expected risk score 100, got %d", risk.RiskScore)
		}
		if risk.RiskLevel != model.RiskLevelHigh {
			t.Errorf("Expected high risk, got %s", risk.RiskLevel)
		}
		if !almostEqual(risk.ConcentrationRisk, 100) {
			t.Errorf("Expected concentration 100, got %v", risk.ConcentrationRisk)
		}
		if !almostEqual(risk.VolatilityScore, 100) {
			t.Errorf("Expected volatility score 100, got %v", risk.VolatilityScore)
		}
		if !almostEqual(risk.DiversificationScore, 0) {
			t.Errorf("Expected diversification score 0, got %v", risk.DiversificationScore)
		}
	})

	t.Run("single cash holding is medium from structure alone", func(t *testing.T) {
		// Setup: cash has zero volatility, but 100% concentration (40) plus
		// the small portfolio penalty (20) lands at 60
		holdings := []model.Holding{
			makeHolding("CASH", model.SecurityCash, 10000, 1),
		}

		// Execute
		risk := engine.AnalyzeRisk(holdings)

		// Assert
		if risk.RiskScore != 60 {
			t.Errorf("Expected risk score 60, got %d", risk.RiskScore)
		}
		if risk.RiskLevel != model.RiskLevelMedium {
			t.Errorf("Expected medium risk, got %s", risk.RiskLevel)
		}
		if !almostEqual(risk.VolatilityScore, 0) {
			t.Errorf("Expected zero volatility for cash, got %v", risk.VolatilityScore)
		}
	})

	t.Run("ten equal bond positions are low risk", func(t *testing.T) {
		// Setup: concentration 10% (no component), weight 1 (floor 10),
		// ten holdings (no penalty)
		holdings := make([]model.Holding, 0, 10)
		for i := 0; i < 10; i++ {
			holdings = append(holdings, makeHolding("BND", model.SecurityBond, 10, 100))
		}

		// Execute
		risk := engine.AnalyzeRisk(holdings)

		// Assert
		if risk.RiskScore != 10 {
			t.Errorf("Expected risk score 10, got %d", risk.RiskScore)
		}
		if risk.RiskLevel != model.RiskLevelLow {
			t.Errorf("Expected low risk, got %s", risk.RiskLevel)
		}
		if !almostEqual(risk.VolatilityScore, 20) {
			t.Errorf("Expected volatility score 20, got %v", risk.VolatilityScore)
		}
		if !almostEqual(risk.DiversificationScore, 90) {
			t.Errorf("Expected diversification score 90, got %v", risk.DiversificationScore)
		}
	})

	t.Run("volatility uses current prices for weighting", func(t *testing.T) {
		// Setup: the crypto position has collapsed to a sliver of value, so
		// the cash position dominates the weighted volatility
		holdings := []model.Holding{
			withPrice(makeHolding("BTC", model.SecurityCrypto, 1, 10000), 100),
			makeHolding("CASH", model.SecurityCash, 9900, 1),
		}

		// Execute
		risk := engine.AnalyzeRisk(holdings)

		// Assert: weighted vol = (100/10000)*5 = 0.05, score 1
		if !almostEqual(risk.VolatilityScore, 1) {
			t.Errorf("Expected volatility score 1, got %v", risk.VolatilityScore)
		}
	})
}
