package engine_test

import (
	"testing"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/engine"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

func componentByName(t *testing.T, breakdown model.FinancialHealthBreakdown, name string) model.HealthComponent {
	t.Helper()
	for _, c := range breakdown.Components {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("Component %q not found in %+v", name, breakdown.Components)
	return model.HealthComponent{}
}

// TestScoreFinancialHealth tests the weighted health score.
//
// WHY: The score drives the most visible number in the app. The component
// bands and the zero-denominator fallbacks both need to be exact, because
// brand-new users routinely enter zero income or zero expenses.
func TestScoreFinancialHealth(t *testing.T) {
	t.Run("strong finances score 100 with no suggestions", func(t *testing.T) {
		// Setup: 25% savings rate, 40% expense ratio, no debt, 10 months of
		// emergency fund
		profile := makeProfile()

		// Execute
		health := engine.ScoreFinancialHealth(profile)

		// Assert
		if health.TotalScore != 100 {
			t.Errorf("Expected total score 100, got %d", health.TotalScore)
		}
		if len(health.Suggestions) != 0 {
			t.Errorf("Expected no suggestions, got %v", health.Suggestions)
		}
		for _, c := range health.Components {
			if c.Status != model.HealthExcellent {
				t.Errorf("Expected %s to be excellent, got %s", c.Name, c.Status)
			}
		}
	})

	t.Run("zero income with spending and debt bottoms out", func(t *testing.T) {
		// Setup
		profile := makeProfile()
		profile.MonthlyIncome = 0
		profile.MonthlySavings = 0
		profile.MonthlyExpenses = 1000
		profile.CurrentDebt = 5000
		profile.EmergencyFund = 0

		// Execute
		health := engine.ScoreFinancialHealth(profile)

		// Assert
		if health.TotalScore != 0 {
			t.Errorf("Expected total score 0, got %d", health.TotalScore)
		}
		if len(health.Suggestions) != 4 {
			t.Errorf("Expected 4 suggestions, got %d: %v", len(health.Suggestions), health.Suggestions)
		}
		for _, c := range health.Components {
			if c.Status != model.HealthPoor {
				t.Errorf("Expected %s to be poor, got %s", c.Name, c.Status)
			}
		}
	})

	t.Run("zero income with no spending or debt is not penalized for ratios", func(t *testing.T) {
		// Setup: nothing coming in, but nothing going out either
		profile := makeProfile()
		profile.MonthlyIncome = 0
		profile.MonthlySavings = 0
		profile.MonthlyExpenses = 0
		profile.CurrentDebt = 0
		profile.EmergencyFund = 5000

		// Execute
		health := engine.ScoreFinancialHealth(profile)

		// Assert
		if c := componentByName(t, health, "expense_ratio"); c.Score != 25 {
			t.Errorf("Expected full expense score with zero spending, got %d", c.Score)
		}
		if c := componentByName(t, health, "debt_to_income"); c.Score != 25 {
			t.Errorf("Expected full debt score with zero debt, got %d", c.Score)
		}
		// Any emergency fund with zero expenses counts as fully covered.
		if c := componentByName(t, health, "emergency_fund"); c.Score != 20 {
			t.Errorf("Expected full emergency fund score, got %d", c.Score)
		}
		if c := componentByName(t, health, "savings_rate"); c.Score != 0 {
			t.Errorf("Expected zero savings score with zero income, got %d", c.Score)
		}
	})

	t.Run("middle bands score per table", func(t *testing.T) {
		// Setup: 10% savings (20), 75% expenses (15), 25% debt-to-annual
		// (15), 1 month emergency fund (10)
		profile := model.UserProfile{
			Name:            "Mid",
			Age:             40,
			ExperienceLevel: model.ExperienceBeginner,
			RiskTolerance:   model.RiskModerate,
			TimeHorizon:     model.HorizonMediumTerm,
			MonthlyIncome:   4000,
			MonthlyExpenses: 3000,
			MonthlySavings:  400,
			EmergencyFund:   3000,
			CurrentDebt:     12000,
		}

		// Execute
		health := engine.ScoreFinancialHealth(profile)

		// Assert
		if c := componentByName(t, health, "savings_rate"); c.Score != 20 {
			t.Errorf("Expected savings score 20, got %d", c.Score)
		}
		if c := componentByName(t, health, "expense_ratio"); c.Score != 15 {
			t.Errorf("Expected expense score 15, got %d", c.Score)
		}
		if c := componentByName(t, health, "debt_to_income"); c.Score != 15 {
			t.Errorf("Expected debt score 15, got %d", c.Score)
		}
		if c := componentByName(t, health, "emergency_fund"); c.Score != 10 {
			t.Errorf("Expected emergency fund score 10, got %d", c.Score)
		}
		if health.TotalScore != 60 {
			t.Errorf("Expected total score 60, got %d", health.TotalScore)
		}
	})

	t.Run("suggestions cover only components under seventy percent", func(t *testing.T) {
		// Setup: savings at 15% scores 25/30 (83%), expenses at 60% score
		// 20/25 (80%); debt and emergency fund are weak
		profile := makeProfile()
		profile.MonthlyIncome = 5000
		profile.MonthlySavings = 750
		profile.MonthlyExpenses = 3000
		profile.CurrentDebt = 21000 // 35% of annual income, scores 10/25
		profile.EmergencyFund = 1800 // 0.6 months, scores 5/20

		// Execute
		health := engine.ScoreFinancialHealth(profile)

		// Assert
		if len(health.Suggestions) != 2 {
			t.Errorf("Expected 2 suggestions, got %d: %v", len(health.Suggestions), health.Suggestions)
		}
	})
}
