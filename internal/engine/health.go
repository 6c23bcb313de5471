package engine

import (
	"fmt"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// Health component weights sum to 100.
const (
	savingsRateMax   = 30
	expenseRatioMax  = 25
	debtRatioMax     = 25
	emergencyFundMax = 20
)

// ScoreFinancialHealth produces the weighted 0-100 health score with its
// four component breakdown and improvement suggestions. It consumes only
// profile fields and is independent of holdings.
//
// Zero denominators degrade to safe defaults instead of NaN: zero income
// yields a 0 savings rate and worst-band expense and debt ratios (worst only
// when spending or debt exists); zero expenses with any emergency fund
// counts as fully funded.
func ScoreFinancialHealth(profile model.UserProfile) model.FinancialHealthBreakdown {
	savings := scoreSavingsRate(profile)
	expenses := scoreExpenseRatio(profile)
	debt := scoreDebtRatio(profile)
	emergency := scoreEmergencyFund(profile)

	components := []model.HealthComponent{savings, expenses, debt, emergency}

	total := 0
	suggestions := []string{}
	for _, c := range components {
		total += c.Score
		if float64(c.Score) < 0.7*float64(c.MaxScore) {
			suggestions = append(suggestions, suggestionFor(c.Name))
		}
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return model.FinancialHealthBreakdown{
		TotalScore:  total,
		Components:  components,
		Suggestions: suggestions,
	}
}

func scoreSavingsRate(profile model.UserProfile) model.HealthComponent {
	var rate float64
	if profile.MonthlyIncome > 0 {
		rate = profile.MonthlySavings / profile.MonthlyIncome
	}

	var score int
	switch {
	case rate >= 0.20:
		score = 30
	case rate >= 0.15:
		score = 25
	case rate >= 0.10:
		score = 20
	case rate >= 0.05:
		score = 10
	}

	return makeComponent("savings_rate", score, savingsRateMax,
		fmt.Sprintf("You save %.0f%% of your income each month.", rate*100))
}

func scoreExpenseRatio(profile model.UserProfile) model.HealthComponent {
	ratio := 1.0 // worst band when income is zero but money is going out
	if profile.MonthlyIncome > 0 {
		ratio = profile.MonthlyExpenses / profile.MonthlyIncome
	} else if profile.MonthlyExpenses == 0 {
		ratio = 0
	}

	var score int
	switch {
	case ratio <= 0.50:
		score = 25
	case ratio <= 0.70:
		score = 20
	case ratio <= 0.80:
		score = 15
	case ratio <= 0.90:
		score = 10
	}

	return makeComponent("expense_ratio", score, expenseRatioMax,
		fmt.Sprintf("Expenses consume %.0f%% of your monthly income.", ratio*100))
}

func scoreDebtRatio(profile model.UserProfile) model.HealthComponent {
	ratio := 0.0
	if profile.MonthlyIncome > 0 {
		ratio = profile.CurrentDebt / (profile.MonthlyIncome * 12)
	} else if profile.CurrentDebt > 0 {
		ratio = 1
	}

	var score int
	switch {
	case ratio <= 0.10:
		score = 25
	case ratio <= 0.20:
		score = 20
	case ratio <= 0.30:
		score = 15
	case ratio <= 0.40:
		score = 10
	}

	return makeComponent("debt_to_income", score, debtRatioMax,
		fmt.Sprintf("Debt is %.0f%% of your annual income.", ratio*100))
}

func scoreEmergencyFund(profile model.UserProfile) model.HealthComponent {
	var months float64
	switch {
	case profile.MonthlyExpenses > 0:
		months = profile.EmergencyFund / profile.MonthlyExpenses
	case profile.EmergencyFund > 0:
		months = 6
	}

	var score int
	switch {
	case months >= 6:
		score = 20
	case months >= 3:
		score = 15
	case months >= 1:
		score = 10
	case months >= 0.5:
		score = 5
	}

	return makeComponent("emergency_fund", score, emergencyFundMax,
		fmt.Sprintf("Your emergency fund covers %.1f months of expenses.", months))
}

func makeComponent(name string, score, maxScore int, description string) model.HealthComponent {
	pct := float64(score) / float64(maxScore) * 100

	status := model.HealthPoor
	switch {
	case pct >= 90:
		status = model.HealthExcellent
	case pct >= 70:
		status = model.HealthGood
	case pct >= 50:
		status = model.HealthFair
	}

	return model.HealthComponent{
		Name:        name,
		Score:       score,
		MaxScore:    maxScore,
		Status:      status,
		Description: description,
	}
}

func suggestionFor(component string) string {
	switch component {
	case "savings_rate":
		return "Increase your monthly savings rate toward 20% of income, even in small increments."
	case "expense_ratio":
		return "Review recurring expenses and aim to keep total spending under half your income."
	case "debt_to_income":
		return "Prioritize paying down high-interest debt to bring it under 10% of annual income."
	case "emergency_fund":
		return "Build your emergency fund toward six months of living expenses before expanding investments."
	}
	return ""
}
