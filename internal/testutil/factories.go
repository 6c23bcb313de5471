package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/repository"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithSymbol("VTI").
//	    WithSecurityType(model.SecurityETF).
//	    WithQuantity(10).
//	    WithCurrentPrice(250.00).
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	Symbol        string
	Name          string
	SecurityType  model.SecurityType
	Quantity      float64
	PurchasePrice float64
	PurchaseDate  time.Time
	CurrentPrice  *float64
	LastUpdated   time.Time
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:            MakeID(),
		Symbol:        MakeSymbol("TST"),
		Name:          "Test Security",
		SecurityType:  model.SecurityStock,
		Quantity:      10,
		PurchasePrice: 100.00,
		PurchaseDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		LastUpdated:   time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.Name = name
	return b
}

// WithSecurityType sets the security type.
func (b *HoldingBuilder) WithSecurityType(securityType model.SecurityType) *HoldingBuilder {
	b.SecurityType = securityType
	return b
}

// WithQuantity sets the quantity.
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithPurchasePrice sets the purchase price.
func (b *HoldingBuilder) WithPurchasePrice(price float64) *HoldingBuilder {
	b.PurchasePrice = price
	return b
}

// WithPurchaseDate sets the purchase date.
func (b *HoldingBuilder) WithPurchaseDate(date time.Time) *HoldingBuilder {
	b.PurchaseDate = date
	return b
}

// WithCurrentPrice sets a recorded current price.
func (b *HoldingBuilder) WithCurrentPrice(price float64) *HoldingBuilder {
	b.CurrentPrice = &price
	return b
}

// WithLastUpdated sets the last-updated timestamp.
func (b *HoldingBuilder) WithLastUpdated(lastUpdated time.Time) *HoldingBuilder {
	b.LastUpdated = lastUpdated
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (id, symbol, name, security_type, quantity, purchase_price, purchase_date, current_price, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var currentPrice interface{}
	if b.CurrentPrice != nil {
		currentPrice = *b.CurrentPrice
	}

	_, err := db.Exec(query,
		b.ID, b.Symbol, b.Name, string(b.SecurityType), b.Quantity, b.PurchasePrice,
		b.PurchaseDate.Format("2006-01-02"), currentPrice, b.LastUpdated.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:            b.ID,
		Symbol:        b.Symbol,
		Name:          b.Name,
		SecurityType:  b.SecurityType,
		Quantity:      b.Quantity,
		PurchasePrice: b.PurchasePrice,
		PurchaseDate:  b.PurchaseDate,
		CurrentPrice:  b.CurrentPrice,
		LastUpdated:   b.LastUpdated,
	}
}

// GoalBuilder provides a fluent interface for creating test goals.
//
// Example usage:
//
//	goal := testutil.NewGoal().
//	    WithCategory(model.GoalEmergency).
//	    WithTargetAmount(15000).
//	    Build(t, db)
type GoalBuilder struct {
	ID                  string
	Name                string
	Category            model.GoalCategory
	TargetAmount        float64
	CurrentAmount       float64
	TargetDate          time.Time
	Priority            model.GoalPriority
	MonthlyContribution float64
	CreatedAt           time.Time
}

// NewGoal creates a GoalBuilder with sensible defaults.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		ID:                  MakeID(),
		Name:                "Test Goal",
		Category:            model.GoalCustom,
		TargetAmount:        10000,
		CurrentAmount:       2500,
		TargetDate:          time.Now().UTC().AddDate(3, 0, 0),
		Priority:            model.GoalPriorityMedium,
		MonthlyContribution: 200,
		CreatedAt:           time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *GoalBuilder) WithID(id string) *GoalBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.Name = name
	return b
}

// WithCategory sets the goal category.
func (b *GoalBuilder) WithCategory(category model.GoalCategory) *GoalBuilder {
	b.Category = category
	return b
}

// WithTargetAmount sets the target amount.
func (b *GoalBuilder) WithTargetAmount(amount float64) *GoalBuilder {
	b.TargetAmount = amount
	return b
}

// WithCurrentAmount sets the current amount.
func (b *GoalBuilder) WithCurrentAmount(amount float64) *GoalBuilder {
	b.CurrentAmount = amount
	return b
}

// WithTargetDate sets the target date.
func (b *GoalBuilder) WithTargetDate(date time.Time) *GoalBuilder {
	b.TargetDate = date
	return b
}

// WithPriority sets the priority.
func (b *GoalBuilder) WithPriority(priority model.GoalPriority) *GoalBuilder {
	b.Priority = priority
	return b
}

// WithMonthlyContribution sets the monthly contribution.
func (b *GoalBuilder) WithMonthlyContribution(amount float64) *GoalBuilder {
	b.MonthlyContribution = amount
	return b
}

// Build creates the goal in the database and returns it.
func (b *GoalBuilder) Build(t *testing.T, db *sql.DB) model.Goal {
	t.Helper()

	query := `
		INSERT INTO goal (id, name, category, target_amount, current_amount, target_date, priority, monthly_contribution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Name, string(b.Category), b.TargetAmount, b.CurrentAmount,
		b.TargetDate.Format("2006-01-02"), string(b.Priority), b.MonthlyContribution,
		b.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return model.Goal{
		ID:                  b.ID,
		Name:                b.Name,
		Category:            b.Category,
		TargetAmount:        b.TargetAmount,
		CurrentAmount:       b.CurrentAmount,
		TargetDate:          b.TargetDate,
		Priority:            b.Priority,
		MonthlyContribution: b.MonthlyContribution,
		CreatedAt:           b.CreatedAt,
	}
}

// ProfileBuilder provides a fluent interface for creating test profiles.
// Profiles are stored encrypted, so Build goes through the repository
// instead of raw SQL.
//
// Example usage:
//
//	repo := testutil.NewTestProfileRepository(t, db)
//	profile := testutil.NewProfile().WithAge(35).Build(t, repo)
type ProfileBuilder struct {
	profile model.UserProfile
}

// NewProfile creates a ProfileBuilder with sensible defaults: a 35 year old
// moderate, long-term investor with a healthy financial situation.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		profile: model.UserProfile{
			Name:            "Test User",
			Age:             35,
			ExperienceLevel: model.ExperienceIntermediate,
			RiskTolerance:   model.RiskModerate,
			TimeHorizon:     model.HorizonLongTerm,
			MonthlyIncome:   6000,
			MonthlyExpenses: 4000,
			MonthlySavings:  1200,
			EmergencyFund:   24000,
			CurrentDebt:     0,
			UpdatedAt:       time.Now().UTC(),
		},
	}
}

// WithName sets a custom name.
func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = name
	return b
}

// WithAge sets the age.
func (b *ProfileBuilder) WithAge(age int) *ProfileBuilder {
	b.profile.Age = age
	return b
}

// WithRiskTolerance sets the risk tolerance.
func (b *ProfileBuilder) WithRiskTolerance(tolerance model.RiskTolerance) *ProfileBuilder {
	b.profile.RiskTolerance = tolerance
	return b
}

// WithTimeHorizon sets the time horizon.
func (b *ProfileBuilder) WithTimeHorizon(horizon model.TimeHorizon) *ProfileBuilder {
	b.profile.TimeHorizon = horizon
	return b
}

// WithExperienceLevel sets the experience level.
func (b *ProfileBuilder) WithExperienceLevel(level model.ExperienceLevel) *ProfileBuilder {
	b.profile.ExperienceLevel = level
	return b
}

// WithFinances sets the monthly income, expenses, and savings in one call.
func (b *ProfileBuilder) WithFinances(income, expenses, savings float64) *ProfileBuilder {
	b.profile.MonthlyIncome = income
	b.profile.MonthlyExpenses = expenses
	b.profile.MonthlySavings = savings
	return b
}

// WithEmergencyFund sets the emergency fund balance.
func (b *ProfileBuilder) WithEmergencyFund(amount float64) *ProfileBuilder {
	b.profile.EmergencyFund = amount
	return b
}

// WithDebt sets the current debt balance.
func (b *ProfileBuilder) WithDebt(amount float64) *ProfileBuilder {
	b.profile.CurrentDebt = amount
	return b
}

// Profile returns the built profile without persisting it. Useful for
// engine-level tests that take the profile as a plain value.
func (b *ProfileBuilder) Profile() model.UserProfile {
	return b.profile
}

// Build persists the profile through the repository and returns it.
func (b *ProfileBuilder) Build(t *testing.T, repo *repository.ProfileRepository) model.UserProfile {
	t.Helper()

	if err := repo.SaveProfile(b.profile); err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return b.profile
}
