// Package engine is the recommendation and portfolio analytics core: pure
// computations over a user profile, holdings and goals. Nothing in this
// package performs I/O, reads the clock, or mutates its inputs; callers pass
// the current time explicitly and own all persistence.
package engine

import "github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"

// Thresholds used across the analyzers and generators. Kept in one table so
// the generators can never drift from the analyzer banding they react to.
const (
	// Diversification scoring
	PointsPerSecurityType = 10
	SecurityTypeScoreCap  = 40

	ConcentrationExcellentPct = 20 // largest holding <= 20% of portfolio
	ConcentrationGoodPct      = 30
	ConcentrationFairPct      = 50
	ConcentrationScoreExcellent = 60
	ConcentrationScoreGood      = 40
	ConcentrationScoreFair      = 25
	ConcentrationScorePoor      = 10

	MinRecommendedTypes    = 3
	TopHeavyHoldingPct     = 50 // single holding above this triggers a warning
	TopThreeHoldingsPct    = 75
	MinRecommendedHoldings = 5
	MaxRecommendedHoldings = 50

	// Risk scoring
	VolatilityScale = 20 // raw value-weighted volatility x20 => 0-100

	RiskConcentrationSevere   = 50
	RiskConcentrationHigh     = 30
	RiskConcentrationElevated = 20
	RiskConcentrationMild     = 10

	SmallPortfolioPenalty  = 20 // fewer than MinRecommendedHoldings positions
	MediumPortfolioPenalty = 10 // fewer than 10 positions
	MediumPortfolioSize    = 10

	RiskScoreHigh   = 70
	RiskScoreMedium = 40

	// Target allocation
	MinStockPercent          = 20
	MaxStockPercent          = 90
	ConservativeAdjustment   = -20
	AggressiveAdjustment     = 20
	ShortHorizonAdjustment   = -15
	LongHorizonAdjustment    = 10

	// Generator triggers
	AllocationGapHighPct     = 20
	AllocationGapMediumPct   = 10
	MinBondAllocationPct     = 10
	BondRecommendationAge    = 30
	GoalUrgentDays           = 365
	GoalUrgentProgressPct    = 80
	GoalMomentumProgressPct  = 25
	EmergencyGoalMaxAge      = 65
	RebalanceMinHoldings     = 3
	RebalanceConcentrationPct = 40
	StalePriceDays           = 30
	CostReviewMinHoldings    = 2
	SmallPositionPct         = 5
	ConsolidationThreshold   = 5 // more than this many sub-5% positions

	// Assembler defaults
	MaxRecommendations = 5

	// Placeholder expected-impact magnitudes, percent
	DefaultRiskReduction     = 15
	DefaultReturnImprovement = 1.5
	DefaultGoalAcceleration  = 10
)

// volatilityWeights maps each security type to its relative volatility
// weight for the value-weighted volatility score.
var volatilityWeights = map[model.SecurityType]float64{
	model.SecurityCrypto:     5,
	model.SecurityStock:      3,
	model.SecurityETF:        2,
	model.SecurityMutualFund: 2,
	model.SecurityOther:      2,
	model.SecurityBond:       1,
	model.SecurityCash:       0,
}

// internationalKeywords flag a holding as carrying non-domestic exposure
// when any of them appears in its display name.
var internationalKeywords = []string{"international", "global", "world", "emerging", "foreign"}
