package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// Draft is an unranked recommendation produced by a single generator before
// the assembler attaches identifiers, impacts and ordering.
type Draft struct {
	Type        model.RecommendationType
	Priority    model.RecommendationPriority
	Title       string
	Description string
	Reasoning   string
	ActionItems []string
}

// Context is the shared input every generator consumes. It is assembled once
// per engine invocation so the generators all see the same derived numbers.
type Context struct {
	Profile         model.UserProfile
	Holdings        []model.Holding
	Goals           []model.Goal
	TotalValue      float64
	Diversification model.DiversificationResult
	Risk            model.RiskMetrics
	Target          model.TargetAllocation
	Now             time.Time
}

// NewContext derives the shared generator context from the raw inputs.
func NewContext(profile model.UserProfile, holdings []model.Holding, goals []model.Goal, now time.Time) Context {
	return Context{
		Profile:         profile,
		Holdings:        holdings,
		Goals:           goals,
		TotalValue:      PortfolioValue(holdings),
		Diversification: AnalyzeDiversification(holdings),
		Risk:            AnalyzeRisk(holdings),
		Target:          TargetAllocationFor(profile),
		Now:             now,
	}
}

// generators in execution order. Each is independent; their drafts are
// merged and ranked by the assembler.
var generators = []func(Context) []Draft{
	allocationDrafts,
	riskDrafts,
	diversificationDrafts,
	goalDrafts,
	rebalancingDrafts,
	costDrafts,
}

// allocationDrafts compares the current equity split against the
// profile-derived target and flags large gaps, plus a missing bond sleeve
// for users past thirty.
func allocationDrafts(ctx Context) []Draft {
	if len(ctx.Holdings) == 0 || ctx.TotalValue <= 0 {
		return nil
	}

	var equityValue, bondValue float64
	for _, h := range ctx.Holdings {
		value := h.Quantity * h.PriceOrPurchase()
		switch h.SecurityType {
		case model.SecurityStock, model.SecurityETF:
			equityValue += value
		case model.SecurityBond:
			bondValue += value
		}
	}
	equityPct := equityValue / ctx.TotalValue * 100
	bondPct := bondValue / ctx.TotalValue * 100

	var drafts []Draft

	gap := equityPct - ctx.Target.StockPercent
	absGap := gap
	if absGap < 0 {
		absGap = -absGap
	}

	if absGap > AllocationGapMediumPct {
		priority := model.PriorityMedium
		if absGap > AllocationGapHighPct {
			priority = model.PriorityHigh
		}

		direction := "increase"
		action := fmt.Sprintf("Move roughly %.0f%% of the portfolio from cash and bonds into stock or ETF positions", absGap)
		if gap > 0 {
			direction = "reduce"
			action = fmt.Sprintf("Shift roughly %.0f%% of the portfolio out of equities into bonds or cash", absGap)
		}

		drafts = append(drafts, Draft{
			Type:     model.RecommendationAllocation,
			Priority: priority,
			Title:    fmt.Sprintf("Adjust your stock allocation: %s equity exposure", direction),
			Description: fmt.Sprintf(
				"Your portfolio is %.1f%% equities, while your age, risk tolerance and horizon suggest a target of %.0f%%.",
				equityPct, ctx.Target.StockPercent),
			Reasoning: "Keeping the equity share near its target balances growth against the volatility you said you can tolerate.",
			ActionItems: []string{
				action,
				"Review the allocation again after any large contribution or withdrawal",
			},
		})
	}

	if bondPct < MinBondAllocationPct && ctx.Profile.Age > BondRecommendationAge {
		drafts = append(drafts, Draft{
			Type:     model.RecommendationAllocation,
			Priority: model.PriorityMedium,
			Title:    "Add bond exposure",
			Description: fmt.Sprintf(
				"Bonds are only %.1f%% of your portfolio. At age %d a bond sleeve cushions equity downturns.",
				bondPct, ctx.Profile.Age),
			Reasoning: "A small fixed-income allocation lowers portfolio volatility without giving up much expected return.",
			ActionItems: []string{
				"Open a position in a broad bond index fund or ETF",
				fmt.Sprintf("Work toward at least %d%% of the portfolio in bonds", MinBondAllocationPct),
			},
		})
	}

	return drafts
}

// riskDrafts reconciles the user's stated risk tolerance with the measured
// portfolio risk, and flags concentration breaches.
func riskDrafts(ctx Context) []Draft {
	if len(ctx.Holdings) == 0 {
		return nil
	}

	var drafts []Draft

	if ctx.Profile.RiskTolerance == model.RiskConservative && ctx.Risk.RiskLevel != model.RiskLevelLow {
		drafts = append(drafts, Draft{
			Type:     model.RecommendationRiskManagement,
			Priority: model.PriorityHigh,
			Title:    "Reduce portfolio risk",
			Description: fmt.Sprintf(
				"You described yourself as a conservative investor, but the portfolio's risk level is %s (score %d/100).",
				ctx.Risk.RiskLevel, ctx.Risk.RiskScore),
			Reasoning: "A portfolio riskier than your tolerance makes panic selling during downturns far more likely.",
			ActionItems: []string{
				"Shift part of your stock and crypto exposure into bonds or cash",
				"Favor broad index funds over single securities",
			},
		})
	} else if ctx.Profile.RiskTolerance == model.RiskAggressive && ctx.Risk.RiskLevel == model.RiskLevelLow {
		drafts = append(drafts, Draft{
			Type:     model.RecommendationRiskManagement,
			Priority: model.PriorityMedium,
			Title:    "Consider more growth-oriented positions",
			Description: fmt.Sprintf(
				"Your portfolio risk is low (score %d/100), but you indicated an aggressive risk tolerance.",
				ctx.Risk.RiskScore),
			Reasoning: "With an aggressive tolerance and a low-risk portfolio, you may be leaving long-term growth on the table.",
			ActionItems: []string{
				"Increase stock or equity ETF allocation gradually",
				"Keep the emergency fund outside the portfolio before taking more risk",
			},
		})
	}

	if ctx.Risk.ConcentrationRisk > RiskConcentrationHigh {
		priority := model.PriorityMedium
		if ctx.Risk.ConcentrationRisk > RiskConcentrationSevere {
			priority = model.PriorityHigh
		}
		drafts = append(drafts, Draft{
			Type:     model.RecommendationRiskManagement,
			Priority: priority,
			Title:    "Reduce concentration in your largest holding",
			Description: fmt.Sprintf(
				"Your largest position is %.1f%% of the portfolio. A drop in that one security moves your whole net worth.",
				ctx.Risk.ConcentrationRisk),
			Reasoning: "Concentration is the dominant driver of portfolio risk; trimming the largest position reduces it directly.",
			ActionItems: []string{
				"Trim the largest position and redeploy into diversified funds",
				fmt.Sprintf("Target no single holding above %d%% of portfolio value", RiskConcentrationElevated),
			},
		})
	}

	return drafts
}

// diversificationDrafts reacts to the diversification analyzer's score and
// checks for missing international exposure.
func diversificationDrafts(ctx Context) []Draft {
	if len(ctx.Holdings) == 0 {
		return nil
	}

	var drafts []Draft

	if ctx.Diversification.OverallScore < 60 {
		priority := model.PriorityMedium
		if ctx.Diversification.OverallScore < 40 {
			priority = model.PriorityHigh
		}

		// The analyzer's own recommendation strings become the action items.
		actions := ctx.Diversification.Recommendations
		if len(actions) == 0 {
			actions = []string{"Spread the portfolio across more security types and smaller positions"}
		}

		drafts = append(drafts, Draft{
			Type:     model.RecommendationAllocation,
			Priority: priority,
			Title:    "Improve portfolio diversification",
			Description: fmt.Sprintf(
				"Your diversification score is %d/100 across %d security type(s).",
				ctx.Diversification.OverallScore, ctx.Diversification.DistinctTypes),
			Reasoning:   "Diversification reduces the damage any single security or asset class can do to the portfolio.",
			ActionItems: actions,
		})
	}

	if len(ctx.Holdings) > 3 && !hasInternationalExposure(ctx.Holdings) {
		drafts = append(drafts, Draft{
			Type:        model.RecommendationAllocation,
			Priority:    model.PriorityMedium,
			Title:       "Add international exposure",
			Description: "None of your holdings appear to cover international markets.",
			Reasoning:   "Domestic-only portfolios carry single-country risk; global funds spread it across economies.",
			ActionItems: []string{
				"Add a broad international or global index fund",
				"Consider a small emerging-markets allocation for additional spread",
			},
		})
	}

	return drafts
}

// goalDrafts covers missing goals, at-risk goals, slow-starting goals and a
// missing emergency fund goal.
func goalDrafts(ctx Context) []Draft {
	var drafts []Draft

	if len(ctx.Goals) == 0 {
		drafts = append(drafts, Draft{
			Type:        model.RecommendationGoalAchievement,
			Priority:    model.PriorityMedium,
			Title:       "Set your financial goals",
			Description: "You have not defined any savings goals yet.",
			Reasoning:   "Named goals with target dates turn saving from a vague intention into a measurable plan.",
			ActionItems: []string{
				"Define at least one goal with a target amount and date",
				"Start with an emergency fund goal if you do not have one",
			},
		})
	}

	for _, g := range ctx.Goals {
		progress := g.ProgressPercent()
		days := g.DaysRemaining(ctx.Now)

		if days < GoalUrgentDays && progress < GoalUrgentProgressPct {
			drafts = append(drafts, Draft{
				Type:     model.RecommendationGoalAchievement,
				Priority: model.PriorityHigh,
				Title:    fmt.Sprintf("Accelerate progress on %q", g.Name),
				Description: fmt.Sprintf(
					"%q is %.0f%% funded with under a year remaining. You would need about $%.0f per month to reach it on time.",
					g.Name, progress, g.MonthlyRequired(ctx.Now)),
				Reasoning: "Goals inside their final year rarely close large gaps without a deliberate contribution increase.",
				ActionItems: []string{
					fmt.Sprintf("Raise the monthly contribution toward $%.0f", g.MonthlyRequired(ctx.Now)),
					"Or push the target date out to keep the required contribution realistic",
				},
			})
		} else if progress < GoalMomentumProgressPct && days >= GoalUrgentDays {
			drafts = append(drafts, Draft{
				Type:     model.RecommendationGoalAchievement,
				Priority: model.PriorityMedium,
				Title:    fmt.Sprintf("Build momentum on %q", g.Name),
				Description: fmt.Sprintf(
					"%q is only %.0f%% funded. Early contributions do the most compounding work.",
					g.Name, progress),
				Reasoning: "Starting contributions early spreads the saving burden and benefits most from compounding.",
				ActionItems: []string{
					"Set up an automatic monthly transfer toward this goal",
					"Review the goal's monthly contribution against its target date",
				},
			})
		}
	}

	if !hasEmergencyGoal(ctx.Goals) && ctx.Profile.Age < EmergencyGoalMaxAge {
		drafts = append(drafts, Draft{
			Type:        model.RecommendationGoalAchievement,
			Priority:    model.PriorityHigh,
			Title:       "Create an emergency fund goal",
			Description: "You have no goal earmarked for emergencies.",
			Reasoning:   "An emergency fund keeps a job loss or large expense from forcing investment sales at the worst time.",
			ActionItems: []string{
				"Create an emergency goal targeting three to six months of expenses",
				"Fund it before increasing investment contributions",
			},
		})
	}

	return drafts
}

// rebalancingDrafts handles overweight positions and stale prices. Portfolios
// under three holdings have nothing to rebalance.
func rebalancingDrafts(ctx Context) []Draft {
	if len(ctx.Holdings) < RebalanceMinHoldings {
		return nil
	}

	var drafts []Draft

	if ctx.Risk.ConcentrationRisk > RebalanceConcentrationPct {
		drafts = append(drafts, Draft{
			Type:     model.RecommendationRebalancing,
			Priority: model.PriorityMedium,
			Title:    "Rebalance overweight positions",
			Description: fmt.Sprintf(
				"Your largest holding is %.1f%% of the portfolio, past the point where rebalancing is worthwhile.",
				ctx.Risk.ConcentrationRisk),
			Reasoning: "Periodic rebalancing sells what has grown overweight and keeps the portfolio aligned with its targets.",
			ActionItems: []string{
				"Sell part of the overweight position and buy underweight areas",
				"Rebalance with new contributions first to limit taxable sales",
			},
		})
	}

	stale := 0
	for _, h := range ctx.Holdings {
		if h.CurrentPrice == nil || ctx.Now.Sub(h.LastUpdated) > StalePriceDays*24*time.Hour {
			stale++
		}
	}
	if stale > 0 {
		drafts = append(drafts, Draft{
			Type:     model.RecommendationRebalancing,
			Priority: model.PriorityLow,
			Title:    "Update holding prices",
			Description: fmt.Sprintf(
				"%d holding(s) have no current price or were last updated more than %d days ago.",
				stale, StalePriceDays),
			Reasoning: "Analytics and rebalancing advice are only as good as the prices they are computed from.",
			ActionItems: []string{
				"Enter a current price for each stale holding",
				"Refresh prices before acting on any rebalancing advice",
			},
		})
	}

	return drafts
}

// costDrafts flags likely fee drag from mutual funds and from many tiny
// positions.
func costDrafts(ctx Context) []Draft {
	var drafts []Draft

	mutualFunds := 0
	for _, h := range ctx.Holdings {
		if h.SecurityType == model.SecurityMutualFund {
			mutualFunds++
		}
	}
	if mutualFunds > 0 && len(ctx.Holdings) > CostReviewMinHoldings {
		drafts = append(drafts, Draft{
			Type:     model.RecommendationCostReduction,
			Priority: model.PriorityLow,
			Title:    "Review investment costs",
			Description: fmt.Sprintf(
				"You hold %d mutual fund(s). Actively managed funds often charge far more than comparable index ETFs.",
				mutualFunds),
			Reasoning: "Expense ratios compound against you; a one percent annual fee consumes a large share of long-run returns.",
			ActionItems: []string{
				"Check the expense ratio of each mutual fund you hold",
				"Compare against an index ETF tracking the same market",
			},
		})
	}

	if ctx.TotalValue > 0 {
		small := 0
		for _, h := range ctx.Holdings {
			pct := h.Quantity * h.PriceOrPurchase() / ctx.TotalValue * 100
			if pct < SmallPositionPct {
				small++
			}
		}
		if small > ConsolidationThreshold {
			drafts = append(drafts, Draft{
				Type:     model.RecommendationCostReduction,
				Priority: model.PriorityLow,
				Title:    "Consider consolidating small positions",
				Description: fmt.Sprintf(
					"%d holdings are each under %d%% of portfolio value; positions that small barely move outcomes but still cost attention and fees.",
					small, SmallPositionPct),
				Reasoning: "Consolidating tiny positions into broad funds simplifies the portfolio without changing its character.",
				ActionItems: []string{
					"Merge the smallest positions into an existing broad fund",
					"Keep individual positions large enough to matter, or do not hold them",
				},
			})
		}
	}

	return drafts
}

func hasInternationalExposure(holdings []model.Holding) bool {
	for _, h := range holdings {
		name := strings.ToLower(h.Name)
		for _, kw := range internationalKeywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
	}
	return false
}

func hasEmergencyGoal(goals []model.Goal) bool {
	for _, g := range goals {
		if g.Category == model.GoalEmergency {
			return true
		}
	}
	return false
}
