package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
)

// Assemble turns generator drafts into full recommendations: fresh ids,
// structured action items, default expected impact by type, pending status
// and timestamps, then sorts by priority weight descending with ties broken
// by creation time, newest first.
func Assemble(drafts []Draft, now time.Time) []model.Recommendation {
	recommendations := make([]model.Recommendation, 0, len(drafts))
	for _, d := range drafts {
		items := make([]model.ActionItem, 0, len(d.ActionItems))
		for _, desc := range d.ActionItems {
			items = append(items, model.ActionItem{
				ID:          uuid.NewString(),
				Description: desc,
				Completed:   false,
			})
		}

		recommendations = append(recommendations, model.Recommendation{
			ID:             uuid.NewString(),
			Type:           d.Type,
			Priority:       d.Priority,
			Title:          d.Title,
			Description:    d.Description,
			Reasoning:      d.Reasoning,
			ActionItems:    items,
			ExpectedImpact: defaultImpact(d.Type),
			Difficulty:     model.DifficultyEasy,
			Status:         model.StatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	SortRecommendations(recommendations)
	return recommendations
}

// AssembleTop is the capped variant: it assembles, sorts and truncates to
// MaxRecommendations.
func AssembleTop(drafts []Draft, now time.Time) []model.Recommendation {
	recommendations := Assemble(drafts, now)
	if len(recommendations) > MaxRecommendations {
		recommendations = recommendations[:MaxRecommendations]
	}
	return recommendations
}

// SortRecommendations orders by priority weight descending, then by creation
// timestamp descending. The sort is stable so equal-weight, equal-time
// entries keep generator order.
func SortRecommendations(recommendations []model.Recommendation) {
	sort.SliceStable(recommendations, func(i, j int) bool {
		wi, wj := recommendations[i].Priority.Weight(), recommendations[j].Priority.Weight()
		if wi != wj {
			return wi > wj
		}
		return recommendations[i].CreatedAt.After(recommendations[j].CreatedAt)
	})
}

// defaultImpact attaches the fixed placeholder impact hint for a
// recommendation type. Types without a mapped dimension carry no hint.
func defaultImpact(t model.RecommendationType) model.ExpectedImpact {
	switch t {
	case model.RecommendationRiskManagement:
		return model.ExpectedImpact{RiskReduction: DefaultRiskReduction}
	case model.RecommendationAllocation:
		return model.ExpectedImpact{ReturnImprovement: DefaultReturnImprovement}
	case model.RecommendationGoalAchievement:
		return model.ExpectedImpact{GoalAcceleration: DefaultGoalAcceleration}
	}
	return model.ExpectedImpact{}
}
