package service

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/engine"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/repository"
)

// AdvisorService orchestrates the analytics engine. It loads the advisory
// inputs (profile, holdings, goals), feeds them to the pure engine package,
// and persists generated recommendations so status changes survive restarts.
type AdvisorService struct {
	profileRepo        *repository.ProfileRepository
	holdingRepo        *repository.HoldingRepository
	goalRepo           *repository.GoalRepository
	recommendationRepo *repository.RecommendationRepository
}

// NewAdvisorService creates a new AdvisorService with the provided repository dependencies.
func NewAdvisorService(
	profileRepo *repository.ProfileRepository,
	holdingRepo *repository.HoldingRepository,
	goalRepo *repository.GoalRepository,
	recommendationRepo *repository.RecommendationRepository,
) *AdvisorService {
	return &AdvisorService{
		profileRepo:        profileRepo,
		holdingRepo:        holdingRepo,
		goalRepo:           goalRepo,
		recommendationRepo: recommendationRepo,
	}
}

// advisoryInputs bundles everything the engine needs for one run.
type advisoryInputs struct {
	profile  model.UserProfile
	holdings []model.Holding
	goals    []model.Goal
}

// loadInputs fetches the profile, holdings, and goals concurrently.
// The three reads hit independent tables, so there is no ordering concern.
// Returns apperrors.ErrProfileNotFound if onboarding has not completed yet.
func (s *AdvisorService) loadInputs() (advisoryInputs, error) {
	var inputs advisoryInputs
	var g errgroup.Group

	g.Go(func() error {
		profile, err := s.profileRepo.GetProfile()
		if err != nil {
			return err
		}
		inputs.profile = profile
		return nil
	})
	g.Go(func() error {
		holdings, err := s.holdingRepo.GetHoldings()
		if err != nil {
			return err
		}
		inputs.holdings = holdings
		return nil
	})
	g.Go(func() error {
		goals, err := s.goalRepo.GetGoals()
		if err != nil {
			return err
		}
		inputs.goals = goals
		return nil
	})

	if err := g.Wait(); err != nil {
		return advisoryInputs{}, err
	}
	return inputs, nil
}

// GetPortfolioAnalysis computes the dashboard aggregate: summary totals,
// allocation with drift against the profile target, top and worst
// performers, and risk metrics.
func (s *AdvisorService) GetPortfolioAnalysis() (model.PortfolioAnalysis, error) {
	inputs, err := s.loadInputs()
	if err != nil {
		return model.PortfolioAnalysis{}, err
	}
	return engine.BuildPortfolioAnalysis(inputs.profile, inputs.holdings), nil
}

// GetFinancialHealth scores the profile's financial situation across savings
// rate, expense ratio, debt ratio, and emergency fund coverage.
func (s *AdvisorService) GetFinancialHealth() (model.FinancialHealthBreakdown, error) {
	profile, err := s.profileRepo.GetProfile()
	if err != nil {
		return model.FinancialHealthBreakdown{}, err
	}
	return engine.ScoreFinancialHealth(profile), nil
}

// GetTargetAllocation derives the recommended stock/bond split from the
// profile's age, risk tolerance, and time horizon.
func (s *AdvisorService) GetTargetAllocation() (model.TargetAllocation, error) {
	profile, err := s.profileRepo.GetProfile()
	if err != nil {
		return model.TargetAllocation{}, err
	}
	return engine.TargetAllocationFor(profile), nil
}

// GetRecommendations retrieves the persisted recommendations ordered by
// priority weight, newest first within each priority.
func (s *AdvisorService) GetRecommendations() ([]model.Recommendation, error) {
	return s.recommendationRepo.GetRecommendations()
}

// RefreshRecommendations runs the full generation pipeline: load inputs, run
// every generator, keep the top results, and replace the stored pending
// snapshot. Recommendations the user already acted on keep their rows.
// Returns the stored list after the refresh.
func (s *AdvisorService) RefreshRecommendations() ([]model.Recommendation, error) {
	inputs, err := s.loadInputs()
	if err != nil {
		return nil, err
	}

	recommendations, err := engine.GenerateRecommendations(inputs.profile, inputs.holdings, inputs.goals, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}
	if len(recommendations) > engine.MaxRecommendations {
		recommendations = recommendations[:engine.MaxRecommendations]
	}

	if err := s.recommendationRepo.ReplaceSnapshot(recommendations); err != nil {
		return nil, fmt.Errorf("failed to store recommendations: %w", err)
	}

	return s.recommendationRepo.GetRecommendations()
}

// UpdateRecommendationStatus changes the status of a stored recommendation.
// Returns apperrors.ErrRecommendationNotFound if no recommendation exists
// with the given ID.
func (s *AdvisorService) UpdateRecommendationStatus(recommendationID string, status model.RecommendationStatus) error {
	return s.recommendationRepo.UpdateStatus(recommendationID, status, time.Now())
}
