package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/repository"
)

// GoalService handles savings goal business logic operations.
type GoalService struct {
	goalRepo *repository.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
	}
}

// GetAllGoals retrieves all goals ordered by target date.
func (s *GoalService) GetAllGoals() ([]model.Goal, error) {
	return s.goalRepo.GetGoals()
}

// GetGoal retrieves a single goal by ID.
// Returns apperrors.ErrGoalNotFound if no goal exists with the given ID.
func (s *GoalService) GetGoal(goalID string) (model.Goal, error) {
	return s.goalRepo.GetGoalOnID(goalID)
}

// CreateGoal creates a new goal from the request.
func (s *GoalService) CreateGoal(req request.CreateGoalRequest) (*model.Goal, error) {
	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		ID:                  uuid.New().String(),
		Name:                strings.TrimSpace(req.Name),
		Category:            model.GoalCategory(req.Category),
		TargetAmount:        req.TargetAmount,
		CurrentAmount:       req.CurrentAmount,
		TargetDate:          targetDate,
		Priority:            model.GoalPriority(req.Priority),
		MonthlyContribution: req.MonthlyContribution,
		CreatedAt:           time.Now(),
	}

	if err := s.goalRepo.CreateGoal(*goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// UpdateGoal applies the provided fields to an existing goal.
// Returns apperrors.ErrGoalNotFound if no goal exists with the given ID.
func (s *GoalService) UpdateGoal(goalID string, req request.UpdateGoalRequest) (model.Goal, error) {
	goal, err := s.goalRepo.GetGoalOnID(goalID)
	if err != nil {
		return model.Goal{}, err
	}

	if req.Name != nil {
		goal.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		goal.Category = model.GoalCategory(*req.Category)
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			return model.Goal{}, err
		}
		goal.TargetDate = targetDate
	}
	if req.Priority != nil {
		goal.Priority = model.GoalPriority(*req.Priority)
	}
	if req.MonthlyContribution != nil {
		goal.MonthlyContribution = *req.MonthlyContribution
	}

	if err := s.goalRepo.UpdateGoal(goal); err != nil {
		return model.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return goal, nil
}

// DeleteGoal removes a goal by ID.
// Returns apperrors.ErrGoalNotFound if no goal exists with the given ID.
func (s *GoalService) DeleteGoal(goalID string) error {
	return s.goalRepo.DeleteGoal(goalID)
}
