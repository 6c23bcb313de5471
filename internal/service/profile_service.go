package service

import (
	"fmt"
	"time"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/request"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/model"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/repository"
)

// ProfileService handles user profile business logic. The profile is a
// single record per installation, so the service exposes get and
// create-or-replace rather than a full CRUD surface.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetProfile retrieves the user profile.
// Returns apperrors.ErrProfileNotFound if onboarding has not completed yet.
func (s *ProfileService) GetProfile() (model.UserProfile, error) {
	return s.profileRepo.GetProfile()
}

// SaveProfile creates or replaces the user profile from the request and
// stamps it with the current time.
func (s *ProfileService) SaveProfile(req request.SaveProfileRequest) (model.UserProfile, error) {
	profile := model.UserProfile{
		Name:        req.Name,
		Age:         req.Age,
		IncomeRange: req.IncomeRange,

		ExperienceLevel: model.ExperienceLevel(req.ExperienceLevel),
		RiskTolerance:   model.RiskTolerance(req.RiskTolerance),
		KnowledgeTags:   req.KnowledgeTags,

		PrimaryGoals:        req.PrimaryGoals,
		TimeHorizon:         model.TimeHorizon(req.TimeHorizon),
		TargetRetirementAge: req.TargetRetirementAge,
		GoalTargetAmounts:   req.GoalTargetAmounts,

		ExistingInvestments: req.ExistingInvestments,
		MonthlyIncome:       req.MonthlyIncome,
		MonthlyExpenses:     req.MonthlyExpenses,
		MonthlySavings:      req.MonthlySavings,
		EmergencyFund:       req.EmergencyFund,
		CurrentDebt:         req.CurrentDebt,

		CommunicationStyle: req.CommunicationStyle,
		UpdateFrequency:    req.UpdateFrequency,

		UpdatedAt: time.Now(),
	}

	if err := s.profileRepo.SaveProfile(profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}
