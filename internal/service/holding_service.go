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

// HoldingService handles holding-related business logic operations.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{
		holdingRepo: holdingRepo,
	}
}

// GetAllHoldings retrieves all holdings ordered by symbol.
func (s *HoldingService) GetAllHoldings() ([]model.Holding, error) {
	return s.holdingRepo.GetHoldings()
}

// GetHolding retrieves a single holding by ID.
// Returns apperrors.ErrHoldingNotFound if no holding exists with the given ID.
func (s *HoldingService) GetHolding(holdingID string) (model.Holding, error) {
	return s.holdingRepo.GetHoldingOnID(holdingID)
}

// CreateHolding creates a new holding from the request. Symbols are stored
// uppercased so lookups and duplicate checks are case-insensitive.
func (s *HoldingService) CreateHolding(req request.CreateHoldingRequest) (*model.Holding, error) {
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	holding := &model.Holding{
		ID:            uuid.New().String(),
		Symbol:        strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Name:          strings.TrimSpace(req.Name),
		SecurityType:  model.SecurityType(req.SecurityType),
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		CurrentPrice:  req.CurrentPrice,
		LastUpdated:   time.Now(),
	}

	if err := s.holdingRepo.CreateHolding(*holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}

	return holding, nil
}

// UpdateHolding applies the provided fields to an existing holding.
// Returns apperrors.ErrHoldingNotFound if no holding exists with the given ID.
func (s *HoldingService) UpdateHolding(holdingID string, req request.UpdateHoldingRequest) (model.Holding, error) {
	holding, err := s.holdingRepo.GetHoldingOnID(holdingID)
	if err != nil {
		return model.Holding{}, err
	}

	if req.Symbol != nil {
		holding.Symbol = strings.ToUpper(strings.TrimSpace(*req.Symbol))
	}
	if req.Name != nil {
		holding.Name = strings.TrimSpace(*req.Name)
	}
	if req.SecurityType != nil {
		holding.SecurityType = model.SecurityType(*req.SecurityType)
	}
	if req.Quantity != nil {
		holding.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		holding.PurchasePrice = *req.PurchasePrice
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			return model.Holding{}, err
		}
		holding.PurchaseDate = purchaseDate
	}
	if req.CurrentPrice != nil {
		holding.CurrentPrice = req.CurrentPrice
	}
	holding.LastUpdated = time.Now()

	if err := s.holdingRepo.UpdateHolding(holding); err != nil {
		return model.Holding{}, fmt.Errorf("failed to update holding: %w", err)
	}

	return holding, nil
}

// DeleteHolding removes a holding by ID.
// Returns apperrors.ErrHoldingNotFound if no holding exists with the given ID.
func (s *HoldingService) DeleteHolding(holdingID string) error {
	return s.holdingRepo.DeleteHolding(holdingID)
}

// DeleteHoldings removes multiple holdings in one statement and returns the
// number of rows removed. IDs that do not exist are skipped rather than
// treated as errors.
func (s *HoldingService) DeleteHoldings(holdingIDs []string) (int64, error) {
	return s.holdingRepo.DeleteHoldings(holdingIDs)
}
