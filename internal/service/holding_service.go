package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// HoldingService handles market holding CRUD operations. Holdings
// exist only under Markets assets.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
	assetRepo   *repository.AssetRepository
	now         func() time.Time
}

// NewHoldingService creates a new HoldingService.
func NewHoldingService(holdingRepo *repository.HoldingRepository, assetRepo *repository.AssetRepository) *HoldingService {
	return &HoldingService{
		holdingRepo: holdingRepo,
		assetRepo:   assetRepo,
		now:         time.Now,
	}
}

// GetHoldingsForAsset retrieves the holdings owned by an asset.
func (s *HoldingService) GetHoldingsForAsset(assetID string) ([]model.MarketHolding, error) {
	if _, err := s.assetRepo.GetAsset(assetID); err != nil {
		return nil, err
	}
	return s.holdingRepo.GetHoldings(assetID)
}

// GetHolding retrieves a single holding by ID.
func (s *HoldingService) GetHolding(id string) (model.MarketHolding, error) {
	return s.holdingRepo.GetHolding(id)
}

// CreateHolding stores a new holding after checking the owning asset
// exists and is a Markets asset.
func (s *HoldingService) CreateHolding(h model.MarketHolding) (model.MarketHolding, error) {
	asset, err := s.assetRepo.GetAsset(h.AssetID)
	if err != nil {
		return model.MarketHolding{}, err
	}
	if asset.Category != model.CategoryMarkets {
		return model.MarketHolding{}, apperrors.ErrHoldingOnNonMarketsAsset
	}

	now := s.now().UTC()
	h.ID = uuid.NewString()
	h.CreatedAt = now
	h.UpdatedAt = now
	if h.Currency == "" {
		h.Currency = asset.Currency
	}

	if err := s.holdingRepo.CreateHolding(h); err != nil {
		return model.MarketHolding{}, err
	}
	return h, nil
}

// UpdateHolding applies a partial update through the apply callback.
func (s *HoldingService) UpdateHolding(id string, apply func(*model.MarketHolding)) (model.MarketHolding, error) {
	h, err := s.holdingRepo.GetHolding(id)
	if err != nil {
		return model.MarketHolding{}, err
	}

	apply(&h)
	h.UpdatedAt = s.now().UTC()

	if err := s.holdingRepo.UpdateHolding(h); err != nil {
		return model.MarketHolding{}, err
	}
	return h, nil
}

// DeleteHolding removes a holding.
func (s *HoldingService) DeleteHolding(id string) error {
	return s.holdingRepo.DeleteHolding(id)
}
