package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// AssetService handles asset CRUD operations.
type AssetService struct {
	assetRepo *repository.AssetRepository
	now       func() time.Time
}

// NewAssetService creates a new AssetService.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		now:       time.Now,
	}
}

// GetAssets retrieves assets matching the filter.
func (s *AssetService) GetAssets(filter model.AssetFilter) ([]model.Asset, error) {
	return s.assetRepo.GetAssets(filter)
}

// GetAsset retrieves a single asset by ID.
func (s *AssetService) GetAsset(id string) (model.Asset, error) {
	return s.assetRepo.GetAsset(id)
}

// CreateAsset stores a new asset, assigning its ID and timestamps.
// Unset status, currency, and appreciation type take their defaults.
func (s *AssetService) CreateAsset(a model.Asset) (model.Asset, error) {
	now := s.now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	if a.Status == "" {
		a.Status = model.StatusActive
	}
	if a.Currency == "" {
		a.Currency = "EUR"
	}
	if a.AppreciationType == "" {
		a.AppreciationType = model.Appreciates
	}

	if err := s.assetRepo.CreateAsset(a); err != nil {
		return model.Asset{}, err
	}
	return a, nil
}

// UpdateAsset applies a partial update. The apply callback mutates the
// freshly loaded asset; fields it leaves alone keep their stored
// values.
func (s *AssetService) UpdateAsset(id string, apply func(*model.Asset)) (model.Asset, error) {
	a, err := s.assetRepo.GetAsset(id)
	if err != nil {
		return model.Asset{}, err
	}

	apply(&a)
	a.UpdatedAt = s.now().UTC()

	if err := s.assetRepo.UpdateAsset(a); err != nil {
		return model.Asset{}, err
	}
	return a, nil
}

// DeleteAsset removes an asset. Holdings cascade; transactions keep
// their rows with the asset link cleared.
func (s *AssetService) DeleteAsset(id string) error {
	return s.assetRepo.DeleteAsset(id)
}
