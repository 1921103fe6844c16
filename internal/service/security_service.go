package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// SecurityService handles security registration and lookup.
type SecurityService struct {
	securityRepo *repository.SecurityRepository
	now          func() time.Time
}

// NewSecurityService creates a new SecurityService.
func NewSecurityService(securityRepo *repository.SecurityRepository) *SecurityService {
	return &SecurityService{
		securityRepo: securityRepo,
		now:          time.Now,
	}
}

// GetSecurities lists all securities.
func (s *SecurityService) GetSecurities() ([]model.Security, error) {
	return s.securityRepo.GetSecurities()
}

// CreateSecurity registers a new security. A seed price may be
// provided; its timestamp is set to registration time.
func (s *SecurityService) CreateSecurity(sec model.Security) (model.Security, error) {
	sec.ID = uuid.NewString()
	if sec.SecurityType == "" {
		sec.SecurityType = "stock"
	}
	if sec.Currency == "" {
		sec.Currency = "EUR"
	}
	if sec.CurrentPrice != nil {
		now := s.now().UTC()
		sec.PriceUpdatedAt = &now
	}

	if err := s.securityRepo.CreateSecurity(sec); err != nil {
		return model.Security{}, err
	}
	return sec, nil
}
