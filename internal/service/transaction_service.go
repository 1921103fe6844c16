package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// TransactionService handles the cashflow ledger: raw transaction CRUD
// plus the running-balance view.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	assetRepo       *repository.AssetRepository
	now             func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo *repository.TransactionRepository, assetRepo *repository.AssetRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		now:             time.Now,
	}
}

// GetTransactions retrieves transactions matching the filter in
// chronological order.
func (s *TransactionService) GetTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(filter)
}

// GetTransaction retrieves a single transaction by ID.
func (s *TransactionService) GetTransaction(id string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(id)
}

// CreateTransaction stores a new ledger entry. A linked asset must
// exist.
func (s *TransactionService) CreateTransaction(t model.Transaction) (model.Transaction, error) {
	if t.AssetID != nil {
		if _, err := s.assetRepo.GetAsset(*t.AssetID); err != nil {
			return model.Transaction{}, err
		}
	}

	t.ID = uuid.NewString()
	t.CreatedAt = s.now().UTC()

	if err := s.transactionRepo.CreateTransaction(t); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// DeleteTransaction removes a ledger entry.
func (s *TransactionService) DeleteTransaction(id string) error {
	return s.transactionRepo.DeleteTransaction(id)
}

// GetLedger computes the running-balance view over the filtered
// transactions. Balances always accumulate in date order; the sort
// field only reorders the rows afterwards for display.
func (s *TransactionService) GetLedger(filter model.TransactionFilter, sortBy engine.SortField, descending bool) ([]engine.BalanceEntry, error) {
	transactions, err := s.transactionRepo.GetTransactions(filter)
	if err != nil {
		return nil, err
	}

	entries := engine.RunningBalance(transactions)
	if sortBy != "" && sortBy != engine.SortByDate {
		entries = engine.SortForDisplay(entries, sortBy, descending)
	} else if descending {
		entries = engine.SortForDisplay(entries, engine.SortByDate, true)
	}
	return entries, nil
}
