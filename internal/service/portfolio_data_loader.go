package service

import (
	"golang.org/x/sync/errgroup"

	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
)

// DataLoaderService centralizes the loading of all records a portfolio
// calculation needs. Valuation, forecasting, and snapshotting all start
// from the same four datasets, so one loader serves every caller.
type DataLoaderService struct {
	assetRepo       *repository.AssetRepository
	holdingRepo     *repository.HoldingRepository
	securityRepo    *repository.SecurityRepository
	transactionRepo *repository.TransactionRepository
}

// NewDataLoaderService creates a new DataLoaderService with the provided repositories.
func NewDataLoaderService(
	assetRepo *repository.AssetRepository,
	holdingRepo *repository.HoldingRepository,
	securityRepo *repository.SecurityRepository,
	transactionRepo *repository.TransactionRepository,
) *DataLoaderService {
	return &DataLoaderService{
		assetRepo:       assetRepo,
		holdingRepo:     holdingRepo,
		securityRepo:    securityRepo,
		transactionRepo: transactionRepo,
	}
}

// PortfolioData contains everything a valuation pass reads: the assets,
// their market holdings, the priced securities (including FX pairs),
// and the full transaction ledger.
type PortfolioData struct {
	Assets       []model.Asset
	Holdings     []model.MarketHolding
	Securities   []model.Security
	Transactions []model.Transaction
}

// Load fetches the four datasets concurrently. The queries are
// independent reads, so they run in parallel and the first failure
// cancels the batch.
func (s *DataLoaderService) Load(includeRecovery bool) (*PortfolioData, error) {
	var data PortfolioData
	var g errgroup.Group

	g.Go(func() error {
		var err error
		data.Assets, err = s.assetRepo.GetAssets(model.AssetFilter{IncludeRecovery: includeRecovery})
		return err
	})
	g.Go(func() error {
		var err error
		data.Holdings, err = s.holdingRepo.GetHoldings("")
		return err
	})
	g.Go(func() error {
		var err error
		data.Securities, err = s.securityRepo.GetSecurities()
		return err
	})
	g.Go(func() error {
		var err error
		data.Transactions, err = s.transactionRepo.GetTransactions(model.TransactionFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
