package service

import (
	"time"

	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// PortfolioService computes the dashboard summary. It coordinates the
// data loader and the valuation engine; all arithmetic lives in the
// engine package.
type PortfolioService struct {
	loader          *DataLoaderService
	displayCurrency string
	now             func() time.Time
}

// NewPortfolioService creates a new PortfolioService. All figures are
// reported in the given display currency.
func NewPortfolioService(loader *DataLoaderService, displayCurrency string) *PortfolioService {
	return &PortfolioService{
		loader:          loader,
		displayCurrency: displayCurrency,
		now:             time.Now,
	}
}

// GetSummary values the whole portfolio as of now.
//
// Recovery assets are listed with nil figures and excluded from every
// total. The average yield weights each asset's annualized return by
// its share of the participating value.
func (s *PortfolioService) GetSummary() (model.PortfolioSummary, error) {
	data, err := s.loader.Load(true)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	now := s.now().UTC()
	ctx := engine.NewContext(now, s.displayCurrency, data.Securities, data.Holdings)

	summary := model.PortfolioSummary{
		AsOf:     now,
		Currency: s.displayCurrency,
		Assets:   make([]model.AssetSummary, 0, len(data.Assets)),
	}

	byCategory := make(map[model.AssetCategory]*model.CategorySummary)
	valued := make([]engine.ValuedAsset, 0, len(data.Assets))

	for _, a := range data.Assets {
		entry := model.AssetSummary{
			ID:          a.ID,
			Name:        a.Name,
			Category:    a.Category,
			Subcategory: a.Subcategory,
			Status:      a.Status,
		}

		if a.Status == model.StatusInRecovery {
			summary.Assets = append(summary.Assets, entry)
			continue
		}

		value := engine.AssetValue(a, ctx)
		entry.Value = &value
		summary.TotalValue += value
		summary.AssetCount++

		cat, ok := byCategory[a.Category]
		if !ok {
			cat = &model.CategorySummary{Category: a.Category}
			byCategory[a.Category] = cat
		}
		cat.Value += value
		cat.AssetCount++

		if pl, ok := engine.AssetPnL(a, ctx); ok {
			entry.ProfitLoss = &pl
			summary.TotalProfitLoss += pl
			cat.ProfitLoss += pl
		}

		va := engine.ValuedAsset{Value: value}
		if yield, ok := engine.AssetCAGR(a, ctx); ok {
			entry.YieldPercent = &yield
			va.CAGR = yield
			va.HasCAGR = true
		}
		valued = append(valued, va)

		summary.Assets = append(summary.Assets, entry)
	}

	if avg, ok := engine.WeightedAverageCAGR(valued); ok {
		summary.AverageYieldPercent = &avg
	}

	summary.CashPosition = engine.CashPositionAt(data.Transactions, now)

	// Category order follows the canonical category list.
	for _, c := range model.AssetCategories {
		if cat, ok := byCategory[c]; ok {
			summary.Categories = append(summary.Categories, *cat)
		}
	}

	return summary, nil
}
