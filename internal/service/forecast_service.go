package service

import (
	"time"

	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
)

// ForecastService projects the portfolio forward at the standard
// horizons of three months, six months, and one year, plus any custom
// target date a caller asks for.
type ForecastService struct {
	loader          *DataLoaderService
	displayCurrency string
	now             func() time.Time
}

// NewForecastService creates a new ForecastService.
func NewForecastService(loader *DataLoaderService, displayCurrency string) *ForecastService {
	return &ForecastService{
		loader:          loader,
		displayCurrency: displayCurrency,
		now:             time.Now,
	}
}

// GetForecast projects the portfolio to the standard horizons. When
// customDate is non-nil its projection is included as well; a past
// custom date discounts instead of compounding.
func (s *ForecastService) GetForecast(customDate *time.Time) (model.Forecast, error) {
	data, err := s.loader.Load(false)
	if err != nil {
		return model.Forecast{}, err
	}

	now := s.now().UTC()
	ctx := engine.NewContext(now, s.displayCurrency, data.Securities, data.Holdings)

	forecast := model.Forecast{
		AsOf:         now,
		CurrentValue: engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now),
		Projected3M:  engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now.AddDate(0, 3, 0)),
		Projected6M:  engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now.AddDate(0, 6, 0)),
		Projected1Y:  engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now.AddDate(1, 0, 0)),
	}

	if customDate != nil {
		value := engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, *customDate)
		forecast.CustomDate = customDate
		forecast.CustomValue = &value
	}

	return forecast, nil
}

// PlanFigures computes the figures a plan snapshot captures, along
// with the future transactions that produced them.
func (s *ForecastService) PlanFigures() (engine.PlanFigures, []model.Transaction, error) {
	data, err := s.loader.Load(false)
	if err != nil {
		return engine.PlanFigures{}, nil, err
	}

	now := s.now().UTC()
	ctx := engine.NewContext(now, s.displayCurrency, data.Securities, data.Holdings)

	figures := engine.PlanFigures{
		Projected3M: engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now.AddDate(0, 3, 0)),
		Projected6M: engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now.AddDate(0, 6, 0)),
		Projected1Y: engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now.AddDate(1, 0, 0)),
		TotalValue:  engine.ProjectPortfolioValue(data.Assets, ctx, data.Transactions, now),
	}

	future := make([]model.Transaction, 0)
	for _, tx := range data.Transactions {
		if tx.Date.After(now) {
			future = append(future, tx)
		}
	}

	return figures, future, nil
}
