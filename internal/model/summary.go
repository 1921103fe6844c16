package model

import "time"

// AssetSummary carries one asset's computed figures for the dashboard.
// Nil figures mean the value could not be determined and serialize as
// JSON null rather than a misleading zero.
type AssetSummary struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     AssetCategory `json:"category"`
	Subcategory  *string       `json:"subcategory"`
	Status       AssetStatus   `json:"status"`
	Value        *float64      `json:"value"`
	ProfitLoss   *float64      `json:"profitLoss"`
	YieldPercent *float64      `json:"yieldPercent"`
}

// CategorySummary aggregates the assets of one category.
type CategorySummary struct {
	Category   AssetCategory `json:"category"`
	Value      float64       `json:"value"`
	ProfitLoss float64       `json:"profitLoss"`
	AssetCount int           `json:"assetCount"`
}

// PortfolioSummary is the full dashboard payload: per-asset figures,
// category aggregates, and portfolio totals, all in the display
// currency. Recovery assets are listed but carry no value and are
// excluded from every total.
type PortfolioSummary struct {
	AsOf                time.Time         `json:"asOf"`
	Currency            string            `json:"currency"`
	TotalValue          float64           `json:"totalValue"`
	TotalProfitLoss     float64           `json:"totalProfitLoss"`
	AverageYieldPercent *float64          `json:"averageYieldPercent"`
	CashPosition        float64           `json:"cashPosition"`
	AssetCount          int               `json:"assetCount"`
	Assets              []AssetSummary    `json:"assets"`
	Categories          []CategorySummary `json:"categories"`
}

// Forecast carries portfolio projections at the standard horizons plus
// an optional custom target date.
type Forecast struct {
	AsOf         time.Time  `json:"asOf"`
	CurrentValue float64    `json:"currentValue"`
	Projected3M  float64    `json:"projected3m"`
	Projected6M  float64    `json:"projected6m"`
	Projected1Y  float64    `json:"projected1y"`
	CustomDate   *time.Time `json:"customDate,omitempty"`
	CustomValue  *float64   `json:"customValue,omitempty"`
}
