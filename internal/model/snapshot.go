package model

import "time"

// CashflowItem is one future transaction as serialized into a plan
// snapshot at capture time. Dates stay in "2006-01-02" form so the
// stored ledger reads back exactly as captured.
type CashflowItem struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Amount            float64 `json:"amount"`
	AssetID           *string `json:"asset_id"`
	Description       string  `json:"description"`
	Category          *string `json:"category"`
	AffectsAssetValue bool    `json:"affects_asset_value"`
}

// PlanSnapshot is an immutable point-in-time capture of the forecast:
// the three standard-horizon projections, the portfolio total, and the
// future-transaction ledger that produced them. Only Name and Notes
// may change after creation.
type PlanSnapshot struct {
	ID                   string         `json:"id"`
	SnapshotDate         time.Time      `json:"snapshotDate"`
	Name                 string         `json:"name"`
	Notes                string         `json:"notes"`
	Projected3M          *float64       `json:"projected3m"`
	Projected6M          *float64       `json:"projected6m"`
	Projected1Y          *float64       `json:"projected1y"`
	TotalValueAtSnapshot *float64       `json:"totalValueAtSnapshot"`
	CashflowSnapshot     []CashflowItem `json:"cashflowSnapshot"`
	CreatedAt            time.Time      `json:"createdAt"`
}

// PortfolioSnapshot is a periodic capture of live portfolio metrics,
// one row per calendar date. A second capture on the same date
// overwrites the first.
type PortfolioSnapshot struct {
	ID                   string             `json:"id"`
	SnapshotDate         time.Time          `json:"snapshotDate"`
	TotalValue           float64            `json:"totalValue"`
	TotalPL              float64            `json:"totalPl"`
	AverageYield         *float64           `json:"averageYield"`
	AssetCount           int                `json:"assetCount"`
	AllocationByCategory map[string]float64 `json:"allocationByCategory"`
	CreatedAt            time.Time          `json:"createdAt"`
}
