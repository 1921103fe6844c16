package model

import "time"

// Transaction represents a single ledger entry. Amount is signed:
// credits are positive, debits negative. A transaction may be linked
// to an asset; AffectsAssetValue false marks a cash-only entry that
// must never perturb the linked asset's projected value.
type Transaction struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	Description       string    `json:"description"`
	Category          *string   `json:"category"`
	Amount            float64   `json:"amount"`
	AssetID           *string   `json:"assetId"`
	AffectsAssetValue bool      `json:"affectsAssetValue"`
	CreatedAt         time.Time `json:"createdAt"`
}

// TransactionFilter controls transaction queries. Zero-value fields
// are ignored.
type TransactionFilter struct {
	AssetID   string
	StartDate time.Time
	EndDate   time.Time
}
