package model

import "time"

// MarketHolding represents a single position inside a Markets-category asset.
// A holding is valued through its linked security when one exists; the stored
// CurrentValue is only a static fallback for unpriced positions.
type MarketHolding struct {
	ID           string    `json:"id"`
	AssetID      string    `json:"assetId"`
	Name         string    `json:"name"`
	SecurityID   *string   `json:"securityId"`
	Quantity     float64   `json:"quantity"`
	Currency     string    `json:"currency"`
	CurrentValue *float64  `json:"currentValue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
