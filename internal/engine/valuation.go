package engine

import (
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
)

// Context carries the reference data a valuation needs: the clock, the
// display currency, priced securities, and holdings grouped by asset.
// Build one per request from freshly loaded records; a Context is never
// reused across invocations.
type Context struct {
	Now             time.Time
	DisplayCurrency string

	securitiesByID  map[string]model.Security
	holdingsByAsset map[string][]model.MarketHolding
	securities      []model.Security
}

// NewContext builds a valuation context from loaded records.
func NewContext(now time.Time, displayCurrency string, securities []model.Security, holdings []model.MarketHolding) Context {
	byID := make(map[string]model.Security, len(securities))
	for _, s := range securities {
		byID[s.ID] = s
	}
	byAsset := make(map[string][]model.MarketHolding)
	for _, h := range holdings {
		byAsset[h.AssetID] = append(byAsset[h.AssetID], h)
	}
	return Context{
		Now:             now,
		DisplayCurrency: displayCurrency,
		securitiesByID:  byID,
		holdingsByAsset: byAsset,
		securities:      securities,
	}
}

// Security looks up a priced security by ID.
func (c Context) Security(id string) (model.Security, bool) {
	s, ok := c.securitiesByID[id]
	return s, ok
}

// HoldingsFor returns the holdings owned by the given asset.
func (c Context) HoldingsFor(assetID string) []model.MarketHolding {
	return c.holdingsByAsset[assetID]
}

// Convert converts an amount from the given currency into the context's
// display currency.
func (c Context) Convert(amount float64, from string) float64 {
	return ConvertCurrency(amount, from, c.DisplayCurrency, c.securities)
}

// HoldingValue computes a holding's value in the display currency.
//
// A holding linked to a currency-type security is an FX position: its
// quantity already is the held amount, so no price multiplication
// happens. Otherwise the linked security's price applies, falling back
// to the holding's stored static value, or zero.
func HoldingValue(h model.MarketHolding, ctx Context) float64 {
	return ctx.Convert(holdingNativeValue(h, ctx), h.Currency)
}

func holdingNativeValue(h model.MarketHolding, ctx Context) float64 {
	if h.SecurityID != nil {
		if sec, ok := ctx.Security(*h.SecurityID); ok {
			if sec.IsCurrencyPair() {
				return h.Quantity
			}
			if sec.CurrentPrice != nil {
				return *sec.CurrentPrice * h.Quantity
			}
		}
	}
	if h.CurrentValue != nil {
		return *h.CurrentValue
	}
	return 0
}

// Valuer computes an asset's current value against a context.
type Valuer interface {
	Value(ctx Context) float64
}

// simpleValuer values an asset by its stored scalar.
type simpleValuer struct {
	asset model.Asset
}

func (v simpleValuer) Value(Context) float64 {
	if v.asset.CurrentValue != nil {
		return *v.asset.CurrentValue
	}
	return 0
}

// compositeValuer derives a Markets asset's value from its holdings.
// An asset with no holdings values at zero, not unknown.
type compositeValuer struct {
	asset model.Asset
}

func (v compositeValuer) Value(ctx Context) float64 {
	var total float64
	for _, h := range ctx.HoldingsFor(v.asset.ID) {
		total += HoldingValue(h, ctx)
	}
	return total
}

// NewValuer selects the valuation strategy for an asset: composite for
// Markets, stored scalar for everything else.
func NewValuer(a model.Asset) Valuer {
	if a.Category == model.CategoryMarkets {
		return compositeValuer{asset: a}
	}
	return simpleValuer{asset: a}
}

// AssetValue computes an asset's current value in the display currency.
func AssetValue(a model.Asset, ctx Context) float64 {
	return NewValuer(a).Value(ctx)
}

// AssetPnL computes an asset's profit/loss. The second return is false
// when no P/L can be determined.
//
// Markets assets always derive P/L from the holdings total against the
// purchase price, which serves as the aggregate cost basis for the
// whole holding set. Other assets prefer the stored figure, deriving
// current minus purchase only when no stored figure exists and both
// inputs are present. No call site computes P/L any other way.
func AssetPnL(a model.Asset, ctx Context) (float64, bool) {
	if a.Category == model.CategoryMarkets {
		return AssetValue(a, ctx) - a.PurchasePrice, true
	}
	if a.ProfitLossValue != nil {
		return *a.ProfitLossValue, true
	}
	if a.CurrentValue != nil && a.PurchasePrice > 0 {
		return *a.CurrentValue - a.PurchasePrice, true
	}
	return 0, false
}
