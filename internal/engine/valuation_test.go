package engine_test

import (
	"testing"
	"time"

	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
)

func strPtr(s string) *string { return &s }

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// TestHoldingValue covers the three valuation paths of a market holding
// plus the FX conversion into the display currency.
//
// WHY: currency-type positions are amounts, not quantities to price;
// confusing the two multiplies cash balances by an FX rate.
func TestHoldingValue(t *testing.T) {
	securities := []model.Security{
		{ID: "sec-aapl", Ticker: "AAPL", SecurityType: "stock", Currency: "USD", CurrentPrice: f64(50)},
		{ID: "sec-usd", Ticker: "USDPOS", SecurityType: model.SecurityTypeCurrency, Currency: "USD"},
		{ID: "sec-unpriced", Ticker: "XYZ", SecurityType: "stock", Currency: "EUR"},
		fxQuote("EURUSD", 1.10),
	}

	t.Run("price times quantity for priced securities", func(t *testing.T) {
		h := model.MarketHolding{AssetID: "a1", SecurityID: strPtr("sec-aapl"), Quantity: 10, Currency: "EUR"}
		ctx := engine.NewContext(testNow, "EUR", securities, []model.MarketHolding{h})
		if got := engine.HoldingValue(h, ctx); !almostEqual(got, 500) {
			t.Errorf("expected 500, got %v", got)
		}
	})

	t.Run("currency position values at its quantity", func(t *testing.T) {
		h := model.MarketHolding{AssetID: "a1", SecurityID: strPtr("sec-usd"), Quantity: 2500, Currency: "EUR"}
		ctx := engine.NewContext(testNow, "EUR", securities, []model.MarketHolding{h})
		if got := engine.HoldingValue(h, ctx); !almostEqual(got, 2500) {
			t.Errorf("expected 2500 (quantity, not quantity*price), got %v", got)
		}
	})

	t.Run("falls back to stored static value", func(t *testing.T) {
		h := model.MarketHolding{AssetID: "a1", SecurityID: strPtr("sec-unpriced"), Quantity: 3, Currency: "EUR", CurrentValue: f64(123.45)}
		ctx := engine.NewContext(testNow, "EUR", securities, []model.MarketHolding{h})
		if got := engine.HoldingValue(h, ctx); !almostEqual(got, 123.45) {
			t.Errorf("expected 123.45, got %v", got)
		}
	})

	t.Run("zero when nothing is known", func(t *testing.T) {
		h := model.MarketHolding{AssetID: "a1", Currency: "EUR"}
		ctx := engine.NewContext(testNow, "EUR", securities, []model.MarketHolding{h})
		if got := engine.HoldingValue(h, ctx); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("converts native currency into display currency", func(t *testing.T) {
		// 10 * 50 = 500 USD; EURUSD quotes 1.10 USD per EUR => ~454.55 EUR.
		h := model.MarketHolding{AssetID: "a1", SecurityID: strPtr("sec-aapl"), Quantity: 10, Currency: "USD"}
		ctx := engine.NewContext(testNow, "EUR", securities, []model.MarketHolding{h})
		if got := engine.HoldingValue(h, ctx); !almostEqual(got, 500/1.10) {
			t.Errorf("expected %v, got %v", 500/1.10, got)
		}
	})
}

// TestAssetValue verifies the simple/composite dispatch.
//
// WHY: Markets assets must ignore any stored scalar and derive their
// value from holdings; every other category must do the opposite.
func TestAssetValue(t *testing.T) {
	securities := []model.Security{
		{ID: "sec-aapl", Ticker: "AAPL", SecurityType: "stock", Currency: "USD", CurrentPrice: f64(50)},
	}

	t.Run("non-Markets asset uses stored value", func(t *testing.T) {
		a := model.Asset{ID: "a1", Category: model.CategoryRealEstate, CurrentValue: f64(350000)}
		ctx := engine.NewContext(testNow, "EUR", securities, nil)
		if got := engine.AssetValue(a, ctx); got != 350000 {
			t.Errorf("expected 350000, got %v", got)
		}
	})

	t.Run("non-Markets asset without value is zero", func(t *testing.T) {
		a := model.Asset{ID: "a1", Category: model.CategoryArt}
		ctx := engine.NewContext(testNow, "EUR", nil, nil)
		if got := engine.AssetValue(a, ctx); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("Markets asset sums its holdings", func(t *testing.T) {
		holdings := []model.MarketHolding{
			{ID: "h1", AssetID: "a1", SecurityID: strPtr("sec-aapl"), Quantity: 10, Currency: "EUR"},
			{ID: "h2", AssetID: "a1", Currency: "EUR", CurrentValue: f64(200)},
			{ID: "h3", AssetID: "other", Currency: "EUR", CurrentValue: f64(999)},
		}
		a := model.Asset{ID: "a1", Category: model.CategoryMarkets, CurrentValue: f64(1)}
		ctx := engine.NewContext(testNow, "EUR", securities, holdings)
		if got := engine.AssetValue(a, ctx); !almostEqual(got, 700) {
			t.Errorf("expected 700 (own holdings only, stored scalar ignored), got %v", got)
		}
	})

	t.Run("Markets asset with zero holdings values at zero", func(t *testing.T) {
		a := model.Asset{ID: "a1", Category: model.CategoryMarkets}
		ctx := engine.NewContext(testNow, "EUR", nil, nil)
		if got := engine.AssetValue(a, ctx); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

// TestAssetPnL pins the single P/L resolution rule.
//
// WHY: the stored figure and the derived figure disagree in real data;
// exactly one source of truth applies per category and they are never
// averaged.
func TestAssetPnL(t *testing.T) {
	ctx := engine.NewContext(testNow, "EUR", nil, nil)

	t.Run("Markets always derives value minus cost basis", func(t *testing.T) {
		holdings := []model.MarketHolding{{ID: "h1", AssetID: "a1", Currency: "EUR", CurrentValue: f64(1200)}}
		a := model.Asset{ID: "a1", Category: model.CategoryMarkets, PurchasePrice: 1000, ProfitLossValue: f64(9999)}
		mctx := engine.NewContext(testNow, "EUR", nil, holdings)
		got, ok := engine.AssetPnL(a, mctx)
		if !ok || !almostEqual(got, 200) {
			t.Errorf("expected 200 ignoring stored figure, got %v (ok=%v)", got, ok)
		}
	})

	t.Run("stored figure wins for other categories", func(t *testing.T) {
		a := model.Asset{ID: "a1", Category: model.CategoryVehicles, CurrentValue: f64(9000), PurchasePrice: 20000, ProfitLossValue: f64(-5000)}
		got, ok := engine.AssetPnL(a, ctx)
		if !ok || got != -5000 {
			t.Errorf("expected stored -5000, got %v (ok=%v)", got, ok)
		}
	})

	t.Run("derives when no stored figure exists", func(t *testing.T) {
		a := model.Asset{ID: "a1", Category: model.CategoryWatches, CurrentValue: f64(12000), PurchasePrice: 10000}
		got, ok := engine.AssetPnL(a, ctx)
		if !ok || got != 2000 {
			t.Errorf("expected derived 2000, got %v (ok=%v)", got, ok)
		}
	})

	t.Run("undefined without enough inputs", func(t *testing.T) {
		a := model.Asset{ID: "a1", Category: model.CategoryOther, CurrentValue: f64(500)}
		if _, ok := engine.AssetPnL(a, ctx); ok {
			t.Error("expected undefined P/L for zero purchase price and no stored figure")
		}
	})
}
