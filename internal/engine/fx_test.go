package engine_test

import (
	"math"
	"testing"

	"github.com/patrimonio/wealth-backend/internal/engine"
	"github.com/patrimonio/wealth-backend/internal/model"
)

func f64(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func fxQuote(symbol string, price float64) model.Security {
	return model.Security{
		ID:           "sec-" + symbol,
		Name:         symbol,
		Ticker:       symbol,
		SecurityType: model.SecurityTypeCurrency,
		CurrentPrice: f64(price),
	}
}

// TestConvertCurrency verifies the pair-symbol direction convention.
//
// WHY: the pair is built as target+source and quotes source units per
// one target unit, so the conversion must divide. Inverting this
// silently corrupts every multi-currency valuation.
func TestConvertCurrency(t *testing.T) {
	quotes := []model.Security{
		fxQuote("EURUSD", 1.10),
		fxQuote("EURGBP", 0.85),
	}

	t.Run("identity when currencies match", func(t *testing.T) {
		got := engine.ConvertCurrency(500, "EUR", "EUR", nil)
		if got != 500 {
			t.Errorf("expected 500, got %v", got)
		}
	})

	t.Run("divides by the quoted rate", func(t *testing.T) {
		// 110 USD at 1.10 USD-per-EUR is 100 EUR.
		got := engine.ConvertCurrency(110, "USD", "EUR", quotes)
		if !almostEqual(got, 100) {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("missing quote returns amount unconverted", func(t *testing.T) {
		got := engine.ConvertCurrency(250, "JPY", "EUR", quotes)
		if got != 250 {
			t.Errorf("expected fail-soft passthrough 250, got %v", got)
		}
	})

	t.Run("zero-priced quote is ignored", func(t *testing.T) {
		broken := []model.Security{fxQuote("EURUSD", 0)}
		got := engine.ConvertCurrency(110, "USD", "EUR", broken)
		if got != 110 {
			t.Errorf("expected passthrough 110, got %v", got)
		}
	})

	t.Run("non-currency securities never match", func(t *testing.T) {
		stock := model.Security{Ticker: "EURUSD", SecurityType: "stock", CurrentPrice: f64(2)}
		got := engine.ConvertCurrency(100, "USD", "EUR", []model.Security{stock})
		if got != 100 {
			t.Errorf("expected passthrough 100, got %v", got)
		}
	})
}
