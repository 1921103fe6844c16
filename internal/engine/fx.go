// Package engine implements the portfolio valuation and forecasting
// calculations. Every function is a pure transform over already-fetched
// records: the reference clock and all reference data are passed in
// explicitly, nothing is cached between calls.
package engine

import "github.com/patrimonio/wealth-backend/internal/model"

// ConvertCurrency converts amount from one currency to another using the
// FX-pair quotes among the given securities.
//
// The pair symbol is built as to+from, quoting how many units of the
// source currency one unit of the target currency buys (an "EURUSD"
// quote of 1.10 means 1.10 USD per EUR), so the conversion divides by
// the rate. This is the only place in the codebase allowed to build a
// pair symbol.
//
// A missing or zero quote degrades to returning the amount unconverted;
// callers treat the result as an approximation, never as an error.
func ConvertCurrency(amount float64, from, to string, quotes []model.Security) float64 {
	if from == to {
		return amount
	}

	symbol := to + from
	for _, q := range quotes {
		if !q.IsCurrencyPair() || q.Ticker != symbol {
			continue
		}
		if q.CurrentPrice == nil || *q.CurrentPrice == 0 {
			continue
		}
		return amount / *q.CurrentPrice
	}

	return amount
}
