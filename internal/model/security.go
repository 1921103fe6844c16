package model

import "time"

// SecurityTypeCurrency marks a synthetic FX-pair quote rather than a tradable
// instrument. The ticker of such a security is a pair symbol (e.g. "EURUSD")
// and its price is the quoted rate, not a unit price.
const SecurityTypeCurrency = "currency"

// Security is reference data for pricing market holdings.
// Prices are refreshed by the quote service; the rest of the engine
// treats securities as read-only.
type Security struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Ticker         string     `json:"ticker"`
	Currency       string     `json:"currency"`
	SecurityType   string     `json:"securityType"`
	CurrentPrice   *float64   `json:"currentPrice"`
	PriceUpdatedAt *time.Time `json:"priceUpdatedAt"`
}

// IsCurrencyPair reports whether the security quotes an FX pair.
func (s Security) IsCurrencyPair() bool {
	return s.SecurityType == SecurityTypeCurrency
}
