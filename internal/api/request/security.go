package request

type CreateSecurityRequest struct {
	Name         string   `json:"name"`
	Ticker       string   `json:"ticker"`
	Currency     string   `json:"currency,omitempty"`
	SecurityType string   `json:"securityType,omitempty"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
}
