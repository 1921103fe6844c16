package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API. Only the fields the application reads are mapped:
// symbol metadata, the timestamp array, and the daily close prices.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency     string `json:"currency"`
				Symbol       string `json:"symbol"`
				ExchangeName string `json:"exchangeName"`
				Shortname    string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// Quote is the application's internal representation of the latest
// available price for a symbol.
type Quote struct {
	Symbol   string
	Currency string
	Price    float64
	AsOf     time.Time
}
