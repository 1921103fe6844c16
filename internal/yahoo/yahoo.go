// Package yahoo fetches security prices from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=5d"

// QuoteClient fetches the latest available closing price for a symbol.
// Implemented by FinanceClient; test doubles substitute it in services.
type QuoteClient interface {
	LatestQuote(ctx context.Context, symbol string) (Quote, error)
}

// FinanceClient provides methods for fetching financial data from the
// Yahoo Finance API.
type FinanceClient struct {
	httpClient *http.Client
}

// NewFinanceClient creates a new Yahoo Finance client with a default
// request timeout.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CurrencyPairSymbol maps a stored FX pair ticker to the form Yahoo
// expects, e.g. "EURUSD" becomes "EURUSD=X".
func CurrencyPairSymbol(ticker string) string {
	return ticker + "=X"
}

// LatestQuote fetches the last five trading days for a symbol and
// returns the most recent non-zero daily close. Five days covers
// weekends and single-day market holidays.
func (c *FinanceClient) LatestQuote(ctx context.Context, symbol string) (Quote, error) {
	response, err := c.queryChart(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	if len(response.Chart.Result) == 0 {
		return Quote{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	result := response.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return Quote{}, fmt.Errorf("no price data returned for symbol %s", symbol)
	}
	if len(result.Indicators.Quote) == 0 || len(result.Indicators.Quote[0].Close) != len(result.Timestamp) {
		return Quote{}, fmt.Errorf("malformed price data for symbol %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] > 0 {
			return Quote{
				Symbol:   result.Meta.Symbol,
				Currency: result.Meta.Currency,
				Price:    closes[i],
				AsOf:     time.Unix(result.Timestamp[i], 0).UTC(),
			}, nil
		}
	}

	return Quote{}, fmt.Errorf("no usable close price for symbol %s", symbol)
}

func (c *FinanceClient) queryChart(ctx context.Context, symbol string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(chartURL, symbol), nil)
	if err != nil {
		return Response{}, err
	}

	// Yahoo rejects requests without a browser-like User-Agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
