package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrimonio/wealth-backend/internal/yahoo"
)

// MockQuoteClient is a mock implementation of yahoo.QuoteClient for
// testing. It returns canned quotes keyed by symbol instead of making
// API calls.
type MockQuoteClient struct {
	mu sync.Mutex

	// Quotes maps symbol to the quote to return.
	Quotes map[string]yahoo.Quote
	// Errors maps symbol to an error to return instead of a quote.
	Errors map[string]error
	// Requested records every symbol queried, in call order.
	Requested []string
}

// NewMockQuoteClient creates an empty mock quote client.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		Quotes: make(map[string]yahoo.Quote),
		Errors: make(map[string]error),
	}
}

// WithQuote registers a canned price for a symbol.
func (m *MockQuoteClient) WithQuote(symbol string, price float64) *MockQuoteClient {
	m.Quotes[symbol] = yahoo.Quote{
		Symbol: symbol,
		Price:  price,
		AsOf:   time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
	}
	return m
}

// WithError registers an error for a symbol.
func (m *MockQuoteClient) WithError(symbol string, err error) *MockQuoteClient {
	m.Errors[symbol] = err
	return m
}

// LatestQuote implements yahoo.QuoteClient.
func (m *MockQuoteClient) LatestQuote(_ context.Context, symbol string) (yahoo.Quote, error) {
	m.mu.Lock()
	m.Requested = append(m.Requested, symbol)
	err := m.Errors[symbol]
	quote, ok := m.Quotes[symbol]
	m.mu.Unlock()

	if err != nil {
		return yahoo.Quote{}, err
	}
	if !ok {
		return yahoo.Quote{}, errors.New("no quote configured for " + symbol)
	}
	return quote, nil
}
