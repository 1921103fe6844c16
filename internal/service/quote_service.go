package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/patrimonio/wealth-backend/internal/model"
	"github.com/patrimonio/wealth-backend/internal/repository"
	"github.com/patrimonio/wealth-backend/internal/yahoo"
)

// maxConcurrentQuoteFetches bounds the parallel requests against the
// quote provider.
const maxConcurrentQuoteFetches = 4

// QuoteService refreshes stored security prices from the quote
// provider. A failed symbol is logged and skipped; one unreachable
// ticker never blocks the rest of the refresh.
type QuoteService struct {
	securityRepo *repository.SecurityRepository
	client       yahoo.QuoteClient
	log          zerolog.Logger
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(securityRepo *repository.SecurityRepository, client yahoo.QuoteClient, log zerolog.Logger) *QuoteService {
	return &QuoteService{
		securityRepo: securityRepo,
		client:       client,
		log:          log,
	}
}

// RefreshResult counts the outcome of one refresh pass.
type RefreshResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// RefreshQuotes fetches the latest price for every stored security and
// updates the database. Fetches run concurrently with a bounded worker
// count; only context cancellation aborts the pass.
func (s *QuoteService) RefreshQuotes(ctx context.Context) (RefreshResult, error) {
	securities, err := s.securityRepo.GetSecurities()
	if err != nil {
		return RefreshResult{}, err
	}

	var mu sync.Mutex
	var result RefreshResult

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuoteFetches)

	for _, sec := range securities {
		sec := sec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			symbol := sec.Ticker
			if sec.IsCurrencyPair() {
				symbol = yahoo.CurrencyPairSymbol(sec.Ticker)
			}

			quote, err := s.client.LatestQuote(ctx, symbol)
			if err != nil {
				s.log.Warn().Err(err).Str("ticker", sec.Ticker).Msg("quote fetch failed")
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return nil
			}

			if err := s.securityRepo.UpdatePrice(sec.Ticker, quote.Price, quote.AsOf); err != nil {
				s.log.Error().Err(err).Str("ticker", sec.Ticker).Msg("price update failed")
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return nil
			}

			mu.Lock()
			result.Updated++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	s.log.Info().Int("updated", result.Updated).Int("failed", result.Failed).Msg("quote refresh complete")
	return result, nil
}

// GetSecurities lists all stored securities.
func (s *QuoteService) GetSecurities() ([]model.Security, error) {
	return s.securityRepo.GetSecurities()
}
