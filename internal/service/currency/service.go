// Package currency keeps the current exchange-rate table and converts
// user-entered amounts to the base currency.
package currency

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/config"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type rateFetcher interface {
	FetchRate(ctx context.Context, code domain.Currency) (domain.RateQuote, error)
}

type rateCache interface {
	Get(ctx context.Context, code domain.Currency) (domain.RateQuote, bool, error)
	Set(ctx context.Context, q domain.RateQuote) error
}

// Source tells where the current floating rate came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Status describes the rate table currently in use.
type Status struct {
	EGPPerUSD decimal.Decimal
	Source    Source
	UpdatedAt time.Time
}

// Service owns the rate table. It is safe for concurrent use.
type Service struct {
	log      *slog.Logger
	fetcher  rateFetcher
	cache    rateCache
	fallback decimal.Decimal
	interval time.Duration
	now      func() time.Time

	mu     sync.RWMutex
	status Status
}

// NewService creates a currency service. cache may be nil. Until the first
// Refresh the fallback rate is in effect.
func NewService(log *slog.Logger, fetcher rateFetcher, cache rateCache, cfg config.CurrencyConfig) *Service {
	fallback := cfg.EGPFallbackRate()
	return &Service{
		log:      log.With("service", "currency"),
		fetcher:  fetcher,
		cache:    cache,
		fallback: fallback,
		interval: cfg.RefreshInterval,
		now:      time.Now,
		status:   Status{EGPPerUSD: fallback, Source: SourceFallback},
	}
}

// Rates returns the rate table in effect.
func (s *Service) Rates() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.RateTable{EGPPerUSD: s.status.EGPPerUSD}
}

// Status returns the current rate and its provenance.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Service) set(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}
