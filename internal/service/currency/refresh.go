package currency

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// Refresh fetches the floating rate. When the fetch fails it falls back to the
// last cached quote, then to the configured constant. It never fails.
func (s *Service) Refresh(ctx context.Context) Status {
	quote, err := s.fetcher.FetchRate(ctx, domain.CurrencyEGP)
	if err == nil {
		st := Status{EGPPerUSD: quote.Rate, Source: SourceLive, UpdatedAt: quote.FetchedAt}
		s.set(st)
		s.store(ctx, quote)
		s.log.InfoContext(ctx, "exchange rate refreshed",
			slog.String("rate", quote.Rate.String()),
		)
		return st
	}

	s.log.WarnContext(ctx, "exchange rate fetch failed", slog.String("error", err.Error()))

	if cached, ok := s.cached(ctx); ok {
		st := Status{EGPPerUSD: cached.Rate, Source: SourceCache, UpdatedAt: cached.FetchedAt}
		s.set(st)
		return st
	}

	st := Status{EGPPerUSD: s.fallback, Source: SourceFallback, UpdatedAt: s.now()}
	s.set(st)
	s.log.WarnContext(ctx, "using fallback exchange rate", slog.String("rate", s.fallback.String()))
	return st
}

func (s *Service) store(ctx context.Context, q domain.RateQuote) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, q); err != nil {
		s.log.WarnContext(ctx, "cache exchange rate", slog.String("error", err.Error()))
	}
}

func (s *Service) cached(ctx context.Context) (domain.RateQuote, bool) {
	if s.cache == nil {
		return domain.RateQuote{}, false
	}
	q, ok, err := s.cache.Get(ctx, domain.CurrencyEGP)
	if err != nil {
		s.log.WarnContext(ctx, "read cached exchange rate", slog.String("error", err.Error()))
		return domain.RateQuote{}, false
	}
	if !ok || !q.Rate.IsPositive() {
		return domain.RateQuote{}, false
	}
	return q, true
}

// Run refreshes immediately and then on every interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	s.Refresh(ctx)
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
