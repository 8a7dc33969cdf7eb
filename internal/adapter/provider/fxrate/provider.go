// Package fxrate fetches floating exchange rates from an open.er-api.com
// compatible endpoint.
package fxrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const defaultURL = "https://open.er-api.com/v6/latest/USD"

// ErrRateMissing is returned when the response does not carry the requested code.
var ErrRateMissing = errors.New("fxrate: rate missing")

// Provider fetches the latest rates for a fixed base currency.
type Provider struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty url selects the public USD endpoint.
func NewProvider(url string, timeout time.Duration, logger *slog.Logger) *Provider {
	if url == "" {
		url = defaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "fxrate"),
	}
}

// FetchRate returns how many units of code one base unit buys.
// No retries: callers fall back to cached or configured values.
func (p *Provider) FetchRate(ctx context.Context, currency domain.Currency) (domain.RateQuote, error) {
	code := strings.ToUpper(strings.TrimSpace(string(currency)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return domain.RateQuote{}, fmt.Errorf("fxrate: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "fxrate request failed", slog.String("code", code), slog.String("error", err.Error()))
		return domain.RateQuote{}, fmt.Errorf("fxrate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RateQuote{}, fmt.Errorf("fxrate: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.RateQuote{}, fmt.Errorf("fxrate: read body: %w", err)
	}

	var latest apiLatest
	if err := json.Unmarshal(body, &latest); err != nil {
		return domain.RateQuote{}, fmt.Errorf("fxrate: decode json: %w", err)
	}

	if latest.Result != "" && latest.Result != "success" {
		return domain.RateQuote{}, fmt.Errorf("fxrate: api error %q", latest.ErrorType)
	}

	rate, ok := latest.Rates[code]
	if !ok || !rate.IsPositive() {
		return domain.RateQuote{}, fmt.Errorf("%w: %s", ErrRateMissing, code)
	}

	if latest.BaseCode != "" && latest.BaseCode != string(domain.BaseCurrency) {
		return domain.RateQuote{}, fmt.Errorf("fxrate: base %s, want %s", latest.BaseCode, domain.BaseCurrency)
	}

	q := domain.RateQuote{Code: domain.Currency(code), Rate: rate, FetchedAt: time.Now().UTC()}
	if latest.TimeLastUpdateUnix > 0 {
		q.FetchedAt = time.Unix(latest.TimeLastUpdateUnix, 0).UTC()
	}

	p.log.DebugContext(ctx, "fxrate response",
		slog.String("code", code),
		slog.String("rate", rate.String()),
		slog.Time("fetched_at", q.FetchedAt),
	)

	return q, nil
}
