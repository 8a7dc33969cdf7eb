// Package probe checks whether a domain answers over HTTP(S).
package probe

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const defaultTimeout = 5 * time.Second

// Prober issues HEAD requests with a hard timeout.
type Prober struct {
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProber creates a Prober. A non-positive timeout selects 5s.
func NewProber(timeout time.Duration, logger *slog.Logger) *Prober {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Prober{
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "probe"),
	}
}

// Probe reports online when a response arrives with status < 400 after
// redirects. Every error, timeout or cancellation reports offline.
func (p *Prober) Probe(ctx context.Context, name string) domain.ProbeStatus {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	target := TargetURL(name)
	if target == "" {
		return domain.ProbeOffline
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		p.log.DebugContext(ctx, "probe request invalid", slog.String("domain", name), slog.String("error", err.Error()))
		return domain.ProbeOffline
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.DebugContext(ctx, "probe failed",
			slog.String("domain", name),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return domain.ProbeOffline
	}
	resp.Body.Close()

	status := domain.ProbeOffline
	if resp.StatusCode < http.StatusBadRequest {
		status = domain.ProbeOnline
	}

	p.log.DebugContext(ctx, "probe done",
		slog.String("domain", name),
		slog.Int("status_code", resp.StatusCode),
		slog.String("result", string(status)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return status
}

// TargetURL prepends https:// when name carries no scheme.
func TargetURL(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return name
	}
	return "https://" + name
}
