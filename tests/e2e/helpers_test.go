//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/officedash-backend/internal/app"
	"github.com/heartmarshall/officedash-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	App    *app.Application
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ratesStub serves a fixed exchange-rate document: 1 USD = 48.5 EGP.
func ratesStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"result":"success","base_code":"USD","time_last_update_unix":1767225600,"rates":{"USD":1,"EGP":48.5,"SAR":3.75}}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// llmStub rejects every key, the way the Messages API answers a bad key.
func llmStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(ratesURL, llmURL string) *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         600,
		},
		RateLimit: config.RateLimitConfig{RefreshPerMinute: 1000},
		Currency: config.CurrencyConfig{
			RatesURL:        ratesURL,
			EGPFallback:     "50",
			RefreshInterval: time.Hour,
			FetchTimeout:    5 * time.Second,
		},
		Probe: config.ProbeConfig{Timeout: 2 * time.Second},
		Dashboard: config.DashboardConfig{
			ProbeMode:        config.ProbeModeConcurrent,
			ProbeConcurrency: 4,
		},
		Reminder: config.ReminderConfig{
			Model:      "test-model",
			BaseURL:    llmURL,
			MaxTokens:  256,
			Timeout:    5 * time.Second,
			WithinDays: 30,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and stubbed collaborators.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig(ratesStub(t).URL, llmStub(t).URL)

	application := app.Build(logger, cfg, pool, nil)
	t.Cleanup(application.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Currency.Refresh(ctx)

	srv := httptest.NewServer(application.Handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		App:    application,
	}
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON sends a request, checks the status and decodes the body into a map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, wantStatus int) map[string]any {
	t.Helper()

	status, raw := ts.do(t, method, path, body)
	require.Equal(t, wantStatus, status, "body: %s", raw)

	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return out
}

// items extracts the "items" array of a list response.
func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array, got %v", body)

	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

func findByID(list []map[string]any, id string) map[string]any {
	for _, m := range list {
		if m["id"] == id {
			return m
		}
	}
	return nil
}

// uniqueName returns a domain name that no other test run uses.
func uniqueName(t *testing.T, suffix string) string {
	t.Helper()
	return "e2e-" + time.Now().Format("150405.000000000") + "-" + suffix + ".invalid"
}
