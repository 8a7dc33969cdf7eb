package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/officedash-backend/internal/adapter/cache"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/domains"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/fault"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/sale"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/settings"
	todorepo "github.com/heartmarshall/officedash-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/transaction"
	"github.com/heartmarshall/officedash-backend/internal/adapter/provider/fxrate"
	"github.com/heartmarshall/officedash-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/officedash-backend/internal/adapter/provider/probe"
	"github.com/heartmarshall/officedash-backend/internal/config"
	"github.com/heartmarshall/officedash-backend/internal/service/currency"
	"github.com/heartmarshall/officedash-backend/internal/service/dashboard"
	"github.com/heartmarshall/officedash-backend/internal/service/finance"
	"github.com/heartmarshall/officedash-backend/internal/service/notebook"
	"github.com/heartmarshall/officedash-backend/internal/service/portfolio"
	"github.com/heartmarshall/officedash-backend/internal/service/reminder"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
	"github.com/heartmarshall/officedash-backend/internal/transport/middleware"
	"github.com/heartmarshall/officedash-backend/internal/transport/rest"
)

// Application is the wired object graph behind the HTTP API.
type Application struct {
	Handler   http.Handler
	Currency  *currency.Service
	Dashboard *dashboard.Service

	limiter *middleware.RateLimiter
}

// Build wires repositories, adapters, services and handlers. redisClient may
// be nil, in which case the exchange rate is not cached.
func Build(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) *Application {
	// Currency first: portfolio and finance convert through it.
	currencySvc := newCurrencyService(logger, cfg, redisClient)

	domainRepo := domains.New(pool)
	todoRepo := todorepo.New(pool)
	settingsRepo := settings.New(pool)

	todoSvc := todo.NewService(logger, todoRepo, cfg.Dashboard.CompletedGrace)
	portfolioSvc := portfolio.NewService(logger, domainRepo, todoRepo, postgres.NewTxManager(pool), currencySvc)
	notebookSvc := notebook.NewService(logger, fault.New(pool), settingsRepo)
	financeSvc := finance.NewService(logger, transaction.New(pool), sale.New(pool), project.New(pool), currencySvc)
	reminderSvc := reminder.NewService(logger, domainRepo, settingsRepo,
		llm.NewClient(cfg.Reminder.BaseURL, cfg.Reminder.Model, cfg.Reminder.MaxTokens, cfg.Reminder.Timeout, logger),
		cfg.Reminder,
	)
	dashboardSvc := dashboard.NewService(logger, domainRepo, todoRepo, todoSvc,
		probe.NewProber(cfg.Probe.Timeout, logger),
		cfg.Dashboard,
	)

	limiter := middleware.NewRateLimiter(time.Minute)

	global := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)

	handler := rest.NewRouter(rest.Handlers{
		Health:    newHealthHandler(pool, redisClient),
		Domains:   rest.NewDomainHandler(portfolioSvc, logger),
		Todos:     rest.NewTodoHandler(todoSvc, logger),
		Notebook:  rest.NewNotebookHandler(notebookSvc, logger),
		Finance:   rest.NewFinanceHandler(financeSvc, logger),
		Currency:  rest.NewCurrencyHandler(currencySvc, logger),
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
		Reminders: rest.NewReminderHandler(reminderSvc, logger),
	}, limiter.Limit(cfg.RateLimit.RefreshPerMinute), global)

	return &Application{
		Handler:   handler,
		Currency:  currencySvc,
		Dashboard: dashboardSvc,
		limiter:   limiter,
	}
}

// Close stops background helpers owned by the application.
func (a *Application) Close() {
	a.limiter.Stop()
}

// newCurrencyService keeps a missing cache a nil interface rather than a
// typed nil pointer.
func newCurrencyService(logger *slog.Logger, cfg *config.Config, redisClient *redis.Client) *currency.Service {
	fetcher := fxrate.NewProvider(cfg.Currency.RatesURL, cfg.Currency.FetchTimeout, logger)
	if redisClient == nil {
		return currency.NewService(logger, fetcher, nil, cfg.Currency)
	}
	return currency.NewService(logger, fetcher, cache.NewRateCache(redisClient, cfg.Currency.CacheTTL), cfg.Currency)
}

func newHealthHandler(pool *pgxpool.Pool, redisClient *redis.Client) *rest.HealthHandler {
	db := rest.PingFunc(pool.Ping)
	if redisClient == nil {
		return rest.NewHealthHandler(db, nil, Version)
	}
	return rest.NewHealthHandler(db, rest.PingFunc(func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}), Version)
}
