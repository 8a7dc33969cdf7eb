// Command statuscheck runs a single dashboard refresh cycle and logs the
// probe result for every domain. It is intended to be invoked by an external
// cron job.
//
// Exit codes: 0 = every active domain online, 1 = error, 2 = some active domain offline.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres/domains"
	todorepo "github.com/heartmarshall/officedash-backend/internal/adapter/postgres/todo"
	"github.com/heartmarshall/officedash-backend/internal/adapter/provider/probe"
	"github.com/heartmarshall/officedash-backend/internal/app"
	"github.com/heartmarshall/officedash-backend/internal/config"
	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/dashboard"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	todoRepo := todorepo.New(pool)
	svc := dashboard.NewService(logger,
		domains.New(pool),
		todoRepo,
		todo.NewService(logger, todoRepo, cfg.Dashboard.CompletedGrace),
		probe.NewProber(cfg.Probe.Timeout, logger),
		cfg.Dashboard,
	)

	snap, err := svc.Refresh(ctx)
	if err != nil {
		logger.Error("refresh failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	down := 0
	for _, d := range snap.Domains {
		logger.Info("domain status",
			slog.String("domain", d.Domain.Name),
			slog.String("state", d.Domain.State.String()),
			slog.String("status", d.Status.String()),
			slog.Int("days_left", d.DaysLeft),
		)
		if d.Domain.State == domain.DomainStateActive && d.Status == domain.ProbeOffline {
			down++
		}
	}

	counts := snap.Counts()
	logger.Info("status check completed",
		slog.Int("online", counts.Online),
		slog.Int("offline", counts.Offline),
		slog.Int("active_offline", down),
	)

	if down > 0 {
		pool.Close()
		os.Exit(2)
	}
}
