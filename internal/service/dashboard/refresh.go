package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// Refresh reloads domains and todos, publishes a view with every domain in
// checking, then probes each domain and merges results as they arrive.
// Cycles are serialized. Store errors abort the cycle and leave the previous
// view in place; probe failures only ever yield offline.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	start := s.now()

	domains, err := s.domains.List(ctx)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("list domains: %w", err)
	}
	domain.SortByUrgency(domains)

	ids := make([]uuid.UUID, len(domains))
	for i, d := range domains {
		ids[i] = d.ID
	}
	todos, err := s.todos.ListByDomains(ctx, ids)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("list todos: %w", err)
	}
	todos = domain.ActiveTodos(todos, start, s.cfg.CompletedGrace)

	cycle := s.Snapshot().Cycle + 1
	s.view.Store(Snapshot{
		Cycle:      cycle,
		Domains:    newViews(domains, domain.OpenTaskDomains(todos), start),
		Todos:      todos,
		Refreshing: true,
	})

	if s.cfg.Sequential() {
		s.probeSequential(ctx, cycle, domains)
	} else {
		s.probeConcurrent(ctx, cycle, domains)
	}

	final := s.view.Update(func(snap Snapshot) Snapshot {
		if snap.Cycle == cycle {
			snap.Refreshing = false
			snap.RefreshedAt = s.now()
		}
		return snap
	})

	counts := final.Counts()
	s.log.InfoContext(ctx, "dashboard refreshed",
		slog.Uint64("cycle", cycle),
		slog.Int("domains", len(domains)),
		slog.Int("online", counts.Online),
		slog.Int("offline", counts.Offline),
		slog.Duration("took", s.now().Sub(start)),
	)

	return final, nil
}

func (s *Service) probeConcurrent(ctx context.Context, cycle uint64, domains []domain.Domain) {
	var g errgroup.Group
	if s.cfg.ProbeConcurrency > 0 {
		g.SetLimit(s.cfg.ProbeConcurrency)
	}
	for _, d := range domains {
		g.Go(func() error {
			s.probeOne(ctx, cycle, d)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) probeSequential(ctx context.Context, cycle uint64, domains []domain.Domain) {
	for i, d := range domains {
		if i > 0 && s.cfg.ProbeDelay > 0 && ctx.Err() == nil {
			select {
			case <-ctx.Done():
			case <-time.After(s.cfg.ProbeDelay):
			}
		}
		s.probeOne(ctx, cycle, d)
	}
}

func (s *Service) probeOne(ctx context.Context, cycle uint64, d domain.Domain) {
	status := s.prober.Probe(ctx, d.Name)
	if !status.IsTerminal() {
		status = domain.ProbeOffline
	}
	s.view.Update(func(snap Snapshot) Snapshot {
		return snap.withStatus(cycle, d.ID, status)
	})
}
