// Package dashboard aggregates domains, their probe status and their todos
// into one immutable view that is rebuilt on every refresh cycle.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/config"
	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
	"github.com/heartmarshall/officedash-backend/pkg/optimistic"
)

type domainRepo interface {
	List(ctx context.Context) ([]domain.Domain, error)
}

type todoRepo interface {
	ListByDomains(ctx context.Context, domainIDs []uuid.UUID) ([]domain.Todo, error)
}

type todoWriter interface {
	CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id uuid.UUID) error
}

type prober interface {
	Probe(ctx context.Context, name string) domain.ProbeStatus
}

// Service owns the current dashboard view.
type Service struct {
	log     *slog.Logger
	domains domainRepo
	todos   todoRepo
	writer  todoWriter
	prober  prober
	cfg     config.DashboardConfig
	now     func() time.Time

	// cycleMu serializes refresh cycles.
	cycleMu sync.Mutex
	view    *optimistic.Value[Snapshot]
}

// NewService creates a new dashboard service with an empty view.
func NewService(
	log *slog.Logger,
	domains domainRepo,
	todos todoRepo,
	writer todoWriter,
	prober prober,
	cfg config.DashboardConfig,
) *Service {
	return &Service{
		log:     log.With("service", "dashboard"),
		domains: domains,
		todos:   todos,
		writer:  writer,
		prober:  prober,
		cfg:     cfg,
		now:     time.Now,
		view:    optimistic.New(Snapshot{Domains: []DomainView{}, Todos: []domain.Todo{}}),
	}
}

// Snapshot returns the current view. It must be treated as read-only.
func (s *Service) Snapshot() Snapshot {
	return s.view.Load()
}
