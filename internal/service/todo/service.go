// Package todo manages per-domain and general tasks.
package todo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type todoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error)
	List(ctx context.Context, f domain.TodoFilter) ([]domain.Todo, error)
	ListPage(ctx context.Context, f domain.TodoFilter, limit int, cursor string) (domain.Page[domain.Todo], error)
	Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements todo operations.
type Service struct {
	log   *slog.Logger
	todos todoRepo
	grace time.Duration
	now   func() time.Time
}

// NewService creates a todo service. grace is how long a completed todo
// stays in active listings.
func NewService(log *slog.Logger, todos todoRepo, grace time.Duration) *Service {
	return &Service{
		log:   log.With("service", "todo"),
		todos: todos,
		grace: grace,
		now:   time.Now,
	}
}
