// Package notebook manages the common-faults list and the shared note.
package notebook

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type faultRepo interface {
	List(ctx context.Context) ([]domain.Fault, error)
	ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Fault], error)
	Create(ctx context.Context, text string) (*domain.Fault, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type settingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	SaveNote(ctx context.Context, note string) (domain.Settings, error)
}

// Service implements fault and note operations.
type Service struct {
	log      *slog.Logger
	faults   faultRepo
	settings settingsRepo
}

// NewService creates a new notebook service.
func NewService(log *slog.Logger, faults faultRepo, settings settingsRepo) *Service {
	return &Service{
		log:      log.With("service", "notebook"),
		faults:   faults,
		settings: settings,
	}
}
