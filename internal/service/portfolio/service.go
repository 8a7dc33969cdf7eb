// Package portfolio manages the domains the office renews and bills for.
package portfolio

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type domainRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Domain, error)
	List(ctx context.Context) ([]domain.Domain, error)
	ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Domain], error)
	Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error)
	Update(ctx context.Context, id uuid.UUID, p domain.DomainUpdateParams) (*domain.Domain, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type todoRepo interface {
	DeleteByDomain(ctx context.Context, domainID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type rateSource interface {
	Rates() domain.RateTable
}

// Service implements domain portfolio operations.
type Service struct {
	log     *slog.Logger
	domains domainRepo
	todos   todoRepo
	tx      txManager
	rates   rateSource
	now     func() time.Time
}

// NewService creates a new portfolio service.
func NewService(
	log *slog.Logger,
	domains domainRepo,
	todos todoRepo,
	tx txManager,
	rates rateSource,
) *Service {
	return &Service{
		log:     log.With("service", "portfolio"),
		domains: domains,
		todos:   todos,
		tx:      tx,
		rates:   rates,
		now:     time.Now,
	}
}
