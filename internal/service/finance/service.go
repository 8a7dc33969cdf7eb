// Package finance records transactions, sales and income projects and
// derives balances and the regional revenue split.
package finance

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type transactionRepo interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Transaction], error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleRepo interface {
	List(ctx context.Context) ([]domain.Sale, error)
	ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Sale], error)
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo interface {
	List(ctx context.Context, region domain.ProjectTag) ([]domain.IncomeProject, error)
	ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.IncomeProject], error)
	Create(ctx context.Context, p *domain.IncomeProject) (*domain.IncomeProject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type rateSource interface {
	Rates() domain.RateTable
}

// Service implements finance operations.
type Service struct {
	log          *slog.Logger
	transactions transactionRepo
	sales        saleRepo
	projects     projectRepo
	rates        rateSource
}

// NewService creates a new finance service.
func NewService(
	log *slog.Logger,
	transactions transactionRepo,
	sales saleRepo,
	projects projectRepo,
	rates rateSource,
) *Service {
	return &Service{
		log:          log.With("service", "finance"),
		transactions: transactions,
		sales:        sales,
		projects:     projects,
		rates:        rates,
	}
}

// toBase converts a user-entered magnitude at the current rates.
func (s *Service) toBase(amount, currency string) decimal.Decimal {
	return domain.ToBase(domain.ParseAmount(amount).Abs(), domain.ParseCurrency(currency), s.rates.Rates())
}
