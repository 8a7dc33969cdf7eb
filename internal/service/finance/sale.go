package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// ListSales returns every sale, newest first.
func (s *Service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	list, err := s.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}

// ListSalesPage returns one page of sales, newest first.
func (s *Service) ListSalesPage(ctx context.Context, input PageInput) (domain.Page[domain.Sale], error) {
	page, err := s.sales.ListPage(ctx, domain.ClampLimit(input.Limit), input.Cursor)
	if err != nil {
		return domain.Page[domain.Sale]{}, fmt.Errorf("list sales page: %w", err)
	}
	return page, nil
}

// SalesTotals sums all sales.
func (s *Service) SalesTotals(ctx context.Context) (domain.SalesTotals, error) {
	list, err := s.sales.List(ctx)
	if err != nil {
		return domain.SalesTotals{}, fmt.Errorf("list sales: %w", err)
	}
	return domain.SumSales(list), nil
}

// CreateSale converts both amounts to the base currency and derives net profit.
func (s *Service) CreateSale(ctx context.Context, input CreateSaleInput) (*domain.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sale := s.toBase(input.SaleAmount, input.Currency)
	expense := s.toBase(input.ExpenseAmount, input.Currency)

	created, err := s.sales.Create(ctx, &domain.Sale{
		SaleAmount:         sale,
		ExpenseAmount:      expense,
		ExpenseDescription: strings.TrimSpace(input.ExpenseDescription),
		NetProfit:          domain.NetProfit(sale, expense),
	})
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	s.log.InfoContext(ctx, "sale created",
		slog.String("sale_id", created.ID.String()),
		slog.String("net_profit", created.NetProfit.String()),
	)

	return created, nil
}

// DeleteSale removes a sale.
func (s *Service) DeleteSale(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.sales.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}

	s.log.InfoContext(ctx, "sale deleted", slog.String("sale_id", id.String()))
	return nil
}
