package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// ListTransactions returns every transaction, newest first.
func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	list, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}

// ListTransactionsPage returns one page of transactions, newest first.
func (s *Service) ListTransactionsPage(ctx context.Context, input PageInput) (domain.Page[domain.Transaction], error) {
	page, err := s.transactions.ListPage(ctx, domain.ClampLimit(input.Limit), input.Cursor)
	if err != nil {
		return domain.Page[domain.Transaction]{}, fmt.Errorf("list transactions page: %w", err)
	}
	return page, nil
}

// Balance returns the sum of all signed transaction amounts.
func (s *Service) Balance(ctx context.Context) (decimal.Decimal, error) {
	b, err := s.transactions.Balance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("transaction balance: %w", err)
	}
	return b, nil
}

// CreateTransaction converts the entered amount to the base currency and
// signs it by kind.
func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.transactions.Create(ctx, &domain.Transaction{
		Name:        strings.TrimSpace(input.Name),
		Amount:      domain.SignedAmount(s.toBase(input.Amount, input.Currency), input.Kind),
		DisplayDate: domain.TrimOrNil(input.DisplayDate),
	})
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction created",
		slog.String("transaction_id", created.ID.String()),
		slog.String("amount", created.Amount.String()),
	)

	return created, nil
}

// DeleteTransaction removes a transaction.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.transactions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction deleted", slog.String("transaction_id", id.String()))
	return nil
}
