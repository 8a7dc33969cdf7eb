package portfolio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// DeleteDomain removes a domain together with its todos.
func (s *Service) DeleteDomain(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var removedTodos int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.todos.DeleteByDomain(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete domain todos: %w", err)
		}
		removedTodos = n

		if err := s.domains.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete domain: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "domain deleted",
		slog.String("domain_id", id.String()),
		slog.Int64("todos_removed", removedTodos),
	)

	return nil
}
