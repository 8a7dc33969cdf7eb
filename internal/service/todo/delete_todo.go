package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// DeleteTodo removes a todo.
func (s *Service) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.todos.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted", slog.String("todo_id", id.String()))
	return nil
}
