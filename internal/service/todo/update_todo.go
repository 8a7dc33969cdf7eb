package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// UpdateTodo edits text and/or completion. Setting completion to its current
// value leaves completed_at untouched.
func (s *Service) UpdateTodo(ctx context.Context, input UpdateTodoInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Todo
		err     error
	)
	if input.Text != nil {
		updated, err = s.todos.UpdateText(ctx, input.ID, strings.TrimSpace(*input.Text))
		if err != nil {
			return nil, fmt.Errorf("update todo text: %w", err)
		}
	}
	if input.Completed != nil {
		updated, err = s.todos.SetCompleted(ctx, input.ID, *input.Completed)
		if err != nil {
			return nil, fmt.Errorf("set todo completed: %w", err)
		}
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.String("todo_id", input.ID.String()),
		slog.Bool("completed", updated.Completed),
	)

	return updated, nil
}

// SetCompleted marks a todo done or open.
func (s *Service) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error) {
	return s.UpdateTodo(ctx, UpdateTodoInput{ID: id, Completed: &completed})
}
