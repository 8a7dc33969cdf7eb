package todo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// GetTodo returns one todo.
func (s *Service) GetTodo(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	t, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}

// ListTodos returns todos newest first.
func (s *Service) ListTodos(ctx context.Context, input ListTodosInput) ([]domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.todos.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if input.ActiveOnly {
		list = domain.ActiveTodos(list, s.now(), s.grace)
	}
	return list, nil
}

// ListTodosPage returns one page of todos newest first. Grace filtering is
// not applied to pages; ActiveOnly narrows to open todos instead.
func (s *Service) ListTodosPage(ctx context.Context, input ListTodosInput) (domain.Page[domain.Todo], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Todo]{}, err
	}

	f := input.filter()
	f.OpenOnly = input.ActiveOnly

	page, err := s.todos.ListPage(ctx, f, domain.ClampLimit(input.Limit), input.Cursor)
	if err != nil {
		return domain.Page[domain.Todo]{}, fmt.Errorf("list todos page: %w", err)
	}
	return page, nil
}
