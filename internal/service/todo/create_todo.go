package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// CreateTodo adds a todo for a domain, or a general todo when no domain is given.
func (s *Service) CreateTodo(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.todos.Create(ctx, &domain.Todo{
		DomainID: input.DomainID,
		Text:     strings.TrimSpace(input.Text),
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	attrs := []any{slog.String("todo_id", created.ID.String())}
	if created.DomainID != nil {
		attrs = append(attrs, slog.String("domain_id", created.DomainID.String()))
	}
	s.log.InfoContext(ctx, "todo created", attrs...)

	return created, nil
}
