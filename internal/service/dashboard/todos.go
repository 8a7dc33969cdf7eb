package dashboard

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
	"github.com/heartmarshall/officedash-backend/pkg/optimistic"
)

// AddTodo shows the todo immediately and stores it. If the store rejects it
// the view returns to exactly what it was before.
func (s *Service) AddTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	placeholder := domain.Todo{
		ID:        uuid.New(),
		DomainID:  input.DomainID,
		Text:      strings.TrimSpace(input.Text),
		CreatedAt: s.now(),
	}

	created, err := optimistic.MutateWith(ctx, s.view,
		func(snap Snapshot) Snapshot {
			return snap.withTodos(slices.Insert(slices.Clone(snap.Todos), 0, placeholder))
		},
		func(snap Snapshot) Snapshot {
			return snap.withTodos(removeTodo(snap.Todos, placeholder.ID))
		},
		func(ctx context.Context) (*domain.Todo, error) {
			return s.writer.CreateTodo(ctx, input)
		},
		func(snap Snapshot, stored *domain.Todo) Snapshot {
			return snap.withTodos(replaceTodo(snap.Todos, placeholder.ID, *stored))
		},
	)
	if err != nil {
		s.log.WarnContext(ctx, "add todo rolled back", slog.String("error", err.Error()))
		return nil, err
	}
	return created, nil
}

// SetTodoCompleted toggles a todo in the view and in the store, rolling the
// view back on failure.
func (s *Service) SetTodoCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error) {
	now := s.now()
	var prior *domain.Todo

	updated, err := optimistic.MutateWith(ctx, s.view,
		func(snap Snapshot) Snapshot {
			i := slices.IndexFunc(snap.Todos, func(t domain.Todo) bool { return t.ID == id })
			if i < 0 || snap.Todos[i].Completed == completed {
				return snap
			}
			old := snap.Todos[i]
			prior = &old
			t := old
			t.Completed = completed
			t.CompletedAt = nil
			if completed {
				t.CompletedAt = &now
			}
			return snap.withTodos(replaceTodo(snap.Todos, id, t))
		},
		func(snap Snapshot) Snapshot {
			if prior == nil {
				return snap
			}
			return snap.withTodos(replaceTodo(snap.Todos, id, *prior))
		},
		func(ctx context.Context) (*domain.Todo, error) {
			return s.writer.SetCompleted(ctx, id, completed)
		},
		func(snap Snapshot, stored *domain.Todo) Snapshot {
			return snap.withTodos(replaceTodo(snap.Todos, id, *stored))
		},
	)
	if err != nil {
		s.log.WarnContext(ctx, "todo completion rolled back",
			slog.String("todo_id", id.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteTodo hides the todo immediately and deletes it, restoring it on failure.
func (s *Service) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	var (
		prior domain.Todo
		at    = -1
	)

	err := s.view.Mutate(ctx,
		func(snap Snapshot) Snapshot {
			at = slices.IndexFunc(snap.Todos, func(t domain.Todo) bool { return t.ID == id })
			if at < 0 {
				return snap
			}
			prior = snap.Todos[at]
			return snap.withTodos(removeTodo(snap.Todos, id))
		},
		func(snap Snapshot) Snapshot {
			if at < 0 || slices.ContainsFunc(snap.Todos, func(t domain.Todo) bool { return t.ID == id }) {
				return snap
			}
			return snap.withTodos(slices.Insert(slices.Clone(snap.Todos), min(at, len(snap.Todos)), prior))
		},
		func(ctx context.Context) error {
			return s.writer.DeleteTodo(ctx, id)
		},
	)
	if err != nil {
		s.log.WarnContext(ctx, "todo delete rolled back",
			slog.String("todo_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
	return err
}

// removeTodo returns a copy of todos without the entry id.
func removeTodo(todos []domain.Todo, id uuid.UUID) []domain.Todo {
	return slices.DeleteFunc(slices.Clone(todos), func(t domain.Todo) bool { return t.ID == id })
}

// replaceTodo returns a copy of todos with the entry id replaced by t.
// When id is absent the list is returned unchanged.
func replaceTodo(todos []domain.Todo, id uuid.UUID, t domain.Todo) []domain.Todo {
	i := slices.IndexFunc(todos, func(x domain.Todo) bool { return x.ID == id })
	if i < 0 {
		return todos
	}
	out := slices.Clone(todos)
	out[i] = t
	return out
}
