// Package todo implements the todo repository using PostgreSQL.
package todo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const entity = "todo"

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new todo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO todos (domain_id, text)
VALUES ($1, $2)
RETURNING id, domain_id, text, completed, completed_at, created_at`

// completed_at is only touched when the flag actually changes.
const setCompletedSQL = `
UPDATE todos
SET completed    = $2,
    completed_at = CASE
        WHEN completed = $2 THEN completed_at
        WHEN $2 THEN now()
        ELSE NULL
    END
WHERE id = $1
RETURNING id, domain_id, text, completed, completed_at, created_at`

const updateTextSQL = `
UPDATE todos SET text = $2
WHERE id = $1
RETURNING id, domain_id, text, completed, completed_at, created_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func selectTodos() sq.SelectBuilder {
	return postgres.Builder.
		Select("id", "domain_id", "text", "completed", "completed_at", "created_at").
		From("todos")
}

// GetByID returns a todo by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	query, args, err := postgres.ToSQL(selectTodos().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	t, err := scanTodo(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

// List returns todos matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.TodoFilter) ([]domain.Todo, error) {
	return r.query(ctx, applyFilter(selectTodos(), f).OrderBy("created_at DESC", "id DESC"))
}

// ListPage returns one page of todos matching f, newest first.
func (r *Repo) ListPage(ctx context.Context, f domain.TodoFilter, limit int, cursor string) (domain.Page[domain.Todo], error) {
	q, err := postgres.PageQuery(applyFilter(selectTodos(), f), limit, cursor)
	if err != nil {
		return domain.Page[domain.Todo]{}, err
	}

	items, err := r.query(ctx, q)
	if err != nil {
		return domain.Page[domain.Todo]{}, err
	}

	return postgres.NewPage(items, limit, func(t domain.Todo) (time.Time, uuid.UUID) {
		return t.CreatedAt, t.ID
	}), nil
}

// ListByDomains returns the todos of the given domains plus the general todos.
func (r *Repo) ListByDomains(ctx context.Context, domainIDs []uuid.UUID) ([]domain.Todo, error) {
	return r.List(ctx, domain.TodoFilter{DomainIDs: domainIDs, WithGeneral: true})
}

func applyFilter(q sq.SelectBuilder, f domain.TodoFilter) sq.SelectBuilder {
	switch {
	case f.GeneralOnly:
		q = q.Where(sq.Eq{"domain_id": nil})
	case len(f.DomainIDs) > 0 && f.WithGeneral:
		q = q.Where(sq.Or{sq.Expr("domain_id = ANY(?::uuid[])", f.DomainIDs), sq.Eq{"domain_id": nil}})
	case len(f.DomainIDs) > 0:
		q = q.Where(sq.Expr("domain_id = ANY(?::uuid[])", f.DomainIDs))
	}
	if f.OpenOnly {
		q = q.Where(sq.Eq{"completed": false})
	}
	return q
}

func (r *Repo) query(ctx context.Context, q sq.SelectBuilder) ([]domain.Todo, error) {
	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapListError(err, "todos")
	}
	defer rows.Close()

	result := make([]domain.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "todos")
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a todo. A missing domain yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, t.DomainID, t.Text)

	created, err := scanTodo(row)
	if err != nil {
		id := uuid.Nil
		if t.DomainID != nil {
			id = *t.DomainID
		}
		return nil, postgres.MapError(err, entity, id)
	}
	return created, nil
}

// SetCompleted sets the completion flag. Setting the current value is a no-op.
func (r *Repo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setCompletedSQL, id, completed)

	t, err := scanTodo(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

// UpdateText replaces the text of a todo.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Todo, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateTextSQL, id, text)

	t, err := scanTodo(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

// Delete removes a todo.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// DeleteByDomain removes every todo of a domain and returns how many were removed.
func (r *Repo) DeleteByDomain(ctx context.Context, domainID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM todos WHERE domain_id = $1`, domainID)
	if err != nil {
		return 0, postgres.MapError(err, entity, domainID)
	}
	return tag.RowsAffected(), nil
}

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	if err := row.Scan(&t.ID, &t.DomainID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
