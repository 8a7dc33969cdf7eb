// Package fault implements the common-faults repository using PostgreSQL.
package fault

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

// Repo provides fault persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new fault repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO faults (text) VALUES ($1)
RETURNING id, text, created_at`

func selectFaults() sq.SelectBuilder {
	return postgres.Builder.Select("id", "text", "created_at").From("faults")
}

// List returns every fault, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Fault, error) {
	return r.query(ctx, selectFaults().OrderBy("created_at DESC", "id DESC"))
}

// ListPage returns one page of faults, newest first.
func (r *Repo) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Fault], error) {
	q, err := postgres.PageQuery(selectFaults(), limit, cursor)
	if err != nil {
		return domain.Page[domain.Fault]{}, err
	}

	items, err := r.query(ctx, q)
	if err != nil {
		return domain.Page[domain.Fault]{}, err
	}

	return postgres.NewPage(items, limit, func(f domain.Fault) (time.Time, uuid.UUID) {
		return f.CreatedAt, f.ID
	}), nil
}

// Create inserts a fault.
func (r *Repo) Create(ctx context.Context, text string) (*domain.Fault, error) {
	var f domain.Fault
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, text).Scan(&f.ID, &f.Text, &f.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "fault", uuid.Nil)
	}
	return &f, nil
}

// Delete removes a fault.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM faults WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "fault", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "fault", id)
	}
	return nil
}

func (r *Repo) query(ctx context.Context, q sq.SelectBuilder) ([]domain.Fault, error) {
	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapListError(err, "faults")
	}
	defer rows.Close()

	result := make([]domain.Fault, 0)
	for rows.Next() {
		var f domain.Fault
		if err := rows.Scan(&f.ID, &f.Text, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fault: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "faults")
	}

	return result, nil
}
