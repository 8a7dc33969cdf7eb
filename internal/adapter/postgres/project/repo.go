// Package project implements the regional income-project repository using PostgreSQL.
package project

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

// Repo provides income-project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new income-project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO income_projects (region, name, cost, display_date)
VALUES ($1, $2, $3, $4)
RETURNING id, region, name, cost, display_date, created_at`

func selectProjects() sq.SelectBuilder {
	return postgres.Builder.
		Select("id", "region", "name", "cost", "display_date", "created_at").
		From("income_projects")
}

// List returns every income project, newest first. A non-empty region narrows the listing.
func (r *Repo) List(ctx context.Context, region domain.ProjectTag) ([]domain.IncomeProject, error) {
	q := selectProjects()
	if region != "" {
		q = q.Where(sq.Eq{"region": string(region)})
	}
	return r.query(ctx, q.OrderBy("created_at DESC", "id DESC"))
}

// ListPage returns one page of income projects, newest first.
func (r *Repo) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.IncomeProject], error) {
	q, err := postgres.PageQuery(selectProjects(), limit, cursor)
	if err != nil {
		return domain.Page[domain.IncomeProject]{}, err
	}

	items, err := r.query(ctx, q)
	if err != nil {
		return domain.Page[domain.IncomeProject]{}, err
	}

	return postgres.NewPage(items, limit, func(p domain.IncomeProject) (time.Time, uuid.UUID) {
		return p.CreatedAt, p.ID
	}), nil
}

// Create inserts an income project.
func (r *Repo) Create(ctx context.Context, p *domain.IncomeProject) (*domain.IncomeProject, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		string(p.Region), p.Name, p.Cost, p.DisplayDate)

	created, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "income_project", uuid.Nil)
	}
	return created, nil
}

// Delete removes an income project.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM income_projects WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "income_project", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "income_project", id)
	}
	return nil
}

func (r *Repo) query(ctx context.Context, q sq.SelectBuilder) ([]domain.IncomeProject, error) {
	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapListError(err, "income_projects")
	}
	defer rows.Close()

	result := make([]domain.IncomeProject, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan income project: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "income_projects")
	}

	return result, nil
}

func scanProject(row pgx.Row) (*domain.IncomeProject, error) {
	var (
		p      domain.IncomeProject
		region string
	)
	if err := row.Scan(&p.ID, &region, &p.Name, &p.Cost, &p.DisplayDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Region = domain.ProjectTag(region)
	return &p, nil
}
