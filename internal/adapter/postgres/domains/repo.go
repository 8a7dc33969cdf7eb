// Package domains implements the managed-domain repository using PostgreSQL.
package domains

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const entity = "domain"

// Repo provides domain persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new domain repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "name", "state", "collected_at", "renews_at", "data_sheet",
	"client_cost", "office_cost", "projects", "client_name", "client_email",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a domain by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	query, args, err := postgres.ToSQL(postgres.Builder.Select(columns...).From("domains").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	d, err := scanDomain(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// List returns every domain, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Domain, error) {
	q := postgres.Builder.Select(columns...).From("domains").OrderBy("created_at DESC", "id DESC")
	return r.query(ctx, q)
}

// ListPage returns one page of domains, newest first.
func (r *Repo) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Domain], error) {
	q, err := postgres.PageQuery(postgres.Builder.Select(columns...).From("domains"), limit, cursor)
	if err != nil {
		return domain.Page[domain.Domain]{}, err
	}

	items, err := r.query(ctx, q)
	if err != nil {
		return domain.Page[domain.Domain]{}, err
	}

	return postgres.NewPage(items, limit, func(d domain.Domain) (time.Time, uuid.UUID) {
		return d.CreatedAt, d.ID
	}), nil
}

func (r *Repo) query(ctx context.Context, q sq.SelectBuilder) ([]domain.Domain, error) {
	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapListError(err, "domains")
	}
	defer rows.Close()

	result := make([]domain.Domain, 0)
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "domains")
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a domain. The store assigns id and timestamps.
func (r *Repo) Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error) {
	q := postgres.Builder.Insert("domains").
		Columns("name", "state", "collected_at", "renews_at", "data_sheet",
			"client_cost", "office_cost", "projects", "client_name", "client_email").
		Values(d.Name, string(d.State), d.CollectedAt, d.RenewsAt, d.DataSheet,
			d.ClientCost, d.OfficeCost, projectStrings(d.Projects), d.ClientName, d.ClientEmail).
		Suffix(returning)

	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	created, err := scanDomain(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return created, nil
}

// Update applies the non-nil fields of p and returns the updated domain.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.DomainUpdateParams) (*domain.Domain, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder.Update("domains").Set("updated_at", sq.Expr("now()"))
	if p.Name != nil {
		q = q.Set("name", *p.Name)
	}
	if p.State != nil {
		q = q.Set("state", string(*p.State))
	}
	if p.CollectedAt != nil {
		q = q.Set("collected_at", *p.CollectedAt)
	}
	if p.RenewsAt != nil {
		q = q.Set("renews_at", *p.RenewsAt)
	}
	if p.DataSheet != nil {
		q = q.Set("data_sheet", *p.DataSheet)
	}
	q = setCost(q, "client_cost", p.ClientCost, p.ClearClientCost)
	q = setCost(q, "office_cost", p.OfficeCost, p.ClearOfficeCost)
	if p.Projects != nil {
		q = q.Set("projects", projectStrings(p.Projects))
	}
	if p.ClientName != nil {
		q = q.Set("client_name", nullIfEmpty(*p.ClientName))
	}
	if p.ClientEmail != nil {
		q = q.Set("client_email", nullIfEmpty(*p.ClientEmail))
	}

	query, args, err := postgres.ToSQL(q.Where(sq.Eq{"id": id}).Suffix(returning))
	if err != nil {
		return nil, err
	}

	updated, err := scanDomain(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return updated, nil
}

// Delete removes a domain. Todos referencing it must be removed first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM domains WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func setCost(q sq.UpdateBuilder, column string, v *decimal.Decimal, clear bool) sq.UpdateBuilder {
	switch {
	case clear:
		return q.Set(column, nil)
	case v != nil:
		return q.Set(column, *v)
	default:
		return q
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func projectStrings(tags []domain.ProjectTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func scanDomain(row pgx.Row) (*domain.Domain, error) {
	var (
		d        domain.Domain
		state    string
		projects []string
	)

	err := row.Scan(
		&d.ID, &d.Name, &state, &d.CollectedAt, &d.RenewsAt, &d.DataSheet,
		&d.ClientCost, &d.OfficeCost, &projects, &d.ClientName, &d.ClientEmail,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.State = domain.DomainState(state)
	d.Projects = make([]domain.ProjectTag, len(projects))
	for i, p := range projects {
		d.Projects[i] = domain.ProjectTag(p)
	}

	return &d, nil
}
