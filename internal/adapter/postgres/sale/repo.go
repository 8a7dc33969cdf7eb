// Package sale implements the sales repository using PostgreSQL.
package sale

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

// Repo provides sale persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sale repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO sales (sale_amount, expense_amount, expense_description, net_profit)
VALUES ($1, $2, $3, $4)
RETURNING id, sale_amount, expense_amount, expense_description, net_profit, created_at`

func selectSales() sq.SelectBuilder {
	return postgres.Builder.
		Select("id", "sale_amount", "expense_amount", "expense_description", "net_profit", "created_at").
		From("sales")
}

// List returns every sale, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Sale, error) {
	return r.query(ctx, selectSales().OrderBy("created_at DESC", "id DESC"))
}

// ListPage returns one page of sales, newest first.
func (r *Repo) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Sale], error) {
	q, err := postgres.PageQuery(selectSales(), limit, cursor)
	if err != nil {
		return domain.Page[domain.Sale]{}, err
	}

	items, err := r.query(ctx, q)
	if err != nil {
		return domain.Page[domain.Sale]{}, err
	}

	return postgres.NewPage(items, limit, func(s domain.Sale) (time.Time, uuid.UUID) {
		return s.CreatedAt, s.ID
	}), nil
}

// Create inserts a sale. NetProfit is stored as given.
func (r *Repo) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		s.SaleAmount, s.ExpenseAmount, s.ExpenseDescription, s.NetProfit)

	created, err := scanSale(row)
	if err != nil {
		return nil, postgres.MapError(err, "sale", uuid.Nil)
	}
	return created, nil
}

// Delete removes a sale.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "sale", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "sale", id)
	}
	return nil
}

func (r *Repo) query(ctx context.Context, q sq.SelectBuilder) ([]domain.Sale, error) {
	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapListError(err, "sales")
	}
	defer rows.Close()

	result := make([]domain.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "sales")
	}

	return result, nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(&s.ID, &s.SaleAmount, &s.ExpenseAmount, &s.ExpenseDescription, &s.NetProfit, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
