// Package transaction implements the ledger repository using PostgreSQL.
package transaction

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO transactions (name, amount, display_date)
VALUES ($1, $2, $3)
RETURNING id, name, amount, display_date, created_at`

const balanceSQL = `SELECT COALESCE(SUM(amount), 0) FROM transactions`

func selectTransactions() sq.SelectBuilder {
	return postgres.Builder.Select("id", "name", "amount", "display_date", "created_at").From("transactions")
}

// List returns every transaction, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.query(ctx, selectTransactions().OrderBy("created_at DESC", "id DESC"))
}

// ListPage returns one page of transactions, newest first.
func (r *Repo) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Transaction], error) {
	q, err := postgres.PageQuery(selectTransactions(), limit, cursor)
	if err != nil {
		return domain.Page[domain.Transaction]{}, err
	}

	items, err := r.query(ctx, q)
	if err != nil {
		return domain.Page[domain.Transaction]{}, err
	}

	return postgres.NewPage(items, limit, func(t domain.Transaction) (time.Time, uuid.UUID) {
		return t.CreatedAt, t.ID
	}), nil
}

// Balance sums every signed amount in the ledger.
func (r *Repo) Balance(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, balanceSQL).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return total, nil
}

// Create inserts a transaction. Amount must already be signed and in the base currency.
func (r *Repo) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, t.Name, t.Amount, t.DisplayDate)

	created, err := scanTransaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "transaction", uuid.Nil)
	}
	return created, nil
}

// Delete removes a transaction.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "transaction", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "transaction", id)
	}
	return nil
}

func (r *Repo) query(ctx context.Context, q sq.SelectBuilder) ([]domain.Transaction, error) {
	query, args, err := postgres.ToSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapListError(err, "transactions")
	}
	defer rows.Close()

	result := make([]domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "transactions")
	}

	return result, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(&t.ID, &t.Name, &t.Amount, &t.DisplayDate, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
