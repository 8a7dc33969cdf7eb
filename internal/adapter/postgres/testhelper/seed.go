package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDomain inserts an active domain tagged "saudi" that renews in 30 days.
func SeedDomain(t *testing.T, pool *pgxpool.Pool) domain.Domain {
	t.Helper()

	now := time.Now().UTC()
	d := domain.Domain{
		ID:          uuid.New(),
		Name:        "seed-" + uniqueSuffix() + ".com",
		State:       domain.DomainStateActive,
		CollectedAt: time.Date(now.Year()-1, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		RenewsAt:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 30),
		Projects:    []domain.ProjectTag{domain.ProjectSaudi},
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO domains (id, name, state, collected_at, renews_at, projects)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		d.ID, d.Name, string(d.State), d.CollectedAt, d.RenewsAt, []string{string(domain.ProjectSaudi)},
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDomain: %v", err)
	}

	return d
}

// SeedTodo inserts an open todo, attached to domainID when it is non-nil.
func SeedTodo(t *testing.T, pool *pgxpool.Pool, domainID *uuid.UUID) domain.Todo {
	t.Helper()

	td := domain.Todo{
		ID:       uuid.New(),
		DomainID: domainID,
		Text:     "todo " + uniqueSuffix(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO todos (id, domain_id, text) VALUES ($1, $2, $3) RETURNING created_at`,
		td.ID, td.DomainID, td.Text,
	).Scan(&td.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTodo: %v", err)
	}

	return td
}
