// Package settings implements the singleton settings document using PostgreSQL.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// The row is created by the initial migration; upserts keep it alive if removed by hand.
const getSQL = `SELECT note, ai_api_key, updated_at FROM settings WHERE id = 1`

const saveNoteSQL = `
INSERT INTO settings (id, note) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET note = EXCLUDED.note, updated_at = now()
RETURNING note, ai_api_key, updated_at`

const saveAPIKeySQL = `
INSERT INTO settings (id, ai_api_key) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET ai_api_key = EXCLUDED.ai_api_key, updated_at = now()
RETURNING note, ai_api_key, updated_at`

// Get returns the settings document. A missing row reads as empty settings.
func (r *Repo) Get(ctx context.Context) (domain.Settings, error) {
	var s domain.Settings
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL).Scan(&s.Note, &s.AIAPIKey, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// SaveNote replaces the dashboard note.
func (r *Repo) SaveNote(ctx context.Context, note string) (domain.Settings, error) {
	return r.save(ctx, saveNoteSQL, note)
}

// SaveAPIKey replaces the stored AI API key. An empty key clears it.
func (r *Repo) SaveAPIKey(ctx context.Context, key string) (domain.Settings, error) {
	return r.save(ctx, saveAPIKeySQL, key)
}

func (r *Repo) save(ctx context.Context, query, value string) (domain.Settings, error) {
	var s domain.Settings
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, value).Scan(&s.Note, &s.AIAPIKey, &s.UpdatedAt)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return s, nil
}
