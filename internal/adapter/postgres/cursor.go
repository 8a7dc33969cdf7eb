package postgres

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// Builder is the statement builder for dynamic queries against PostgreSQL.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// EncodeCursor builds an opaque keyset cursor from the last row of a page.
func EncodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + "|" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a cursor produced by EncodeCursor.
// Malformed cursors return domain.ErrValidation.
func DecodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, domain.NewValidationError("cursor", "malformed")
	}

	ts, idStr, ok := strings.Cut(string(raw), "|")
	if !ok {
		return time.Time{}, uuid.Nil, domain.NewValidationError("cursor", "malformed")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, uuid.Nil, domain.NewValidationError("cursor", "bad timestamp")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return time.Time{}, uuid.Nil, domain.NewValidationError("cursor", "bad id")
	}

	return createdAt, id, nil
}

// PageQuery applies newest-first ordering, an optional keyset cursor and a
// limit to a SELECT over a table with created_at and id columns.
func PageQuery(q sq.SelectBuilder, limit int, cursor string) (sq.SelectBuilder, error) {
	if cursor != "" {
		createdAt, id, err := DecodeCursor(cursor)
		if err != nil {
			return q, err
		}
		q = q.Where(sq.Expr("(created_at, id) < (?, ?)", createdAt, id))
	}

	return q.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit)), nil
}

// NewPage wraps a fetched slice. HasMore is set when the page is full.
func NewPage[T any](items []T, limit int, key func(T) (time.Time, uuid.UUID)) domain.Page[T] {
	page := domain.Page[T]{Items: items, HasMore: len(items) == limit}
	if len(items) > 0 {
		createdAt, id := key(items[len(items)-1])
		page.NextCursor = EncodeCursor(createdAt, id)
	}
	return page
}

// ToSQL renders a squirrel statement.
func ToSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build query: %w", err)
	}
	return query, args, nil
}
