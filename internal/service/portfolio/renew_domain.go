package portfolio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// RenewDomain advances the renewal date by exactly one calendar year.
func (s *Service) RenewDomain(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	current, err := s.domains.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}

	next := current.NextRenewal()
	updated, err := s.domains.Update(ctx, id, domain.DomainUpdateParams{RenewsAt: &next})
	if err != nil {
		return nil, fmt.Errorf("renew domain: %w", err)
	}

	s.log.InfoContext(ctx, "domain renewed",
		slog.String("domain_id", id.String()),
		slog.String("name", updated.Name),
		slog.Time("renews_at", updated.RenewsAt),
	)

	return updated, nil
}
