package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// CreateDomain adds a domain. Costs are converted to the base currency at
// the rates in effect now.
func (s *Service) CreateDomain(ctx context.Context, input CreateDomainInput) (*domain.Domain, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rates := s.rates.Rates()
	state := input.State
	if state == "" {
		state = domain.DomainStateActive
	}

	d := &domain.Domain{
		Name:        domain.NormalizeDomainName(input.Name),
		State:       state,
		CollectedAt: input.CollectedAt,
		RenewsAt:    input.RenewsAt,
		DataSheet:   strings.TrimSpace(input.DataSheet),
		ClientCost:  costOrNull(input.ClientCost, rates),
		OfficeCost:  costOrNull(input.OfficeCost, rates),
		Projects:    uniqueProjects(input.Projects),
		ClientName:  domain.TrimOrNil(input.ClientName),
		ClientEmail: domain.TrimOrNil(input.ClientEmail),
	}
	if d.CollectedAt.IsZero() {
		d.CollectedAt = s.now()
	}

	created, err := s.domains.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create domain: %w", err)
	}

	s.log.InfoContext(ctx, "domain created",
		slog.String("domain_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

func costOrNull(m *MoneyInput, rates domain.RateTable) decimal.NullDecimal {
	if m == nil || m.IsEmpty() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.toBase(rates))
}
