package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// UpdateDomain applies a partial edit to a domain.
func (s *Service) UpdateDomain(ctx context.Context, input UpdateDomainInput) (*domain.Domain, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rates := s.rates.Rates()
	params := domain.DomainUpdateParams{
		State:       input.State,
		CollectedAt: input.CollectedAt,
		RenewsAt:    input.RenewsAt,
		ClientName:  trimmed(input.ClientName),
		ClientEmail: trimmed(input.ClientEmail),
	}
	if input.Name != nil {
		name := domain.NormalizeDomainName(*input.Name)
		params.Name = &name
	}
	if input.DataSheet != nil {
		sheet := strings.TrimSpace(*input.DataSheet)
		params.DataSheet = &sheet
	}
	if input.ClientCost != nil {
		if input.ClientCost.IsEmpty() {
			params.ClearClientCost = true
		} else {
			cost := input.ClientCost.toBase(rates)
			params.ClientCost = &cost
		}
	}
	if input.OfficeCost != nil {
		if input.OfficeCost.IsEmpty() {
			params.ClearOfficeCost = true
		} else {
			cost := input.OfficeCost.toBase(rates)
			params.OfficeCost = &cost
		}
	}
	if input.Projects != nil {
		params.Projects = uniqueProjects(input.Projects)
	}

	updated, err := s.domains.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update domain: %w", err)
	}

	s.log.InfoContext(ctx, "domain updated",
		slog.String("domain_id", updated.ID.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}

// trimmed trims whitespace but keeps an empty result, which clears the field.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
