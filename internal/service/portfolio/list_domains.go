package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// GetDomain returns one domain.
func (s *Service) GetDomain(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	d, err := s.domains.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return d, nil
}

// ListDomains returns every domain ordered by renewal urgency.
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	list, err := s.domains.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	domain.SortByUrgency(list)
	return list, nil
}

// ListDomainsPage returns one page of domains in store order (newest first).
func (s *Service) ListDomainsPage(ctx context.Context, input ListDomainsInput) (domain.Page[domain.Domain], error) {
	page, err := s.domains.ListPage(ctx, domain.ClampLimit(input.Limit), input.Cursor)
	if err != nil {
		return domain.Page[domain.Domain]{}, fmt.Errorf("list domains page: %w", err)
	}
	return page, nil
}

// CostTotals sums renewal costs over active domains.
type CostTotals struct {
	Client  decimal.Decimal
	Office  decimal.Decimal
	Margin  decimal.Decimal
	Active  int
	PastDue int
}

// Totals computes cost totals for the active portfolio.
func (s *Service) Totals(ctx context.Context) (CostTotals, error) {
	list, err := s.domains.List(ctx)
	if err != nil {
		return CostTotals{}, fmt.Errorf("list domains: %w", err)
	}

	now := s.now()
	totals := CostTotals{Client: decimal.Zero, Office: decimal.Zero}
	for _, d := range list {
		if d.State != domain.DomainStateActive {
			continue
		}
		totals.Active++
		if d.IsPastDue(now) {
			totals.PastDue++
		}
		if d.ClientCost.Valid {
			totals.Client = totals.Client.Add(d.ClientCost.Decimal)
		}
		if d.OfficeCost.Valid {
			totals.Office = totals.Office.Add(d.OfficeCost.Decimal)
		}
	}
	totals.Margin = totals.Client.Sub(totals.Office)
	return totals, nil
}
