package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// ShareSummary is the regional totals and their fixed-ratio split.
type ShareSummary struct {
	Totals domain.RegionTotals
	Shares domain.Shares
}

// ListProjects returns income projects newest first, optionally for one region.
func (s *Service) ListProjects(ctx context.Context, region domain.ProjectTag) ([]domain.IncomeProject, error) {
	if region != "" && !region.IsValid() {
		return nil, domain.NewValidationError("region", "must be one of egypt, saudi, mah")
	}
	list, err := s.projects.List(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return list, nil
}

// ListProjectsPage returns one page of income projects, newest first.
func (s *Service) ListProjectsPage(ctx context.Context, input PageInput) (domain.Page[domain.IncomeProject], error) {
	page, err := s.projects.ListPage(ctx, domain.ClampLimit(input.Limit), input.Cursor)
	if err != nil {
		return domain.Page[domain.IncomeProject]{}, fmt.Errorf("list projects page: %w", err)
	}
	return page, nil
}

// Shares recomputes the revenue split from the full project set.
func (s *Service) Shares(ctx context.Context) (ShareSummary, error) {
	list, err := s.projects.List(ctx, "")
	if err != nil {
		return ShareSummary{}, fmt.Errorf("list projects: %w", err)
	}
	totals := domain.SumByRegion(list)
	return ShareSummary{Totals: totals, Shares: domain.ComputeShares(totals)}, nil
}

// CreateProject adds an income project with its cost in the base currency.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.IncomeProject, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, &domain.IncomeProject{
		Region:      input.Region,
		Name:        strings.TrimSpace(input.Name),
		Cost:        s.toBase(input.Cost, input.Currency),
		DisplayDate: domain.TrimOrNil(input.DisplayDate),
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "income project created",
		slog.String("project_id", created.ID.String()),
		slog.String("region", string(created.Region)),
	)

	return created, nil
}

// DeleteProject removes an income project.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "income project deleted", slog.String("project_id", id.String()))
	return nil
}
