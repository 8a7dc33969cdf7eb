package notebook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// ListFaults returns every fault, newest first.
func (s *Service) ListFaults(ctx context.Context) ([]domain.Fault, error) {
	list, err := s.faults.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faults: %w", err)
	}
	return list, nil
}

// ListFaultsPage returns one page of faults, newest first.
func (s *Service) ListFaultsPage(ctx context.Context, input ListFaultsInput) (domain.Page[domain.Fault], error) {
	page, err := s.faults.ListPage(ctx, domain.ClampLimit(input.Limit), input.Cursor)
	if err != nil {
		return domain.Page[domain.Fault]{}, fmt.Errorf("list faults page: %w", err)
	}
	return page, nil
}

// CreateFault adds a fault.
func (s *Service) CreateFault(ctx context.Context, input CreateFaultInput) (*domain.Fault, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f, err := s.faults.Create(ctx, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("create fault: %w", err)
	}

	s.log.InfoContext(ctx, "fault created", slog.String("fault_id", f.ID.String()))
	return f, nil
}

// DeleteFault removes a fault.
func (s *Service) DeleteFault(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.faults.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete fault: %w", err)
	}

	s.log.InfoContext(ctx, "fault deleted", slog.String("fault_id", id.String()))
	return nil
}
