package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// DraftReminders builds reminder inputs for domains renewing within the window
// or past due and asks the collaborator for messages. Collaborator failures
// are logged and reported as Generated=false; store failures are returned.
func (s *Service) DraftReminders(ctx context.Context, input DraftInput) (domain.ReminderBatch, error) {
	if err := input.Validate(); err != nil {
		return domain.ReminderBatch{}, err
	}

	days := input.WithinDays
	if days == 0 {
		days = s.withinDays
	}

	list, err := s.domains.List(ctx)
	if err != nil {
		return domain.ReminderBatch{}, fmt.Errorf("list domains: %w", err)
	}
	domain.SortByUrgency(list)

	now := s.now()
	candidates := domain.ReminderCandidates(list, now, time.Duration(days)*24*time.Hour)
	if len(candidates) == 0 {
		return domain.ReminderBatch{Generated: true, Reminders: []domain.Reminder{}}, nil
	}

	key, err := s.apiKey(ctx)
	if err != nil {
		return domain.ReminderBatch{}, fmt.Errorf("get settings: %w", err)
	}

	reminders, err := s.llm.DraftReminders(ctx, key, candidates, now)
	if err != nil {
		s.log.WarnContext(ctx, "draft reminders failed",
			slog.Int("candidates", len(candidates)),
			slog.String("error", err.Error()),
		)
		return domain.ReminderBatch{Generated: false, Reminders: []domain.Reminder{}}, nil
	}

	s.log.InfoContext(ctx, "reminders drafted",
		slog.Int("candidates", len(candidates)),
		slog.Int("drafted", len(reminders)),
	)

	return domain.ReminderBatch{Generated: true, Reminders: reminders}, nil
}
