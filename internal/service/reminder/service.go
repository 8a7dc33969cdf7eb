// Package reminder drafts renewal reminders for clients through the
// text-generation collaborator and manages its API key.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/config"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type domainRepo interface {
	List(ctx context.Context) ([]domain.Domain, error)
}

type settingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	SaveAPIKey(ctx context.Context, key string) (domain.Settings, error)
}

type textGenerator interface {
	DraftReminders(ctx context.Context, apiKey string, inputs []domain.ReminderInput, now time.Time) ([]domain.Reminder, error)
	CheckKey(ctx context.Context, apiKey string) bool
}

// Service implements reminder drafting and key management.
type Service struct {
	log        *slog.Logger
	domains    domainRepo
	settings   settingsRepo
	llm        textGenerator
	defaultKey string
	withinDays int
	now        func() time.Time
}

// NewService creates a new reminder service.
func NewService(
	log *slog.Logger,
	domains domainRepo,
	settings settingsRepo,
	llm textGenerator,
	cfg config.ReminderConfig,
) *Service {
	return &Service{
		log:        log.With("service", "reminder"),
		domains:    domains,
		settings:   settings,
		llm:        llm,
		defaultKey: cfg.APIKey,
		withinDays: cfg.WithinDays,
		now:        time.Now,
	}
}

// apiKey returns the stored key, or the configured one when none is stored.
func (s *Service) apiKey(ctx context.Context) (string, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	if st.HasAIKey() {
		return st.AIAPIKey, nil
	}
	return s.defaultKey, nil
}
