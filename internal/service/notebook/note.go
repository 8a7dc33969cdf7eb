package notebook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// GetSettings returns the settings document. Callers must not expose the API key.
func (s *Service) GetSettings(ctx context.Context) (domain.Settings, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

// SaveNote replaces the shared note.
func (s *Service) SaveNote(ctx context.Context, input SaveNoteInput) (domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return domain.Settings{}, err
	}

	st, err := s.settings.SaveNote(ctx, input.Note)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("save note: %w", err)
	}

	s.log.InfoContext(ctx, "note saved", slog.Int("length", len(input.Note)))
	return st, nil
}
