package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// CheckAPIKey reports whether the collaborator accepts key. Errors count as invalid.
func (s *Service) CheckAPIKey(ctx context.Context, input APIKeyInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}
	return s.llm.CheckKey(ctx, strings.TrimSpace(input.Key)), nil
}

// SaveAPIKey stores key only when the collaborator accepts it. The bool
// reports the check result. A rejected key leaves settings unchanged.
func (s *Service) SaveAPIKey(ctx context.Context, input APIKeyInput) (bool, domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return false, domain.Settings{}, err
	}

	key := strings.TrimSpace(input.Key)
	if !s.llm.CheckKey(ctx, key) {
		s.log.InfoContext(ctx, "api key not saved: rejected")
		current, err := s.settings.Get(ctx)
		if err != nil {
			return false, domain.Settings{}, fmt.Errorf("get settings: %w", err)
		}
		return false, current, nil
	}

	saved, err := s.settings.SaveAPIKey(ctx, key)
	if err != nil {
		return true, domain.Settings{}, fmt.Errorf("save api key: %w", err)
	}

	s.log.InfoContext(ctx, "api key saved", slog.Bool("has_ai_key", saved.HasAIKey()))
	return true, saved, nil
}

// ClearAPIKey removes the stored key; the configured key applies again.
func (s *Service) ClearAPIKey(ctx context.Context) (domain.Settings, error) {
	saved, err := s.settings.SaveAPIKey(ctx, "")
	if err != nil {
		return domain.Settings{}, fmt.Errorf("clear api key: %w", err)
	}
	s.log.InfoContext(ctx, "api key cleared")
	return saved, nil
}
