package reminder

import (
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const maxWithinDays = 366

// DraftInput selects which renewals to remind about.
type DraftInput struct {
	WithinDays int // 0 = configured default
}

// Validate checks all fields and collects all errors.
func (i DraftInput) Validate() error {
	if i.WithinDays < 0 || i.WithinDays > maxWithinDays {
		return domain.NewValidationError("within_days", "must be between 0 and 366")
	}
	return nil
}

// APIKeyInput carries a candidate API key.
type APIKeyInput struct {
	Key string
}

// Validate checks all fields and collects all errors.
func (i APIKeyInput) Validate() error {
	if strings.TrimSpace(i.Key) == "" {
		return domain.NewValidationError("key", "required")
	}
	return nil
}
