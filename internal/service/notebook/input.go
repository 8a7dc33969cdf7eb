package notebook

import (
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const (
	maxFaultLen = 2000
	maxNoteLen  = 50000
)

// CreateFaultInput holds the text of a new fault.
type CreateFaultInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i CreateFaultInput) Validate() error {
	text := strings.TrimSpace(i.Text)
	if text == "" {
		return domain.NewValidationError("text", "required")
	}
	if len(text) > maxFaultLen {
		return domain.NewValidationError("text", "max 2000 characters")
	}
	return nil
}

// SaveNoteInput replaces the shared note.
type SaveNoteInput struct {
	Note string
}

// Validate checks all fields and collects all errors.
func (i SaveNoteInput) Validate() error {
	if len(i.Note) > maxNoteLen {
		return domain.NewValidationError("note", "max 50000 characters")
	}
	return nil
}

// ListFaultsInput selects one page of faults.
type ListFaultsInput struct {
	Limit  int
	Cursor string
}
