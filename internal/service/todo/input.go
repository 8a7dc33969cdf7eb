package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const maxTextLen = 2000

// CreateTodoInput holds the parameters for adding a todo.
type CreateTodoInput struct {
	DomainID *uuid.UUID // nil = general task
	Text     string
}

// Validate checks all fields and collects all errors.
func (i CreateTodoInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateText(i.Text)...)
	if i.DomainID != nil && *i.DomainID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "domain_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTodoInput edits a todo. Nil fields are left unchanged.
type UpdateTodoInput struct {
	ID        uuid.UUID
	Text      *string
	Completed *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTodoInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Text == nil && i.Completed == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil {
		errs = append(errs, validateText(*i.Text)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTodosInput filters a todo listing.
type ListTodosInput struct {
	DomainID    *uuid.UUID
	GeneralOnly bool
	// ActiveOnly hides completed todos past the display grace.
	ActiveOnly bool
	Limit      int
	Cursor     string
}

// Validate checks all fields and collects all errors.
func (i ListTodosInput) Validate() error {
	if i.DomainID != nil && i.GeneralOnly {
		return domain.NewValidationError("general", "cannot be combined with domain_id")
	}
	return nil
}

func (i ListTodosInput) filter() domain.TodoFilter {
	f := domain.TodoFilter{GeneralOnly: i.GeneralOnly}
	if i.DomainID != nil {
		f.DomainIDs = []uuid.UUID{*i.DomainID}
	}
	return f
}

func validateText(text string) []domain.FieldError {
	t := strings.TrimSpace(text)
	if t == "" {
		return []domain.FieldError{{Field: "text", Message: "required"}}
	}
	if len(t) > maxTextLen {
		return []domain.FieldError{{Field: "text", Message: "max 2000 characters"}}
	}
	return nil
}
