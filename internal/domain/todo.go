package domain

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a task attached to a domain, or a general task when DomainID is nil.
type Todo struct {
	ID          uuid.UUID
	DomainID    *uuid.UUID
	Text        string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// IsGeneral reports whether the todo is not attached to any domain.
func (t Todo) IsGeneral() bool { return t.DomainID == nil }

// TodoFilter narrows a todo listing. The zero value lists everything.
type TodoFilter struct {
	DomainIDs   []uuid.UUID
	GeneralOnly bool
	// WithGeneral adds general todos to a DomainIDs listing.
	WithGeneral bool
	OpenOnly    bool
}

// ActiveTodos drops completed todos whose completion is older than grace.
// A todo completed within the grace window stays visible.
func ActiveTodos(todos []Todo, now time.Time, grace time.Duration) []Todo {
	active := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.Completed {
			if grace <= 0 || t.CompletedAt == nil || now.Sub(*t.CompletedAt) >= grace {
				continue
			}
		}
		active = append(active, t)
	}
	return active
}

// OpenTaskDomains returns the set of domain ids that have at least one open todo.
func OpenTaskDomains(todos []Todo) map[uuid.UUID]bool {
	open := make(map[uuid.UUID]bool)
	for _, t := range todos {
		if !t.Completed && t.DomainID != nil {
			open[*t.DomainID] = true
		}
	}
	return open
}

// Fault is a reusable free-text note about a common fault.
type Fault struct {
	ID        uuid.UUID
	Text      string
	CreatedAt time.Time
}
