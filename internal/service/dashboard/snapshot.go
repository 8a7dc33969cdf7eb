package dashboard

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// DomainView is one dashboard row.
type DomainView struct {
	Domain       domain.Domain
	Status       domain.ProbeStatus
	Progress     float64
	DaysLeft     int
	HasOpenTasks bool
}

// Snapshot is an immutable dashboard view. Every change produces a new value.
type Snapshot struct {
	Cycle       uint64
	Domains     []DomainView
	Todos       []domain.Todo
	Refreshing  bool
	RefreshedAt time.Time
}

// StatusCounts tallies probe statuses in a snapshot.
type StatusCounts struct {
	Checking int
	Online   int
	Offline  int
}

// Counts tallies the probe status of every domain.
func (s Snapshot) Counts() StatusCounts {
	var c StatusCounts
	for _, d := range s.Domains {
		switch d.Status {
		case domain.ProbeOnline:
			c.Online++
		case domain.ProbeOffline:
			c.Offline++
		default:
			c.Checking++
		}
	}
	return c
}

// GeneralTodos returns the todos not attached to any domain.
func (s Snapshot) GeneralTodos() []domain.Todo {
	var out []domain.Todo
	for _, t := range s.Todos {
		if t.IsGeneral() {
			out = append(out, t)
		}
	}
	return out
}

// TodosFor returns the todos of one domain.
func (s Snapshot) TodosFor(id uuid.UUID) []domain.Todo {
	var out []domain.Todo
	for _, t := range s.Todos {
		if t.DomainID != nil && *t.DomainID == id {
			out = append(out, t)
		}
	}
	return out
}

// withStatus returns a copy with one domain's status replaced. Results from
// an older cycle are dropped.
func (s Snapshot) withStatus(cycle uint64, id uuid.UUID, status domain.ProbeStatus) Snapshot {
	if s.Cycle != cycle {
		return s
	}
	i := slices.IndexFunc(s.Domains, func(v DomainView) bool { return v.Domain.ID == id })
	if i < 0 {
		return s
	}
	s.Domains = slices.Clone(s.Domains)
	s.Domains[i].Status = status
	return s
}

// withTodos returns a copy holding todos, with open-task flags recomputed.
func (s Snapshot) withTodos(todos []domain.Todo) Snapshot {
	open := domain.OpenTaskDomains(todos)
	views := slices.Clone(s.Domains)
	for i := range views {
		views[i].HasOpenTasks = open[views[i].Domain.ID]
	}
	s.Domains = views
	s.Todos = todos
	return s
}

func newViews(domains []domain.Domain, open map[uuid.UUID]bool, now time.Time) []DomainView {
	views := make([]DomainView, len(domains))
	for i, d := range domains {
		views[i] = DomainView{
			Domain:       d,
			Status:       domain.ProbeChecking,
			Progress:     domain.RenewalProgress(d.RenewsAt, now),
			DaysLeft:     domain.DaysUntilRenewal(d.RenewsAt, now),
			HasOpenTasks: open[d.ID],
		}
	}
	return views
}
