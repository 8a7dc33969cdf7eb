package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReminderInput describes one client that should receive a renewal reminder.
type ReminderInput struct {
	Domain      string
	RenewsAt    time.Time
	ClientName  string
	ClientEmail string
	Balance     decimal.Decimal
	PastDue     bool
}

// Reminder is a drafted message for one client.
type Reminder struct {
	Domain      string `json:"domain"`
	ClientEmail string `json:"client_email"`
	Message     string `json:"message"`
}

// ReminderBatch is the outcome of one drafting request.
// Generated is false when the text-generation collaborator failed.
type ReminderBatch struct {
	Generated bool
	Reminders []Reminder
}

// ReminderCandidates selects domains with a client email that renew within
// the window or are already past due. Inactive domains are skipped and input
// order is kept.
func ReminderCandidates(domains []Domain, now time.Time, within time.Duration) []ReminderInput {
	var out []ReminderInput
	deadline := now.Add(within)
	for _, d := range domains {
		if d.State == DomainStateInactive || d.ClientEmail == nil || *d.ClientEmail == "" {
			continue
		}
		if d.RenewsAt.After(deadline) {
			continue
		}
		in := ReminderInput{
			Domain:      d.Name,
			RenewsAt:    d.RenewsAt,
			ClientEmail: *d.ClientEmail,
			Balance:     decimal.Zero,
			PastDue:     d.IsPastDue(now),
		}
		if d.ClientName != nil {
			in.ClientName = *d.ClientName
		}
		if d.ClientCost.Valid {
			in.Balance = d.ClientCost.Decimal
		}
		out = append(out, in)
	}
	return out
}
