package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain is a managed internet domain name with its renewal bookkeeping.
type Domain struct {
	ID          uuid.UUID
	Name        string
	State       DomainState
	CollectedAt time.Time
	RenewsAt    time.Time
	DataSheet   string
	ClientCost  decimal.NullDecimal
	OfficeCost  decimal.NullDecimal
	Projects    []ProjectTag
	ClientName  *string
	ClientEmail *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NextRenewal returns the renewal date advanced by exactly one year.
func (d Domain) NextRenewal() time.Time {
	return d.RenewsAt.AddDate(1, 0, 0)
}

// IsPastDue reports whether the renewal date has been reached.
func (d Domain) IsPastDue(now time.Time) bool {
	return !d.RenewsAt.After(now)
}

// HasProject reports whether the domain is tagged with p.
func (d Domain) HasProject(p ProjectTag) bool {
	for _, tag := range d.Projects {
		if tag == p {
			return true
		}
	}
	return false
}

// DomainUpdateParams holds the fields of a partial domain update.
// Nil fields are left unchanged. ClearClientCost and ClearOfficeCost
// reset the corresponding cost to empty.
type DomainUpdateParams struct {
	Name            *string
	State           *DomainState
	CollectedAt     *time.Time
	RenewsAt        *time.Time
	DataSheet       *string
	ClientCost      *decimal.Decimal
	OfficeCost      *decimal.Decimal
	ClearClientCost bool
	ClearOfficeCost bool
	Projects        []ProjectTag
	ClientName      *string
	ClientEmail     *string
}

// IsEmpty reports whether the params would change nothing.
func (p DomainUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.State == nil && p.CollectedAt == nil && p.RenewsAt == nil &&
		p.DataSheet == nil && p.ClientCost == nil && p.OfficeCost == nil &&
		!p.ClearClientCost && !p.ClearOfficeCost && p.Projects == nil &&
		p.ClientName == nil && p.ClientEmail == nil
}
