package portfolio

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const maxDataSheetLen = 10000

// MoneyInput is a cost as the user typed it. An empty amount means "no cost".
type MoneyInput struct {
	Amount   string
	Currency string
}

// IsEmpty reports whether no amount was given.
func (m MoneyInput) IsEmpty() bool { return strings.TrimSpace(m.Amount) == "" }

func (m MoneyInput) validate(field string) []domain.FieldError {
	if m.IsEmpty() {
		return nil
	}
	var errs []domain.FieldError
	if !domain.ParseCurrency(m.Currency).IsValid() {
		errs = append(errs, domain.FieldError{Field: field + ".currency", Message: "must be one of USD, SAR, EGP"})
	}
	if domain.ParseAmount(m.Amount).IsNegative() {
		errs = append(errs, domain.FieldError{Field: field + ".amount", Message: "must not be negative"})
	}
	return errs
}

func (m MoneyInput) toBase(rates domain.RateTable) decimal.Decimal {
	return domain.ToBase(domain.ParseAmount(m.Amount), domain.ParseCurrency(m.Currency), rates)
}

// CreateDomainInput holds the parameters for adding a domain.
type CreateDomainInput struct {
	Name        string
	State       domain.DomainState // empty = active
	CollectedAt time.Time
	RenewsAt    time.Time
	DataSheet   string
	ClientCost  *MoneyInput
	OfficeCost  *MoneyInput
	Projects    []domain.ProjectTag
	ClientName  *string
	ClientEmail *string
}

// Validate checks all fields and collects all errors.
func (i CreateDomainInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeDomainName(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.State != "" && !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "must be active or inactive"})
	}
	if i.RenewsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "renews_at", Message: "required"})
	}
	if len(i.DataSheet) > maxDataSheetLen {
		errs = append(errs, domain.FieldError{Field: "data_sheet", Message: "max 10000 characters"})
	}
	if i.ClientCost != nil {
		errs = append(errs, i.ClientCost.validate("client_cost")...)
	}
	if i.OfficeCost != nil {
		errs = append(errs, i.OfficeCost.validate("office_cost")...)
	}
	errs = append(errs, validateProjects(i.Projects)...)
	errs = append(errs, validateEmail(i.ClientEmail)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDomainInput holds the parameters for editing a domain.
// Nil fields are left unchanged.
type UpdateDomainInput struct {
	ID          uuid.UUID
	Name        *string
	State       *domain.DomainState
	CollectedAt *time.Time
	RenewsAt    *time.Time
	DataSheet   *string
	ClientCost  *MoneyInput // empty amount = clear
	OfficeCost  *MoneyInput // empty amount = clear
	Projects    []domain.ProjectTag
	ClientName  *string
	ClientEmail *string
}

// Validate checks all fields and collects all errors.
func (i UpdateDomainInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.State == nil && i.CollectedAt == nil && i.RenewsAt == nil &&
		i.DataSheet == nil && i.ClientCost == nil && i.OfficeCost == nil && i.Projects == nil &&
		i.ClientName == nil && i.ClientEmail == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && domain.NormalizeDomainName(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.State != nil && !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "must be active or inactive"})
	}
	if i.RenewsAt != nil && i.RenewsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "renews_at", Message: "must be a valid date"})
	}
	if i.DataSheet != nil && len(*i.DataSheet) > maxDataSheetLen {
		errs = append(errs, domain.FieldError{Field: "data_sheet", Message: "max 10000 characters"})
	}
	if i.ClientCost != nil {
		errs = append(errs, i.ClientCost.validate("client_cost")...)
	}
	if i.OfficeCost != nil {
		errs = append(errs, i.OfficeCost.validate("office_cost")...)
	}
	if i.Projects != nil {
		errs = append(errs, validateProjects(i.Projects)...)
	}
	errs = append(errs, validateEmail(i.ClientEmail)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListDomainsInput selects one page of domains.
type ListDomainsInput struct {
	Limit  int
	Cursor string
}

func validateProjects(projects []domain.ProjectTag) []domain.FieldError {
	if len(projects) == 0 {
		return []domain.FieldError{{Field: "projects", Message: "at least one project is required"}}
	}
	for _, p := range projects {
		if !p.IsValid() {
			return []domain.FieldError{{Field: "projects", Message: "unknown project " + string(p)}}
		}
	}
	return nil
}

func validateEmail(email *string) []domain.FieldError {
	if email == nil || strings.TrimSpace(*email) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(*email)); err != nil {
		return []domain.FieldError{{Field: "client_email", Message: "invalid email address"}}
	}
	return nil
}

// uniqueProjects drops duplicate tags, keeping the canonical order.
func uniqueProjects(projects []domain.ProjectTag) []domain.ProjectTag {
	out := make([]domain.ProjectTag, 0, len(projects))
	for _, tag := range domain.AllProjectTags {
		for _, p := range projects {
			if p == tag {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}
