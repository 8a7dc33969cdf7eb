package finance

import (
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 1000
	maxDisplayDateLen = 64
)

// CreateTransactionInput is a transaction as the user entered it.
type CreateTransactionInput struct {
	Name        string
	Amount      string
	Currency    string
	Kind        domain.TransactionKind
	DisplayDate *string
}

// Validate checks all fields and collects all errors.
func (i CreateTransactionInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateAmount("amount", i.Amount, i.Currency)...)
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be income or expense"})
	}
	errs = append(errs, validateDisplayDate(i.DisplayDate)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSaleInput is a sale with its expense, both in the same currency.
type CreateSaleInput struct {
	SaleAmount         string
	ExpenseAmount      string
	Currency           string
	ExpenseDescription string
}

// Validate checks all fields and collects all errors.
func (i CreateSaleInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateAmount("sale_amount", i.SaleAmount, i.Currency)...)
	if strings.TrimSpace(i.ExpenseAmount) != "" && domain.ParseAmount(i.ExpenseAmount).IsNegative() {
		errs = append(errs, domain.FieldError{Field: "expense_amount", Message: "must not be negative"})
	}
	if len(i.ExpenseDescription) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "expense_description", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateProjectInput is an income project as the user entered it.
type CreateProjectInput struct {
	Region      domain.ProjectTag
	Name        string
	Cost        string
	Currency    string
	DisplayDate *string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if !i.Region.IsValid() {
		errs = append(errs, domain.FieldError{Field: "region", Message: "must be one of egypt, saudi, mah"})
	}
	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateAmount("cost", i.Cost, i.Currency)...)
	errs = append(errs, validateDisplayDate(i.DisplayDate)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PageInput selects one page of a listing.
type PageInput struct {
	Limit  int
	Cursor string
}

func validateName(name string) []domain.FieldError {
	n := strings.TrimSpace(name)
	if n == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(n) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

func validateAmount(field, amount, currency string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(amount) == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	} else if domain.ParseAmount(amount).IsNegative() {
		errs = append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	}
	if !domain.ParseCurrency(currency).IsValid() {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be one of USD, SAR, EGP"})
	}
	return errs
}

func validateDisplayDate(d *string) []domain.FieldError {
	if d != nil && len(*d) > maxDisplayDateLen {
		return []domain.FieldError{{Field: "display_date", Message: "max 64 characters"}}
	}
	return nil
}
