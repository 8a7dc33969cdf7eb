package currency

import (
	"strings"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// ConvertInput is a user-entered amount in some currency.
type ConvertInput struct {
	Amount   string
	Currency string
}

// Validate checks all fields and collects all errors.
func (i ConvertInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Amount) == "" {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "required"})
	}
	if !domain.ParseCurrency(i.Currency).IsValid() {
		errs = append(errs, domain.FieldError{Field: "currency", Message: "must be one of USD, SAR, EGP"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
