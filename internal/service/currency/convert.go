package currency

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

// Conversion is the result of converting one amount.
type Conversion struct {
	Amount   decimal.Decimal
	Currency domain.Currency
	Base     decimal.Decimal
	Divisor  decimal.Decimal
}

// Convert turns a user-entered amount into base units using the current rates.
// An unparseable amount converts to zero.
func (s *Service) Convert(input ConvertInput) (Conversion, error) {
	if err := input.Validate(); err != nil {
		return Conversion{}, err
	}

	code := domain.ParseCurrency(input.Currency)
	amount := domain.ParseAmount(input.Amount)
	rates := s.Rates()
	divisor, _ := rates.Divisor(code)

	return Conversion{
		Amount:   amount,
		Currency: code,
		Base:     domain.ToBase(amount, code, rates),
		Divisor:  divisor,
	}, nil
}
