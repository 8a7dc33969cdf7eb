package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-4217 code accepted at entry time.
type Currency string

const (
	// CurrencyUSD is the base currency every stored amount is expressed in.
	CurrencyUSD Currency = "USD"
	// CurrencySAR is pegged: its divisor never changes.
	CurrencySAR Currency = "SAR"
	// CurrencyEGP floats: its divisor comes from the exchange-rate source.
	CurrencyEGP Currency = "EGP"

	BaseCurrency = CurrencyUSD
)

// SARPerUSD is the fixed divisor for the pegged currency.
var SARPerUSD = decimal.RequireFromString("3.75")

// ParseCurrency normalizes a currency code. Unknown codes are returned as-is
// and convert to zero.
func ParseCurrency(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencySAR, CurrencyEGP:
		return true
	}
	return false
}

// RateTable holds divisors that turn an amount in a currency into base units.
type RateTable struct {
	EGPPerUSD decimal.Decimal
}

// Divisor returns the divisor for code and whether the code is convertible.
func (r RateTable) Divisor(code Currency) (decimal.Decimal, bool) {
	switch code {
	case CurrencyUSD:
		return decimal.NewFromInt(1), true
	case CurrencySAR:
		return SARPerUSD, true
	case CurrencyEGP:
		return r.EGPPerUSD, r.EGPPerUSD.IsPositive()
	}
	return decimal.Zero, false
}

// ToBase converts amount in code to the base currency. A zero amount, an
// empty or unknown code, or a missing rate yields zero. No rounding is applied.
func ToBase(amount decimal.Decimal, code Currency, rates RateTable) decimal.Decimal {
	if amount.IsZero() || code == "" {
		return decimal.Zero
	}
	if code == BaseCurrency {
		return amount
	}

	divisor, ok := rates.Divisor(code)
	if !ok {
		return decimal.Zero
	}
	return amount.Div(divisor)
}

// ParseAmount parses a user-entered amount. Invalid input yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// RateQuote is one fetched floating rate: units of Code per base unit.
type RateQuote struct {
	Code      Currency
	Rate      decimal.Decimal
	FetchedAt time.Time
}
