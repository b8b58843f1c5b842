package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"atm-teller/internal/errors"
)

// MoneyPlaces is the number of decimal places every balance carries.
const MoneyPlaces = 2

// Bounds on parsed values. Rounding rescales by 10^exponent, so an input
// like "1e999999999" must be refused before it gets there.
const (
	maxExponent = 18
	maxDigits   = 30
)

// FormatMoney renders d with exactly two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// InMoneyRange reports whether d is small enough in scale and precision
// to be rounded and formatted safely.
func InMoneyRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxExponent && exp >= -maxExponent && d.NumDigits() <= maxDigits
}

// ParseAmount parses user input as a monetary amount rounded to two
// places. Non-numeric or out-of-range input yields a ValidationFailed
// error; zero or negative amounts yield errors.ErrInvalidAmount.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, errors.NewAppError(errors.ValidationFailed, "amount is not a numeric value").WithDetails(err.Error())
	}
	if !InMoneyRange(amount) {
		return decimal.Zero, errors.NewAppError(errors.ValidationFailed, "amount is out of range").WithDetails(input)
	}
	amount = amount.Round(MoneyPlaces)
	if !amount.IsPositive() {
		return decimal.Zero, errors.ErrInvalidAmount
	}
	return amount, nil
}
