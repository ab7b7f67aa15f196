package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a validated, non-negative monetary value.
//
// Constructing an Amount through NewAmount is the only way a monetary value
// enters the system, so downstream code never needs to re-check for negative
// values while applying transactions.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps a decimal as an Amount, rejecting negative values.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, fmt.Errorf("amount must not be negative, got %s", value)
	}
	return Amount{value: value}, nil
}

// ParseAmount parses a decimal string into an Amount.
func ParseAmount(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return NewAmount(value)
}

// MustAmount parses a decimal string into an Amount, panicking on failure.
// Intended for tests and package-level constants only.
func MustAmount(s string) Amount {
	amount, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return amount
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) String() string {
	return a.value.String()
}
