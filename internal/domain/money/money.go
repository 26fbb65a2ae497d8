package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

var hundred = decimal.NewFromInt(100)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromDecimal parses a major-unit amount such as 5.99, rounding half-up to cents.
func FromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Mul(hundred).Round(0).IntPart()}
}

func ParseDecimal(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return FromDecimal(d), nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// MulRate multiplies by a fractional rate (0.08 for 8%) and rounds half-up to cents.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{cents: decimal.NewFromInt(m.cents).Mul(rate).Round(0).IntPart()}
}

// Percent returns pct percent of m rounded half-up to cents.
func (m Money) Percent(pct decimal.Decimal) Money {
	return m.MulRate(pct.Div(hundred))
}

func (m Money) IsNegative() bool { return m.cents < 0 }
func (m Money) IsZero() bool     { return m.cents == 0 }

func (m Money) Max(other Money) Money {
	if other.cents > m.cents {
		return other
	}
	return m
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}
