package coupon

import (
	"commerce-core/internal/domain/money"

	"github.com/shopspring/decimal"
)

var maxPercent = decimal.NewFromInt(100)

// Coupon is the discount descriptor attached to a cart. Registry validation
// (expiry, usage limits) happens before it reaches the cart.
type Coupon struct {
	code    Code
	kind    Kind
	percent decimal.Decimal
	amount  money.Money
}

func NewPercentage(code string, percent decimal.Decimal) (Coupon, error) {
	c, err := NewCouponCode(code)
	if err != nil {
		return Coupon{}, err
	}
	if percent.IsNegative() || percent.GreaterThan(maxPercent) {
		return Coupon{}, ErrInvalidDiscountPercent
	}
	return Coupon{code: c, kind: KindPercentage, percent: percent}, nil
}

func NewFixed(code string, amount money.Money) (Coupon, error) {
	c, err := NewCouponCode(code)
	if err != nil {
		return Coupon{}, err
	}
	if amount.IsNegative() {
		return Coupon{}, ErrInvalidDiscountAmount
	}
	return Coupon{code: c, kind: KindFixed, amount: amount}, nil
}

// New builds a coupon from its wire form. magnitude is a percent for
// percentage coupons and a major-unit amount for fixed ones.
func New(code, kind string, magnitude decimal.Decimal) (Coupon, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Coupon{}, err
	}
	if k == KindPercentage {
		return NewPercentage(code, magnitude)
	}
	return NewFixed(code, money.FromDecimal(magnitude))
}

func Reconstruct(code string, kind Kind, magnitude decimal.Decimal) Coupon {
	c := Coupon{code: Code(code), kind: kind}
	if kind == KindPercentage {
		c.percent = magnitude
	} else {
		c.amount = money.FromDecimal(magnitude)
	}
	return c
}

func (c Coupon) Code() Code   { return c.code }
func (c Coupon) Kind() Kind   { return c.kind }
func (c Coupon) IsZero() bool { return c.code == "" }

// Magnitude returns the percent for percentage coupons, the amount in major units otherwise.
func (c Coupon) Magnitude() decimal.Decimal {
	if c.kind == KindPercentage {
		return c.percent
	}
	return c.amount.Decimal()
}
