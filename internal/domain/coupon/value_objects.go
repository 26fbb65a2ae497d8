package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidCouponKind      = errors.New("coupon kind must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixed:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidCouponKind
	}
	return k, nil
}

// FixedPolicy decides what happens when a fixed discount exceeds the subtotal.
type FixedPolicy string

const (
	PolicyCapAtSubtotal FixedPolicy = "cap"
	PolicyUncapped      FixedPolicy = "uncapped"
)

func ParsePolicy(s string) FixedPolicy {
	if FixedPolicy(strings.ToLower(s)) == PolicyUncapped {
		return PolicyUncapped
	}
	return PolicyCapAtSubtotal
}
