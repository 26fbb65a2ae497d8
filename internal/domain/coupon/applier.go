package coupon

import "commerce-core/internal/domain/money"

type Applier struct {
	policy FixedPolicy
}

func NewApplier(policy FixedPolicy) *Applier {
	if policy == "" {
		policy = PolicyCapAtSubtotal
	}
	return &Applier{policy: policy}
}

func (a *Applier) Policy() FixedPolicy { return a.policy }

// ComputeDiscount never returns a negative amount.
func (a *Applier) ComputeDiscount(subtotal money.Money, c *Coupon) money.Money {
	if c == nil || c.IsZero() {
		return money.Zero()
	}

	var discount money.Money
	switch c.kind {
	case KindPercentage:
		discount = subtotal.Max(money.Zero()).Percent(c.percent)
	case KindFixed:
		discount = c.amount
		if a.policy == PolicyCapAtSubtotal {
			discount = discount.Min(subtotal.Max(money.Zero()))
		}
	}
	return discount.Max(money.Zero())
}
