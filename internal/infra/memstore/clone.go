package memstore

import (
	"maps"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/order"
)

// Stored entities are never handed out; every read and write goes through a copy.

func cloneCart(c *cart.Cart) *cart.Cart {
	var cp *coupon.Coupon
	if c.Coupon() != nil {
		v := *c.Coupon()
		cp = &v
	}
	var exp *time.Time
	if e := c.ExpiresAt(); e != nil {
		v := *e
		exp = &v
	}
	return cart.Reconstruct(
		c.ID(), c.Owner(), c.Lines(), cp, c.ShippingMethod(), c.Totals(),
		c.LastActivityAt(), exp, c.CreatedAt(), c.Version(),
	)
}

func cloneOrder(o *order.Order) *order.Order {
	return order.Reconstruct(order.ReconstructParams{
		ID: o.ID(),
		Params: order.Params{
			Number:          o.Number(),
			UserID:          o.UserID(),
			Lines:           o.Lines(),
			ShippingAddress: o.ShippingAddress(),
			BillingAddress:  o.BillingAddress(),
			Payment:         o.Payment(),
			Totals:          o.Totals(),
			ShippingMethod:  o.ShippingMethod(),
			CouponCode:      o.CouponCode(),
			Notes:           o.Notes(),
			Gift:            o.Gift(),
		},
		Status:         o.Status(),
		Timestamps:     o.Timestamps(),
		TrackingNumber: o.TrackingNumber(),
		CancelReason:   o.CancelReason(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	})
}

func cloneProduct(p cart.ProductSnapshot) cart.ProductSnapshot {
	p.VariantAdjustments = maps.Clone(p.VariantAdjustments)
	return p
}
