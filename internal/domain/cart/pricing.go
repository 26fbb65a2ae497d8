package cart

import (
	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultTaxRate = decimal.RequireFromString("0.08")

// ProductSnapshot is the catalog's view of a product at read time.
type ProductSnapshot struct {
	ID    uuid.UUID
	Name  string
	Image string
	Price money.Money
	// keyed by variant signature
	VariantAdjustments map[string]money.Money
	Inventory          inventory.Record
}

// VariantAdjustment prefers the catalog's current adjustment over the one
// captured when the line was added.
func (p ProductSnapshot) VariantAdjustment(v *Variant) money.Money {
	if v == nil {
		return money.Zero()
	}
	if adj, ok := p.VariantAdjustments[v.Signature()]; ok {
		return adj
	}
	return v.PriceAdjustment
}

type Catalog map[uuid.UUID]ProductSnapshot

type Engine struct {
	coupons *coupon.Applier
	rates   ShippingRates
	taxRate decimal.Decimal
}

func NewEngine(coupons *coupon.Applier, rates ShippingRates, taxRate decimal.Decimal) *Engine {
	if coupons == nil {
		coupons = coupon.NewApplier(coupon.PolicyCapAtSubtotal)
	}
	if rates == nil {
		rates = DefaultShippingRates()
	}
	return &Engine{coupons: coupons, rates: rates, taxRate: taxRate}
}

func NewDefaultEngine() *Engine {
	return NewEngine(nil, nil, DefaultTaxRate)
}

func (e *Engine) TaxRate() decimal.Decimal { return e.taxRate }

func (e *Engine) ShippingRate(m ShippingMethod) money.Money { return e.rates.Rate(m) }

// Recompute re-prices every line and rewrites the cart totals. Lines whose
// product is missing from the catalog contribute nothing.
func (e *Engine) Recompute(c *Cart, catalog Catalog) {
	if len(c.lines) == 0 {
		c.totals = Totals{}
		return
	}

	subtotal := money.Zero()
	for i := range c.lines {
		l := &c.lines[i]
		snap, ok := catalog[l.productID]
		if !ok {
			l.resolved = false
			l.unitPrice = money.Zero()
			l.amount = money.Zero()
			continue
		}
		l.resolved = true
		l.name = snap.Name
		l.image = snap.Image
		l.unitPrice = snap.Price.Add(snap.VariantAdjustment(l.variant))
		l.amount = l.unitPrice.Mul(l.quantity)
		subtotal = subtotal.Add(l.amount)
	}

	discount := e.coupons.ComputeDiscount(subtotal, c.coupon)
	shipping := e.rates.Rate(c.shippingMethod)
	tax := subtotal.Sub(discount).Max(money.Zero()).MulRate(e.taxRate)

	c.totals = Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Sub(discount).Add(tax).Add(shipping),
	}
}
