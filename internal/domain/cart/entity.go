package cart

import (
	"errors"
	"time"

	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/money"

	"github.com/google/uuid"
)

// GuestTTL is how long an unconverted guest cart survives after its last activity.
const GuestTTL = 24 * time.Hour

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidProduct  = errors.New("product id is required")
)

type Line struct {
	productID  uuid.UUID
	quantity   int
	variant    *Variant
	addedAt    time.Time
	modifiedAt time.Time

	// last priced values, written by Engine.Recompute
	name      string
	image     string
	unitPrice money.Money
	amount    money.Money
	resolved  bool
}

func ReconstructLine(productID uuid.UUID, quantity int, variant *Variant, addedAt, modifiedAt time.Time) Line {
	return Line{
		productID:  productID,
		quantity:   quantity,
		variant:    variant,
		addedAt:    addedAt,
		modifiedAt: modifiedAt,
	}
}

func (l Line) ProductID() uuid.UUID   { return l.productID }
func (l Line) Quantity() int          { return l.quantity }
func (l Line) Variant() *Variant      { return l.variant }
func (l Line) AddedAt() time.Time     { return l.addedAt }
func (l Line) ModifiedAt() time.Time  { return l.modifiedAt }
func (l Line) Name() string           { return l.name }
func (l Line) Image() string          { return l.image }
func (l Line) UnitPrice() money.Money { return l.unitPrice }
func (l Line) Amount() money.Money    { return l.amount }
func (l Line) Resolved() bool         { return l.resolved }

func (l Line) matches(productID uuid.UUID, signature string) bool {
	return l.productID == productID && l.variant.Signature() == signature
}

type Cart struct {
	id             uuid.UUID
	owner          Owner
	lines          []Line
	coupon         *coupon.Coupon
	shippingMethod ShippingMethod
	totals         Totals
	lastActivityAt time.Time
	expiresAt      *time.Time
	createdAt      time.Time
	version        int64
}

func New(owner Owner, now time.Time) (*Cart, error) {
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	c := &Cart{
		id:             uuid.New(),
		owner:          owner,
		shippingMethod: ShippingStandard,
		createdAt:      now,
	}
	c.touch(now)
	return c, nil
}

func Reconstruct(
	id uuid.UUID,
	owner Owner,
	lines []Line,
	cp *coupon.Coupon,
	method ShippingMethod,
	totals Totals,
	lastActivityAt time.Time,
	expiresAt *time.Time,
	createdAt time.Time,
	version int64,
) *Cart {
	return &Cart{
		id:             id,
		owner:          owner,
		lines:          lines,
		coupon:         cp,
		shippingMethod: method,
		totals:         totals,
		lastActivityAt: lastActivityAt,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
		version:        version,
	}
}

func (c *Cart) ID() uuid.UUID                  { return c.id }
func (c *Cart) Owner() Owner                   { return c.owner }
func (c *Cart) Coupon() *coupon.Coupon         { return c.coupon }
func (c *Cart) ShippingMethod() ShippingMethod { return c.shippingMethod }
func (c *Cart) Totals() Totals                 { return c.totals }
func (c *Cart) LastActivityAt() time.Time      { return c.lastActivityAt }
func (c *Cart) ExpiresAt() *time.Time          { return c.expiresAt }
func (c *Cart) CreatedAt() time.Time           { return c.createdAt }
func (c *Cart) Version() int64                 { return c.version }
func (c *Cart) IsEmpty() bool                  { return len(c.lines) == 0 }

// MarkSaved records the version the store assigned on write.
func (c *Cart) MarkSaved(version int64) {
	c.version = version
}

// Lines returns a copy; mutate through the cart methods.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsExpired(now time.Time) bool {
	return c.expiresAt != nil && !now.Before(*c.expiresAt)
}

// ProductIDs lists distinct products in line order.
func (c *Cart) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(c.lines))
	ids := make([]uuid.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.productID]; ok {
			continue
		}
		seen[l.productID] = struct{}{}
		ids = append(ids, l.productID)
	}
	return ids
}

// AddItem merges into the line with the same product and variant signature,
// or appends a new line.
func (c *Cart) AddItem(productID uuid.UUID, qty int, variant *Variant, now time.Time) error {
	if productID == uuid.Nil {
		return ErrInvalidProduct
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	sig := variant.Signature()
	for i := range c.lines {
		if c.lines[i].matches(productID, sig) {
			c.lines[i].quantity += qty
			c.lines[i].modifiedAt = now
			c.touch(now)
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		productID:  productID,
		quantity:   qty,
		variant:    variant,
		addedAt:    now,
		modifiedAt: now,
	})
	c.touch(now)
	return nil
}

// UpdateQuantity sets the quantity exactly; qty <= 0 removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, qty int, variantSignature string, now time.Time) error {
	if qty <= 0 {
		return c.RemoveItem(productID, variantSignature, now)
	}
	for i := range c.lines {
		if c.lines[i].matches(productID, variantSignature) {
			c.lines[i].quantity = qty
			c.lines[i].modifiedAt = now
			c.touch(now)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) RemoveItem(productID uuid.UUID, variantSignature string, now time.Time) error {
	for i := range c.lines {
		if c.lines[i].matches(productID, variantSignature) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.touch(now)
			return nil
		}
	}
	return ErrLineNotFound
}

// ApplyCoupon replaces any coupon already on the cart.
func (c *Cart) ApplyCoupon(cp coupon.Coupon, now time.Time) {
	c.coupon = &cp
	c.touch(now)
}

func (c *Cart) RemoveCoupon(now time.Time) {
	c.coupon = nil
	c.touch(now)
}

func (c *Cart) SetShippingMethod(m ShippingMethod, now time.Time) {
	c.shippingMethod = m
	c.touch(now)
}

// Clear drops lines and coupon and zeroes every total.
func (c *Cart) Clear(now time.Time) {
	c.lines = nil
	c.coupon = nil
	c.totals = Totals{}
	c.touch(now)
}

func (c *Cart) touch(now time.Time) {
	c.lastActivityAt = now
	if c.owner.IsGuest() {
		exp := now.Add(GuestTTL)
		c.expiresAt = &exp
	}
}
