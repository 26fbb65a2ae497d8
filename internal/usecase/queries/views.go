package queries

import (
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VariantView struct {
	Name                 string `json:"name"`
	Value                string `json:"value"`
	PriceAdjustmentCents int64  `json:"price_adjustment_cents"`
}

type CartItemView struct {
	ProductID        uuid.UUID    `json:"product_id"`
	Name             string       `json:"name"`
	Image            string       `json:"image,omitempty"`
	Quantity         int          `json:"quantity"`
	Variant          *VariantView `json:"variant,omitempty"`
	VariantSignature string       `json:"variant_signature,omitempty"`
	UnitPriceCents   int64        `json:"unit_price_cents"`
	AmountCents      int64        `json:"amount_cents"`
	Resolved         bool         `json:"resolved"`
	InStock          bool         `json:"in_stock"`
	AvailableQty     *int         `json:"available_qty,omitempty"`
	StockReason      string       `json:"stock_reason"`
	AddedAt          time.Time    `json:"added_at"`
	ModifiedAt       time.Time    `json:"modified_at"`
}

type CouponView struct {
	Code      string `json:"code"`
	Kind      string `json:"kind"`
	Magnitude string `json:"magnitude"`
}

type CartView struct {
	ID             uuid.UUID      `json:"id"`
	OwnerKey       string         `json:"owner_key"`
	IsGuest        bool           `json:"is_guest"`
	Items          []CartItemView `json:"items"`
	ItemCount      int            `json:"item_count"`
	Coupon         *CouponView    `json:"coupon,omitempty"`
	ShippingMethod string         `json:"shipping_method"`
	SubtotalCents  int64          `json:"subtotal_cents"`
	DiscountCents  int64          `json:"discount_cents"`
	TaxCents       int64          `json:"tax_cents"`
	ShippingCents  int64          `json:"shipping_cents"`
	TotalCents     int64          `json:"total_cents"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
	Version        int64          `json:"version"`
}

// NewCartView expects c to have been recomputed against catalog.
func NewCartView(c *cart.Cart, catalog cart.Catalog) *CartView {
	t := c.Totals()
	v := &CartView{
		ID:             c.ID(),
		OwnerKey:       c.Owner().Key(),
		IsGuest:        c.Owner().IsGuest(),
		Items:          make([]CartItemView, 0, len(c.Lines())),
		ShippingMethod: c.ShippingMethod().String(),
		SubtotalCents:  t.Subtotal.Cents(),
		DiscountCents:  t.Discount.Cents(),
		TaxCents:       t.Tax.Cents(),
		ShippingCents:  t.Shipping.Cents(),
		TotalCents:     t.Total.Cents(),
		LastActivityAt: c.LastActivityAt(),
		ExpiresAt:      c.ExpiresAt(),
		Version:        c.Version(),
	}
	if cp := c.Coupon(); cp != nil {
		v.Coupon = &CouponView{
			Code:      cp.Code().String(),
			Kind:      cp.Kind().String(),
			Magnitude: cp.Magnitude().String(),
		}
	}
	for _, l := range c.Lines() {
		av := cart.LineAvailability(l, catalog)
		item := CartItemView{
			ProductID:        l.ProductID(),
			Name:             l.Name(),
			Image:            l.Image(),
			Quantity:         l.Quantity(),
			VariantSignature: l.Variant().Signature(),
			UnitPriceCents:   l.UnitPrice().Cents(),
			AmountCents:      l.Amount().Cents(),
			Resolved:         l.Resolved(),
			InStock:          av.Available,
			AvailableQty:     av.AvailableQty,
			StockReason:      string(av.Reason),
			AddedAt:          l.AddedAt(),
			ModifiedAt:       l.ModifiedAt(),
		}
		if vr := l.Variant(); vr != nil {
			item.Variant = &VariantView{
				Name:                 vr.Name,
				Value:                vr.Value,
				PriceAdjustmentCents: vr.PriceAdjustment.Cents(),
			}
		}
		v.ItemCount += l.Quantity()
		v.Items = append(v.Items, item)
	}
	return v
}

type StockIssueView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Requested int       `json:"requested"`
	Available int       `json:"available"`
}

type StockValidationView struct {
	IsValid bool             `json:"is_valid"`
	Issues  []StockIssueView `json:"issues"`
}

func NewStockIssueViews(issues []cart.StockIssue) []StockIssueView {
	out := make([]StockIssueView, 0, len(issues))
	for _, is := range issues {
		out = append(out, StockIssueView{
			ProductID: is.ProductID,
			Name:      is.Name,
			Requested: is.Requested,
			Available: is.Available,
		})
	}
	return out
}

type AddressView struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type PaymentView struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type OrderLineView struct {
	ProductID      uuid.UUID    `json:"product_id"`
	Name           string       `json:"name"`
	Image          string       `json:"image,omitempty"`
	UnitPriceCents int64        `json:"unit_price_cents"`
	Quantity       int          `json:"quantity"`
	Variant        *VariantView `json:"variant,omitempty"`
	LineTotalCents int64        `json:"line_total_cents"`
}

type OrderView struct {
	ID                uuid.UUID       `json:"id"`
	Number            string          `json:"number"`
	UserID            uuid.UUID       `json:"user_id"`
	Status            string          `json:"status"`
	Lines             []OrderLineView `json:"lines"`
	ShippingAddress   AddressView     `json:"shipping_address"`
	BillingAddress    AddressView     `json:"billing_address"`
	Payment           PaymentView     `json:"payment"`
	SubtotalCents     int64           `json:"subtotal_cents"`
	TaxCents          int64           `json:"tax_cents"`
	ShippingCostCents int64           `json:"shipping_cost_cents"`
	DiscountCents     int64           `json:"discount_cents"`
	TotalCents        int64           `json:"total_cents"`
	ShippingMethod    string          `json:"shipping_method"`
	CouponCode        string          `json:"coupon_code,omitempty"`
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	IsGift            bool            `json:"is_gift"`
	GiftMessage       string          `json:"gift_message,omitempty"`
	CancelReason      string          `json:"cancel_reason,omitempty"`
	ConfirmedAt       *time.Time      `json:"confirmed_at,omitempty"`
	ProcessingAt      *time.Time      `json:"processing_at,omitempty"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	ReturnedAt        *time.Time      `json:"returned_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewOrderView(o *order.Order) *OrderView {
	t := o.Totals()
	ts := o.Timestamps()
	v := &OrderView{
		ID:                o.ID(),
		Number:            o.Number(),
		UserID:            o.UserID(),
		Status:            o.Status().String(),
		Lines:             make([]OrderLineView, 0, len(o.Lines())),
		ShippingAddress:   AddressView(o.ShippingAddress()),
		BillingAddress:    AddressView(o.BillingAddress()),
		Payment:           PaymentView{Method: o.Payment().Method, Status: string(o.Payment().Status), TransactionID: o.Payment().TransactionID},
		SubtotalCents:     t.Subtotal.Cents(),
		TaxCents:          t.Tax.Cents(),
		ShippingCostCents: t.ShippingCost.Cents(),
		DiscountCents:     t.Discount.Cents(),
		TotalCents:        t.Total.Cents(),
		ShippingMethod:    o.ShippingMethod(),
		CouponCode:        o.CouponCode(),
		TrackingNumber:    o.TrackingNumber(),
		Notes:             o.Notes(),
		IsGift:            o.Gift().IsGift,
		GiftMessage:       o.Gift().Message,
		CancelReason:      o.CancelReason(),
		ConfirmedAt:       ts.ConfirmedAt,
		ProcessingAt:      ts.ProcessingAt,
		ShippedAt:         ts.ShippedAt,
		DeliveredAt:       ts.DeliveredAt,
		CancelledAt:       ts.CancelledAt,
		ReturnedAt:        ts.ReturnedAt,
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
	for _, l := range o.Lines() {
		lv := OrderLineView{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Image:          l.Image,
			UnitPriceCents: l.UnitPrice.Cents(),
			Quantity:       l.Quantity,
			LineTotalCents: l.LineTotal.Cents(),
		}
		if l.Variant != nil {
			lv.Variant = &VariantView{
				Name:                 l.Variant.Name,
				Value:                l.Variant.Value,
				PriceAdjustmentCents: l.Variant.PriceAdjustment.Cents(),
			}
		}
		v.Lines = append(v.Lines, lv)
	}
	return v
}

type OrderPage struct {
	Items      []*OrderView `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
}
