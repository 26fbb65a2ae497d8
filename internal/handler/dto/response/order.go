package response

import (
	"time"

	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AddressResponse struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type PaymentResponse struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type OrderLineResponse struct {
	ProductID      uuid.UUID        `json:"product_id"`
	Name           string           `json:"name"`
	Image          string           `json:"image,omitempty"`
	UnitPriceCents int64            `json:"unit_price_cents"`
	Quantity       int              `json:"quantity"`
	Variant        *VariantResponse `json:"variant,omitempty"`
	LineTotalCents int64            `json:"line_total_cents"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	Number            string              `json:"number"`
	Status            string              `json:"status"`
	Lines             []OrderLineResponse `json:"lines"`
	ShippingAddress   AddressResponse     `json:"shipping_address"`
	BillingAddress    AddressResponse     `json:"billing_address"`
	Payment           PaymentResponse     `json:"payment"`
	SubtotalCents     int64               `json:"subtotal_cents"`
	TaxCents          int64               `json:"tax_cents"`
	ShippingCostCents int64               `json:"shipping_cost_cents"`
	DiscountCents     int64               `json:"discount_cents"`
	TotalCents        int64               `json:"total_cents"`
	ShippingMethod    string              `json:"shipping_method"`
	CouponCode        string              `json:"coupon_code,omitempty"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	IsGift            bool                `json:"is_gift"`
	GiftMessage       string              `json:"gift_message,omitempty"`
	CancelReason      string              `json:"cancel_reason,omitempty"`
	ConfirmedAt       *time.Time          `json:"confirmed_at,omitempty"`
	ProcessingAt      *time.Time          `json:"processing_at,omitempty"`
	ShippedAt         *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt       *time.Time          `json:"cancelled_at,omitempty"`
	ReturnedAt        *time.Time          `json:"returned_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{}
	if err := copier.CopyWithOption(resp, v, copier.Option{DeepCopy: true}); err != nil {
		panic("order response copy: " + err.Error())
	}
	if resp.Lines == nil {
		resp.Lines = []OrderLineResponse{}
	}
	return resp
}

type OrderListResponse struct {
	Items      []*OrderResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func FromOrderPage(p *queries.OrderPage) *OrderListResponse {
	resp := &OrderListResponse{Items: make([]*OrderResponse, len(p.Items)), NextCursor: p.NextCursor}
	for i, v := range p.Items {
		resp.Items[i] = FromOrderView(v)
	}
	return resp
}
