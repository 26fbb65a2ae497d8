package response

import (
	"time"

	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VariantResponse struct {
	Name                 string `json:"name"`
	Value                string `json:"value"`
	PriceAdjustmentCents int64  `json:"price_adjustment_cents"`
}

type CartItemResponse struct {
	ProductID        uuid.UUID        `json:"product_id"`
	Name             string           `json:"name"`
	Image            string           `json:"image,omitempty"`
	Quantity         int              `json:"quantity"`
	Variant          *VariantResponse `json:"variant,omitempty"`
	VariantSignature string           `json:"variant_signature,omitempty"`
	UnitPriceCents   int64            `json:"unit_price_cents"`
	AmountCents      int64            `json:"amount_cents"`
	InStock          bool             `json:"in_stock"`
	AvailableQty     *int             `json:"available_qty,omitempty"`
	StockReason      string           `json:"stock_reason"`
	AddedAt          time.Time        `json:"added_at"`
}

type CouponResponse struct {
	Code      string `json:"code"`
	Kind      string `json:"kind"`
	Magnitude string `json:"magnitude"`
}

type CartResponse struct {
	ID             uuid.UUID          `json:"id"`
	IsGuest        bool               `json:"is_guest"`
	Items          []CartItemResponse `json:"items"`
	ItemCount      int                `json:"item_count"`
	Coupon         *CouponResponse    `json:"coupon,omitempty"`
	ShippingMethod string             `json:"shipping_method"`
	SubtotalCents  int64              `json:"subtotal_cents"`
	DiscountCents  int64              `json:"discount_cents"`
	TaxCents       int64              `json:"tax_cents"`
	ShippingCents  int64              `json:"shipping_cents"`
	TotalCents     int64              `json:"total_cents"`
	ExpiresAt      *time.Time         `json:"expires_at,omitempty"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	resp := &CartResponse{}
	// field names match the view; copier drops the internal fields
	if err := copier.CopyWithOption(resp, v, copier.Option{DeepCopy: true}); err != nil {
		panic("cart response copy: " + err.Error())
	}
	if resp.Items == nil {
		resp.Items = []CartItemResponse{}
	}
	return resp
}

type StockIssueResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Requested int       `json:"requested"`
	Available int       `json:"available"`
}

type StockValidationResponse struct {
	IsValid bool                 `json:"is_valid"`
	Issues  []StockIssueResponse `json:"issues"`
}

func FromStockValidationView(v *queries.StockValidationView) *StockValidationResponse {
	resp := &StockValidationResponse{IsValid: v.IsValid, Issues: make([]StockIssueResponse, 0, len(v.Issues))}
	for _, is := range v.Issues {
		resp.Issues = append(resp.Issues, StockIssueResponse(is))
	}
	return resp
}
