//go:build unit || e2e

package builder

import (
	"time"

	"commerce-core/internal/domain/order"
	reqdto "commerce-core/internal/handler/dto/request"
	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
)

// CartView returns a two-line guest cart with a 10% coupon.
func CartView() *queries.CartView {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	expires := now.Add(24 * time.Hour)
	available := 3
	return &queries.CartView{
		ID:       uuid.New(),
		OwnerKey: "guest:sess-1",
		IsGuest:  true,
		Items: []queries.CartItemView{
			{
				ProductID: uuid.New(), Name: "Mug", Quantity: 2,
				UnitPriceCents: 1250, AmountCents: 2500,
				Resolved: true, InStock: true, StockReason: "in_stock",
				AddedAt: now, ModifiedAt: now,
			},
			{
				ProductID: uuid.New(), Name: "Shirt", Quantity: 1,
				Variant:          &queries.VariantView{Name: "size", Value: "L", PriceAdjustmentCents: 200},
				VariantSignature: "size:L",
				UnitPriceCents:   2200, AmountCents: 2200,
				Resolved: true, InStock: true, AvailableQty: &available, StockReason: "in_stock",
				AddedAt: now, ModifiedAt: now,
			},
		},
		ItemCount:      3,
		Coupon:         &queries.CouponView{Code: "SAVE10", Kind: "percentage", Magnitude: "10"},
		ShippingMethod: "standard",
		SubtotalCents:  4700,
		DiscountCents:  470,
		TaxCents:       338,
		ShippingCents:  599,
		TotalCents:     5167,
		LastActivityAt: now,
		ExpiresAt:      &expires,
		Version:        3,
	}
}

func OrderView(status order.Status) *queries.OrderView {
	return queries.NewOrderView(NewOrderBuilder().BuildReconstructed(status, order.Timestamps{}))
}

func CheckoutRequest() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		ShippingAddress: reqdto.AddressRequest{
			FullName:   "Test Buyer",
			Line1:      "1 Market Street",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		},
		Payment:        reqdto.PaymentRequest{Method: "card", Status: "authorized", TransactionID: "txn_test"},
		ShippingMethod: "standard",
		Notes:          "leave at the door",
	}
}
