//go:build unit || e2e

package builder

import (
	"time"

	"commerce-core/internal/domain/money"
	"commerce-core/internal/domain/order"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID              uuid.UUID
	Number          string
	UserID          uuid.UUID
	Lines           []order.Line
	ShippingAddress order.Address
	BillingAddress  order.Address
	Payment         order.Payment
	Totals          order.Totals
	ShippingMethod  string
	CouponCode      string
	Notes           string
	Gift            order.Gift
	CreatedAt       time.Time
}

func NewOrderBuilder() *OrderBuilder {
	lines := []order.Line{
		{
			ProductID:     uuid.New(),
			Name:          "Mug",
			UnitPrice:     money.FromCents(1250),
			Quantity:      2,
			LineTotal:     money.FromCents(2500),
			TrackQuantity: true,
		},
		{
			ProductID: uuid.New(),
			Name:      "Gift Card",
			UnitPrice: money.FromCents(500),
			Quantity:  1,
			LineTotal: money.FromCents(500),
			Variant:   &order.VariantSnapshot{Name: "design", Value: "birthday", PriceAdjustment: money.Zero()},
		},
	}
	address := order.Address{
		FullName:   "Test Buyer",
		Line1:      "1 Market Street",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
	return &OrderBuilder{
		ID:              uuid.New(),
		Number:          order.NumberPrefix + "01HZX0000000000000000TEST1",
		UserID:          uuid.New(),
		Lines:           lines,
		ShippingAddress: address,
		BillingAddress:  address,
		Payment:         order.Payment{Method: "card", Status: order.PaymentAuthorized, TransactionID: "txn_test"},
		// 3000 + 240 + 599 - 0
		Totals: order.Totals{
			Subtotal:     money.FromCents(3000),
			Tax:          money.FromCents(240),
			ShippingCost: money.FromCents(599),
			Discount:     money.Zero(),
			Total:        money.FromCents(3839),
		},
		ShippingMethod: "standard",
		CreatedAt:      time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) params() order.Params {
	return order.Params{
		Number:          b.Number,
		UserID:          b.UserID,
		Lines:           b.Lines,
		ShippingAddress: b.ShippingAddress,
		BillingAddress:  b.BillingAddress,
		Payment:         b.Payment,
		Totals:          b.Totals,
		ShippingMethod:  b.ShippingMethod,
		CouponCode:      b.CouponCode,
		Notes:           b.Notes,
		Gift:            b.Gift,
	}
}

// Build methods
func (b *OrderBuilder) BuildDomain(now time.Time) (*order.Order, error) {
	return order.New(b.params(), now)
}

func (b *OrderBuilder) BuildReconstructed(status order.Status, ts order.Timestamps) *order.Order {
	return order.Reconstruct(order.ReconstructParams{
		ID:         b.ID,
		Params:     b.params(),
		Status:     status,
		Timestamps: ts,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	})
}
