package converter

import (
	"encoding/json"

	"commerce-core/internal/domain/money"
	"commerce-core/internal/domain/order"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type addressJSON struct {
	FullName   string `json:"full_name,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func encodeAddress(a order.Address) ([]byte, error) {
	return json.Marshal(addressJSON(a))
}

func decodeAddress(raw []byte) (order.Address, error) {
	var a addressJSON
	if err := json.Unmarshal(raw, &a); err != nil {
		return order.Address{}, err
	}
	return order.Address(a), nil
}

func OrderToCreateParams(o *order.Order) (sqlc.CreateOrderParams, error) {
	shipping, err := encodeAddress(o.ShippingAddress())
	if err != nil {
		return sqlc.CreateOrderParams{}, errs.Wrap(err, "encode shipping address")
	}
	billing, err := encodeAddress(o.BillingAddress())
	if err != nil {
		return sqlc.CreateOrderParams{}, errs.Wrap(err, "encode billing address")
	}
	t := o.Totals()
	pay := o.Payment()
	return sqlc.CreateOrderParams{
		ID:                   o.ID(),
		Number:               o.Number(),
		UserID:               o.UserID(),
		ShippingAddress:      shipping,
		BillingAddress:       billing,
		PaymentMethod:        pay.Method,
		PaymentStatus:        string(pay.Status),
		PaymentTransactionID: pgconv.TextFromString(pay.TransactionID),
		SubtotalCents:        t.Subtotal.Cents(),
		TaxCents:             t.Tax.Cents(),
		ShippingCents:        t.ShippingCost.Cents(),
		DiscountCents:        t.Discount.Cents(),
		TotalCents:           t.Total.Cents(),
		ShippingMethod:       o.ShippingMethod(),
		CouponCode:           pgconv.TextFromString(o.CouponCode()),
		Status:               o.Status().String(),
		Notes:                pgconv.TextFromString(o.Notes()),
		IsGift:               o.Gift().IsGift,
		GiftMessage:          pgconv.TextFromString(o.Gift().Message),
		CreatedAt:            pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(o.UpdatedAt()),
	}, nil
}

func OrderLinesToParams(o *order.Order) []sqlc.InsertOrderLineParams {
	lines := o.Lines()
	out := make([]sqlc.InsertOrderLineParams, len(lines))
	for i, l := range lines {
		p := sqlc.InsertOrderLineParams{
			OrderID:        o.ID(),
			Position:       pgconv.IntToInt32(i),
			ProductID:      l.ProductID,
			Name:           l.Name,
			Image:          pgconv.TextFromString(l.Image),
			UnitPriceCents: l.UnitPrice.Cents(),
			Quantity:       pgconv.IntToInt32(l.Quantity),
			LineTotalCents: l.LineTotal.Cents(),
			TrackQuantity:  l.TrackQuantity,
		}
		if v := l.Variant; v != nil {
			p.VariantName = pgtype.Text{String: v.Name, Valid: true}
			p.VariantValue = pgtype.Text{String: v.Value, Valid: true}
			p.VariantAdjustmentCents = v.PriceAdjustment.Cents()
		}
		out[i] = p
	}
	return out
}

func OrderToUpdateStateParams(o *order.Order) sqlc.UpdateOrderStateParams {
	ts := o.Timestamps()
	return sqlc.UpdateOrderStateParams{
		ID:             o.ID(),
		Status:         o.Status().String(),
		PaymentStatus:  string(o.Payment().Status),
		ConfirmedAt:    pgconv.TimePtrToPgtype(ts.ConfirmedAt),
		ProcessingAt:   pgconv.TimePtrToPgtype(ts.ProcessingAt),
		ShippedAt:      pgconv.TimePtrToPgtype(ts.ShippedAt),
		DeliveredAt:    pgconv.TimePtrToPgtype(ts.DeliveredAt),
		CancelledAt:    pgconv.TimePtrToPgtype(ts.CancelledAt),
		ReturnedAt:     pgconv.TimePtrToPgtype(ts.ReturnedAt),
		TrackingNumber: pgconv.TextFromString(o.TrackingNumber()),
		CancelReason:   pgconv.TextFromString(o.CancelReason()),
		UpdatedAt:      pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

// OrderFromRows expects lines already ordered by position.
func OrderFromRows(row sqlc.Orders, lines []sqlc.OrderLines) (*order.Order, error) {
	shipping, err := decodeAddress(row.ShippingAddress)
	if err != nil {
		return nil, errs.Wrapf(err, "decode shipping address of order %s", row.ID)
	}
	billing, err := decodeAddress(row.BillingAddress)
	if err != nil {
		return nil, errs.Wrapf(err, "decode billing address of order %s", row.ID)
	}

	domainLines := make([]order.Line, len(lines))
	for i, l := range lines {
		var v *order.VariantSnapshot
		if l.VariantName.Valid {
			v = &order.VariantSnapshot{
				Name:            l.VariantName.String,
				Value:           pgconv.StringFromText(l.VariantValue),
				PriceAdjustment: money.FromCents(l.VariantAdjustmentCents),
			}
		}
		domainLines[i] = order.Line{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Image:         pgconv.StringFromText(l.Image),
			UnitPrice:     money.FromCents(l.UnitPriceCents),
			Quantity:      int(l.Quantity),
			Variant:       v,
			LineTotal:     money.FromCents(l.LineTotalCents),
			TrackQuantity: l.TrackQuantity,
		}
	}

	return order.Reconstruct(order.ReconstructParams{
		ID: row.ID,
		Params: order.Params{
			Number:          row.Number,
			UserID:          row.UserID,
			Lines:           domainLines,
			ShippingAddress: shipping,
			BillingAddress:  billing,
			Payment: order.Payment{
				Method:        row.PaymentMethod,
				Status:        order.PaymentStatus(row.PaymentStatus),
				TransactionID: pgconv.StringFromText(row.PaymentTransactionID),
			},
			Totals: order.Totals{
				Subtotal:     money.FromCents(row.SubtotalCents),
				Tax:          money.FromCents(row.TaxCents),
				ShippingCost: money.FromCents(row.ShippingCents),
				Discount:     money.FromCents(row.DiscountCents),
				Total:        money.FromCents(row.TotalCents),
			},
			ShippingMethod: row.ShippingMethod,
			CouponCode:     pgconv.StringFromText(row.CouponCode),
			Notes:          pgconv.StringFromText(row.Notes),
			Gift: order.Gift{
				IsGift:  row.IsGift,
				Message: pgconv.StringFromText(row.GiftMessage),
			},
		},
		Status: order.Status(row.Status),
		Timestamps: order.Timestamps{
			ConfirmedAt:  pgconv.TimePtrFromPgtype(row.ConfirmedAt),
			ProcessingAt: pgconv.TimePtrFromPgtype(row.ProcessingAt),
			ShippedAt:    pgconv.TimePtrFromPgtype(row.ShippedAt),
			DeliveredAt:  pgconv.TimePtrFromPgtype(row.DeliveredAt),
			CancelledAt:  pgconv.TimePtrFromPgtype(row.CancelledAt),
			ReturnedAt:   pgconv.TimePtrFromPgtype(row.ReturnedAt),
		},
		TrackingNumber: pgconv.StringFromText(row.TrackingNumber),
		CancelReason:   pgconv.StringFromText(row.CancelReason),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
