package converter

import (
	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/money"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func CartToUpsertParams(c *cart.Cart) sqlc.UpsertCartParams {
	t := c.Totals()
	params := sqlc.UpsertCartParams{
		ID:             c.ID(),
		OwnerKind:      string(c.Owner().Kind()),
		OwnerID:        c.Owner().ID(),
		ShippingMethod: c.ShippingMethod().String(),
		SubtotalCents:  t.Subtotal.Cents(),
		DiscountCents:  t.Discount.Cents(),
		TaxCents:       t.Tax.Cents(),
		ShippingCents:  t.Shipping.Cents(),
		TotalCents:     t.Total.Cents(),
		LastActivityAt: pgconv.TimeToPgtype(c.LastActivityAt()),
		ExpiresAt:      pgconv.TimePtrToPgtype(c.ExpiresAt()),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
	}
	if cp := c.Coupon(); cp != nil {
		params.CouponCode = pgconv.TextFromString(cp.Code().String())
		params.CouponKind = pgconv.TextFromString(cp.Kind().String())
		params.CouponMagnitude = pgconv.DecimalToNumeric(cp.Magnitude())
	}
	return params
}

// CartLinesToParams numbers lines by their position in the cart.
func CartLinesToParams(c *cart.Cart) []sqlc.InsertCartLineParams {
	lines := c.Lines()
	out := make([]sqlc.InsertCartLineParams, len(lines))
	for i, l := range lines {
		p := sqlc.InsertCartLineParams{
			CartID:     c.ID(),
			Position:   pgconv.IntToInt32(i),
			ProductID:  l.ProductID(),
			Quantity:   pgconv.IntToInt32(l.Quantity()),
			AddedAt:    pgconv.TimeToPgtype(l.AddedAt()),
			ModifiedAt: pgconv.TimeToPgtype(l.ModifiedAt()),
		}
		if v := l.Variant(); v != nil {
			p.VariantName = pgtype.Text{String: v.Name, Valid: true}
			p.VariantValue = pgtype.Text{String: v.Value, Valid: true}
			p.VariantAdjustmentCents = v.PriceAdjustment.Cents()
		}
		out[i] = p
	}
	return out
}

func CartFromRows(row sqlc.Carts, lines []sqlc.CartLines) (*cart.Cart, error) {
	owner, err := cart.ParseOwnerKey(row.OwnerKind + ":" + row.OwnerID)
	if err != nil {
		return nil, err
	}

	var cp *coupon.Coupon
	if row.CouponCode.Valid {
		c := coupon.Reconstruct(
			row.CouponCode.String,
			coupon.Kind(pgconv.StringFromText(row.CouponKind)),
			pgconv.DecimalFromNumeric(row.CouponMagnitude),
		)
		cp = &c
	}

	domainLines := make([]cart.Line, len(lines))
	for i, l := range lines {
		var v *cart.Variant
		if l.VariantName.Valid {
			v = &cart.Variant{
				Name:            l.VariantName.String,
				Value:           pgconv.StringFromText(l.VariantValue),
				PriceAdjustment: money.FromCents(l.VariantAdjustmentCents),
			}
		}
		domainLines[i] = cart.ReconstructLine(
			l.ProductID, int(l.Quantity), v,
			pgconv.TimeFromPgtype(l.AddedAt), pgconv.TimeFromPgtype(l.ModifiedAt),
		)
	}

	totals := cart.Totals{
		Subtotal: money.FromCents(row.SubtotalCents),
		Discount: money.FromCents(row.DiscountCents),
		Tax:      money.FromCents(row.TaxCents),
		Shipping: money.FromCents(row.ShippingCents),
		Total:    money.FromCents(row.TotalCents),
	}

	return cart.Reconstruct(
		row.ID,
		owner,
		domainLines,
		cp,
		cart.ShippingMethod(row.ShippingMethod),
		totals,
		pgconv.TimeFromPgtype(row.LastActivityAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		row.Version,
	), nil
}
