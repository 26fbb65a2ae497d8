package converter

import (
	"encoding/json"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/money"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ProductFromRow(row sqlc.Products) (cart.ProductSnapshot, error) {
	var adjustments map[string]int64
	if len(row.VariantAdjustments) > 0 {
		if err := json.Unmarshal(row.VariantAdjustments, &adjustments); err != nil {
			return cart.ProductSnapshot{}, errs.Wrapf(err, "decode variant adjustments of product %s", row.ID)
		}
	}
	var byVariant map[string]money.Money
	if len(adjustments) > 0 {
		byVariant = make(map[string]money.Money, len(adjustments))
		for sig, cents := range adjustments {
			byVariant[sig] = money.FromCents(cents)
		}
	}
	return cart.ProductSnapshot{
		ID:                 row.ID,
		Name:               row.Name,
		Image:              pgconv.StringFromText(row.Image),
		Price:              money.FromCents(row.PriceCents),
		VariantAdjustments: byVariant,
		Inventory: inventory.ReconstructRecord(
			row.ID, row.TrackQuantity, int(row.Quantity), int(row.LowStockThreshold), row.AllowBackorders,
		),
	}, nil
}

func ProductToUpsertParams(p cart.ProductSnapshot, active bool) (sqlc.UpsertProductParams, error) {
	adjustments := make(map[string]int64, len(p.VariantAdjustments))
	for sig, m := range p.VariantAdjustments {
		adjustments[sig] = m.Cents()
	}
	raw, err := json.Marshal(adjustments)
	if err != nil {
		return sqlc.UpsertProductParams{}, errs.Wrap(err, "encode variant adjustments")
	}
	inv := p.Inventory
	return sqlc.UpsertProductParams{
		ID:                 p.ID,
		Name:               p.Name,
		Image:              pgconv.TextFromString(p.Image),
		PriceCents:         p.Price.Cents(),
		VariantAdjustments: raw,
		TrackQuantity:      inv.TrackQuantity(),
		Quantity:           pgconv.IntToInt32(inv.Quantity()),
		LowStockThreshold:  pgconv.IntToInt32(inv.LowStockThreshold()),
		AllowBackorders:    inv.AllowBackorders(),
		IsActive:           active,
	}, nil
}

// StockRow is the common shape of the stock delta queries.
type StockRow struct {
	ID                uuid.UUID
	TrackQuantity     bool
	PreviousQuantity  int32
	LowStockThreshold int32
	AllowBackorders   bool
}

// PreviousRecord rebuilds the inventory as it was before the delta was applied.
func (r StockRow) PreviousRecord() inventory.Record {
	return inventory.ReconstructRecord(
		r.ID, r.TrackQuantity, int(r.PreviousQuantity), int(r.LowStockThreshold), r.AllowBackorders,
	)
}
