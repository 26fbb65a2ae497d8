package cart

import (
	"commerce-core/internal/domain/inventory"

	"github.com/google/uuid"
)

type StockIssue struct {
	ProductID uuid.UUID
	Name      string
	Requested int
	Available int
}

type StockValidation struct {
	IsValid bool
	Issues  []StockIssue
}

// ValidateStock checks every product in the cart against the ledger without
// touching stock. Quantities of the same product across variants are summed,
// and a product missing from the catalog is reported with zero available.
func ValidateStock(c *Cart, catalog Catalog) StockValidation {
	requested := make(map[uuid.UUID]int, len(c.lines))
	for _, l := range c.lines {
		requested[l.productID] += l.quantity
	}

	result := StockValidation{IsValid: true}
	for _, id := range c.ProductIDs() {
		qty := requested[id]
		snap, ok := catalog[id]
		if !ok {
			result.Issues = append(result.Issues, StockIssue{ProductID: id, Requested: qty, Available: 0})
			continue
		}
		av := inventory.CheckAvailability(snap.Inventory, qty)
		if av.Available {
			continue
		}
		result.Issues = append(result.Issues, StockIssue{
			ProductID: id,
			Name:      snap.Name,
			Requested: qty,
			Available: *av.AvailableQty,
		})
	}
	result.IsValid = len(result.Issues) == 0
	return result
}

// LineAvailability is the per-line stock view shown next to cart items.
func LineAvailability(l Line, catalog Catalog) inventory.Availability {
	snap, ok := catalog[l.productID]
	if !ok {
		zero := 0
		return inventory.Availability{Available: false, AvailableQty: &zero, Reason: inventory.ReasonInsufficient}
	}
	return inventory.CheckAvailability(snap.Inventory, l.quantity)
}
