//go:build unit || e2e

package builder

import (
	"encoding/json"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/money"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID         uuid.UUID
	Name       string
	Image      string
	PriceCents int64
	// keyed by cart.Signature(name, value)
	Adjustments       map[string]int64
	TrackQuantity     bool
	Quantity          int
	LowStockThreshold int
	AllowBackorders   bool
	IsActive          bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:                uuid.New(),
		Name:              "Test Product",
		Image:             "https://cdn.example.com/products/test.png",
		PriceCents:        1000,
		TrackQuantity:     true,
		Quantity:          10,
		LowStockThreshold: 2,
		IsActive:          true,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ProductBuilder) BuildRecord() inventory.Record {
	return inventory.ReconstructRecord(b.ID, b.TrackQuantity, b.Quantity, b.LowStockThreshold, b.AllowBackorders)
}

func (b *ProductBuilder) BuildSnapshot() cart.ProductSnapshot {
	var adj map[string]money.Money
	if len(b.Adjustments) > 0 {
		adj = make(map[string]money.Money, len(b.Adjustments))
		for sig, cents := range b.Adjustments {
			adj[sig] = money.FromCents(cents)
		}
	}
	return cart.ProductSnapshot{
		ID:                 b.ID,
		Name:               b.Name,
		Image:              b.Image,
		Price:              money.FromCents(b.PriceCents),
		VariantAdjustments: adj,
		Inventory:          b.BuildRecord(),
	}
}

// BuildRow panics on encoding failure; adjustments are plain ints.
func (b *ProductBuilder) BuildRow() sqlc.Products {
	adj := b.Adjustments
	if adj == nil {
		adj = map[string]int64{}
	}
	raw, err := json.Marshal(adj)
	if err != nil {
		panic(err)
	}
	return sqlc.Products{
		ID:                 b.ID,
		Name:               b.Name,
		Image:              pgconv.TextFromString(b.Image),
		PriceCents:         b.PriceCents,
		VariantAdjustments: raw,
		TrackQuantity:      b.TrackQuantity,
		Quantity:           pgconv.IntToInt32(b.Quantity),
		LowStockThreshold:  pgconv.IntToInt32(b.LowStockThreshold),
		AllowBackorders:    b.AllowBackorders,
		IsActive:           b.IsActive,
	}
}
