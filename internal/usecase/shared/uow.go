package shared

import (
	"context"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/order"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx scopes every repository to one transaction.
type Tx interface {
	Carts() CartRepository
	Orders() OrderRepository
	Inventory() InventoryRepository
	Catalog() CatalogReader
	Outbox() OutboxRepository
}

// Repositories report absence as an infra.KindNotFound repository error.
type CartRepository interface {
	FindByOwner(ctx context.Context, owner cart.Owner) (*cart.Cart, error)
	// FindByOwnerForUpdate locks the cart row until the transaction ends.
	FindByOwnerForUpdate(ctx context.Context, owner cart.Owner) (*cart.Cart, error)
	// Save upserts the cart header and replaces its lines.
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpiredGuests(ctx context.Context, now time.Time, limit int) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// ListByUser pages newest first; after is exclusive.
	ListByUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int) ([]*order.Order, error)
	// UpdateState persists status, timestamps, tracking number, cancel reason and payment status.
	UpdateState(ctx context.Context, o *order.Order) error
}

// InventoryRepository applies stock deltas atomically at the storage layer.
type InventoryRepository interface {
	// Decrement fails with infra.KindConflict when a tracked product without
	// backorders holds less than qty.
	Decrement(ctx context.Context, productID uuid.UUID, qty int) (inventory.DeltaResult, error)
	Increment(ctx context.Context, productID uuid.UUID, qty int) (inventory.DeltaResult, error)
}

// CatalogReader returns snapshots for the ids that exist; missing ids are absent from the map.
type CatalogReader interface {
	Products(ctx context.Context, ids []uuid.UUID) (cart.Catalog, error)
	// ProductsForUpdate locks the product rows in id order.
	ProductsForUpdate(ctx context.Context, ids []uuid.UUID) (cart.Catalog, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msgs ...OutboxMessage) error
}
