package memstore

import (
	"context"
	"sort"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type cartRepo struct{ t *memTx }

func (r cartRepo) FindByOwner(_ context.Context, owner cart.Owner) (*cart.Cart, error) {
	c, ok := r.t.state.carts[owner.Key()]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "cart not found")
	}
	return cloneCart(c), nil
}

// FindByOwnerForUpdate: write transactions are already serialized.
func (r cartRepo) FindByOwnerForUpdate(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	return r.FindByOwner(ctx, owner)
}

func (r cartRepo) Save(_ context.Context, c *cart.Cart) error {
	if err := r.t.writable("save cart"); err != nil {
		return err
	}
	key := c.Owner().Key()
	version := int64(1)
	if existing, ok := r.t.state.carts[key]; ok {
		if existing.ID() != c.ID() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "cart owner already has a cart")
		}
		version = existing.Version() + 1
	}
	stored := cloneCart(c)
	r.t.state.carts[key] = cart.Reconstruct(
		stored.ID(), stored.Owner(), stored.Lines(), stored.Coupon(), stored.ShippingMethod(), stored.Totals(),
		stored.LastActivityAt(), stored.ExpiresAt(), stored.CreatedAt(), version,
	)
	c.MarkSaved(version)
	return nil
}

func (r cartRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.t.writable("delete cart"); err != nil {
		return err
	}
	for key, c := range r.t.state.carts {
		if c.ID() == id {
			delete(r.t.state.carts, key)
			return nil
		}
	}
	return nil
}

func (r cartRepo) DeleteExpiredGuests(_ context.Context, now time.Time, limit int) (int64, error) {
	if err := r.t.writable("delete expired carts"); err != nil {
		return 0, err
	}
	var deleted int64
	for key, c := range r.t.state.carts {
		if limit > 0 && deleted >= int64(limit) {
			break
		}
		if c.Owner().IsGuest() && c.IsExpired(now) {
			delete(r.t.state.carts, key)
			deleted++
		}
	}
	return deleted, nil
}

type orderRepo struct{ t *memTx }

func (r orderRepo) Create(_ context.Context, o *order.Order) error {
	if err := r.t.writable("create order"); err != nil {
		return err
	}
	if _, ok := r.t.state.orders[o.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "order id already exists")
	}
	for _, existing := range r.t.state.orders {
		if existing.Number() == o.Number() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "order number already exists")
		}
	}
	r.t.state.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r orderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.t.state.orders[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return cloneOrder(o), nil
}

func (r orderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.FindByID(ctx, id)
}

func (r orderRepo) ListByUser(_ context.Context, userID uuid.UUID, after *shared.Keyset, limit int) ([]*order.Order, error) {
	var rows []*order.Order
	for _, o := range r.t.state.orders {
		if o.UserID() != userID {
			continue
		}
		if after != nil && !before(o.CreatedAt(), o.ID(), after.CreatedAt, after.ID) {
			continue
		}
		rows = append(rows, o)
	}
	sort.Slice(rows, func(i, j int) bool {
		return before(rows[j].CreatedAt(), rows[j].ID(), rows[i].CreatedAt(), rows[i].ID())
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]*order.Order, len(rows))
	for i, o := range rows {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

// before orders rows by (created_at, id) ascending, matching the SQL row comparison.
func before(at time.Time, id uuid.UUID, refAt time.Time, refID uuid.UUID) bool {
	if !at.Equal(refAt) {
		return at.Before(refAt)
	}
	return id.String() < refID.String()
}

func (r orderRepo) UpdateState(_ context.Context, o *order.Order) error {
	if err := r.t.writable("update order"); err != nil {
		return err
	}
	if _, ok := r.t.state.orders[o.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	r.t.state.orders[o.ID()] = cloneOrder(o)
	return nil
}

type inventoryRepo struct{ t *memTx }

func (r inventoryRepo) Decrement(_ context.Context, productID uuid.UUID, qty int) (inventory.DeltaResult, error) {
	return r.apply(productID, qty, inventory.Decrease)
}

func (r inventoryRepo) Increment(_ context.Context, productID uuid.UUID, qty int) (inventory.DeltaResult, error) {
	return r.apply(productID, qty, inventory.Increase)
}

func (r inventoryRepo) apply(productID uuid.UUID, qty int, dir inventory.Direction) (inventory.DeltaResult, error) {
	if err := r.t.writable("update stock"); err != nil {
		return inventory.DeltaResult{}, err
	}
	p, ok := r.t.state.products[productID]
	if !ok {
		return inventory.DeltaResult{}, infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	if dir == inventory.Decrease && !inventory.CanDecrementAtomically(p.Inventory, qty) {
		return inventory.DeltaResult{}, infra.NewRepoErr(infra.KindConflict, "insufficient stock")
	}
	res, err := inventory.ApplyDelta(p.Inventory, qty, dir)
	if err != nil {
		return inventory.DeltaResult{}, infra.WrapRepoErr("apply stock delta", err)
	}
	p.Inventory = res.Record
	r.t.state.products[productID] = p
	return res, nil
}

type catalogReader struct{ t *memTx }

func (r catalogReader) Products(_ context.Context, ids []uuid.UUID) (cart.Catalog, error) {
	out := make(cart.Catalog, len(ids))
	for _, id := range ids {
		if p, ok := r.t.state.products[id]; ok {
			out[id] = cloneProduct(p)
		}
	}
	return out, nil
}

func (r catalogReader) ProductsForUpdate(ctx context.Context, ids []uuid.UUID) (cart.Catalog, error) {
	return r.Products(ctx, ids)
}
