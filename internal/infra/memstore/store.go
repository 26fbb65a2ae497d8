// Package memstore is a process-local persistence driver. Write transactions
// are serialized and work on a copy of the state that replaces the live one
// only on commit.
package memstore

import (
	"context"
	"maps"
	"sync"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	state state
	seq   int64
	clock clock.Clock
}

type state struct {
	carts    map[string]*cart.Cart // by owner key
	orders   map[uuid.UUID]*order.Order
	products map[uuid.UUID]cart.ProductSnapshot
	outbox   []*outboxRecord
}

func (s state) clone() state {
	out := state{
		carts:    maps.Clone(s.carts),
		orders:   maps.Clone(s.orders),
		products: maps.Clone(s.products),
		outbox:   make([]*outboxRecord, len(s.outbox)),
	}
	copy(out.outbox, s.outbox)
	return out
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock: clk,
		state: state{
			carts:    make(map[string]*cart.Cart),
			orders:   make(map[uuid.UUID]*order.Order),
			products: make(map[uuid.UUID]cart.ProductSnapshot),
		},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	seq := s.seq
	t := &memTx{store: s, state: &work, seq: &seq}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.state = work
	s.seq = seq
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	return fn(ctx, &memTx{store: s, state: &st, readOnly: true})
}

// PutProduct inserts or replaces a catalog product together with its inventory.
func (s *Store) PutProduct(p cart.ProductSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.products[p.ID] = cloneProduct(p)
}

func (s *Store) RemoveProduct(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.products, id)
}

func (s *Store) Product(id uuid.UUID) (cart.ProductSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.products[id]
	if !ok {
		return cart.ProductSnapshot{}, false
	}
	return cloneProduct(p), true
}

type memTx struct {
	store    *Store
	state    *state
	seq      *int64
	readOnly bool
}

func (t *memTx) Carts() shared.CartRepository          { return cartRepo{t} }
func (t *memTx) Orders() shared.OrderRepository        { return orderRepo{t} }
func (t *memTx) Inventory() shared.InventoryRepository { return inventoryRepo{t} }
func (t *memTx) Catalog() shared.CatalogReader         { return catalogReader{t} }
func (t *memTx) Outbox() shared.OutboxRepository       { return outboxRepo{t} }

func (t *memTx) writable(op string) error {
	if t.readOnly {
		return infra.NewRepoErr(infra.KindDBFailure, op+": read-only transaction")
	}
	return nil
}
