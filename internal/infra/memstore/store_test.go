//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/memstore"
	"commerce-core/internal/infra/outbox"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newStore() (*memstore.Store, *clock.MockClock) {
	clk := clock.NewMockClock(now)
	return memstore.NewStore(clk), clk
}

func TestWithin_RollbackDiscardsWrites(t *testing.T) {
	store, _ := newStore()
	ctx := context.Background()
	p := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Quantity = 5 }).BuildSnapshot()
	store.PutProduct(p)

	boom := errors.New("boom")
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Inventory().Decrement(ctx, p.ID, 3)
		require.NoError(t, err)
		require.NoError(t, tx.Outbox().Enqueue(ctx, shared.OutboxMessage{Type: "x", AggregateID: "a"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, ok := store.Product(p.ID)
	require.True(t, ok)
	assert.Equal(t, 5, got.Inventory.Quantity())
	assert.Empty(t, store.Events())
}

func TestWithinReadOnly_RejectsWrites(t *testing.T) {
	store, _ := newStore()
	owner := cart.UserOwner(uuid.New())
	err := store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		c, err := cart.New(owner, now)
		require.NoError(t, err)
		return tx.Carts().Save(ctx, c)
	})
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestCarts(t *testing.T) {
	store, _ := newStore()
	ctx := context.Background()
	owner := cart.UserOwner(uuid.New())

	t.Run("missing cart is not found", func(t *testing.T) {
		err := store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Carts().FindByOwner(ctx, owner)
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	first, err := cart.New(owner, now)
	require.NoError(t, err)
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Save(ctx, first)
	}))

	t.Run("second cart for the same owner is a duplicate", func(t *testing.T) {
		second, err := cart.New(owner, now)
		require.NoError(t, err)
		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Carts().Save(ctx, second)
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("save bumps version and returns copies", func(t *testing.T) {
		var loaded *cart.Cart
		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			c, err := tx.Carts().FindByOwnerForUpdate(ctx, owner)
			if err != nil {
				return err
			}
			require.NoError(t, c.AddItem(uuid.New(), 1, nil, now))
			loaded = c
			return tx.Carts().Save(ctx, c)
		}))
		assert.Equal(t, int64(2), loaded.Version())
		require.NoError(t, loaded.AddItem(uuid.New(), 1, nil, now))

		require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			c, err := tx.Carts().FindByOwner(ctx, owner)
			require.NoError(t, err)
			assert.Len(t, c.Lines(), 1)
			assert.Equal(t, int64(2), c.Version())
			return nil
		}))
	})
}

func TestCarts_DeleteExpiredGuests(t *testing.T) {
	store, clk := newStore()
	ctx := context.Background()

	for _, session := range []string{"s-1", "s-2", "s-3"} {
		owner, err := cart.GuestOwner(session)
		require.NoError(t, err)
		c, err := cart.New(owner, now)
		require.NoError(t, err)
		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Carts().Save(ctx, c)
		}))
	}
	userCart, err := cart.New(cart.UserOwner(uuid.New()), now)
	require.NoError(t, err)
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Save(ctx, userCart)
	}))

	purge := func(limit int) int64 {
		var n int64
		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			n, err = tx.Carts().DeleteExpiredGuests(ctx, clk.Now(), limit)
			return err
		}))
		return n
	}

	assert.Equal(t, int64(0), purge(10))
	clk.Add(cart.GuestTTL)
	assert.Equal(t, int64(2), purge(2))
	assert.Equal(t, int64(1), purge(10))
	assert.Equal(t, int64(0), purge(10))
}

func TestInventory(t *testing.T) {
	store, _ := newStore()
	ctx := context.Background()
	tracked := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Quantity = 3; b.LowStockThreshold = 1 }).BuildSnapshot()
	backorder := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Quantity = 1; b.AllowBackorders = true }).BuildSnapshot()
	store.PutProduct(tracked)
	store.PutProduct(backorder)

	decrement := func(id uuid.UUID, qty int) (int, bool, error) {
		var (
			q   int
			low bool
		)
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res, err := tx.Inventory().Decrement(ctx, id, qty)
			q, low = res.Record.Quantity(), res.LowStock
			return err
		})
		return q, low, err
	}

	_, _, err := decrement(tracked.ID, 4)
	assert.True(t, infra.IsKind(err, infra.KindConflict))

	q, low, err := decrement(tracked.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, q)
	assert.True(t, low)

	q, _, err = decrement(backorder.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, q)

	_, _, err = decrement(uuid.New(), 1)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestOrders_ListByUser(t *testing.T) {
	store, _ := newStore()
	ctx := context.Background()
	userID := uuid.New()

	var ids []uuid.UUID
	for i := range 5 {
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.UserID = userID
			b.Number = order.NewULIDNumbers().Next(now.Add(time.Duration(i) * time.Minute))
		}).BuildDomain(now.Add(time.Duration(i) * time.Minute))
		require.NoError(t, err)
		ids = append(ids, o.ID())
		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Orders().Create(ctx, o)
		}))
	}
	other, err := builder.NewOrderBuilder().BuildDomain(now)
	require.NoError(t, err)
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, other)
	}))

	list := func(after *shared.Keyset, limit int) []*order.Order {
		var out []*order.Order
		require.NoError(t, store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			out, err = tx.Orders().ListByUser(ctx, userID, after, limit)
			return err
		}))
		return out
	}

	page := list(nil, 2)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID())
	assert.Equal(t, ids[3], page[1].ID())

	last := page[1]
	page = list(&shared.Keyset{CreatedAt: last.CreatedAt(), ID: last.ID()}, 10)
	require.Len(t, page, 3)
	assert.Equal(t, ids[2], page[0].ID())
	assert.Equal(t, ids[0], page[2].ID())
}

func TestOrders_DuplicateNumber(t *testing.T) {
	store, _ := newStore()
	ctx := context.Background()
	a, err := builder.NewOrderBuilder().BuildDomain(now)
	require.NoError(t, err)
	b, err := builder.NewOrderBuilder().BuildDomain(now)
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error { return tx.Orders().Create(ctx, a) }))
	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error { return tx.Orders().Create(ctx, b) })
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestOutbox_LeaseAndRetry(t *testing.T) {
	store, clk := newStore()
	ctx := context.Background()
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().Enqueue(ctx,
			shared.OutboxMessage{AggregateID: "a", Type: "t1"},
			shared.OutboxMessage{AggregateID: "b", Type: "t2"},
		)
	}))

	batch, err := store.LockBatch(ctx, "relay-1", 10, time.Second)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, int64(1), batch[0].ID)

	again, err := store.LockBatch(ctx, "relay-2", 10, time.Second)
	require.NoError(t, err)
	assert.Empty(t, again, "leased events are not handed to another relay")

	require.NoError(t, store.MarkSent(ctx, []int64{1}))
	require.NoError(t, store.MarkFailed(ctx, 2, "broker down", 2))

	retry, err := store.LockBatch(ctx, "relay-2", 10, time.Second)
	require.NoError(t, err)
	require.Len(t, retry, 1)
	assert.Equal(t, int64(2), retry[0].ID)
	assert.Equal(t, 1, retry[0].Attempts)

	clk.Add(2 * time.Second)
	expired, err := store.LockBatch(ctx, "relay-3", 10, time.Second)
	require.NoError(t, err)
	require.Len(t, expired, 1, "lapsed lease is reclaimable")

	require.NoError(t, store.MarkFailed(ctx, 2, "broker down", 2))
	events := store.Events()
	assert.Equal(t, outbox.StatusSent, events[0].Status)
	assert.Equal(t, outbox.StatusFailed, events[1].Status)
	require.NotNil(t, events[1].LastError)
	assert.Equal(t, "broker down", *events[1].LastError)
}
