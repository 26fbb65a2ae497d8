//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra/cache"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"
	"commerce-core/tests/common/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCheckout_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(func(b *builder.ProductBuilder) {
		b.PriceCents = 2000
		b.Quantity = 5
		b.LowStockThreshold = 2
	})
	untracked := f.product(func(b *builder.ProductBuilder) { b.PriceCents = 100; b.TrackQuantity = false; b.Quantity = 0 })
	userID := uuid.New()
	owner := cart.UserOwner(userID)
	f.add(t, owner, p.ID, 3)
	f.add(t, owner, untracked.ID, 1)

	in := checkoutInput()
	in.Notes = "leave at the door"
	res, err := f.checkout.Checkout(ctx, userID, in, "")
	require.NoError(t, err)
	o := res.Order

	assert.False(t, res.IsReplayed)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, userID, o.UserID)
	assert.Contains(t, o.Number, order.NumberPrefix)
	assert.Equal(t, int64(6100), o.SubtotalCents)
	assert.Equal(t, int64(488), o.TaxCents)
	assert.Equal(t, int64(599), o.ShippingCostCents)
	assert.Equal(t, int64(7187), o.TotalCents)
	assert.Equal(t, "authorized", o.Payment.Status)
	assert.Equal(t, o.ShippingAddress, o.BillingAddress, "billing defaults to shipping")
	assert.Equal(t, "leave at the door", o.Notes)
	require.Len(t, o.Lines, 2)
	assert.Equal(t, int64(2000), o.Lines[0].UnitPriceCents)
	assert.Equal(t, int64(6000), o.Lines[0].LineTotalCents)

	assert.Equal(t, 2, f.stock(t, p.ID))
	assert.Equal(t, 0, f.stock(t, untracked.ID), "untracked stock is untouched")

	view, err := f.cartQ.Get(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Nil(t, view.Coupon)
	assert.Equal(t, int64(0), view.TotalCents)

	assert.Equal(t, []string{shared.EventLowStock, shared.EventOrderConfirmation}, f.eventTypes())
	var payload commands.OrderEventPayload
	require.NoError(t, json.Unmarshal(f.store.Events()[1].Payload, &payload))
	assert.Equal(t, o.ID, payload.OrderID)
	assert.Equal(t, o.TotalCents, payload.TotalCents)
	assert.Equal(t, 4, payload.ItemCount)

	t.Run("order line is frozen against later price changes", func(t *testing.T) {
		f.store.PutProduct(builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.ID = p.ID
			b.PriceCents = 9999
		}).BuildSnapshot())
		got, err := f.orderQ.GetByID(ctx, customer(userID), o.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), got.Lines[0].UnitPriceCents)
		assert.Equal(t, o.TotalCents, got.TotalCents)
	})
}

func TestCheckout_OverridesAndCoupon(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(func(b *builder.ProductBuilder) { b.PriceCents = 2000 })
	userID := uuid.New()
	f.add(t, cart.UserOwner(userID), p.ID, 3)

	in := checkoutInput()
	in.ShippingMethod = "express"
	in.Coupon = &commands.CouponInput{Code: "SAVE10", Kind: "percentage", Value: "10"}
	billing := in.ShippingAddress
	billing.Line1 = "2 Billing Road"
	in.BillingAddress = &billing

	res, err := f.checkout.Checkout(ctx, userID, in, "")
	require.NoError(t, err)
	assert.Equal(t, int64(600), res.Order.DiscountCents)
	assert.Equal(t, int64(432), res.Order.TaxCents)
	assert.Equal(t, int64(1299), res.Order.ShippingCostCents)
	assert.Equal(t, int64(6000-600+432+1299), res.Order.TotalCents)
	assert.Equal(t, "SAVE10", res.Order.CouponCode)
	assert.Equal(t, "express", res.Order.ShippingMethod)
	assert.Equal(t, "2 Billing Road", res.Order.BillingAddress.Line1)
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()

	_, err := f.checkout.Checkout(ctx, userID, checkoutInput(), "")
	testutil.AssertErrorIs(t, err, shared.ErrEmptyCart)

	_, err = f.carts.GetOrCreate(ctx, cart.UserOwner(userID))
	require.NoError(t, err)
	_, err = f.checkout.Checkout(ctx, userID, checkoutInput(), "")
	testutil.AssertErrorIs(t, err, shared.ErrEmptyCart)

	page, err := f.orderQ.ListByUser(ctx, userID, "", 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, f.store.Events())
}

func TestCheckout_InsufficientStockListsEveryProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.product(func(b *builder.ProductBuilder) { b.Quantity = 5; b.Name = "A" })
	b := f.product(func(b *builder.ProductBuilder) { b.Quantity = 5; b.Name = "B" })
	ok := f.product(func(b *builder.ProductBuilder) { b.Quantity = 5 })
	userID := uuid.New()
	owner := cart.UserOwner(userID)
	f.add(t, owner, a.ID, 4)
	f.add(t, owner, b.ID, 4)
	f.add(t, owner, ok.ID, 1)

	for _, p := range []cart.ProductSnapshot{a, b} {
		f.store.PutProduct(builder.NewProductBuilder().With(func(pb *builder.ProductBuilder) {
			pb.ID = p.ID
			pb.Name = p.Name
			pb.Quantity = 1
		}).BuildSnapshot())
	}

	_, err := f.checkout.Checkout(ctx, userID, checkoutInput(), "")
	testutil.AssertErrorIs(t, err, shared.ErrInsufficientStock)
	var se *shared.StockError
	require.ErrorAs(t, err, &se)
	require.Len(t, se.Issues, 2)
	assert.Equal(t, "A", se.Issues[0].Name)
	assert.Equal(t, 4, se.Issues[0].Requested)
	assert.Equal(t, 1, se.Issues[0].Available)
	assert.Equal(t, "B", se.Issues[1].Name)

	assert.Equal(t, 5, f.stock(t, ok.ID), "no partial decrement")
	view, err := f.cartQ.Get(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, view.Items, 3, "cart survives a failed checkout")
	assert.Empty(t, f.store.Events())
}

func TestCheckout_InvalidAddressRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(func(b *builder.ProductBuilder) { b.Quantity = 5 })
	userID := uuid.New()
	f.add(t, cart.UserOwner(userID), p.ID, 2)

	in := checkoutInput()
	in.ShippingAddress.City = ""
	_, err := f.checkout.Checkout(ctx, userID, in, "")
	testutil.AssertErrorIs(t, err, shared.ErrValidation)
	assert.ErrorIs(t, err, order.ErrInvalidAddress)
	assert.Equal(t, 5, f.stock(t, p.ID))

	in = checkoutInput()
	in.ShippingMethod = "drone"
	_, err = f.checkout.Checkout(ctx, userID, in, "")
	testutil.AssertErrorIs(t, err, shared.ErrValidation)
}

func TestCheckout_Idempotency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(func(b *builder.ProductBuilder) { b.Quantity = 5 })
	userID := uuid.New()
	f.add(t, cart.UserOwner(userID), p.ID, 1)

	first, err := f.checkout.Checkout(ctx, userID, checkoutInput(), "req-1")
	require.NoError(t, err)

	replay, err := f.checkout.Checkout(ctx, userID, checkoutInput(), "req-1")
	require.NoError(t, err)
	assert.True(t, replay.IsReplayed)
	assert.Equal(t, first.Order.ID, replay.Order.ID)
	assert.Equal(t, 4, f.stock(t, p.ID), "replay does not decrement again")

	t.Run("same key with a different body conflicts", func(t *testing.T) {
		in := checkoutInput()
		in.Notes = "different"
		_, err := f.checkout.Checkout(ctx, userID, in, "req-1")
		testutil.AssertErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("in-flight key conflicts", func(t *testing.T) {
		_, err := f.idempotency.Begin(ctx, userID.String(), "req-2", "other-hash")
		require.NoError(t, err)
		_, err = f.checkout.Checkout(ctx, userID, checkoutInput(), "req-2")
		testutil.AssertErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("failed attempt releases the key", func(t *testing.T) {
		_, err := f.checkout.Checkout(ctx, userID, checkoutInput(), "req-3")
		testutil.AssertErrorIs(t, err, shared.ErrEmptyCart)

		f.add(t, cart.UserOwner(userID), p.ID, 1)
		res, err := f.checkout.Checkout(ctx, userID, checkoutInput(), "req-3")
		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
	})

	page, err := f.orderQ.ListByUser(ctx, userID, "", 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestCheckout_ConcurrentLastUnit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(func(b *builder.ProductBuilder) { b.Quantity = 1; b.AllowBackorders = false })
	buyers := []uuid.UUID{uuid.New(), uuid.New()}
	for _, id := range buyers {
		f.add(t, cart.UserOwner(id), p.ID, 1)
	}

	var succeeded, outOfStock atomic.Int32
	var g errgroup.Group
	for _, id := range buyers {
		g.Go(func() error {
			_, err := f.checkout.Checkout(ctx, id, checkoutInput(), "")
			switch {
			case err == nil:
				succeeded.Add(1)
			case testutil.AssertErrorIs(t, err, shared.ErrInsufficientStock):
				outOfStock.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(1), outOfStock.Load())
	assert.Equal(t, 0, f.stock(t, p.ID))
}

func TestCheckout_CachesClearedCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	redisCache := cache.NewRedisCartCache(client, 10*time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	carts := commands.NewCartCommands(f.store, cart.NewDefaultEngine(), redisCache, f.clock, logger)
	checkout := commands.NewCheckoutCommands(f.store, cart.NewDefaultEngine(), order.NewULIDNumbers(), f.idempotency, redisCache, f.clock, logger)

	p := f.product(nil)
	userID := uuid.New()
	owner := cart.UserOwner(userID)
	before, err := carts.AddItem(ctx, owner, commands.AddItemInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	cached, err := redisCache.Get(ctx, owner.Key())
	require.NoError(t, err)
	assert.Equal(t, 2, cached.ItemCount)

	_, err = checkout.Checkout(ctx, userID, checkoutInput(), "")
	require.NoError(t, err)

	cached, err = redisCache.Get(ctx, owner.Key())
	require.NoError(t, err)
	assert.Empty(t, cached.Items)
	assert.Zero(t, cached.TotalCents)
	assert.Greater(t, cached.Version, before.Version)
}
