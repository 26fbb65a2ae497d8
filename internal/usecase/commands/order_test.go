//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"
	"commerce-core/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeOrder checks out a two-line order: 2 of the first product and 1 of the second.
func placeOrder(t *testing.T, f *fixture, userID uuid.UUID) (*queries.OrderView, cart.ProductSnapshot, cart.ProductSnapshot) {
	t.Helper()
	a := f.product(func(b *builder.ProductBuilder) { b.Quantity = 10; b.LowStockThreshold = 0 })
	b := f.product(func(b *builder.ProductBuilder) { b.Quantity = 10; b.LowStockThreshold = 0 })
	owner := cart.UserOwner(userID)
	f.add(t, owner, a.ID, 2)
	f.add(t, owner, b.ID, 1)
	res, err := f.checkout.Checkout(context.Background(), userID, checkoutInput(), "")
	require.NoError(t, err)
	return res.Order, a, b
}

func TestCancel_ConfirmedOrderRestocks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	o, a, b := placeOrder(t, f, userID)
	assert.Equal(t, 8, f.stock(t, a.ID))
	assert.Equal(t, 9, f.stock(t, b.ID))

	_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "confirmed"})
	require.NoError(t, err)

	f.clock.Add(time.Hour)
	got, err := f.orders.Cancel(ctx, customer(userID), o.ID, "  ordered by mistake ")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, now.Add(time.Hour), *got.CancelledAt)
	assert.Equal(t, "ordered by mistake", got.CancelReason)
	assert.Equal(t, 10, f.stock(t, a.ID))
	assert.Equal(t, 10, f.stock(t, b.ID))

	events := f.store.Events()
	last := events[len(events)-1]
	assert.Equal(t, shared.EventOrderCancelled, last.Type)
	var payload commands.OrderEventPayload
	require.NoError(t, json.Unmarshal(last.Payload, &payload))
	assert.Equal(t, "confirmed", payload.PreviousStatus)
	assert.Equal(t, "cancelled", payload.Status)

	t.Run("second cancel conflicts", func(t *testing.T) {
		_, err := f.orders.Cancel(ctx, customer(userID), o.ID, "")
		testutil.AssertErrorIs(t, err, shared.ErrConflict)
		assert.Equal(t, 10, f.stock(t, a.ID))
	})
}

func TestCancel_Guards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	o, a, _ := placeOrder(t, f, userID)

	t.Run("another customer sees not found", func(t *testing.T) {
		_, err := f.orders.Cancel(ctx, customer(uuid.New()), o.ID, "")
		testutil.AssertErrorIs(t, err, shared.ErrOrderNotFound)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.orders.Cancel(ctx, customer(userID), uuid.New(), "")
		testutil.AssertErrorIs(t, err, shared.ErrOrderNotFound)
		testutil.AssertErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("processing order cannot be cancelled", func(t *testing.T) {
		_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "processing"})
		require.NoError(t, err)
		_, err = f.orders.Cancel(ctx, customer(userID), o.ID, "")
		testutil.AssertErrorIs(t, err, shared.ErrConflict)
		assert.Equal(t, 8, f.stock(t, a.ID))
	})
}

func TestCancel_StaffAndMissingProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	o, a, b := placeOrder(t, f, userID)
	f.store.RemoveProduct(b.ID)

	got, err := f.orders.Cancel(ctx, operator(), o.ID, "fraud check")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Equal(t, 10, f.stock(t, a.ID))
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := uuid.New()
	o, _, _ := placeOrder(t, f, userID)

	t.Run("customers are forbidden", func(t *testing.T) {
		_, err := f.orders.UpdateStatus(ctx, customer(userID), o.ID, commands.UpdateStatusInput{Status: "confirmed"})
		testutil.AssertErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "lost"})
		testutil.AssertErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("skipping ahead is illegal", func(t *testing.T) {
		_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "delivered"})
		testutil.AssertErrorIs(t, err, shared.ErrValidation)
		assert.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("fulfilment path stamps every step", func(t *testing.T) {
		tracking := " 1Z999AA10123456784 "
		for _, in := range []commands.UpdateStatusInput{
			{Status: "confirmed"},
			{Status: "processing"},
			{Status: "shipped", TrackingNumber: &tracking},
			{Status: "delivered"},
		} {
			f.clock.Add(time.Hour)
			_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, in)
			require.NoError(t, err, in.Status)
		}
		got, err := f.orderQ.GetByID(ctx, customer(userID), o.ID)
		require.NoError(t, err)
		assert.Equal(t, "delivered", got.Status)
		assert.Equal(t, "1Z999AA10123456784", got.TrackingNumber)
		require.NotNil(t, got.ConfirmedAt)
		require.NotNil(t, got.ShippedAt)
		require.NotNil(t, got.DeliveredAt)
		assert.Equal(t, now.Add(4*time.Hour), *got.DeliveredAt)
		assert.Nil(t, got.CancelledAt)
	})

	t.Run("returns close after the window", func(t *testing.T) {
		f.clock.Add(order.ReturnWindow + time.Hour)
		_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "returned"})
		testutil.AssertErrorIs(t, err, shared.ErrConflict)
	})

	var changes int
	for _, e := range f.store.Events() {
		if e.Type == shared.EventOrderStatusChanged {
			changes++
		}
	}
	assert.Equal(t, 4, changes)
}

func TestUpdateStatus_CancelledRestocks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o, a, _ := placeOrder(t, f, uuid.New())

	got, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "cancelled", Reason: "payment declined"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Equal(t, "payment declined", got.CancelReason)
	assert.Equal(t, 10, f.stock(t, a.ID))
}

func TestReturnWithinWindow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	o, a, _ := placeOrder(t, f, uuid.New())
	for _, s := range []string{"confirmed", "processing", "shipped", "delivered"} {
		_, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: s})
		require.NoError(t, err)
	}
	f.clock.Add(24 * time.Hour)

	got, err := f.orders.UpdateStatus(ctx, operator(), o.ID, commands.UpdateStatusInput{Status: "returned"})
	require.NoError(t, err)
	assert.Equal(t, "returned", got.Status)
	require.NotNil(t, got.ReturnedAt)
	assert.Equal(t, 8, f.stock(t, a.ID), "returns are not restocked automatically")
}
