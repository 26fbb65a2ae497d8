//go:build unit

package inventory_test

import (
	"testing"

	"commerce-core/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, track bool, qty, threshold int, backorders bool) inventory.Record {
	t.Helper()
	r, err := inventory.NewRecord(uuid.New(), track, qty, threshold, backorders)
	require.NoError(t, err)
	return r
}

func TestCheckAvailability(t *testing.T) {
	testCases := []struct {
		name      string
		rec       inventory.Record
		requested int
		available bool
		reason    inventory.Reason
		shortfall *int
	}{
		{name: "untracked is always available", rec: record(t, false, 0, 0, false), requested: 100, available: true, reason: inventory.ReasonUntracked},
		{name: "backorders are always available", rec: record(t, true, 0, 0, true), requested: 100, available: true, reason: inventory.ReasonBackorder},
		{name: "exact quantity", rec: record(t, true, 3, 0, false), requested: 3, available: true, reason: inventory.ReasonInStock},
		{name: "short by one", rec: record(t, true, 2, 0, false), requested: 3, available: false, reason: inventory.ReasonInsufficient, shortfall: intPtr(2)},
		{name: "out of stock", rec: record(t, true, 0, 0, false), requested: 1, available: false, reason: inventory.ReasonInsufficient, shortfall: intPtr(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.CheckAvailability(tc.rec, tc.requested)
			assert.Equal(t, tc.available, got.Available)
			assert.Equal(t, tc.reason, got.Reason)
			assert.Equal(t, tc.shortfall, got.AvailableQty)
		})
	}
}

func TestApplyDelta(t *testing.T) {
	t.Run("decrease never goes below zero", func(t *testing.T) {
		rec := record(t, true, 2, 0, true)
		res, err := inventory.ApplyDelta(rec, 5, inventory.Decrease)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Record.Quantity())
		assert.True(t, res.Clamped)
	})

	t.Run("increase after equal decrease restores quantity", func(t *testing.T) {
		for _, qty := range []int{1, 3, 7, 10} {
			rec := record(t, true, 10, 2, false)
			dec, err := inventory.ApplyDelta(rec, qty, inventory.Decrease)
			require.NoError(t, err)
			inc, err := inventory.ApplyDelta(dec.Record, qty, inventory.Increase)
			require.NoError(t, err)
			assert.Equal(t, rec.Quantity(), inc.Record.Quantity())
		}
	})

	t.Run("low stock raised at threshold", func(t *testing.T) {
		rec := record(t, true, 6, 3, false)
		res, err := inventory.ApplyDelta(rec, 2, inventory.Decrease)
		require.NoError(t, err)
		assert.False(t, res.LowStock)

		res, err = inventory.ApplyDelta(res.Record, 1, inventory.Decrease)
		require.NoError(t, err)
		assert.True(t, res.LowStock)
		assert.Equal(t, 3, res.Record.Quantity())
	})

	t.Run("increase never raises low stock", func(t *testing.T) {
		rec := record(t, true, 0, 3, false)
		res, err := inventory.ApplyDelta(rec, 1, inventory.Increase)
		require.NoError(t, err)
		assert.False(t, res.LowStock)
	})

	t.Run("untracked is a no-op", func(t *testing.T) {
		rec := record(t, false, 4, 10, false)
		res, err := inventory.ApplyDelta(rec, 3, inventory.Decrease)
		require.NoError(t, err)
		assert.Equal(t, 4, res.Record.Quantity())
		assert.False(t, res.LowStock)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := inventory.ApplyDelta(record(t, true, 4, 0, false), 0, inventory.Decrease)
		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	})

	t.Run("unknown direction rejected", func(t *testing.T) {
		for _, tracked := range []bool{true, false} {
			rec := record(t, tracked, 4, 0, false)
			res, err := inventory.ApplyDelta(rec, 1, inventory.Direction("sideways"))
			assert.ErrorIs(t, err, inventory.ErrInvalidDirection)
			assert.Zero(t, res)
		}
	})
}

func TestCanDecrementAtomically(t *testing.T) {
	assert.True(t, inventory.CanDecrementAtomically(record(t, true, 1, 0, false), 1))
	assert.False(t, inventory.CanDecrementAtomically(record(t, true, 1, 0, false), 2))
	assert.True(t, inventory.CanDecrementAtomically(record(t, true, 0, 0, true), 2))
	assert.True(t, inventory.CanDecrementAtomically(record(t, false, 0, 0, false), 2))
}

func intPtr(v int) *int { return &v }
