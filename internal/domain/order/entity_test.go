//go:build unit

package order_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"commerce-core/internal/domain/money"
	"commerce-core/internal/domain/order"
	"commerce-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

var allStatuses = []order.Status{
	order.StatusPending, order.StatusConfirmed, order.StatusProcessing,
	order.StatusShipped, order.StatusDelivered, order.StatusCancelled, order.StatusReturned,
}

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestNew(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain(now)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.Totals().Consistent())
		assert.Equal(t, now, o.CreatedAt())
		if diff := cmp.Diff(order.Timestamps{}, o.Timestamps(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("timestamps mismatch (-want +got):\n%s", diff)
		}
	})

	runCases(t, []testCase{
		{
			name:   "no lines NG",
			mutate: func(b *builder.OrderBuilder) { b.Lines = nil },
			errIs:  order.ErrNoLines,
		},
		{
			name: "line total mismatch NG",
			mutate: func(b *builder.OrderBuilder) {
				b.Lines[0].LineTotal = b.Lines[0].LineTotal.Add(money.FromCents(1))
			},
			errIs: order.ErrLineTotalMismatch,
		},
		{
			name:   "totals identity broken NG",
			mutate: func(b *builder.OrderBuilder) { b.Totals.Total = b.Totals.Total.Add(money.FromCents(1)) },
			errIs:  order.ErrTotalsInconsistent,
		},
		{
			name:   "missing shipping address NG",
			mutate: func(b *builder.OrderBuilder) { b.ShippingAddress.Line1 = "" },
			errIs:  order.ErrInvalidAddress,
		},
		{
			name:   "missing payment method NG",
			mutate: func(b *builder.OrderBuilder) { b.Payment.Method = " " },
			errIs:  order.ErrInvalidPayment,
		},
		{
			name:   "missing number NG",
			mutate: func(b *builder.OrderBuilder) { b.Number = "" },
			errIs:  order.ErrMissingNumber,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOrderBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain(now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLifecycle_HappyPath(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildDomain(now)
	require.NoError(t, err)

	steps := []order.Status{order.StatusConfirmed, order.StatusProcessing, order.StatusShipped, order.StatusDelivered}
	for i, s := range steps {
		at := now.Add(time.Duration(i+1) * time.Hour)
		require.NoError(t, o.UpdateStatus(s, at), "transition to %s", s)
		assert.Equal(t, s, o.Status())
	}

	ts := o.Timestamps()
	require.NotNil(t, ts.ConfirmedAt)
	require.NotNil(t, ts.DeliveredAt)
	assert.Equal(t, now.Add(1*time.Hour), *ts.ConfirmedAt)
	assert.Equal(t, now.Add(4*time.Hour), *ts.DeliveredAt)
	assert.Nil(t, ts.CancelledAt)
}

func TestLifecycle_ReenteringRestamps(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildDomain(now)
	require.NoError(t, err)
	require.NoError(t, o.UpdateStatus(order.StatusConfirmed, now))
	later := now.Add(time.Minute)
	require.NoError(t, o.UpdateStatus(order.StatusConfirmed, later))
	assert.Equal(t, later, *o.Timestamps().ConfirmedAt)
}

func TestLifecycle_IllegalTransitions(t *testing.T) {
	o, err := builder.NewOrderBuilder().BuildDomain(now)
	require.NoError(t, err)
	assert.ErrorIs(t, o.UpdateStatus(order.StatusDelivered, now), order.ErrIllegalTransition)
	assert.ErrorIs(t, o.UpdateStatus(order.Status("lost"), now), order.ErrInvalidStatus)
	assert.Equal(t, order.StatusPending, o.Status())

	require.NoError(t, o.Cancel("changed my mind", now))
	for _, s := range allStatuses {
		if s == order.StatusCancelled {
			continue
		}
		assert.ErrorIs(t, o.UpdateStatus(s, now), order.ErrIllegalTransition, "cancelled -> %s", s)
	}
}

func TestCanBeCancelled(t *testing.T) {
	for _, s := range allStatuses {
		o := builder.NewOrderBuilder().BuildReconstructed(s, order.Timestamps{})
		want := s == order.StatusPending || s == order.StatusConfirmed
		assert.Equal(t, want, o.CanBeCancelled(), "status %s", s)
	}

	t.Run("false after cancellation", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed(order.StatusConfirmed, order.Timestamps{})
		require.NoError(t, o.Cancel("", now))
		assert.False(t, o.CanBeCancelled())
		assert.ErrorIs(t, o.Cancel("", now), order.ErrNotCancellable)
		assert.Equal(t, now, *o.Timestamps().CancelledAt)
	})
}

func TestCanBeReturned(t *testing.T) {
	deliveredAt := now
	delivered := func() *order.Order {
		return builder.NewOrderBuilder().BuildReconstructed(order.StatusDelivered, order.Timestamps{DeliveredAt: &deliveredAt})
	}

	assert.True(t, delivered().CanBeReturned(now.Add(29*24*time.Hour)))
	assert.True(t, delivered().CanBeReturned(now.Add(order.ReturnWindow)))
	assert.False(t, delivered().CanBeReturned(now.Add(order.ReturnWindow+time.Nanosecond)))

	for _, s := range allStatuses {
		if s == order.StatusDelivered {
			continue
		}
		o := builder.NewOrderBuilder().BuildReconstructed(s, order.Timestamps{DeliveredAt: &deliveredAt})
		assert.False(t, o.CanBeReturned(now), "status %s", s)
	}

	o := delivered()
	require.NoError(t, o.Return(now.Add(time.Hour)))
	assert.Equal(t, order.StatusReturned, o.Status())
	assert.ErrorIs(t, delivered().Return(now.Add(31*24*time.Hour)), order.ErrNotReturnable)
}

func TestULIDNumbers(t *testing.T) {
	gen := order.NewULIDNumbers()
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				n := gen.Next(now)
				mu.Lock()
				seen[n] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1600)
	for n := range seen {
		assert.True(t, strings.HasPrefix(n, order.NumberPrefix))
		assert.Len(t, n, len(order.NumberPrefix)+26)
		break
	}
}
