//go:build unit

package money_test

import (
	"testing"

	"commerce-core/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("parse major units", func(t *testing.T) {
		m, err := money.ParseDecimal("24.99")
		require.NoError(t, err)
		assert.Equal(t, int64(2499), m.Cents())
		assert.Equal(t, "24.99", m.String())
	})

	t.Run("rate rounds half up", func(t *testing.T) {
		rate := decimal.RequireFromString("0.08")
		assert.Equal(t, int64(480), money.FromCents(6000).MulRate(rate).Cents())
		assert.Equal(t, int64(432), money.FromCents(5400).MulRate(rate).Cents())
		// 0.125 -> 0.13
		assert.Equal(t, int64(13), money.FromCents(125).MulRate(decimal.RequireFromString("0.1")).Cents())
	})

	t.Run("percent", func(t *testing.T) {
		assert.Equal(t, int64(600), money.FromCents(6000).Percent(decimal.NewFromInt(10)).Cents())
		assert.Equal(t, int64(3333), money.FromCents(9999).Percent(decimal.RequireFromString("33.33")).Cents())
	})

	t.Run("negative is rejected by NewNonNegative", func(t *testing.T) {
		_, err := money.NewNonNegative(-1)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("max and min", func(t *testing.T) {
		a, b := money.FromCents(-5), money.Zero()
		assert.Equal(t, b, a.Max(b))
		assert.Equal(t, a, a.Min(b))
	})
}
