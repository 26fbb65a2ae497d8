//go:build unit

package pgconv_test

import (
	"math"
	"testing"
	"time"

	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimalNumeric(t *testing.T) {
	for _, s := range []string{"0", "10", "12.5", "99.99", "-3.25"} {
		d := decimal.RequireFromString(s)
		assert.True(t, d.Equal(pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))), s)
	}
	assert.True(t, pgconv.DecimalFromNumeric(pgtype.Numeric{}).IsZero())
	assert.True(t, pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true}).IsZero())
}

func TestNullables(t *testing.T) {
	assert.False(t, pgconv.TextFromString("").Valid)
	assert.Equal(t, "", pgconv.StringFromText(pgtype.Text{}))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))

	now := time.Now()
	assert.Equal(t, now, *pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))
	id := uuid.New()
	assert.Equal(t, id, *pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(nil))
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(42), pgconv.IntToInt32(42))
	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), pgconv.IntToInt32(math.MinInt32-1))
}
