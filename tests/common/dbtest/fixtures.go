//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// UpsertProduct writes a catalog row with its inventory columns.
func UpsertProduct(t *testing.T, db sqlc.DBTX, b *builder.ProductBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildRow()
	err := sqlc.New().UpsertProduct(context.Background(), db, sqlc.UpsertProductParams{
		ID:                 row.ID,
		Name:               row.Name,
		Image:              row.Image,
		PriceCents:         row.PriceCents,
		VariantAdjustments: row.VariantAdjustments,
		TrackQuantity:      row.TrackQuantity,
		Quantity:           row.Quantity,
		LowStockThreshold:  row.LowStockThreshold,
		AllowBackorders:    row.AllowBackorders,
		IsActive:           row.IsActive,
	})
	require.NoError(t, err)
	return row.ID
}

func StockOf(t *testing.T, db sqlc.DBTX, productID uuid.UUID) int {
	t.Helper()

	var qty int32
	err := db.QueryRow(context.Background(), "SELECT quantity FROM products WHERE id = $1", productID).Scan(&qty)
	require.NoError(t, err)
	return int(qty)
}

func CountOutboxEvents(t *testing.T, db sqlc.DBTX, eventType string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM outbox_events WHERE event_type = $1", eventType).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
