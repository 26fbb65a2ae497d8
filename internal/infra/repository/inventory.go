package repository

import (
	"context"

	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/repository/converter"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	DecrementStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementStockParams) (sqlc.DecrementStockRow, error)
	IncrementStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementStockParams) (sqlc.IncrementStockRow, error)
	ProductExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type InventoryRepository struct {
	queries InventoryQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// Decrement runs the guarded UPDATE; the guard and the write are a single statement.
func (r *InventoryRepository) Decrement(ctx context.Context, productID uuid.UUID, qty int) (inventory.DeltaResult, error) {
	row, err := r.queries.DecrementStock(ctx, r.db, sqlc.DecrementStockParams{
		ID:  productID,
		Qty: pgconv.IntToInt32(qty),
	})
	if err != nil {
		if !pgconv.IsNoRows(err) {
			return inventory.DeltaResult{}, infra.WrapRepoErr("failed to decrement stock", err)
		}
		exists, existsErr := r.queries.ProductExists(ctx, r.db, productID)
		if existsErr != nil {
			return inventory.DeltaResult{}, infra.WrapRepoErr("failed to check product", existsErr)
		}
		if !exists {
			return inventory.DeltaResult{}, infra.NewRepoErr(infra.KindNotFound, "product not found")
		}
		return inventory.DeltaResult{}, infra.NewRepoErr(infra.KindConflict, "insufficient stock")
	}
	return applied(converter.StockRow{
		ID:                row.ID,
		TrackQuantity:     row.TrackQuantity,
		PreviousQuantity:  row.PreviousQuantity,
		LowStockThreshold: row.LowStockThreshold,
		AllowBackorders:   row.AllowBackorders,
	}, qty, inventory.Decrease)
}

func (r *InventoryRepository) Increment(ctx context.Context, productID uuid.UUID, qty int) (inventory.DeltaResult, error) {
	row, err := r.queries.IncrementStock(ctx, r.db, sqlc.IncrementStockParams{
		ID:  productID,
		Qty: pgconv.IntToInt32(qty),
	})
	if err != nil {
		return inventory.DeltaResult{}, infra.WrapRepoErr("failed to increment stock", err)
	}
	return applied(converter.StockRow{
		ID:                row.ID,
		TrackQuantity:     row.TrackQuantity,
		PreviousQuantity:  row.PreviousQuantity,
		LowStockThreshold: row.LowStockThreshold,
		AllowBackorders:   row.AllowBackorders,
	}, qty, inventory.Increase)
}

// applied replays the delta on the pre-update record so clamping and the
// low-stock flag come from the same rules the ledger uses.
func applied(row converter.StockRow, qty int, dir inventory.Direction) (inventory.DeltaResult, error) {
	res, err := inventory.ApplyDelta(row.PreviousRecord(), qty, dir)
	if err != nil {
		return inventory.DeltaResult{}, infra.WrapRepoErr("failed to apply stock delta", err, infra.KindDBFailure)
	}
	return res, nil
}
