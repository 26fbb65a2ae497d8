package repository

import (
	"context"
	"math"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/repository/converter"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartQueries interface {
	GetCartByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartByOwnerParams) (sqlc.Carts, error)
	GetCartByOwnerForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartByOwnerForUpdateParams) (sqlc.Carts, error)
	ListCartLines(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.CartLines, error)
	UpsertCart(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartParams) (int64, error)
	DeleteCartLines(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) error
	InsertCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCartLineParams) error
	DeleteCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	DeleteExpiredGuestCarts(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteExpiredGuestCartsParams) (int64, error)
}

type CartRepository struct {
	queries CartQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) FindByOwner(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	row, err := r.queries.GetCartByOwner(ctx, r.db, sqlc.GetCartByOwnerParams{
		OwnerKind: string(owner.Kind()),
		OwnerID:   owner.ID(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get cart", err)
	}
	return r.withLines(ctx, row)
}

func (r *CartRepository) FindByOwnerForUpdate(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	row, err := r.queries.GetCartByOwnerForUpdate(ctx, r.db, sqlc.GetCartByOwnerForUpdateParams{
		OwnerKind: string(owner.Kind()),
		OwnerID:   owner.ID(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock cart", err)
	}
	return r.withLines(ctx, row)
}

func (r *CartRepository) withLines(ctx context.Context, row sqlc.Carts) (*cart.Cart, error) {
	lines, err := r.queries.ListCartLines(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	c, err := converter.CartFromRows(row, lines)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert cart", err, infra.KindDBFailure)
	}
	return c, nil
}

// Save rewrites every line; carts are small and positions must stay dense.
func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	version, err := r.queries.UpsertCart(ctx, r.db, converter.CartToUpsertParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to save cart", err)
	}
	if err := r.queries.DeleteCartLines(ctx, r.db, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear cart lines", err)
	}
	for _, p := range converter.CartLinesToParams(c) {
		if err := r.queries.InsertCartLine(ctx, r.db, p); err != nil {
			return infra.WrapRepoErr("failed to insert cart line", err)
		}
	}
	c.MarkSaved(version)
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteCart(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete cart", err)
	}
	return nil
}

// DeleteExpiredGuests: a non-positive limit removes every expired guest cart.
func (r *CartRepository) DeleteExpiredGuests(ctx context.Context, now time.Time, limit int) (int64, error) {
	rowLimit := int32(math.MaxInt32)
	if limit > 0 {
		rowLimit = pgconv.IntToInt32(limit)
	}
	n, err := r.queries.DeleteExpiredGuestCarts(ctx, r.db, sqlc.DeleteExpiredGuestCartsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: rowLimit,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired carts", err)
	}
	return n, nil
}
