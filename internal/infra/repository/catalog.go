package repository

import (
	"context"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/repository/converter"
	sqlc "commerce-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
	GetProductsByIDsForUpdate(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
}

// CatalogRepository reads active products only.
type CatalogRepository struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) Products(ctx context.Context, ids []uuid.UUID) (cart.Catalog, error) {
	if len(ids) == 0 {
		return cart.Catalog{}, nil
	}
	rows, err := r.queries.GetProductsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get products", err)
	}
	return toCatalog(rows)
}

func (r *CatalogRepository) ProductsForUpdate(ctx context.Context, ids []uuid.UUID) (cart.Catalog, error) {
	if len(ids) == 0 {
		return cart.Catalog{}, nil
	}
	rows, err := r.queries.GetProductsByIDsForUpdate(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	return toCatalog(rows)
}

func toCatalog(rows []sqlc.Products) (cart.Catalog, error) {
	out := make(cart.Catalog, len(rows))
	for _, row := range rows {
		p, err := converter.ProductFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert product", err, infra.KindDBFailure)
		}
		out[p.ID] = p
	}
	return out, nil
}
