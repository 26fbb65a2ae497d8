package queries

import (
	"context"
	"log/slog"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

var ErrCacheMiss = errs.New("cache miss")

// CartCache holds rendered cart views keyed by owner key. Set must never
// replace a view with one of a lower cart version, and Delete must keep views
// loaded before the delete from being stored again. Writers store the view
// they committed; readers fill on miss.
type CartCache interface {
	Get(ctx context.Context, ownerKey string) (*CartView, error)
	Set(ctx context.Context, ownerKey string, view *CartView) error
	Delete(ctx context.Context, ownerKeys ...string) error
}

type CartQueries interface {
	Get(ctx context.Context, owner cart.Owner) (*CartView, error)
	ValidateStock(ctx context.Context, owner cart.Owner) (*StockValidationView, error)
}

type cartQueriesImpl struct {
	uow    shared.UnitOfWork
	engine *cart.Engine
	cache  CartCache
	clock  clock.Clock
	logger *slog.Logger
	group  singleflight.Group
}

func NewCartQueries(uow shared.UnitOfWork, engine *cart.Engine, cache CartCache, clk clock.Clock, logger *slog.Logger) CartQueries {
	return &cartQueriesImpl{
		uow:    uow,
		engine: engine,
		cache:  cache,
		clock:  clk,
		logger: logger,
	}
}

// Get prices the cart against the live catalog. Concurrent misses for the same
// owner share one load.
func (q *cartQueriesImpl) Get(ctx context.Context, owner cart.Owner) (*CartView, error) {
	key := owner.Key()
	if view, err := q.cache.Get(ctx, key); err == nil {
		if view.ExpiresAt == nil || q.clock.Now().Before(*view.ExpiresAt) {
			return view, nil
		}
	} else if !errs.Is(err, ErrCacheMiss) {
		q.logger.Warn("cart cache read failed", "owner", key, "error", err.Error())
	}

	v, err, _ := q.group.Do(key, func() (any, error) {
		var view *CartView
		err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			c, catalog, err := q.load(ctx, tx, owner)
			if err != nil {
				return err
			}
			view = NewCartView(c, catalog)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if err := q.cache.Set(ctx, key, view); err != nil {
			q.logger.Warn("cart cache write failed", "owner", key, "error", err.Error())
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CartView), nil
}

func (q *cartQueriesImpl) ValidateStock(ctx context.Context, owner cart.Owner) (*StockValidationView, error) {
	var result cart.StockValidation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, catalog, err := q.load(ctx, tx, owner)
		if err != nil {
			return err
		}
		result = cart.ValidateStock(c, catalog)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &StockValidationView{IsValid: result.IsValid, Issues: NewStockIssueViews(result.Issues)}, nil
}

func (q *cartQueriesImpl) load(ctx context.Context, tx shared.Tx, owner cart.Owner) (*cart.Cart, cart.Catalog, error) {
	c, err := tx.Carts().FindByOwner(ctx, owner)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, shared.NotFound(err, shared.ErrCartNotFound)
		}
		return nil, nil, errs.Wrap(err, "load cart")
	}
	if c.IsExpired(q.clock.Now()) {
		return nil, nil, shared.NotFound(errs.New("guest cart expired"), shared.ErrCartNotFound)
	}
	catalog, err := tx.Catalog().Products(ctx, c.ProductIDs())
	if err != nil {
		return nil, nil, errs.Wrap(err, "load catalog")
	}
	q.engine.Recompute(c, catalog)
	return c, catalog, nil
}
