package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/money"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnknownVariant = errs.New("product has no such variant")

type VariantInput struct {
	Name  string
	Value string
}

type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Variant   *VariantInput
}

type CouponInput struct {
	Code string
	Kind string
	// Value is a percentage for percentage coupons and a decimal amount for fixed ones.
	Value string
}

func (in CouponInput) ToDomain() (coupon.Coupon, error) {
	magnitude, err := decimal.NewFromString(strings.TrimSpace(in.Value))
	if err != nil {
		return coupon.Coupon{}, coupon.ErrInvalidDiscountAmount
	}
	return coupon.New(in.Code, in.Kind, magnitude)
}

type CartCommands interface {
	GetOrCreate(ctx context.Context, owner cart.Owner) (*queries.CartView, error)
	AddItem(ctx context.Context, owner cart.Owner, in AddItemInput) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, owner cart.Owner, productID uuid.UUID, qty int, variantSignature string) (*queries.CartView, error)
	RemoveItem(ctx context.Context, owner cart.Owner, productID uuid.UUID, variantSignature string) (*queries.CartView, error)
	ApplyCoupon(ctx context.Context, owner cart.Owner, in CouponInput) (*queries.CartView, error)
	RemoveCoupon(ctx context.Context, owner cart.Owner) (*queries.CartView, error)
	SetShippingMethod(ctx context.Context, owner cart.Owner, method string) (*queries.CartView, error)
	Clear(ctx context.Context, owner cart.Owner) (*queries.CartView, error)
	Merge(ctx context.Context, userID uuid.UUID, guestSession string) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	uow    shared.UnitOfWork
	engine *cart.Engine
	cache  queries.CartCache
	clock  clock.Clock
	logger *slog.Logger
}

func NewCartCommands(uow shared.UnitOfWork, engine *cart.Engine, cache queries.CartCache, clk clock.Clock, logger *slog.Logger) CartCommands {
	return &cartCommandsImpl{
		uow:    uow,
		engine: engine,
		cache:  cache,
		clock:  clk,
		logger: logger,
	}
}

type mutation func(ctx context.Context, tx shared.Tx, c *cart.Cart) error

func (u *cartCommandsImpl) GetOrCreate(ctx context.Context, owner cart.Owner) (*queries.CartView, error) {
	return u.mutate(ctx, owner, func(context.Context, shared.Tx, *cart.Cart) error { return nil })
}

func (u *cartCommandsImpl) AddItem(ctx context.Context, owner cart.Owner, in AddItemInput) (*queries.CartView, error) {
	if in.Quantity <= 0 {
		return nil, shared.Validation(cart.ErrInvalidQuantity)
	}
	return u.mutate(ctx, owner, func(ctx context.Context, tx shared.Tx, c *cart.Cart) error {
		snap, err := u.product(ctx, tx, in.ProductID)
		if err != nil {
			return err
		}
		variant, err := resolveVariant(snap, in.Variant)
		if err != nil {
			return err
		}
		if err := c.AddItem(in.ProductID, in.Quantity, variant, u.clock.Now()); err != nil {
			return domainErr(err)
		}
		return checkProductStock(c, snap)
	})
}

func (u *cartCommandsImpl) UpdateQuantity(ctx context.Context, owner cart.Owner, productID uuid.UUID, qty int, variantSignature string) (*queries.CartView, error) {
	return u.mutate(ctx, owner, func(ctx context.Context, tx shared.Tx, c *cart.Cart) error {
		if err := c.UpdateQuantity(productID, qty, variantSignature, u.clock.Now()); err != nil {
			return domainErr(err)
		}
		if qty <= 0 {
			return nil
		}
		snap, err := u.product(ctx, tx, productID)
		if err != nil {
			return err
		}
		return checkProductStock(c, snap)
	})
}

func (u *cartCommandsImpl) RemoveItem(ctx context.Context, owner cart.Owner, productID uuid.UUID, variantSignature string) (*queries.CartView, error) {
	return u.mutate(ctx, owner, func(_ context.Context, _ shared.Tx, c *cart.Cart) error {
		if err := c.RemoveItem(productID, variantSignature, u.clock.Now()); err != nil {
			return domainErr(err)
		}
		return nil
	})
}

func (u *cartCommandsImpl) ApplyCoupon(ctx context.Context, owner cart.Owner, in CouponInput) (*queries.CartView, error) {
	cp, err := in.ToDomain()
	if err != nil {
		return nil, shared.Validation(err)
	}
	return u.mutate(ctx, owner, func(_ context.Context, _ shared.Tx, c *cart.Cart) error {
		c.ApplyCoupon(cp, u.clock.Now())
		return nil
	})
}

func (u *cartCommandsImpl) RemoveCoupon(ctx context.Context, owner cart.Owner) (*queries.CartView, error) {
	return u.mutate(ctx, owner, func(_ context.Context, _ shared.Tx, c *cart.Cart) error {
		c.RemoveCoupon(u.clock.Now())
		return nil
	})
}

func (u *cartCommandsImpl) SetShippingMethod(ctx context.Context, owner cart.Owner, method string) (*queries.CartView, error) {
	m, err := cart.ParseShippingMethod(method)
	if err != nil {
		return nil, shared.Validation(err)
	}
	return u.mutate(ctx, owner, func(_ context.Context, _ shared.Tx, c *cart.Cart) error {
		c.SetShippingMethod(m, u.clock.Now())
		return nil
	})
}

func (u *cartCommandsImpl) Clear(ctx context.Context, owner cart.Owner) (*queries.CartView, error) {
	return u.mutate(ctx, owner, func(_ context.Context, _ shared.Tx, c *cart.Cart) error {
		c.Clear(u.clock.Now())
		return nil
	})
}

// Merge replays every guest line into the user's cart through AddItem, then
// carries over the guest coupon and a non-default shipping method. The guest
// cart is deleted in the same transaction.
func (u *cartCommandsImpl) Merge(ctx context.Context, userID uuid.UUID, guestSession string) (*queries.CartView, error) {
	guestOwner, err := cart.GuestOwner(guestSession)
	if err != nil {
		return nil, shared.Validation(err)
	}
	userOwner := cart.UserOwner(userID)

	view, err := u.mutate(ctx, userOwner, func(ctx context.Context, tx shared.Tx, c *cart.Cart) error {
		guest, err := tx.Carts().FindByOwnerForUpdate(ctx, guestOwner)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Wrap(err, "load guest cart")
		}
		now := u.clock.Now()
		if !guest.IsExpired(now) {
			if err := mergeInto(c, guest, now); err != nil {
				return domainErr(err)
			}
		}
		if err := tx.Carts().Delete(ctx, guest.ID()); err != nil {
			return errs.Wrap(err, "delete guest cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, guestOwner.Key())
	return view, nil
}

func mergeInto(dst, guest *cart.Cart, now time.Time) error {
	for _, l := range guest.Lines() {
		if err := dst.AddItem(l.ProductID(), l.Quantity(), l.Variant(), now); err != nil {
			return errs.Wrapf(err, "merge guest line %s", l.ProductID())
		}
	}
	if cp := guest.Coupon(); cp != nil {
		dst.ApplyCoupon(*cp, now)
	}
	if guest.ShippingMethod() != cart.ShippingStandard {
		dst.SetShippingMethod(guest.ShippingMethod(), now)
	}
	return nil
}

// mutate runs fn against the owner's locked cart, creating it on first use,
// then recomputes, persists and caches the committed view.
func (u *cartCommandsImpl) mutate(ctx context.Context, owner cart.Owner, fn mutation) (*queries.CartView, error) {
	const maxCreateAttempts = 2

	var (
		view *queries.CartView
		err  error
	)
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		view, err = u.mutateOnce(ctx, owner, fn)
		// a concurrent first request created the cart; retry against its row
		if err != nil && infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxCreateAttempts {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}
	storeCartView(ctx, u.cache, u.logger, view)
	return view, nil
}

func (u *cartCommandsImpl) mutateOnce(ctx context.Context, owner cart.Owner, fn mutation) (*queries.CartView, error) {
	var view *queries.CartView
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := u.lockOrCreate(ctx, tx, owner)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx, c); err != nil {
			return err
		}
		catalog, err := tx.Catalog().Products(ctx, c.ProductIDs())
		if err != nil {
			return errs.Wrap(err, "load catalog")
		}
		u.engine.Recompute(c, catalog)
		if err := tx.Carts().Save(ctx, c); err != nil {
			return err
		}
		view = queries.NewCartView(c, catalog)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// lockOrCreate resets an expired guest cart instead of resurrecting its lines.
func (u *cartCommandsImpl) lockOrCreate(ctx context.Context, tx shared.Tx, owner cart.Owner) (*cart.Cart, error) {
	now := u.clock.Now()
	c, err := tx.Carts().FindByOwnerForUpdate(ctx, owner)
	if err == nil {
		if c.IsExpired(now) {
			c.Clear(now)
		}
		return c, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Wrap(err, "load cart")
	}
	c, err = cart.New(owner, now)
	if err != nil {
		return nil, shared.Validation(err)
	}
	return c, nil
}

func (u *cartCommandsImpl) product(ctx context.Context, tx shared.Tx, id uuid.UUID) (cart.ProductSnapshot, error) {
	catalog, err := tx.Catalog().Products(ctx, []uuid.UUID{id})
	if err != nil {
		return cart.ProductSnapshot{}, errs.Wrap(err, "load product")
	}
	snap, ok := catalog[id]
	if !ok {
		return cart.ProductSnapshot{}, shared.NotFound(errs.Newf("product %s", id), shared.ErrProductNotFound)
	}
	return snap, nil
}

func (u *cartCommandsImpl) invalidate(ctx context.Context, keys ...string) {
	if err := u.cache.Delete(ctx, keys...); err != nil {
		u.logger.Warn("cart cache invalidation failed", "owners", keys, "error", err.Error())
	}
}

// storeCartView writes the committed view through to the cache. When that
// fails the entry is dropped so an older view cannot outlive the commit.
func storeCartView(ctx context.Context, cache queries.CartCache, logger *slog.Logger, view *queries.CartView) {
	err := cache.Set(ctx, view.OwnerKey, view)
	if err == nil {
		return
	}
	logger.Warn("cart cache write failed", "owner", view.OwnerKey, "error", err.Error())
	if err := cache.Delete(ctx, view.OwnerKey); err != nil {
		logger.Warn("cart cache invalidation failed", "owner", view.OwnerKey, "error", err.Error())
	}
}

// resolveVariant binds the requested option to the catalog's price adjustment.
func resolveVariant(snap cart.ProductSnapshot, in *VariantInput) (*cart.Variant, error) {
	if in == nil {
		return nil, nil
	}
	v, err := cart.NewVariant(in.Name, in.Value, money.Zero())
	if err != nil {
		return nil, shared.Validation(err)
	}
	adj, ok := snap.VariantAdjustments[v.Signature()]
	if !ok {
		return nil, shared.Validation(errs.Wrapf(ErrUnknownVariant, "variant %s", v.Signature()))
	}
	v.PriceAdjustment = adj
	return v, nil
}

// checkProductStock rejects a mutation that would ask for more of the product
// than the ledger can supply, summed across its variants.
func checkProductStock(c *cart.Cart, snap cart.ProductSnapshot) error {
	requested := 0
	for _, l := range c.Lines() {
		if l.ProductID() == snap.ID {
			requested += l.Quantity()
		}
	}
	av := inventory.CheckAvailability(snap.Inventory, requested)
	if av.Available {
		return nil
	}
	return shared.SingleStockIssue(snap.ID, snap.Name, requested, *av.AvailableQty)
}
