package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutInput struct {
	ShippingAddress order.Address
	// BillingAddress defaults to the shipping address.
	BillingAddress *order.Address
	Payment        order.Payment
	ShippingMethod string
	Coupon         *CouponInput
	Notes          string
	Gift           order.Gift
}

type CheckoutResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, userID uuid.UUID, in CheckoutInput, idempotencyKey string) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow         shared.UnitOfWork
	engine      *cart.Engine
	numbers     order.NumberGenerator
	idempotency IdempotencyStore
	cache       queries.CartCache
	clock       clock.Clock
	logger      *slog.Logger
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	engine *cart.Engine,
	numbers order.NumberGenerator,
	idempotency IdempotencyStore,
	cache queries.CartCache,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:         uow,
		engine:      engine,
		numbers:     numbers,
		idempotency: idempotency,
		cache:       cache,
		clock:       clk,
		logger:      logger,
	}
}

// Checkout converts the user's cart into a pending order. Order creation, stock
// decrements, cart clearing and the confirmation event commit together or not
// at all.
func (u *checkoutCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID, in CheckoutInput, idempotencyKey string) (*CheckoutResult, error) {
	scope := userID.String()
	requestHash := calculateRequestHash(in)

	if idempotencyKey != "" {
		replayed, err := u.claim(ctx, userID, scope, idempotencyKey, requestHash)
		if err != nil || replayed != nil {
			return replayed, err
		}
	}

	created, cleared, err := u.placeOrder(ctx, userID, in)
	if err != nil {
		if idempotencyKey != "" {
			if relErr := u.idempotency.Release(ctx, scope, idempotencyKey); relErr != nil {
				u.logger.Warn("idempotency release failed", "key", idempotencyKey, "error", relErr.Error())
			}
		}
		return nil, err
	}

	storeCartView(ctx, u.cache, u.logger, cleared)
	if idempotencyKey != "" {
		if err := u.idempotency.Complete(ctx, scope, idempotencyKey, requestHash, created.ID()); err != nil {
			// the order stands; only replay protection for this key is lost
			err = errs.Mark(err, shared.ErrPartialFailure)
			u.logger.Error("idempotency completion failed",
				"order_id", created.ID().String(),
				"key", idempotencyKey,
				"error", err.Error())
		}
	}

	return &CheckoutResult{Order: queries.NewOrderView(created)}, nil
}

func (u *checkoutCommandsImpl) claim(ctx context.Context, userID uuid.UUID, scope, key, requestHash string) (*CheckoutResult, error) {
	c, err := u.idempotency.Begin(ctx, scope, key, requestHash)
	if err != nil {
		if errs.Is(err, ErrIdempotencyInFlight) || errs.Is(err, ErrIdempotencyMismatch) {
			return nil, errs.Mark(err, shared.ErrConflict)
		}
		return nil, errs.Wrap(err, "claim idempotency key")
	}
	if c.State != ClaimCompleted {
		return nil, nil
	}

	var view *queries.OrderView
	err = u.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, c.OrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound(err, shared.ErrOrderNotFound)
			}
			return errs.Wrap(err, "load replayed order")
		}
		if o.UserID() != userID {
			return errs.Mark(errs.New("idempotency key bound to another user"), shared.ErrConflict)
		}
		view = queries.NewOrderView(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Order: view, IsReplayed: true}, nil
}

func (u *checkoutCommandsImpl) placeOrder(ctx context.Context, userID uuid.UUID, in CheckoutInput) (*order.Order, *queries.CartView, error) {
	var (
		created *order.Order
		cleared *queries.CartView
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := u.clock.Now()

		c, err := tx.Carts().FindByOwnerForUpdate(ctx, cart.UserOwner(userID))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, shared.ErrEmptyCart)
			}
			return errs.Wrap(err, "load cart")
		}
		if c.IsEmpty() {
			return shared.ErrEmptyCart
		}

		if err := applyOverrides(c, in, now); err != nil {
			return err
		}

		catalog, err := tx.Catalog().ProductsForUpdate(ctx, c.ProductIDs())
		if err != nil {
			return errs.Wrap(err, "lock products")
		}
		if v := cart.ValidateStock(c, catalog); !v.IsValid {
			return shared.NewStockError(v.Issues)
		}

		u.engine.Recompute(c, catalog)
		o, err := order.New(u.orderParams(userID, c, catalog, in), now)
		if err != nil {
			return domainErr(err)
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			return errs.Wrap(err, "create order")
		}

		events, err := u.decrementStock(ctx, tx, o, catalog, now)
		if err != nil {
			return err
		}

		c.Clear(now)
		u.engine.Recompute(c, nil)
		if err := tx.Carts().Save(ctx, c); err != nil {
			return errs.Wrap(err, "clear cart")
		}

		confirmation, err := orderEvent(ctx, shared.EventOrderConfirmation, o, "", now)
		if err != nil {
			return errs.Wrap(err, "encode confirmation")
		}
		if err := tx.Outbox().Enqueue(ctx, append(events, confirmation)...); err != nil {
			return errs.Wrap(err, "enqueue events")
		}

		created = o
		cleared = queries.NewCartView(c, nil)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, cleared, nil
}

func applyOverrides(c *cart.Cart, in CheckoutInput, now time.Time) error {
	if in.ShippingMethod != "" {
		m, err := cart.ParseShippingMethod(in.ShippingMethod)
		if err != nil {
			return shared.Validation(err)
		}
		c.SetShippingMethod(m, now)
	}
	if in.Coupon != nil {
		cp, err := in.Coupon.ToDomain()
		if err != nil {
			return shared.Validation(err)
		}
		c.ApplyCoupon(cp, now)
	}
	return nil
}

// orderParams freezes the priced cart lines; later catalog changes never reach the order.
func (u *checkoutCommandsImpl) orderParams(userID uuid.UUID, c *cart.Cart, catalog cart.Catalog, in CheckoutInput) order.Params {
	lines := make([]order.Line, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		snap := catalog[l.ProductID()]
		ol := order.Line{
			ProductID:     l.ProductID(),
			Name:          l.Name(),
			Image:         l.Image(),
			UnitPrice:     l.UnitPrice(),
			Quantity:      l.Quantity(),
			LineTotal:     l.Amount(),
			TrackQuantity: snap.Inventory.TrackQuantity(),
		}
		if v := l.Variant(); v != nil {
			ol.Variant = &order.VariantSnapshot{
				Name:            v.Name,
				Value:           v.Value,
				PriceAdjustment: snap.VariantAdjustment(v),
			}
		}
		lines = append(lines, ol)
	}

	billing := in.ShippingAddress
	if in.BillingAddress != nil {
		billing = *in.BillingAddress
	}
	var couponCode string
	if cp := c.Coupon(); cp != nil {
		couponCode = cp.Code().String()
	}
	t := c.Totals()

	return order.Params{
		Number:          u.numbers.Next(u.clock.Now()),
		UserID:          userID,
		Lines:           lines,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  billing,
		Payment:         in.Payment,
		Totals: order.Totals{
			Subtotal:     t.Subtotal,
			Tax:          t.Tax,
			ShippingCost: t.Shipping,
			Discount:     t.Discount,
			Total:        t.Total,
		},
		ShippingMethod: c.ShippingMethod().String(),
		CouponCode:     couponCode,
		Notes:          in.Notes,
		Gift:           in.Gift,
	}
}

// decrementStock takes each tracked product once, in id order, and returns the
// low-stock events to enqueue with the order.
func (u *checkoutCommandsImpl) decrementStock(ctx context.Context, tx shared.Tx, o *order.Order, catalog cart.Catalog, now time.Time) ([]shared.OutboxMessage, error) {
	qty, ids := trackedQuantities(o)
	var events []shared.OutboxMessage
	for _, id := range ids {
		res, err := tx.Inventory().Decrement(ctx, id, qty[id])
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				snap := catalog[id]
				return nil, shared.SingleStockIssue(id, snap.Name, qty[id], snap.Inventory.Quantity())
			}
			return nil, errs.Wrap(err, "decrement stock")
		}
		if !res.LowStock {
			continue
		}
		ev, err := lowStockEvent(ctx, res.Record, o.ID(), now)
		if err != nil {
			return nil, errs.Wrap(err, "encode low stock")
		}
		events = append(events, ev)
	}
	return events, nil
}

// trackedQuantities sums ordered quantities per stock-tracked product.
func trackedQuantities(o *order.Order) (map[uuid.UUID]int, []uuid.UUID) {
	qty := make(map[uuid.UUID]int)
	for _, l := range o.Lines() {
		if l.TrackQuantity {
			qty[l.ProductID] += l.Quantity
		}
	}
	ids := make([]uuid.UUID, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return qty, ids
}

func calculateRequestHash(in CheckoutInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
