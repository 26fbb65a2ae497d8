package commands

import (
	"context"
	"log/slog"
	"strings"

	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateStatusInput struct {
	Status         string
	TrackingNumber *string
	// Reason is recorded when the update cancels the order.
	Reason string
}

type OrderCommands interface {
	Cancel(ctx context.Context, actor shared.Actor, orderID uuid.UUID, reason string) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in UpdateStatusInput) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) OrderCommands {
	return &orderCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Cancel is open to the order's owner and to staff. The status change and the
// stock restoration commit together.
func (u *orderCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, orderID uuid.UUID, reason string) (*queries.OrderView, error) {
	return u.withOrder(ctx, orderID, func(ctx context.Context, tx shared.Tx, o *order.Order) error {
		if o.UserID() != actor.UserID && !actor.CanManageOrders() {
			return shared.NotFound(errs.New("order belongs to another user"), shared.ErrOrderNotFound)
		}
		return u.cancel(ctx, tx, o, reason)
	})
}

func (u *orderCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in UpdateStatusInput) (*queries.OrderView, error) {
	if !actor.CanManageOrders() {
		return nil, errs.Mark(errs.New("order status updates require operator role"), shared.ErrForbidden)
	}
	next, err := order.ParseStatus(in.Status)
	if err != nil {
		return nil, shared.Validation(err)
	}

	return u.withOrder(ctx, orderID, func(ctx context.Context, tx shared.Tx, o *order.Order) error {
		if next == order.StatusCancelled {
			return u.cancel(ctx, tx, o, in.Reason)
		}

		now := u.clock.Now()
		previous := o.Status()
		if next == order.StatusReturned {
			err = o.Return(now)
		} else {
			err = o.UpdateStatus(next, now)
		}
		if err != nil {
			return domainErr(err)
		}
		if in.TrackingNumber != nil {
			o.SetTrackingNumber(strings.TrimSpace(*in.TrackingNumber), now)
		}

		if err := tx.Orders().UpdateState(ctx, o); err != nil {
			return errs.Wrap(err, "update order")
		}
		ev, err := orderEvent(ctx, shared.EventOrderStatusChanged, o, previous, now)
		if err != nil {
			return errs.Wrap(err, "encode status event")
		}
		return tx.Outbox().Enqueue(ctx, ev)
	})
}

// cancel restores every tracked line's quantity; returns are not restocked here.
func (u *orderCommandsImpl) cancel(ctx context.Context, tx shared.Tx, o *order.Order, reason string) error {
	now := u.clock.Now()
	previous := o.Status()
	if err := o.Cancel(strings.TrimSpace(reason), now); err != nil {
		return domainErr(err)
	}
	if err := tx.Orders().UpdateState(ctx, o); err != nil {
		return errs.Wrap(err, "update order")
	}

	qty, ids := trackedQuantities(o)
	for _, id := range ids {
		if _, err := tx.Inventory().Increment(ctx, id, qty[id]); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// the product left the catalog; nothing to restock
				u.logger.Warn("restock skipped for missing product", "order_id", o.ID().String(), "product_id", id.String())
				continue
			}
			return errs.Wrap(err, "restore stock")
		}
	}

	ev, err := orderEvent(ctx, shared.EventOrderCancelled, o, previous, now)
	if err != nil {
		return errs.Wrap(err, "encode cancel event")
	}
	return tx.Outbox().Enqueue(ctx, ev)
}

func (u *orderCommandsImpl) withOrder(ctx context.Context, orderID uuid.UUID, fn func(ctx context.Context, tx shared.Tx, o *order.Order) error) (*queries.OrderView, error) {
	var view *queries.OrderView
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound(err, shared.ErrOrderNotFound)
			}
			return errs.Wrap(err, "load order")
		}
		if err := fn(ctx, tx, o); err != nil {
			return err
		}
		view = queries.NewOrderView(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

