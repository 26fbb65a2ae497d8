package queries

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor string, limit int) (*OrderPage, error)
}

type orderQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOrderQueries(uow shared.UnitOfWork) OrderQueries {
	return &orderQueriesImpl{uow: uow}
}

// GetByID hides other customers' orders behind not-found; staff see every order.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrderView, error) {
	var view *OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound(err, shared.ErrOrderNotFound)
			}
			return errs.Wrap(err, "load order")
		}
		if o.UserID() != actor.UserID && !actor.CanManageOrders() {
			return shared.NotFound(errs.New("order belongs to another user"), shared.ErrOrderNotFound)
		}
		view = NewOrderView(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor string, limit int) (*OrderPage, error) {
	limit = ValidateLimit(limit)
	var after *shared.Keyset
	if cursor != "" {
		ks, err := DecodeAfterCursor(cursor)
		if err != nil {
			return nil, shared.Validation(err)
		}
		after = ks
	}

	page := &OrderPage{Items: []*OrderView{}}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		// one extra row tells whether another page exists
		orders, err := tx.Orders().ListByUser(ctx, userID, after, limit+1)
		if err != nil {
			return errs.Wrap(err, "list orders")
		}
		hasMore := len(orders) > limit
		if hasMore {
			orders = orders[:limit]
		}
		for _, o := range orders {
			page.Items = append(page.Items, NewOrderView(o))
		}
		if hasMore {
			last := orders[len(orders)-1]
			page.NextCursor = EncodeAfterCursor(last.CreatedAt(), last.ID())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}
