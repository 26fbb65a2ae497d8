package repository

import (
	"context"

	"commerce-core/internal/domain/order"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/repository/converter"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	InsertOrderLine(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderLineParams) error
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderLinesByOrderIDs(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.OrderLines, error)
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserParams) ([]sqlc.Orders, error)
	ListOrdersByUserAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserAfterParams) ([]sqlc.Orders, error)
	UpdateOrderState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStateParams) (int64, error)
}

type OrderRepository struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to convert order", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateOrder(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for _, p := range converter.OrderLinesToParams(o) {
		if err := r.queries.InsertOrderLine(ctx, r.db, p); err != nil {
			return infra.WrapRepoErr("failed to insert order line", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return r.single(ctx, row)
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return r.single(ctx, row)
}

func (r *OrderRepository) single(ctx context.Context, row sqlc.Orders) (*order.Order, error) {
	orders, err := r.attachLines(ctx, []sqlc.Orders{row})
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, after *shared.Keyset, limit int) ([]*order.Order, error) {
	var (
		rows []sqlc.Orders
		err  error
	)
	if after == nil {
		rows, err = r.queries.ListOrdersByUser(ctx, r.db, sqlc.ListOrdersByUserParams{
			UserID: userID,
			Limit:  pgconv.IntToInt32(limit),
		})
	} else {
		rows, err = r.queries.ListOrdersByUserAfter(ctx, r.db, sqlc.ListOrdersByUserAfterParams{
			UserID:    userID,
			CreatedAt: pgconv.TimeToPgtype(after.CreatedAt),
			ID:        after.ID,
			RowLimit:  pgconv.IntToInt32(limit),
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}
	return r.attachLines(ctx, rows)
}

// attachLines loads the lines of every row in one query.
func (r *OrderRepository) attachLines(ctx context.Context, rows []sqlc.Orders) ([]*order.Order, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	lines, err := r.queries.ListOrderLinesByOrderIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	byOrder := make(map[uuid.UUID][]sqlc.OrderLines, len(rows))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	out := make([]*order.Order, len(rows))
	for i, row := range rows {
		o, err := converter.OrderFromRows(row, byOrder[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order", err, infra.KindDBFailure)
		}
		out[i] = o
	}
	return out, nil
}

func (r *OrderRepository) UpdateState(ctx context.Context, o *order.Order) error {
	n, err := r.queries.UpdateOrderState(ctx, r.db, converter.OrderToUpdateStateParams(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return nil
}
