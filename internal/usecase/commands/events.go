package commands

import (
	"context"
	"encoding/json"
	"time"

	"commerce-core/internal/domain/inventory"
	"commerce-core/internal/domain/order"
	"commerce-core/internal/pkg/tracing"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderEventPayload struct {
	OrderID        uuid.UUID `json:"order_id"`
	Number         string    `json:"number"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalCents     int64     `json:"total_cents"`
	ItemCount      int       `json:"item_count"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	CancelReason   string    `json:"cancel_reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type LowStockPayload struct {
	ProductID         uuid.UUID `json:"product_id"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	OrderID           uuid.UUID `json:"order_id"`
	OccurredAt        time.Time `json:"occurred_at"`
}

func orderEvent(ctx context.Context, eventType string, o *order.Order, previous order.Status, now time.Time) (shared.OutboxMessage, error) {
	items := 0
	for _, l := range o.Lines() {
		items += l.Quantity
	}
	p := OrderEventPayload{
		OrderID:        o.ID(),
		Number:         o.Number(),
		UserID:         o.UserID(),
		Status:         o.Status().String(),
		TotalCents:     o.Totals().Total.Cents(),
		ItemCount:      items,
		TrackingNumber: o.TrackingNumber(),
		CancelReason:   o.CancelReason(),
		OccurredAt:     now,
	}
	if previous != "" && previous != o.Status() {
		p.PreviousStatus = previous.String()
	}
	return newMessage(ctx, shared.AggregateOrder, o.ID().String(), eventType, p)
}

func lowStockEvent(ctx context.Context, rec inventory.Record, orderID uuid.UUID, now time.Time) (shared.OutboxMessage, error) {
	return newMessage(ctx, shared.AggregateProduct, rec.ProductID().String(), shared.EventLowStock, LowStockPayload{
		ProductID:         rec.ProductID(),
		Quantity:          rec.Quantity(),
		LowStockThreshold: rec.LowStockThreshold(),
		OrderID:           orderID,
		OccurredAt:        now,
	})
}

func newMessage(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) (shared.OutboxMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return shared.OutboxMessage{}, err
	}
	headers := tracing.InjectMap(ctx)
	return shared.OutboxMessage{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Type:          eventType,
		Payload:       body,
		Headers:       headers,
		Traceparent:   headers[tracing.TraceparentHeader],
	}, nil
}
