package shared

import (
	"time"

	"commerce-core/internal/domain/identity"

	"github.com/google/uuid"
)

// OutboxMessage is written in the same transaction as the state change it announces.
type OutboxMessage struct {
	AggregateType string
	AggregateID   string
	Type          string
	Payload       []byte
	Headers       map[string]string
	Traceparent   string
}

const (
	AggregateOrder   = "order"
	AggregateProduct = "product"

	EventOrderConfirmation  = "order.confirmation"
	EventOrderCancelled     = "order.cancelled"
	EventOrderStatusChanged = "order.status_changed"
	EventLowStock           = "inventory.low_stock"
)

// Keyset is the (created_at, id) position of the last row of a page.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Actor is the authenticated caller as supplied by the identity collaborator.
type Actor struct {
	UserID uuid.UUID
	Role   identity.Role
}

func (a Actor) CanManageOrders() bool {
	return a.Role.AtLeast(identity.RoleOperator)
}
