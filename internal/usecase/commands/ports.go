package commands

import (
	"context"

	"commerce-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyInFlight = errs.New("idempotent request still in flight")
	ErrIdempotencyMismatch = errs.New("idempotency key reused with a different request")
)

type ClaimState string

const (
	ClaimAcquired  ClaimState = "acquired"
	ClaimCompleted ClaimState = "completed"
)

type IdempotencyClaim struct {
	State ClaimState
	// OrderID is set when State is ClaimCompleted.
	OrderID uuid.UUID
}

// IdempotencyStore guards checkout replays. Begin returns ErrIdempotencyInFlight
// while another request holds the key and ErrIdempotencyMismatch when the
// request hash differs from the one the key was claimed with.
type IdempotencyStore interface {
	Begin(ctx context.Context, scope, key, requestHash string) (IdempotencyClaim, error)
	Complete(ctx context.Context, scope, key, requestHash string, orderID uuid.UUID) error
	// Release frees a key whose request failed so the client may retry it.
	Release(ctx context.Context, scope, key string) error
}
