package idempotency

import (
	"context"
	"sync"
	"time"

	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type entry struct {
	hash      string
	done      bool
	orderID   uuid.UUID
	expiresAt time.Time
}

// MemoryStore backs the memory persistence driver and the usecase tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   clock.Clock
	ttl     time.Duration
}

func NewMemoryStore(clk clock.Clock, ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{entries: make(map[string]entry), clock: clk, ttl: ttl}
}

var _ commands.IdempotencyStore = (*MemoryStore)(nil)

func (s *MemoryStore) Begin(_ context.Context, scope, key, requestHash string) (commands.IdempotencyClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := scope + ":" + key
	now := s.clock.Now()
	e, ok := s.entries[k]
	if !ok || !now.Before(e.expiresAt) {
		s.entries[k] = entry{hash: requestHash, expiresAt: now.Add(s.ttl)}
		return commands.IdempotencyClaim{State: commands.ClaimAcquired}, nil
	}
	if e.hash != requestHash {
		return commands.IdempotencyClaim{}, commands.ErrIdempotencyMismatch
	}
	if !e.done {
		return commands.IdempotencyClaim{}, commands.ErrIdempotencyInFlight
	}
	return commands.IdempotencyClaim{State: commands.ClaimCompleted, OrderID: e.orderID}, nil
}

func (s *MemoryStore) Complete(_ context.Context, scope, key, requestHash string, orderID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[scope+":"+key] = entry{
		hash:      requestHash,
		done:      true,
		orderID:   orderID,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, scope+":"+key)
	return nil
}
