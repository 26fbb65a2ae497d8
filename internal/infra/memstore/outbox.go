package memstore

import (
	"context"
	"maps"
	"time"

	"commerce-core/internal/infra/outbox"
	"commerce-core/internal/usecase/shared"
)

type outboxRecord struct {
	outbox.Event
	lockedUntil time.Time
}

type outboxRepo struct{ t *memTx }

func (r outboxRepo) Enqueue(_ context.Context, msgs ...shared.OutboxMessage) error {
	if err := r.t.writable("enqueue events"); err != nil {
		return err
	}
	now := r.t.store.clock.Now()
	for _, m := range msgs {
		*r.t.seq++
		r.t.state.outbox = append(r.t.state.outbox, &outboxRecord{Event: outbox.Event{
			ID:            *r.t.seq,
			AggregateType: m.AggregateType,
			AggregateID:   m.AggregateID,
			Type:          m.Type,
			Payload:       append([]byte(nil), m.Payload...),
			Headers:       maps.Clone(m.Headers),
			Traceparent:   m.Traceparent,
			CreatedAt:     now,
			Status:        outbox.StatusPending,
		}})
	}
	return nil
}

var _ outbox.Store = (*Store)(nil)

// LockBatch claims pending events and in-progress ones whose lease has lapsed, oldest first.
func (s *Store) LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]outbox.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var out []outbox.Event
	for _, rec := range s.state.outbox {
		if len(out) >= batchSize {
			break
		}
		claimable := rec.Status == outbox.StatusPending ||
			(rec.Status == outbox.StatusInProgress && !now.Before(rec.lockedUntil))
		if !claimable {
			continue
		}
		rec.Status = outbox.StatusInProgress
		rec.RelayID = relayID
		rec.lockedUntil = now.Add(lease)
		out = append(out, rec.Event)
	}
	return out, nil
}

func (s *Store) MarkSent(_ context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for _, rec := range s.state.outbox {
		if _, ok := want[rec.ID]; ok {
			rec.Status = outbox.StatusSent
			rec.LastError = nil
		}
	}
	return nil
}

func (s *Store) MarkFailed(_ context.Context, id int64, errMsg string, maxAttempts int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.state.outbox {
		if rec.ID != id {
			continue
		}
		rec.Attempts++
		msg := errMsg
		rec.LastError = &msg
		rec.RelayID = ""
		if rec.Attempts >= maxAttempts {
			rec.Status = outbox.StatusFailed
		} else {
			rec.Status = outbox.StatusPending
		}
		return nil
	}
	return nil
}

// Events returns a copy of the outbox in enqueue order.
func (s *Store) Events() []outbox.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]outbox.Event, len(s.state.outbox))
	for i, rec := range s.state.outbox {
		out[i] = rec.Event
	}
	return out
}
