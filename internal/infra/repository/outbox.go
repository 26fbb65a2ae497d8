package repository

import (
	"context"
	"sort"
	"time"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/outbox"
	"commerce-core/internal/infra/repository/converter"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) (int64, error)
}

// OutboxRepository writes events inside the caller's transaction.
type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msgs ...shared.OutboxMessage) error {
	for _, m := range msgs {
		params, err := converter.OutboxMessageToParams(m)
		if err != nil {
			return infra.WrapRepoErr("failed to convert outbox event", err, infra.KindDBFailure)
		}
		if _, err := r.queries.InsertOutboxEvent(ctx, r.db, params); err != nil {
			return infra.WrapRepoErr("failed to enqueue outbox event", err)
		}
	}
	return nil
}

type OutboxRelayQueries interface {
	LockOutboxBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.LockOutboxBatchParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxSent(ctx context.Context, db sqlc.DBTX, ids []int64) error
	MarkOutboxFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxFailedParams) error
}

// OutboxStore is the relay side. Each call is a single statement, so it runs
// on the pool rather than in a unit of work.
type OutboxStore struct {
	queries OutboxRelayQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

var _ outbox.Store = (*OutboxStore)(nil)

func NewOutboxStore(queries OutboxRelayQueries, db sqlc.DBTX, clk clock.Clock) *OutboxStore {
	return &OutboxStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (s *OutboxStore) LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]outbox.Event, error) {
	now := s.clock.Now()
	rows, err := s.queries.LockOutboxBatch(ctx, s.db, sqlc.LockOutboxBatchParams{
		RelayID:     pgconv.TextFromString(relayID),
		LockedUntil: pgconv.TimeToPgtype(now.Add(lease)),
		Now:         pgconv.TimeToPgtype(now),
		BatchSize:   pgconv.IntToInt32(batchSize),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock outbox batch", err)
	}

	events := make([]outbox.Event, 0, len(rows))
	for _, row := range rows {
		ev, err := converter.OutboxEventFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert outbox event", err, infra.KindDBFailure)
		}
		events = append(events, ev)
	}
	// UPDATE ... RETURNING does not preserve the subquery order.
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *OutboxStore) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.queries.MarkOutboxSent(ctx, s.db, ids); err != nil {
		return infra.WrapRepoErr("failed to mark outbox events sent", err)
	}
	return nil
}

func (s *OutboxStore) MarkFailed(ctx context.Context, id int64, errMsg string, maxAttempts int) error {
	err := s.queries.MarkOutboxFailed(ctx, s.db, sqlc.MarkOutboxFailedParams{
		LastError:   pgconv.TextFromString(errMsg),
		MaxAttempts: pgconv.IntToInt32(maxAttempts),
		ID:          id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
