//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/outbox"
	"commerce-core/internal/infra/repository"
	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"
	repositorymock "commerce-core/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: headers default to an empty object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB)

		msgs := []shared.OutboxMessage{
			{AggregateType: shared.AggregateOrder, AggregateID: "o-1", Type: shared.EventOrderConfirmation, Payload: []byte(`{}`)},
			{
				AggregateType: shared.AggregateProduct, AggregateID: "p-1", Type: shared.EventLowStock, Payload: []byte(`{}`),
				Headers:     map[string]string{"source": "checkout"},
				Traceparent: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
			},
		}
		gomock.InOrder(
			mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOutboxEventParams) (int64, error) {
					assert.Equal(t, shared.EventOrderConfirmation, arg.EventType)
					assert.JSONEq(t, `{}`, string(arg.Headers))
					assert.False(t, arg.Traceparent.Valid)
					return 1, nil
				}),
			mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOutboxEventParams) (int64, error) {
					assert.JSONEq(t, `{"source":"checkout"}`, string(arg.Headers))
					assert.True(t, arg.Traceparent.Valid)
					return 2, nil
				}),
		)

		require.NoError(t, repo.Enqueue(ctx, msgs...))
	})

	t.Run("error: insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("disk full"))

		err := repo.Enqueue(ctx, shared.OutboxMessage{Type: shared.EventOrderCancelled, Payload: []byte(`{}`)})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOutboxStore_LockBatch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxRelayQueries(ctrl)
	mockDB := &mockDBTX{}
	store := repository.NewOutboxStore(mockQueries, mockDB, clock.NewMockClock(now))

	lastErr := "broker unavailable"
	rows := []sqlc.OutboxEvents{
		{ID: 9, EventType: shared.EventOrderCancelled, Payload: []byte(`{}`), Headers: []byte(`{}`),
			Status: string(outbox.StatusInProgress), Attempts: 2, LastError: pgconv.TextFromString(lastErr)},
		{ID: 3, EventType: shared.EventOrderConfirmation, Payload: []byte(`{}`), Headers: []byte(`{"k":"v"}`),
			Status: string(outbox.StatusInProgress)},
	}
	mockQueries.EXPECT().LockOutboxBatch(ctx, mockDB, sqlc.LockOutboxBatchParams{
		RelayID:     pgconv.TextFromString("relay-1"),
		LockedUntil: pgconv.TimeToPgtype(now.Add(30 * time.Second)),
		Now:         pgconv.TimeToPgtype(now),
		BatchSize:   50,
	}).Return(rows, nil)

	events, err := store.LockBatch(ctx, "relay-1", 50, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(3), events[0].ID)
	assert.Equal(t, "v", events[0].Headers["k"])
	assert.Equal(t, int64(9), events[1].ID)
	require.NotNil(t, events[1].LastError)
	assert.Equal(t, lastErr, *events[1].LastError)
	assert.Equal(t, 2, events[1].Attempts)
}

func TestOutboxStore_Marks(t *testing.T) {
	ctx := context.Background()

	t.Run("mark sent skips empty batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxRelayQueries(ctrl)
		store := repository.NewOutboxStore(mockQueries, &mockDBTX{}, clock.NewRealClock())

		require.NoError(t, store.MarkSent(ctx, nil))
	})

	t.Run("mark sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxRelayQueries(ctrl)
		mockDB := &mockDBTX{}
		store := repository.NewOutboxStore(mockQueries, mockDB, clock.NewRealClock())

		mockQueries.EXPECT().MarkOutboxSent(ctx, mockDB, []int64{1, 2}).Return(nil)
		require.NoError(t, store.MarkSent(ctx, []int64{1, 2}))
	})

	t.Run("mark failed carries the attempt cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxRelayQueries(ctrl)
		mockDB := &mockDBTX{}
		store := repository.NewOutboxStore(mockQueries, mockDB, clock.NewRealClock())

		mockQueries.EXPECT().MarkOutboxFailed(ctx, mockDB, sqlc.MarkOutboxFailedParams{
			LastError:   pgconv.TextFromString("timeout"),
			MaxAttempts: 5,
			ID:          7,
		}).Return(errors.New("connection reset"))

		err := store.MarkFailed(ctx, 7, "timeout", 5)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
