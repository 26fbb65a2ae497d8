//go:build unit

package uow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	sqlc "commerce-core/internal/infra/sqlc/generated"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr error
	commits   int
	rollbacks int
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	if f.commits > 0 && f.commitErr == nil {
		return pgx.ErrTxClosed
	}
	return nil
}

type fakeBeginner struct {
	txs     []*fakeTx
	options []pgx.TxOptions
	err     error
}

func (b *fakeBeginner) BeginTx(_ context.Context, o pgx.TxOptions) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	b.options = append(b.options, o)
	return tx, nil
}

func newTestUoW(b *fakeBeginner) *PostgresUoW {
	return newPostgresUoW(b, sqlc.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serializationFailure() error {
	return &pgconn.PgError{Code: pgErrCodeSerializationFailure, Message: "could not serialize access"}
}

func TestWithin_CommitsOnSuccess(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		assert.Same(t, tx.Carts(), tx.Carts(), "repositories are cached per transaction")
		assert.NotNil(t, tx.Orders())
		assert.NotNil(t, tx.Inventory())
		assert.NotNil(t, tx.Catalog())
		assert.NotNil(t, tx.Outbox())
		return nil
	})

	require.NoError(t, err)
	require.Len(t, b.txs, 1)
	assert.Equal(t, 1, b.txs[0].commits)
	assert.Equal(t, pgx.ReadCommitted, b.options[0].IsoLevel)
}

func TestWithin_RetriesSerializationFailures(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	calls := 0
	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		if calls < 3 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, b.txs, 3)
	assert.Equal(t, 1, b.txs[0].rollbacks)
	assert.Equal(t, 1, b.txs[2].commits)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	if testing.Short() {
		t.Skip("waits through the full backoff")
	}
	b := &fakeBeginner{}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return serializationFailure()
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Len(t, b.txs, 4)
}

func TestWithin_DoesNotRetryOtherErrors(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)
	boom := errors.New("boom")

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.Len(t, b.txs, 1)
	assert.Equal(t, 0, b.txs[0].commits)
	assert.Equal(t, 1, b.txs[0].rollbacks)
}

func TestWithin_CommitFailure(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)
	commitErr := errors.New("connection reset")

	u.pool = beginnerFunc(func(ctx context.Context, o pgx.TxOptions) (pgx.Tx, error) {
		tx, err := b.BeginTx(ctx, o)
		tx.(*fakeTx).commitErr = commitErr
		return tx, err
	})

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error { return nil })

	require.Error(t, err)
	assert.True(t, errs.Is(err, errTransactionCommit))
	assert.ErrorIs(t, err, commitErr)
}

func TestWithin_BeginFailure(t *testing.T) {
	b := &fakeBeginner{err: errors.New("pool closed")}
	u := newTestUoW(b)

	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.True(t, errs.Is(err, errTransactionBegin))
}

func TestWithin_StopsBackoffOnCancel(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)
	ctx, cancel := context.WithCancel(context.Background())

	start := time.Now()
	err := u.Within(ctx, func(context.Context, shared.Tx) error {
		cancel()
		return serializationFailure()
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWithinReadOnly(t *testing.T) {
	b := &fakeBeginner{}
	u := newTestUoW(b)

	err := u.WithinReadOnly(context.Background(), func(context.Context, shared.Tx) error { return nil })

	require.NoError(t, err)
	require.Len(t, b.options, 1)
	assert.Equal(t, pgx.ReadOnly, b.options[0].AccessMode)
	assert.Equal(t, 1, b.txs[0].commits)
	assert.Equal(t, 1, b.txs[0].rollbacks, "deferred rollback after commit is a no-op")
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 3 {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

type beginnerFunc func(ctx context.Context, o pgx.TxOptions) (pgx.Tx, error)

func (f beginnerFunc) BeginTx(ctx context.Context, o pgx.TxOptions) (pgx.Tx, error) {
	return f(ctx, o)
}
