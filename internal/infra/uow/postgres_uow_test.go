//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  int
	rolledBack int
	commitErr  error
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed > 0 {
		return pgx.ErrTxClosed
	}
	t.rolledBack++
	return nil
}

type fakePool struct {
	sqlc.DBTX
	txs     []*fakeTx
	options []pgx.TxOptions
}

func (p *fakePool) BeginTx(_ context.Context, options pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	p.txs = append(p.txs, tx)
	p.options = append(p.options, options)
	return tx, nil
}

func pgErr(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestWithin_CommitsOnSuccess(t *testing.T) {
	pool := &fakePool{}
	u := newPostgresUoW(pool, sqlc.New(), 3, time.Millisecond)

	calls := 0
	err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
		calls++
		assert.NotNil(t, tx.Reservations())
		assert.NotNil(t, tx.Rooms())
		assert.NotNil(t, tx.Users())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, pool.txs, 1)
	assert.Equal(t, 1, pool.txs[0].committed)
	assert.Equal(t, pgx.ReadCommitted, pool.options[0].IsoLevel)
}

func TestWithin_RetriesTransientAborts(t *testing.T) {
	for _, code := range []string{pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected} {
		t.Run(code, func(t *testing.T) {
			pool := &fakePool{}
			u := newPostgresUoW(pool, sqlc.New(), 3, time.Millisecond)

			calls := 0
			err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
				calls++
				if calls < 3 {
					return pgErr(code)
				}
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, 3, calls)
			require.Len(t, pool.txs, 3)
			assert.Equal(t, 1, pool.txs[0].rolledBack)
			assert.Equal(t, 1, pool.txs[1].rolledBack)
			assert.Equal(t, 1, pool.txs[2].committed)
		})
	}
}

func TestWithin_DoesNotRetryConflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "exclusion violation", err: pgErr("23P01")},
		{name: "domain conflict", err: errs.ErrConflict},
		{name: "plain error", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &fakePool{}
			u := newPostgresUoW(pool, sqlc.New(), 3, time.Millisecond)

			calls := 0
			err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
				calls++
				return tt.err
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, calls)
			assert.Equal(t, 1, pool.txs[0].rolledBack)
		})
	}
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	pool := &fakePool{}
	u := newPostgresUoW(pool, sqlc.New(), 2, time.Millisecond)

	calls := 0
	err := u.Within(context.Background(), func(context.Context, shared.Tx) error {
		calls++
		return pgErr(pgErrCodeSerializationFailure)
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Equal(t, 3, calls)
}

func TestWithin_StopsWhenContextCancelled(t *testing.T) {
	pool := &fakePool{}
	u := newPostgresUoW(pool, sqlc.New(), 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	err := u.Within(ctx, func(context.Context, shared.Tx) error {
		cancel()
		return pgErr(pgErrCodeDeadlockDetected)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, pool.txs, 1)
}

func TestWithDB_UsesPoolWithoutTransaction(t *testing.T) {
	pool := &fakePool{}
	u := newPostgresUoW(pool, sqlc.New(), 3, time.Millisecond)

	var got sqlc.DBTX
	err := u.WithDB(context.Background(), func(_ context.Context, db sqlc.DBTX) error {
		got = db
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, pool, got)
	assert.Empty(t, pool.txs)
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}
