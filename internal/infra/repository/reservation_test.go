//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/repository"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/tests/common/builder"
	repositorymock "cowork-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
		expectMark error
	}{
		{name: "success: reservation created"},
		{
			name:       "error: overlapping reservation rejected by exclusion constraint",
			queryErr:   &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindConflict,
			expectMark: errs.ErrConflict,
		},
		{
			name:       "error: unknown user",
			queryErr:   &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
			expectMark: errs.ErrNotFound,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)
			res := builder.NewReservationBuilder().BuildDomain()

			mockQueries.EXPECT().
				CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error) {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, res.TimeSlot().Start(), arg.StartTime.Time)
					assert.Equal(t, "confirmed", arg.Status)
					return sqlc.Reservations{}, tc.queryErr
				})

			err := repo.Create(ctx, mockDB, res)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			if tc.expectMark != nil {
				assert.True(t, errs.Is(err, tc.expectMark))
			}
		})
	}
}

// =============================================================================
// Delete Reservation Tests
// =============================================================================

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row deleted", affected: 1},
		{name: "error: nothing deleted", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			id := uuid.New()

			mockQueries.EXPECT().DeleteReservation(ctx, mockDB, id).Return(tc.affected, tc.queryErr)

			err := repository.NewReservationRepository(mockQueries).Delete(ctx, mockDB, id)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

// =============================================================================
// FindByIDForUpdate Tests
// =============================================================================

func TestReservationRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		b := builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted)

		mockQueries.EXPECT().LockReservationByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		res, err := repository.NewReservationRepository(mockQueries).FindByIDForUpdate(ctx, mockDB, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.ID, res.ID())
		assert.Equal(t, reservation.StatusCompleted, res.Status())
		assert.Equal(t, b.End, res.TimeSlot().End())
	})

	t.Run("error: no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().LockReservationByID(ctx, mockDB, gomock.Any()).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := repository.NewReservationRepository(mockQueries).FindByIDForUpdate(ctx, mockDB, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		row := builder.NewReservationBuilder().BuildInfra()
		row.Status = "pending"

		mockQueries.EXPECT().LockReservationByID(ctx, mockDB, row.ID).Return(row, nil)

		_, err := repository.NewReservationRepository(mockQueries).FindByIDForUpdate(ctx, mockDB, row.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// HasOverlap Tests
// =============================================================================

func TestReservationRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	slot, err := reservation.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)
	roomID, excludeID := uuid.New(), uuid.New()

	testCases := []struct {
		name      string
		excludeID *uuid.UUID
		result    bool
		queryErr  error
	}{
		{name: "overlap without exclusion", result: true},
		{name: "free with exclusion", excludeID: &excludeID, result: false},
		{name: "database error", queryErr: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mockQueries.EXPECT().
				ExistsOverlappingReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error) {
					assert.Equal(t, roomID, arg.RoomID)
					assert.Equal(t, start, arg.RangeStart.Time)
					assert.Equal(t, start.Add(time.Hour), arg.RangeEnd.Time)
					assert.Equal(t, tc.excludeID != nil, arg.ExcludeID.Valid)
					return tc.result, tc.queryErr
				})

			got, err := repository.NewReservationRepository(mockQueries).HasOverlap(ctx, mockDB, roomID, slot, tc.excludeID)

			if tc.queryErr != nil {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.result, got)
		})
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
