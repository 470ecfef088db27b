//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/readstore"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/pgconv"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/tests/common/builder"
	readstoremock "cowork-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	testCases := []struct {
		name       string
		row        sqlc.GetReservationViewByIDRow
		queryErr   error
		want       *queries.ReservationView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: joined view",
			row: sqlc.GetReservationViewByIDRow{
				Reservations: b.BuildInfra(),
				RoomName:     "Meeting Room A",
				UserName:     "Test User",
				UserEmail:    "test@example.com",
			},
			want: b.BuildReadModel(),
		},
		{
			name:       "error: not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewReservationReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetReservationViewByID(ctx, mockDB, b.ID).Return(tc.row, tc.queryErr)

			got, err := store.FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestReservationReadStore_Lists(t *testing.T) {
	ctx := context.Background()
	first := builder.NewReservationBuilder().Between(time.Hour, 2*time.Hour)
	second := builder.NewReservationBuilder().Between(3*time.Hour, 4*time.Hour).WithStatus(reservation.StatusCancelled)

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListReservationViews(ctx, mockDB).Return([]sqlc.ListReservationViewsRow{
			{Reservations: first.BuildInfra(), RoomName: "Meeting Room A", UserName: "Test User", UserEmail: "test@example.com"},
			{Reservations: second.BuildInfra(), RoomName: "Meeting Room A", UserName: "Test User", UserEmail: "test@example.com"},
		}, nil)

		got, err := readstore.NewReservationReadStore(mockQueries, mockDB).FindAll(ctx)

		require.NoError(t, err)
		want := []*queries.ReservationView{first.BuildReadModel(), second.BuildReadModel()}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("by user empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		userID := uuid.New()
		mockQueries.EXPECT().ListReservationViewsByUser(ctx, mockDB, userID).Return(nil, nil)

		got, err := readstore.NewReservationReadStore(mockQueries, mockDB).FindByUserID(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("by room error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListReservationViewsByRoom(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := readstore.NewReservationReadStore(mockQueries, mockDB).FindByRoomID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_HasOverlap(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockDB := &mockDBTX{}
	roomID := uuid.New()
	slot, err := reservation.NewTimeSlot(builder.Now, builder.Now.Add(time.Hour))
	require.NoError(t, err)

	mockQueries.EXPECT().
		ExistsOverlappingReservation(ctx, mockDB, sqlc.ExistsOverlappingReservationParams{
			RoomID:     roomID,
			RangeEnd:   pgconv.TimeToPgtype(builder.Now.Add(time.Hour)),
			RangeStart: pgconv.TimeToPgtype(builder.Now),
		}).
		Return(true, nil)

	got, err := readstore.NewReservationReadStore(mockQueries, mockDB).HasOverlap(ctx, roomID, slot, nil)

	require.NoError(t, err)
	assert.True(t, got)
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
	return nil
}
