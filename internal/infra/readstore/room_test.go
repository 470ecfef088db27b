//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/readstore"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/tests/common/builder"
	readstoremock "cowork-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomReadStore_FindAll(t *testing.T) {
	ctx := context.Background()
	active := builder.NewRoomBuilder().WithMedia(
		room.Media{URL: "https://cdn.example.com/a.jpg", Type: room.MediaImage},
		room.Media{URL: "https://cdn.example.com/tour.mp4", Type: room.MediaVideo},
	)

	testCases := []struct {
		name       string
		activeOnly bool
		setupMock  func(*readstoremock.MockRoomReadQueries, *mockDBTX)
	}{
		{
			name:       "active only uses the filtered query",
			activeOnly: true,
			setupMock: func(m *readstoremock.MockRoomReadQueries, db *mockDBTX) {
				m.EXPECT().ListActiveRooms(ctx, db).Return([]sqlc.Rooms{active.BuildInfra()}, nil)
				m.EXPECT().ListRoomMediaByRoomIDs(ctx, db, []uuid.UUID{active.ID}).Return(active.BuildMediaRows(), nil)
			},
		},
		{
			name: "all rooms",
			setupMock: func(m *readstoremock.MockRoomReadQueries, db *mockDBTX) {
				m.EXPECT().ListRooms(ctx, db).Return([]sqlc.Rooms{active.BuildInfra()}, nil)
				m.EXPECT().ListRoomMediaByRoomIDs(ctx, db, []uuid.UUID{active.ID}).Return(active.BuildMediaRows(), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			got, err := readstore.NewRoomReadStore(mockQueries, mockDB).FindAll(ctx, tc.activeOnly)

			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, active.BuildReadModel(), got[0])
		})
	}
}

func TestRoomReadStore_FindByID_MediaKeepsOrder(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	mockDB := &mockDBTX{}
	b := builder.NewRoomBuilder().WithMedia(
		room.Media{URL: "https://cdn.example.com/tour.mp4", Type: room.MediaVideo},
		room.Media{URL: "https://cdn.example.com/desk.png", Type: room.MediaImage},
	)
	other := builder.NewRoomBuilder().WithMedia(room.Media{URL: "https://cdn.example.com/x.jpg", Type: room.MediaImage})

	mockQueries.EXPECT().FindRoomByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)
	mockQueries.EXPECT().ListRoomMediaByRoomIDs(ctx, mockDB, []uuid.UUID{b.ID}).
		Return(append(b.BuildMediaRows(), other.BuildMediaRows()...), nil)

	got, err := readstore.NewRoomReadStore(mockQueries, mockDB).FindByID(ctx, b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.BuildMediaViews(), got.Media)
}

func TestRoomReadStore_FindAll_WithoutMedia(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	mockDB := &mockDBTX{}
	b := builder.NewRoomBuilder()

	mockQueries.EXPECT().ListRooms(ctx, mockDB).Return([]sqlc.Rooms{b.BuildInfra()}, nil)
	mockQueries.EXPECT().ListRoomMediaByRoomIDs(ctx, mockDB, []uuid.UUID{b.ID}).Return([]sqlc.RoomMedia{}, nil)

	got, err := readstore.NewRoomReadStore(mockQueries, mockDB).FindAll(ctx, false)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Media)
	assert.Empty(t, got[0].Media)
}

func TestRoomReadStore_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().FindRoomByID(ctx, mockDB, gomock.Any()).Return(sqlc.Rooms{}, pgx.ErrNoRows)

	_, err := readstore.NewRoomReadStore(mockQueries, mockDB).FindByID(ctx, uuid.New())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewUserBuilder().AsAdmin()

	testCases := []struct {
		name       string
		row        sqlc.Users
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: b.BuildInfra()},
		{name: "not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "database error", queryErr: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().FindUserByID(ctx, mockDB, b.ID).Return(tc.row, tc.queryErr)

			got, err := readstore.NewUserReadStore(mockQueries, mockDB).FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.BuildReadModel(), got)
		})
	}
}
