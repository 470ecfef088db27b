//go:build unit

package response

import (
	"testing"
	"time"

	"cowork-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromRoomView(t *testing.T) {
	desc := "Corner office"
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	view := &queries.RoomView{
		ID:                uuid.New(),
		Name:              "Focus Pod",
		Description:       &desc,
		Capacity:          2,
		PricePerHourCents: 1550,
		Media:             []queries.MediaView{{URL: "https://cdn.example.com/pod.mp4", Type: "video"}},
		IsActive:          true,
		CreatedAt:         created,
	}

	got, err := FromRoomView(view)
	require.NoError(t, err)

	want := &RoomResponse{
		ID:           view.ID,
		Name:         "Focus Pod",
		Description:  &desc,
		Capacity:     2,
		PricePerHour: 15.5,
		Media:        []MediaResponse{{URL: "https://cdn.example.com/pod.mp4", Type: "video"}},
		IsActive:     true,
		CreatedAt:    created,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromRoomView() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRoomView_EmptyGalleryIsNotNull(t *testing.T) {
	got, err := FromRoomView(&queries.RoomView{ID: uuid.New(), Name: "Lobby", Capacity: 1})
	require.NoError(t, err)
	require.NotNil(t, got.Media)
	require.Empty(t, got.Media)
}
