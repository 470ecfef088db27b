//go:build unit

package room_test

import (
	"strings"
	"testing"
	"time"

	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name     string
	roomName string
	capacity int
	price    int64
	imageURL *string
	errIs    error
}

func TestNewRoom(t *testing.T) {
	runCases(t, []testCase{
		{name: "valid", roomName: "Sala Ejecutiva", capacity: 8, price: 5000},
		{name: "free room", roomName: "Lobby", capacity: 1, price: 0},
		{name: "name is trimmed", roomName: "  Focus Pod  ", capacity: 1, price: 100},
		{name: "empty name", roomName: "   ", capacity: 1, price: 100, errIs: room.ErrEmptyName},
		{name: "name too long", roomName: strings.Repeat("a", 256), capacity: 1, price: 100, errIs: room.ErrNameTooLong},
		{name: "zero capacity", roomName: "A", capacity: 0, price: 100, errIs: room.ErrInvalidCapacity},
		{name: "capacity over limit", roomName: "A", capacity: room.MaxCapacity + 1, price: 100, errIs: room.ErrInvalidCapacity},
		{name: "negative price", roomName: "A", capacity: 1, price: -1, errIs: room.ErrNegativePrice},
		{name: "price at the limit", roomName: "A", capacity: 1, price: room.MaxPricePerHourCents},
		{name: "price over the limit", roomName: "A", capacity: 1, price: room.MaxPricePerHourCents + 1, errIs: room.ErrPriceTooLarge},
		{name: "image url too long", roomName: "A", capacity: 1, price: 1, imageURL: ptr.Of(strings.Repeat("u", 501)), errIs: room.ErrImageURLTooLong},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := room.NewRoom(c.roomName, nil, c.capacity, c.price, c.imageURL, nil)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				assert.NotEqual(t, uuid.Nil, actual.ID())
				assert.Equal(t, strings.TrimSpace(c.roomName), actual.Name())
				assert.True(t, actual.IsActive())
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("invalid patch leaves the room untouched", func(t *testing.T) {
		r, err := room.NewRoom("Meeting A", ptr.Of("desc"), 4, 1500, nil, nil)
		require.NoError(t, err)
		before := *r

		err = r.Apply(room.Patch{Name: ptr.Of("Meeting B"), Capacity: ptr.Of(0)})
		require.ErrorIs(t, err, room.ErrInvalidCapacity)

		if diff := cmp.Diff(before, *r, cmp.AllowUnexported(room.Room{})); diff != "" {
			t.Errorf("room changed (-want +got):\n%s", diff)
		}
	})

	t.Run("blank description clears it", func(t *testing.T) {
		r, err := room.NewRoom("Meeting A", ptr.Of("desc"), 4, 1500, nil, nil)
		require.NoError(t, err)

		require.NoError(t, r.Apply(room.Patch{Description: ptr.Of("  "), PricePerHourCents: ptr.Of(int64(2000))}))
		assert.Nil(t, r.Description())
		assert.Equal(t, int64(2000), r.PricePerHourCents())
	})

	t.Run("activation toggles", func(t *testing.T) {
		r, err := room.NewRoom("Meeting A", nil, 4, 1500, nil, nil)
		require.NoError(t, err)
		r.Deactivate()
		assert.False(t, r.IsActive())
		r.Activate()
		assert.True(t, r.IsActive())
	})
}

func TestMediaGallery(t *testing.T) {
	image := room.Media{URL: "https://cdn.example.com/desk.jpg", Type: room.MediaImage}
	video := room.Media{URL: " http://cdn.example.com/tour.mp4 ", Type: "VIDEO"}

	t.Run("new room keeps gallery order and normalizes entries", func(t *testing.T) {
		r, err := room.NewRoom("Studio", nil, 2, 100, nil, []room.Media{video, image})
		require.NoError(t, err)

		want := []room.Media{
			{URL: "http://cdn.example.com/tour.mp4", Type: room.MediaVideo},
			image,
		}
		if diff := cmp.Diff(want, r.Media()); diff != "" {
			t.Errorf("media mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil gallery becomes empty", func(t *testing.T) {
		r, err := room.NewRoom("Studio", nil, 2, 100, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, r.Media())
		assert.Empty(t, r.Media())
	})

	invalid := []struct {
		name  string
		media []room.Media
		errIs error
	}{
		{name: "unknown type", media: []room.Media{{URL: image.URL, Type: "audio"}}, errIs: room.ErrInvalidMediaType},
		{name: "relative url", media: []room.Media{{URL: "/uploads/a.jpg", Type: room.MediaImage}}, errIs: room.ErrInvalidMediaURL},
		{name: "ftp url", media: []room.Media{{URL: "ftp://cdn.example.com/a.jpg", Type: room.MediaImage}}, errIs: room.ErrInvalidMediaURL},
		{name: "url too long", media: []room.Media{{URL: "https://cdn.example.com/" + strings.Repeat("a", 500), Type: room.MediaImage}}, errIs: room.ErrInvalidMediaURL},
		{name: "too many items", media: make([]room.Media, room.MaxMediaItems+1), errIs: room.ErrTooManyMedia},
	}
	for _, c := range invalid {
		t.Run(c.name, func(t *testing.T) {
			_, err := room.NewRoom("Studio", nil, 2, 100, nil, c.media)
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}

	t.Run("patch replaces the gallery and marks it changed", func(t *testing.T) {
		r := room.ReconstructRoom(uuid.New(), "Studio", nil, 2, 100, nil, []room.Media{image}, true, time.Now())
		assert.False(t, r.MediaChanged())

		require.NoError(t, r.Apply(room.Patch{Capacity: ptr.Of(3)}))
		assert.False(t, r.MediaChanged())

		empty := []room.Media{}
		require.NoError(t, r.Apply(room.Patch{Media: &empty}))
		assert.True(t, r.MediaChanged())
		assert.Empty(t, r.Media())
	})
}
