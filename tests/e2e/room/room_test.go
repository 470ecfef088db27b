//go:build e2e

package room_test

import (
	"context"
	"net/http"
	"testing"

	reqdto "cowork-booking/internal/handler/dto/request"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/tests/common/authtest"
	"cowork-booking/tests/common/httptest"
	"cowork-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomsURL = "/api/rooms"

type roomSuite struct {
	e2e.SharedSuite
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(roomSuite))
}

func (s *roomSuite) mediaRows(roomID string) int {
	var n int
	err := s.DB.QueryRow(context.Background(), `SELECT count(*) FROM room_media WHERE room_id = $1`, roomID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *roomSuite) TestGallery() {
	s.Run("admin creates, replaces and deletes a room gallery", func() {
		_, adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, roomsURL, reqdto.CreateRoomRequest{
			Name:         "Studio",
			Capacity:     4,
			PricePerHour: 35,
			Media: []reqdto.MediaRequest{
				{URL: "https://cdn.example.com/studio.jpg", Type: "image"},
				{URL: "https://cdn.example.com/tour.mp4", Type: "video"},
			},
		}, adminToken)
		var created resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		assert.Equal(s.T(), []resdto.MediaResponse{
			{URL: "https://cdn.example.com/studio.jpg", Type: "image"},
			{URL: "https://cdn.example.com/tour.mp4", Type: "video"},
		}, created.Media)

		id := created.ID.String()
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL+"/"+id, nil, "")
		var fetched resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
		assert.Equal(s.T(), created.Media, fetched.Media)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, roomsURL+"/"+id, map[string]any{"capacity": 6}, adminToken)
		var resized resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resized)
		assert.Len(s.T(), resized.Media, 2, "patch without media keeps the gallery")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, roomsURL+"/"+id, map[string]any{
			"media": []map[string]any{{"url": "https://cdn.example.com/new.png", "type": "image"}},
		}, adminToken)
		var replaced resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &replaced)
		assert.Equal(s.T(), []resdto.MediaResponse{{URL: "https://cdn.example.com/new.png", Type: "image"}}, replaced.Media)
		assert.Equal(s.T(), 1, s.mediaRows(id))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, roomsURL+"/"+id, nil, adminToken)
		assert.Equal(s.T(), http.StatusNoContent, w.Code)
		assert.Equal(s.T(), 0, s.mediaRows(id), "gallery rows cascade with the room")
	})

	s.Run("unknown media type is rejected", func() {
		_, adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, roomsURL, map[string]any{
			"name": "Studio", "capacity": 2, "price_per_hour": 10,
			"media": []map[string]any{{"url": "https://cdn.example.com/a.mp3", "type": "audio"}},
		}, adminToken)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
