//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/handler/api"
	reqdto "cowork-booking/internal/handler/dto/request"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/internal/usecase/shared"
	"cowork-booking/tests/common/builder"
	"cowork-booking/tests/common/httptest"
	"cowork-booking/tests/common/testutil"
	commandsmock "cowork-booking/tests/mock/commands"
	queriesmock "cowork-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	actor        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actor = builder.NewUserBuilder().BuildActor()

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/reservations", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, s.actor)
		}
		c.Next()
	})
	g.POST("", h.CreateReservation)
	g.POST("/check-availability", h.CheckAvailability)
	g.GET("", h.ListReservations)
	g.GET("/user/:userId", h.ListUserReservations)
	g.GET("/room/:roomId", h.ListRoomReservations)
	g.GET("/:id", h.GetReservation)
	g.PATCH("/:id", h.UpdateReservation)
	g.PATCH("/:id/cancel", h.CancelReservation)
	g.PATCH("/:id/complete", h.CompleteReservation)
	g.DELETE("/:id", h.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) createBody(view *queries.ReservationView) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    view.RoomID,
		StartTime: view.StartTime,
		EndTime:   view.EndTime,
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	view := builder.NewReservationBuilder().BuildReadModel()
	body := s.createBody(view)

	s.Run("success: returns 201 with the created view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, in commands.CreateReservationInput) (*queries.ReservationView, error) {
				s.Equal(view.RoomID, in.RoomID)
				s.True(in.StartTime.Equal(view.StartTime))
				s.True(in.EndTime.Equal(view.EndTime))
				s.Nil(in.TotalPrice)
				s.Nil(in.Status)
				s.Nil(in.UserID)
				return view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID, res.ID)
		s.Equal(25.0, res.TotalPrice)
		s.Equal("confirmed", res.Status)
	})

	s.Run("success: explicit price and status are forwarded", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, in commands.CreateReservationInput) (*queries.ReservationView, error) {
				s.Require().NotNil(in.TotalPrice)
				s.Equal(int64(15025), in.TotalPrice.Cents())
				s.Require().NotNil(in.Status)
				s.Equal(reservation.StatusConfirmed, *in.Status)
				return view, nil
			})

		m := testutil.DtoMap(s.T(), body, testutil.Field("total_price", 150.25), testutil.Field("status", "confirmed"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on malformed bodies", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing room_id", testutil.Field("room_id", nil)},
			{"invalid room_id", testutil.Field("room_id", "not-a-uuid")},
			{"missing start_time", testutil.Field("start_time", nil)},
			{"missing end_time", testutil.Field("end_time", nil)},
			{"unparseable start_time", testutil.Field("start_time", "tomorrow")},
			{"negative price", testutil.Field("total_price", -1)},
			{"unknown status", testutil.Field("status", "pending")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), body, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"conflict", commands.ErrReservationConflict, http.StatusBadRequest, "already booked"},
			{"invalid slot", reservation.ErrInvalidTimeSlot, http.StatusBadRequest, ""},
			{"start in past", reservation.ErrStartInPast, http.StatusBadRequest, ""},
			{"room missing", commands.ErrRoomNotFound, http.StatusNotFound, ""},
			{"room inactive", reservation.ErrRoomInactive, http.StatusBadRequest, ""},
			{"booking for another user", shared.ErrNotOwner, http.StatusForbidden, ""},
			{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: conflict carries its own code", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, commands.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		m := map[string]any{}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &m))
		s.Equal("RESERVATION_CONFLICT", m["error"].(map[string]any)["code"])
	})

	s.Run("error: 401 without an authenticated caller", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	roomID := uuid.New()
	start := builder.Now.Add(time.Hour)
	body := reqdto.CheckAvailabilityRequest{RoomID: roomID, StartTime: start, EndTime: start.Add(time.Hour)}

	s.Run("success: reports availability", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(&queries.Availability{Available: false, Message: queries.MessageRoomUnavailable}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/check-availability", body, "token")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Available)
		s.Equal(queries.MessageRoomUnavailable, res.Message)
	})

	s.Run("error: unknown room is 404", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/check-availability", body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReservationHandlerTestSuite) TestListings() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().Between(time.Hour, 2*time.Hour).BuildReadModel(),
		builder.NewReservationBuilder().Between(3*time.Hour, 4*time.Hour).BuildReadModel(),
	}

	s.Run("all reservations", func() {
		s.mockQueries.EXPECT().FindAll(gomock.Any(), s.actor).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")

		var res []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
		s.Equal(views[0].ID, res[0].ID)
	})

	s.Run("all reservations forbidden for clients", func() {
		s.mockQueries.EXPECT().FindAll(gomock.Any(), s.actor).Return(nil, shared.ErrAdminOnly)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("by user", func() {
		userID := uuid.New()
		s.mockQueries.EXPECT().FindByUser(gomock.Any(), s.actor, userID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/user/"+userID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("by room", func() {
		roomID := uuid.New()
		s.mockQueries.EXPECT().FindByRoom(gomock.Any(), s.actor, roomID).Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/room/"+roomID.String(), nil, "token")

		var res []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Empty(res)
	})

	s.Run("malformed ids are rejected before the usecase", func() {
		for _, url := range []string{"/reservations/user/abc", "/reservations/room/abc", "/reservations/abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	view := builder.NewReservationBuilder().BuildReadModel()

	s.Run("found", func() {
		s.mockQueries.EXPECT().FindOne(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.RoomName, res.RoomName)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().FindOne(gomock.Any(), s.actor, view.ID).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	view := builder.NewReservationBuilder().BuildReadModel()
	url := "/reservations/" + view.ID.String()

	s.Run("success: only supplied fields are set", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, _ uuid.UUID, in commands.UpdateReservationInput) (*queries.ReservationView, error) {
				s.Nil(in.RoomID)
				s.Nil(in.StartTime)
				s.Require().NotNil(in.EndTime)
				s.True(in.EndTime.Equal(view.EndTime.Add(time.Hour)))
				return view, nil
			})

		body := map[string]any{"end_time": view.EndTime.Add(time.Hour)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: transition and conflict failures are 400", func() {
		for _, err := range []error{reservation.ErrNotConfirmed, commands.ErrReservationConflict} {
			s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, view.ID, gomock.Any()).Return(nil, err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *ReservationHandlerTestSuite) TestLifecycleActions() {
	view := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildReadModel()
	base := "/reservations/" + view.ID.String()

	s.Run("cancel", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/cancel", nil, "token")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
	})

	s.Run("cancel after start", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, view.ID).Return(nil, reservation.ErrCancellationClosed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("complete requires admin", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.actor, view.ID).Return(nil, shared.ErrAdminOnly)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/complete", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("delete", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.actor, view.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete missing", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.actor, view.ID).Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
