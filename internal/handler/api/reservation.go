package api

import (
	"net/http"

	reqdto "cowork-booking/internal/handler/dto/request"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a room for a time range. Admins may book on behalf of another user.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), a, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Check availability
// @Description Report whether a room is free for the given range
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckAvailabilityRequest true "Room and time range"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/check-availability [post]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	availability, err := h.reservationQueries.CheckAvailability(c.Request.Context(), req.RoomID, req.StartTime, req.EndTime)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary List reservations
// @Description List every reservation ordered by start time (admin only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	views, err := h.reservationQueries.FindAll(c.Request.Context(), a)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List user reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/user/{userId} [get]
func (h *ReservationHandler) ListUserReservations(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	views, err := h.reservationQueries.FindByUser(c.Request.Context(), a, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List room reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations/room/{roomId} [get]
func (h *ReservationHandler) ListRoomReservations(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	views, err := h.reservationQueries.FindByRoom(c.Request.Context(), a, roomID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationQueries.FindOne(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation
// @Description Partially update a confirmed reservation; omitted fields are kept
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.reservationCommands.Update(c.Request.Context(), a, id, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/cancel [patch]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationCommands.Cancel(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Complete reservation
// @Description Mark a confirmed reservation as completed (admin only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/complete [patch]
func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservationCommands.Complete(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Hard delete regardless of status (admin only)
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reservationCommands.Remove(c.Request.Context(), a, id); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
