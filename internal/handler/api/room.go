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

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.FindAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary List bookable rooms
// @Description Active rooms only
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	views, err := h.roomQueries.FindAvailable(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.roomQueries.FindOne(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.roomCommands.Create(c.Request.Context(), a, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, view)
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.roomCommands.Update(c.Request.Context(), a, id, req.ToPatch())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Activate room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/activate [patch]
func (h *RoomHandler) ActivateRoom(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.roomCommands.Activate(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Deactivate room
// @Description Existing reservations are kept; new bookings are refused
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/deactivate [patch]
func (h *RoomHandler) DeactivateRoom(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.roomCommands.Deactivate(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Delete room
// @Description Also deletes the room's reservations
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.roomCommands.Delete(c.Request.Context(), a, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) respond(c *gin.Context, status int, view *queries.RoomView) {
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *RoomHandler) respondList(c *gin.Context, views []*queries.RoomView) {
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
