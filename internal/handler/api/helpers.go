package api

import (
	"net/http"

	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidRequest = errs.NewKind("invalid request format", errs.ErrValidation)
	errInvalidID      = errs.NewKind("invalid id format", errs.ErrValidation)
)

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidRequest, "Invalid request format", err.Error())
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor is set by RequireAuth; a missing one means the route was wired
// without it.
func actor(c *gin.Context) (shared.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, shared.ErrUnknownActor)
		return shared.Actor{}, false
	}
	return a, true
}
