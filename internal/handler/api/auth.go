package api

import (
	"net/http"

	reqdto "cowork-booking/internal/handler/dto/request"
	resdto "cowork-booking/internal/handler/dto/response"
	"cowork-booking/internal/handler/httperr"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/cookie"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cfg:          cfg,
	}
}

// @Summary Register
// @Description Create a client account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, result)
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	u, err := h.userQueries.GetCurrentUser(c.Request.Context(), a.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, result *commands.LoginResult) {
	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, result.ExpiresIn)
	c.JSON(status, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        result.User,
	})
}
