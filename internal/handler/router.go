package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cowork-booking/internal/handler/api"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Room        *api.RoomHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, middleware.NewRateLimiter(cfg.RateLimit, rateLimiter))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}

	// The limiter runs after RequireAuth on protected groups so per-user keys see the caller.
	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth", rateLimit)
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		authRequired := apiGroup.Group("/auth", requireAuth, rateLimit)
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		rooms := apiGroup.Group("/rooms", rateLimit)
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
			{Method: http.MethodGet, Path: "/available", Handler: h.Room.ListAvailableRooms},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
		})

		manage := apiGroup.Group("/rooms", requireAuth, rateLimit)
		addRoutes(manage, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.UpdateRoom, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/activate", Handler: h.Room.ActivateRoom, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/deactivate", Handler: h.Room.DeactivateRoom, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteRoom, Mw: adminOnly},
		})

		reservations := apiGroup.Group("/reservations", requireAuth, rateLimit)
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodPost, Path: "/check-availability", Handler: h.Reservation.CheckAvailability},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListReservations, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/user/:userId", Handler: h.Reservation.ListUserReservations},
			{Method: http.MethodGet, Path: "/room/:roomId", Handler: h.Reservation.ListRoomReservations},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.UpdateReservation},
			{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Reservation.CancelReservation},
			{Method: http.MethodPatch, Path: "/:id/complete", Handler: h.Reservation.CompleteReservation},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.DeleteReservation, Mw: adminOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
