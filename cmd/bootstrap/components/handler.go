package components

import (
	"cowork-booking/internal/handler"
	"cowork-booking/internal/handler/api"
	reqdto "cowork-booking/internal/handler/dto/request"
	"cowork-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(reqdto.RegisterValidators),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, reservation *api.ReservationHandler, room *api.RoomHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Room:        room,
	}
}
