package response

import (
	"time"

	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		UserName:   v.UserName,
		UserEmail:  v.UserEmail,
		RoomID:     v.RoomID,
		RoomName:   v.RoomName,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		TotalPrice: centsToAmount(v.TotalPriceCents),
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

func FromAvailability(a *queries.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{Available: a.Available, Message: a.Message}
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100.0
}
