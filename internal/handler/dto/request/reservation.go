package request

import (
	"time"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// TotalPrice is a decimal amount, e.g. 150.25. When omitted the price is
// derived from the room rate.
type CreateReservationRequest struct {
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	RoomID     uuid.UUID  `json:"room_id" binding:"required"`
	StartTime  time.Time  `json:"start_time" binding:"required"`
	EndTime    time.Time  `json:"end_time" binding:"required"`
	TotalPrice *float64   `json:"total_price,omitempty" binding:"omitempty,gte=0,lte=9999999999.99"`
	Status     *string    `json:"status,omitempty" binding:"omitempty,reservation_status"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	price, err := parsePrice(r.TotalPrice)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		UserID:     r.UserID,
		RoomID:     r.RoomID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		TotalPrice: price,
		Status:     status,
	}, nil
}

type UpdateReservationRequest struct {
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	TotalPrice *float64   `json:"total_price,omitempty" binding:"omitempty,gte=0,lte=9999999999.99"`
	Status     *string    `json:"status,omitempty" binding:"omitempty,reservation_status"`
}

func (r UpdateReservationRequest) ToInput() (commands.UpdateReservationInput, error) {
	price, err := parsePrice(r.TotalPrice)
	if err != nil {
		return commands.UpdateReservationInput{}, err
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return commands.UpdateReservationInput{}, err
	}

	return commands.UpdateReservationInput{
		RoomID:     r.RoomID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		TotalPrice: price,
		Status:     status,
	}, nil
}

type CheckAvailabilityRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func parsePrice(amount *float64) (*reservation.Money, error) {
	if amount == nil {
		return nil, nil
	}
	m, err := reservation.MoneyFromAmount(*amount)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func parseStatus(s *string) (*reservation.Status, error) {
	if s == nil {
		return nil, nil
	}
	st, err := reservation.ParseStatus(*s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
