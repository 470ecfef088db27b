package shared

import (
	"context"
	"time"

	"cowork-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationUpdated   EventType = "reservation.updated"
	EventReservationCancelled EventType = "reservation.cancelled"
	EventReservationCompleted EventType = "reservation.completed"
	EventReservationRemoved   EventType = "reservation.removed"
)

// ReservationEvent is published after the owning transaction commits.
type ReservationEvent struct {
	Type            EventType `json:"type"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomID          uuid.UUID `json:"room_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewReservationEvent(t EventType, res *reservation.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:            t,
		ReservationID:   res.ID(),
		UserID:          res.UserID(),
		RoomID:          res.RoomID(),
		StartTime:       res.TimeSlot().Start(),
		EndTime:         res.TimeSlot().End(),
		TotalPriceCents: res.Price().Cents(),
		Status:          res.Status().String(),
		OccurredAt:      at.UTC(),
	}
}

// EventPublisher delivers lifecycle events. Delivery is best effort: a failed
// publish never undoes a committed change.
type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}
