package reservation

import (
	"time"

	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingTime          = errs.NewKind("start and end time are required", errs.ErrValidation)
	ErrInvalidTimeSlot      = errs.NewKind("end time must be after start time", errs.ErrValidation)
	ErrStartInPast          = errs.NewKind("start time cannot be in the past", errs.ErrValidation)
	ErrEndInPast            = errs.NewKind("end time cannot be in the past", errs.ErrValidation)
	ErrNegativePrice        = errs.NewKind("total price cannot be negative", errs.ErrValidation)
	ErrInvalidPrice         = errs.NewKind("total price is not a finite number", errs.ErrValidation)
	ErrPriceTooLarge        = errs.NewKind("total price exceeds 9999999999.99", errs.ErrValidation)
	ErrInvalidStatus        = errs.NewKind("invalid reservation status", errs.ErrValidation)
	ErrInvalidInitialStatus = errs.NewKind("new reservations must be confirmed", errs.ErrValidation)
	ErrRoomInactive         = errs.NewKind("room is not accepting reservations", errs.ErrValidation)
	ErrCancellationClosed   = errs.NewKind("reservation has already started and can no longer be cancelled", errs.ErrValidation)
	ErrNotConfirmed         = errs.NewKind("reservation is no longer confirmed", errs.ErrInvalidTransition)
)

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	timeSlot  TimeSlot
	price     Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructReservation(
	id, userID, roomID uuid.UUID,
	timeSlot TimeSlot,
	price Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		timeSlot:  timeSlot,
		price:     price,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Price() Money         { return r.price }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

// Cancel frees the interval. Only a confirmed reservation that has not started may be cancelled.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if !now.Before(r.timeSlot.Start()) {
		return ErrCancellationClosed
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

// Reschedule moves the reservation to another room and/or interval. The caller
// must have verified the new placement is free before persisting.
// A start that is kept may already lie in the past; a moved start may not.
func (r *Reservation) Reschedule(room RoomSpec, slot TimeSlot, now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	startMoved := !slot.Start().Equal(r.timeSlot.Start())
	if startMoved && slot.StartsBefore(now) {
		return ErrStartInPast
	}
	if !startMoved && !slot.End().Equal(r.timeSlot.End()) && !slot.End().After(now) {
		return ErrEndInPast
	}
	if room.ID != r.roomID && !room.IsActive {
		return ErrRoomInactive
	}
	r.roomID = room.ID
	r.timeSlot = slot
	r.updatedAt = now
	return nil
}

func (r *Reservation) Reprice(price Money, now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	r.price = price
	r.updatedAt = now
	return nil
}

// TransitionTo applies a requested status through the same rules as Cancel and Complete.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrNotConfirmed
	}
	switch next {
	case StatusCancelled:
		return r.Cancel(now)
	case StatusCompleted:
		return r.Complete(now)
	default:
		return nil
	}
}
