package reservation

import (
	"cowork-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation builds a confirmed reservation. A nil price is derived from
// the room's hourly rate; a non-nil status must be confirmed.
func (f *Factory) CreateReservation(
	room RoomSpec,
	userID uuid.UUID,
	slot TimeSlot,
	price *Money,
	status *Status,
) (*Reservation, error) {
	if status != nil && *status != StatusConfirmed {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		return nil, ErrInvalidInitialStatus
	}

	now := f.Clock.Now()
	if slot.StartsBefore(now) {
		return nil, ErrStartInPast
	}
	if !room.IsActive {
		return nil, ErrRoomInactive
	}

	var total Money
	if price != nil {
		total = *price
	} else {
		calculated, err := f.PriceCalculator.CalculatePrice(room, slot)
		if err != nil {
			return nil, err
		}
		total = calculated
	}

	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		roomID:    room.ID,
		timeSlot:  slot,
		price:     total,
		status:    StatusConfirmed,
		createdAt: now,
		updatedAt: now,
	}, nil
}
