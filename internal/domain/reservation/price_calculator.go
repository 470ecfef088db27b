package reservation

import (
	"math"

	"github.com/google/uuid"
)

// RoomSpec is the subset of a room the reservation rules depend on.
type RoomSpec struct {
	ID                uuid.UUID
	PricePerHourCents int64
	IsActive          bool
}

type PriceCalculator interface {
	CalculatePrice(room RoomSpec, slot TimeSlot) (Money, error)
}

// HourlyPriceCalculator charges the room's hourly rate pro rata, rounded to the cent.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (HourlyPriceCalculator) CalculatePrice(room RoomSpec, slot TimeSlot) (Money, error) {
	cents := math.Round(slot.Duration().Hours() * float64(room.PricePerHourCents))
	if cents < 0 {
		cents = 0
	}
	return moneyFromCents(cents)
}
