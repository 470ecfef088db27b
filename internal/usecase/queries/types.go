package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is a reservation joined with its room and owner.
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RoomView struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Description       *string     `json:"description,omitempty"`
	Capacity          int         `json:"capacity"`
	PricePerHourCents int64       `json:"price_per_hour_cents"`
	ImageURL          *string     `json:"image_url,omitempty"`
	Media             []MediaView `json:"media"`
	IsActive          bool        `json:"is_active"`
	CreatedAt         time.Time   `json:"created_at"`
}

type MediaView struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// AuthorizedUserView is the caller identity resolved from a token.
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Availability is the answer to an availability check.
type Availability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

const (
	MessageRoomAvailable   = "room is available"
	MessageRoomUnavailable = "room is not available at that time"
)
