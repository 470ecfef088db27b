package room

import (
	"strings"
	"time"
	"unicode/utf8"

	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errs.NewKind("room name cannot be empty", errs.ErrValidation)
	ErrNameTooLong     = errs.NewKind("room name is too long (max 255 characters)", errs.ErrValidation)
	ErrInvalidCapacity = errs.NewKind("room capacity must be between 1 and 10000", errs.ErrValidation)
	ErrNegativePrice   = errs.NewKind("room price per hour cannot be negative", errs.ErrValidation)
	ErrImageURLTooLong = errs.NewKind("room image url is too long (max 500 characters)", errs.ErrValidation)
	ErrPriceTooLarge   = errs.NewKind("room price per hour is too large", errs.ErrValidation)
)

const (
	MaxNameLength     = 255
	MaxImageURLLength = 500
	MaxCapacity       = 10000
	// 999,999.99 per hour
	MaxPricePerHourCents int64 = 99_999_999
)

type Room struct {
	id                uuid.UUID
	name              string
	description       *string
	capacity          int
	pricePerHourCents int64
	imageURL          *string
	media             []Media
	mediaChanged      bool
	isActive          bool
	createdAt         time.Time
}

func NewRoom(name string, description *string, capacity int, pricePerHourCents int64, imageURL *string, media []Media) (*Room, error) {
	r := &Room{
		id:       uuid.New(),
		isActive: true,
	}
	if err := r.apply(Patch{
		Name:              &name,
		Description:       description,
		Capacity:          &capacity,
		PricePerHourCents: &pricePerHourCents,
		ImageURL:          imageURL,
		Media:             &media,
	}); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name string,
	description *string,
	capacity int,
	pricePerHourCents int64,
	imageURL *string,
	media []Media,
	isActive bool,
	createdAt time.Time,
) *Room {
	return &Room{
		id:                id,
		name:              name,
		description:       description,
		capacity:          capacity,
		pricePerHourCents: pricePerHourCents,
		imageURL:          imageURL,
		media:             media,
		isActive:          isActive,
		createdAt:         createdAt,
	}
}

// Patch carries optional changes; nil fields are left untouched.
type Patch struct {
	Name              *string
	Description       *string
	Capacity          *int
	PricePerHourCents *int64
	ImageURL          *string
	// Media replaces the whole gallery when set.
	Media    *[]Media
	IsActive *bool
}

// Apply validates the whole patch before changing anything.
func (r *Room) Apply(p Patch) error {
	return r.apply(p)
}

func (r *Room) apply(p Patch) error {
	next := *r

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return ErrNameTooLong
		}
		next.name = name
	}
	if p.Description != nil {
		next.description = trimmedOrNil(*p.Description)
	}
	if p.Capacity != nil {
		if *p.Capacity < 1 || *p.Capacity > MaxCapacity {
			return ErrInvalidCapacity
		}
		next.capacity = *p.Capacity
	}
	if p.PricePerHourCents != nil {
		if *p.PricePerHourCents < 0 {
			return ErrNegativePrice
		}
		if *p.PricePerHourCents > MaxPricePerHourCents {
			return ErrPriceTooLarge
		}
		next.pricePerHourCents = *p.PricePerHourCents
	}
	if p.ImageURL != nil {
		if len(*p.ImageURL) > MaxImageURLLength {
			return ErrImageURLTooLong
		}
		next.imageURL = trimmedOrNil(*p.ImageURL)
	}
	if p.Media != nil {
		media, err := validateMedia(*p.Media)
		if err != nil {
			return err
		}
		next.media = media
		next.mediaChanged = true
	}
	if p.IsActive != nil {
		next.isActive = *p.IsActive
	}

	*r = next
	return nil
}

func (r *Room) Activate()   { r.isActive = true }
func (r *Room) Deactivate() { r.isActive = false }

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) Name() string             { return r.name }
func (r *Room) Description() *string     { return r.description }
func (r *Room) Capacity() int            { return r.capacity }
func (r *Room) PricePerHourCents() int64 { return r.pricePerHourCents }
func (r *Room) ImageURL() *string        { return r.imageURL }
func (r *Room) Media() []Media           { return r.media }
func (r *Room) MediaChanged() bool       { return r.mediaChanged }
func (r *Room) IsActive() bool           { return r.isActive }
func (r *Room) CreatedAt() time.Time     { return r.createdAt }

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
