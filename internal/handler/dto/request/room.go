package request

import (
	"math"

	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/usecase/commands"
)

type MediaRequest struct {
	URL  string `json:"url" binding:"required,max=500,url"`
	Type string `json:"type" binding:"required,oneof=image video"`
}

// PricePerHour is a decimal amount with two fraction digits.
type CreateRoomRequest struct {
	Name         string         `json:"name" binding:"required,max=255"`
	Description  *string        `json:"description,omitempty"`
	Capacity     int            `json:"capacity" binding:"required,min=1,max=10000"`
	PricePerHour float64        `json:"price_per_hour" binding:"gte=0,lte=999999.99"`
	ImageURL     *string        `json:"image_url,omitempty" binding:"omitempty,max=500,image_url"`
	Media        []MediaRequest `json:"media,omitempty" binding:"omitempty,max=20,dive"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Name:              r.Name,
		Description:       r.Description,
		Capacity:          r.Capacity,
		PricePerHourCents: toCents(r.PricePerHour),
		ImageURL:          r.ImageURL,
		Media:             toMedia(r.Media),
	}
}

type UpdateRoomRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Description  *string  `json:"description,omitempty"`
	Capacity     *int     `json:"capacity,omitempty" binding:"omitempty,min=1,max=10000"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" binding:"omitempty,gte=0,lte=999999.99"`
	ImageURL     *string  `json:"image_url,omitempty" binding:"omitempty,max=500,image_url"`
	// Media replaces the whole gallery; an empty list clears it.
	Media    *[]MediaRequest `json:"media,omitempty" binding:"omitempty,max=20,dive"`
	IsActive *bool           `json:"is_active,omitempty"`
}

func (r UpdateRoomRequest) ToPatch() room.Patch {
	p := room.Patch{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
	if r.PricePerHour != nil {
		cents := toCents(*r.PricePerHour)
		p.PricePerHourCents = &cents
	}
	if r.Media != nil {
		media := toMedia(*r.Media)
		p.Media = &media
	}
	return p
}

func toMedia(items []MediaRequest) []room.Media {
	out := make([]room.Media, len(items))
	for i, m := range items {
		out[i] = room.Media{URL: m.URL, Type: room.MediaType(m.Type)}
	}
	return out
}

// toCents saturates instead of wrapping; the domain rejects the clamped value.
func toCents(amount float64) int64 {
	c := math.Round(amount * 100)
	switch {
	case math.IsNaN(c):
		return 0
	case c >= math.MaxInt64:
		return math.MaxInt64
	case c <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(c)
	}
}
