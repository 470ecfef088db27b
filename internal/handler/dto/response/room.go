package response

import (
	"time"

	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Capacity     int             `json:"capacity"`
	PricePerHour float64         `json:"price_per_hour"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Media        []MediaResponse `json:"media"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

type MediaResponse struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "failed to map room view")
	}
	out.PricePerHour = centsToAmount(v.PricePerHourCents)
	out.Media = make([]MediaResponse, len(v.Media))
	for i, m := range v.Media {
		out.Media[i] = MediaResponse{URL: m.URL, Type: m.Type}
	}
	return &out, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
