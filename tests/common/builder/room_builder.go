//go:build unit || e2e

package builder

import (
	"time"

	"cowork-booking/internal/domain/room"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID                uuid.UUID
	Name              string
	Description       *string
	Capacity          int
	PricePerHourCents int64
	ImageURL          *string
	Media             []room.Media
	IsActive          bool
	CreatedAt         time.Time
}

func NewRoomBuilder() *RoomBuilder {
	desc := "Quiet room with a whiteboard"
	return &RoomBuilder{
		ID:                uuid.New(),
		Name:              "Meeting Room A",
		Description:       &desc,
		Capacity:          8,
		PricePerHourCents: 2500,
		IsActive:          true,
		CreatedAt:         time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.Name = name
	return b
}

func (b *RoomBuilder) WithPricePerHour(cents int64) *RoomBuilder {
	b.PricePerHourCents = cents
	return b
}

func (b *RoomBuilder) WithMedia(media ...room.Media) *RoomBuilder {
	b.Media = media
	return b
}

func (b *RoomBuilder) AsInactive() *RoomBuilder {
	b.IsActive = false
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(
		b.ID, b.Name, b.Description, b.Capacity, b.PricePerHourCents, b.ImageURL, b.Media, b.IsActive, b.CreatedAt,
	)
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	r := sqlc.Rooms{
		ID:                b.ID,
		Name:              b.Name,
		Capacity:          int32(b.Capacity), // #nosec G115 -- test fixture
		PricePerHourCents: b.PricePerHourCents,
		IsActive:          b.IsActive,
		CreatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Description != nil {
		r.Description = pgtype.Text{String: *b.Description, Valid: true}
	}
	if b.ImageURL != nil {
		r.ImageUrl = pgtype.Text{String: *b.ImageURL, Valid: true}
	}
	return r
}

func (b *RoomBuilder) BuildReadModel() *queries.RoomView {
	return &queries.RoomView{
		ID:                b.ID,
		Name:              b.Name,
		Description:       b.Description,
		Capacity:          b.Capacity,
		PricePerHourCents: b.PricePerHourCents,
		ImageURL:          b.ImageURL,
		Media:             b.BuildMediaViews(),
		IsActive:          b.IsActive,
		CreatedAt:         b.CreatedAt,
	}
}

func (b *RoomBuilder) BuildMediaRows() []sqlc.RoomMedia {
	rows := make([]sqlc.RoomMedia, len(b.Media))
	for i, m := range b.Media {
		rows[i] = sqlc.RoomMedia{
			ID:       uuid.New(),
			RoomID:   b.ID,
			Url:      m.URL,
			Type:     string(m.Type),
			Position: int32(i), // #nosec G115 -- test fixture
		}
	}
	return rows
}

func (b *RoomBuilder) BuildMediaViews() []queries.MediaView {
	views := make([]queries.MediaView, len(b.Media))
	for i, m := range b.Media {
		views[i] = queries.MediaView{URL: m.URL, Type: string(m.Type)}
	}
	return views
}
