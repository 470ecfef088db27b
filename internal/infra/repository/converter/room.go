package converter

import (
	"cowork-booking/internal/domain/room"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:                r.ID(),
		Name:              r.Name(),
		Description:       pgconv.StringPtrToPgtype(r.Description()),
		Capacity:          int32(r.Capacity()), // #nosec G115 -- bounded by room.MaxCapacity
		PricePerHourCents: r.PricePerHourCents(),
		ImageUrl:          pgconv.StringPtrToPgtype(r.ImageURL()),
		IsActive:          r.IsActive(),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:                r.ID(),
		Name:              r.Name(),
		Description:       pgconv.StringPtrToPgtype(r.Description()),
		Capacity:          int32(r.Capacity()), // #nosec G115 -- bounded by room.MaxCapacity
		PricePerHourCents: r.PricePerHourCents(),
		ImageUrl:          pgconv.StringPtrToPgtype(r.ImageURL()),
		IsActive:          r.IsActive(),
	}
}

func RoomMediaToParams(r *room.Room) []sqlc.CreateRoomMediaParams {
	params := make([]sqlc.CreateRoomMediaParams, len(r.Media()))
	for i, m := range r.Media() {
		params[i] = sqlc.CreateRoomMediaParams{
			RoomID:   r.ID(),
			Url:      m.URL,
			Type:     string(m.Type),
			Position: int32(i), // #nosec G115 -- bounded by room.MaxMediaItems
		}
	}
	return params
}

func RoomFromRow(row sqlc.Rooms, mediaRows []sqlc.RoomMedia) *room.Room {
	media := make([]room.Media, len(mediaRows))
	for i, m := range mediaRows {
		media[i] = room.Media{URL: m.Url, Type: room.MediaType(m.Type)}
	}
	return room.ReconstructRoom(
		row.ID,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Description),
		int(row.Capacity),
		row.PricePerHourCents,
		pgconv.StringPtrFromPgtype(row.ImageUrl),
		media,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
