package readstore

import (
	"context"

	"cowork-booking/internal/infra"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/pgconv"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListActiveRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListRoomMediaByRoomIDs(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomMedia, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	view := toRoomView(row)
	if err := r.attachMedia(ctx, []*queries.RoomView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context, activeOnly bool) ([]*queries.RoomView, error) {
	var (
		rows []sqlc.Rooms
		err  error
	)
	if activeOnly {
		rows, err = r.queries.ListActiveRooms(ctx, r.db)
	} else {
		rows, err = r.queries.ListRooms(ctx, r.db)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(row)
	}
	if err := r.attachMedia(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachMedia loads the galleries of all views with a single query.
func (r *RoomReadStore) attachMedia(ctx context.Context, views []*queries.RoomView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.RoomView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.queries.ListRoomMediaByRoomIDs(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list room media", err)
	}
	for _, m := range rows {
		if v, ok := byID[m.RoomID]; ok {
			v.Media = append(v.Media, queries.MediaView{URL: m.Url, Type: m.Type})
		}
	}
	return nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:                row.ID,
		Name:              row.Name,
		Description:       pgconv.StringPtrFromPgtype(row.Description),
		Capacity:          int(row.Capacity),
		PricePerHourCents: row.PricePerHourCents,
		ImageURL:          pgconv.StringPtrFromPgtype(row.ImageUrl),
		Media:             []queries.MediaView{},
		IsActive:          row.IsActive,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
