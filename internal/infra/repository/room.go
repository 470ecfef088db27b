package repository

import (
	"context"

	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/repository/converter"
	sqlc "cowork-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (sqlc.Rooms, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	LockRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CreateRoomMedia(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomMediaParams) error
	DeleteRoomMediaByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error
	ListRoomMediaByRoomIDs(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomMedia, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{
		queries: queries,
	}
}

func (r *RoomRepository) Create(ctx context.Context, db sqlc.DBTX, rm *room.Room) error {
	if _, err := r.queries.CreateRoom(ctx, db, converter.RoomToCreateParams(rm)); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return r.insertMedia(ctx, db, rm)
}

func (r *RoomRepository) Update(ctx context.Context, db sqlc.DBTX, rm *room.Room) error {
	if _, err := r.queries.UpdateRoom(ctx, db, converter.RoomToUpdateParams(rm)); err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if !rm.MediaChanged() {
		return nil
	}
	if err := r.queries.DeleteRoomMediaByRoom(ctx, db, rm.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear room media", err)
	}
	return r.insertMedia(ctx, db, rm)
}

func (r *RoomRepository) insertMedia(ctx context.Context, db sqlc.DBTX, rm *room.Room) error {
	for _, arg := range converter.RoomMediaToParams(rm) {
		if err := r.queries.CreateRoomMedia(ctx, db, arg); err != nil {
			return infra.WrapRepoErr("failed to store room media", err)
		}
	}
	return nil
}

// Delete cascades to the room's reservations.
func (r *RoomRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteRoom(ctx, db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.FindRoomByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return r.withMedia(ctx, db, row)
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.LockRoomByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return r.withMedia(ctx, db, row)
}

func (r *RoomRepository) withMedia(ctx context.Context, db sqlc.DBTX, row sqlc.Rooms) (*room.Room, error) {
	media, err := r.queries.ListRoomMediaByRoomIDs(ctx, db, []uuid.UUID{row.ID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room media", err)
	}
	return converter.RoomFromRow(row, media), nil
}
