package readstore

import (
	"context"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/infra"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/pgconv"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationViewsRow, error)
	ListReservationViewsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListReservationViewsByUserRow, error)
	ListReservationViewsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.ListReservationViewsByRoomRow, error)
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row.Reservations, row.RoomName, row.UserName, row.UserEmail), nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row.Reservations, row.RoomName, row.UserName, row.UserEmail)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row.Reservations, row.RoomName, row.UserName, row.UserEmail)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by room", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row.Reservations, row.RoomName, row.UserName, row.UserEmail)
	}
	return result, nil
}

// HasOverlap is the lock-free variant used for availability checks.
func (r *ReservationReadStore) HasOverlap(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	overlapping, err := r.queries.ExistsOverlappingReservation(ctx, r.db, sqlc.ExistsOverlappingReservationParams{
		RoomID:     roomID,
		RangeEnd:   pgconv.TimeToPgtype(slot.End()),
		RangeStart: pgconv.TimeToPgtype(slot.Start()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return overlapping, nil
}

func toReservationView(row sqlc.Reservations, roomName, userName, userEmail string) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		UserID:          row.UserID,
		UserName:        userName,
		UserEmail:       userEmail,
		RoomID:          row.RoomID,
		RoomName:        roomName,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
