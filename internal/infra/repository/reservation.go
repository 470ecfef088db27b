package repository

import (
	"context"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/repository/converter"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (sqlc.Reservations, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LockReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error {
	params := converter.ReservationToCreateParams(res)
	if _, err := r.queries.CreateReservation(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error {
	params := converter.ReservationToUpdateParams(res)
	if _, err := r.queries.UpdateReservation(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.LockReservationByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) HasOverlap(
	ctx context.Context,
	db sqlc.DBTX,
	roomID uuid.UUID,
	slot reservation.TimeSlot,
	excludeID *uuid.UUID,
) (bool, error) {
	overlapping, err := r.queries.ExistsOverlappingReservation(ctx, db, sqlc.ExistsOverlappingReservationParams{
		RoomID:     roomID,
		RangeEnd:   pgconv.TimeToPgtype(slot.End()),
		RangeStart: pgconv.TimeToPgtype(slot.Start()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return overlapping, nil
}
