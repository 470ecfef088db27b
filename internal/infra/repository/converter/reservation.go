package converter

import (
	"cowork-booking/internal/domain/reservation"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	slot := res.TimeSlot()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		UserID:          res.UserID(),
		RoomID:          res.RoomID(),
		StartTime:       pgconv.TimeToPgtype(slot.Start()),
		EndTime:         pgconv.TimeToPgtype(slot.End()),
		TotalPriceCents: res.Price().Cents(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	slot := res.TimeSlot()
	return sqlc.UpdateReservationParams{
		ID:              res.ID(),
		RoomID:          res.RoomID(),
		StartTime:       pgconv.TimeToPgtype(slot.Start()),
		EndTime:         pgconv.TimeToPgtype(slot.End()),
		TotalPriceCents: res.Price().Cents(),
		Status:          res.Status().String(),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow rebuilds the aggregate. Rows violating the table's own
// check constraints surface as errors rather than panics.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid slot", row.ID)
	}
	price, err := reservation.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid price", row.ID)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid status", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.RoomID,
		slot,
		price,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
