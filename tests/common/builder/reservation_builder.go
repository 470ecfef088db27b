//go:build unit || e2e

package builder

import (
	"time"

	"cowork-booking/internal/domain/reservation"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Now is the fixed "current time" shared by unit tests.
var Now = time.Date(2030, 6, 1, 8, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	Start           time.Time
	End             time.Time
	TotalPriceCents int64
	Status          reservation.Status
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := Now.Add(2 * time.Hour)
	return &ReservationBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		RoomID:          uuid.New(),
		Start:           start,
		End:             start.Add(time.Hour),
		TotalPriceCents: 2500,
		Status:          reservation.StatusConfirmed,
		CreatedAt:       Now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) ForUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) ForRoom(id uuid.UUID) *ReservationBuilder {
	b.RoomID = id
	return b
}

// Between sets the interval as offsets from Now.
func (b *ReservationBuilder) Between(from, to time.Duration) *ReservationBuilder {
	b.Start = Now.Add(from)
	b.End = Now.Add(to)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	price, err := reservation.NewMoney(b.TotalPriceCents)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(b.ID, b.UserID, b.RoomID, slot, price, b.Status, b.CreatedAt, b.CreatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		StartTime:       pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:         pgtype.Timestamptz{Time: b.End, Valid: true},
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		UserID:          b.UserID,
		UserName:        "Test User",
		UserEmail:       "test@example.com",
		RoomID:          b.RoomID,
		RoomName:        "Meeting Room A",
		StartTime:       b.Start,
		EndTime:         b.End,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
