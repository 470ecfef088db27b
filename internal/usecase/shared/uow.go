package shared

import (
	"context"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/domain/user"
	sqlc "cowork-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs write operations in one transaction, retrying transient aborts.
// Reads go through the read stores on the pool.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB runs a single statement outside a transaction.
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type ReservationRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	// FindByIDForUpdate row-locks the reservation until the transaction ends.
	FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// HasOverlap reports whether a non-cancelled reservation of roomID
	// intersects slot, ignoring excludeID when set.
	HasOverlap(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, r *room.Room) error
	Update(ctx context.Context, db sqlc.DBTX, r *room.Room) error
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*room.Room, error)
	// FindByIDForUpdate serializes writers booking the same room.
	FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*room.Room, error)
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) error
	FindByEmail(ctx context.Context, db sqlc.DBTX, email user.Email) (*user.User, error)
}
