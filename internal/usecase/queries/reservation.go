package queries

import (
	"context"
	"time"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)

type ReservationQueries interface {
	FindAll(ctx context.Context, actor shared.Actor) ([]*ReservationView, error)
	FindByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID) ([]*ReservationView, error)
	FindByRoom(ctx context.Context, actor shared.Actor, roomID uuid.UUID) ([]*ReservationView, error)
	FindOne(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	// FindOneSystem skips authorization; used for read-after-write.
	FindOneSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, start, end time.Time) (*Availability, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
	HasOverlap(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	rooms     RoomReadStore
}

func NewReservationQueries(readStore ReservationReadStore, rooms RoomReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore, rooms: rooms}
}

func (q *reservationQueriesImpl) FindAll(ctx context.Context, actor shared.Actor) ([]*ReservationView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	return q.readStore.FindAll(ctx)
}

func (q *reservationQueriesImpl) FindByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID) ([]*ReservationView, error) {
	if err := actor.Authorize(userID); err != nil {
		return nil, err
	}
	return q.readStore.FindByUserID(ctx, userID)
}

// Clients only see their own bookings for the room; admins see all of them.
func (q *reservationQueriesImpl) FindByRoom(ctx context.Context, actor shared.Actor, roomID uuid.UUID) ([]*ReservationView, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnknownActor
	}
	views, err := q.readStore.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return views, nil
	}

	own := make([]*ReservationView, 0, len(views))
	for _, v := range views {
		if v.UserID == actor.UserID {
			own = append(own, v)
		}
	}
	return own, nil
}

func (q *reservationQueriesImpl) FindOne(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.FindOneSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.Authorize(view.UserID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) FindOneSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

// CheckAvailability answers without locking; the answer may be stale by the
// time a booking is attempted, which is what the create path re-checks.
// An unknown room is ErrRoomNotFound.
func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, start, end time.Time) (*Availability, error) {
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	overlapping, err := q.readStore.HasOverlap(ctx, roomID, slot, nil)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return &Availability{Available: false, Message: MessageRoomUnavailable}, nil
	}
	return &Availability{Available: true, Message: MessageRoomAvailable}, nil
}
