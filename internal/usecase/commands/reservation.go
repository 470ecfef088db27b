package commands

import (
	"context"
	"log/slog"
	"time"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/patch"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = queries.ErrReservationNotFound
	ErrRoomNotFound        = queries.ErrRoomNotFound
	ErrUserNotFound        = queries.ErrUserNotFound
	ErrReservationConflict = errs.NewKind("room is already booked for an overlapping time", errs.ErrConflict)
)

type CreateReservationInput struct {
	// UserID books on behalf of another user; admins only.
	UserID     *uuid.UUID
	RoomID     uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice *reservation.Money
	Status     *reservation.Status
}

// UpdateReservationInput is a partial update; nil fields keep their value.
type UpdateReservationInput struct {
	RoomID     *uuid.UUID
	StartTime  *time.Time
	EndTime    *time.Time
	TotalPrice *reservation.Money
	Status     *reservation.Status
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*queries.ReservationView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error)
	Complete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error)
	Remove(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	publisher          shared.EventPublisher
	clock              clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	publisher shared.EventPublisher,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		publisher:          publisher,
		clock:              clk,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*queries.ReservationView, error) {
	ownerID := actor.UserID
	if in.UserID != nil {
		ownerID = *in.UserID
	}
	if err := actor.Authorize(ownerID); err != nil {
		return nil, err
	}

	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := lockRoom(ctx, tx, in.RoomID)
		if err != nil {
			return err
		}

		res, err := uc.reservationFactory.CreateReservation(roomSpec(rm), ownerID, slot, in.TotalPrice, in.Status)
		if err != nil {
			return err
		}

		if err := ensureFree(ctx, tx, rm.ID(), slot, nil); err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return mapWriteErr(err)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.EventReservationCreated, created)
	return uc.reservationQueries.FindOneSystem(ctx, created.ID())
}

func (uc *reservationUseCaseImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error) {
	event := shared.EventReservationUpdated

	updated, err := uc.mutate(ctx, actor, id, func(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) error {
		if !res.IsConfirmed() {
			return reservation.ErrNotConfirmed
		}

		current := res.TimeSlot()
		roomID := patch.Coalesce(in.RoomID, res.RoomID())
		slot, err := reservation.NewTimeSlot(
			patch.Coalesce(in.StartTime, current.Start()),
			patch.Coalesce(in.EndTime, current.End()),
		)
		if err != nil {
			return err
		}

		if roomID != res.RoomID() || !slot.Equal(current) {
			rm, err := lockRoom(ctx, tx, roomID)
			if err != nil {
				return err
			}
			if err := res.Reschedule(roomSpec(rm), slot, now); err != nil {
				return err
			}
			excludeID := res.ID()
			if err := ensureFree(ctx, tx, roomID, slot, &excludeID); err != nil {
				return err
			}
		}

		if in.TotalPrice != nil {
			if err := res.Reprice(*in.TotalPrice, now); err != nil {
				return err
			}
		}

		if in.Status != nil {
			if *in.Status == reservation.StatusCompleted && !actor.IsAdmin() {
				return shared.ErrAdminOnly
			}
			if err := res.TransitionTo(*in.Status, now); err != nil {
				return err
			}
			event = eventForStatus(res.Status())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, event, updated)
	return uc.reservationQueries.FindOneSystem(ctx, id)
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	cancelled, err := uc.mutate(ctx, actor, id, func(_ context.Context, _ shared.Tx, res *reservation.Reservation, now time.Time) error {
		return res.Cancel(now)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.EventReservationCancelled, cancelled)
	return uc.reservationQueries.FindOneSystem(ctx, id)
}

func (uc *reservationUseCaseImpl) Complete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	completed, err := uc.mutate(ctx, actor, id, func(_ context.Context, _ shared.Tx, res *reservation.Reservation, now time.Time) error {
		return res.Complete(now)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.EventReservationCompleted, completed)
	return uc.reservationQueries.FindOneSystem(ctx, id)
}

// Remove is a hard delete that ignores lifecycle state.
func (uc *reservationUseCaseImpl) Remove(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	var removed *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		removed = res
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, shared.EventReservationRemoved, removed)
	return nil
}

type mutation func(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) error

// mutate locks the reservation, checks ownership, applies fn and persists the
// result inside one transaction.
func (uc *reservationUseCaseImpl) mutate(ctx context.Context, actor shared.Actor, id uuid.UUID, fn mutation) (*reservation.Reservation, error) {
	var out *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := actor.Authorize(res.UserID()); err != nil {
			return err
		}

		if err := fn(ctx, tx, res, uc.clock.Now()); err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return mapWriteErr(err)
		}
		out = res
		return nil
	})
	return out, err
}

func (uc *reservationUseCaseImpl) publish(ctx context.Context, t shared.EventType, res *reservation.Reservation) {
	if uc.publisher == nil || res == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, shared.NewReservationEvent(t, res, uc.clock.Now())); err != nil {
		slog.WarnContext(ctx, "failed to publish reservation event",
			"type", string(t),
			"reservation_id", res.ID().String(),
			"error", err.Error())
	}
}

func lockRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) (*room.Room, error) {
	rm, err := tx.Rooms().FindByIDForUpdate(ctx, tx.DB(), roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func ensureFree(ctx context.Context, tx shared.Tx, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) error {
	overlapping, err := tx.Reservations().HasOverlap(ctx, tx.DB(), roomID, slot, excludeID)
	if err != nil {
		return err
	}
	if overlapping {
		return ErrReservationConflict
	}
	return nil
}

// The exclusion constraint backs up ensureFree; FK failures on insert can
// only come from the user since the room row is locked.
func mapWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		slog.Info("exclusion constraint rejected overlapping reservation", "error", err.Error())
		return ErrReservationConflict
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrUserNotFound
	default:
		return err
	}
}

func roomSpec(rm *room.Room) reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:                rm.ID(),
		PricePerHourCents: rm.PricePerHourCents(),
		IsActive:          rm.IsActive(),
	}
}

func eventForStatus(s reservation.Status) shared.EventType {
	switch s {
	case reservation.StatusCancelled:
		return shared.EventReservationCancelled
	case reservation.StatusCompleted:
		return shared.EventReservationCompleted
	default:
		return shared.EventReservationUpdated
	}
}
