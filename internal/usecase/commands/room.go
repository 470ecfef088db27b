package commands

import (
	"context"

	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	Name              string
	Description       *string
	Capacity          int
	PricePerHourCents int64
	ImageURL          *string
	Media             []room.Media
}

type RoomCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateRoomInput) (*queries.RoomView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, p room.Patch) (*queries.RoomView, error)
	Activate(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.RoomView, error)
	Deactivate(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.RoomView, error)
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	uow         shared.UnitOfWork
	roomQueries queries.RoomQueries
}

func NewRoomUseCase(uow shared.UnitOfWork, roomQueries queries.RoomQueries) RoomCommands {
	return &roomUseCaseImpl{uow: uow, roomQueries: roomQueries}
}

func (uc *roomUseCaseImpl) Create(ctx context.Context, actor shared.Actor, in CreateRoomInput) (*queries.RoomView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	rm, err := room.NewRoom(in.Name, in.Description, in.Capacity, in.PricePerHourCents, in.ImageURL, in.Media)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, tx.DB(), rm)
	})
	if err != nil {
		return nil, err
	}
	return uc.roomQueries.FindOne(ctx, rm.ID())
}

func (uc *roomUseCaseImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, p room.Patch) (*queries.RoomView, error) {
	return uc.modify(ctx, actor, id, func(rm *room.Room) error {
		return rm.Apply(p)
	})
}

func (uc *roomUseCaseImpl) Activate(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.RoomView, error) {
	return uc.modify(ctx, actor, id, func(rm *room.Room) error {
		rm.Activate()
		return nil
	})
}

// Deactivate stops new bookings; existing reservations are kept.
func (uc *roomUseCaseImpl) Deactivate(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.RoomView, error) {
	return uc.modify(ctx, actor, id, func(rm *room.Room) error {
		rm.Deactivate()
		return nil
	})
}

func (uc *roomUseCaseImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		return nil
	})
}

func (uc *roomUseCaseImpl) modify(ctx context.Context, actor shared.Actor, id uuid.UUID, fn func(*room.Room) error) (*queries.RoomView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := lockRoom(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(rm); err != nil {
			return err
		}
		return tx.Rooms().Update(ctx, tx.DB(), rm)
	})
	if err != nil {
		return nil, err
	}
	return uc.roomQueries.FindOne(ctx, id)
}
