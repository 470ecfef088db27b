package queries

import (
	"context"

	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.NewKind("room not found", errs.ErrNotFound)

type RoomQueries interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindAvailable(ctx context.Context) ([]*RoomView, error)
	FindOne(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) FindAll(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.FindAll(ctx, false)
}

// FindAvailable lists rooms currently accepting reservations.
func (q *roomQueriesImpl) FindAvailable(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.FindAll(ctx, true)
}

func (q *roomQueriesImpl) FindOne(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}
