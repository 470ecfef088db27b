//go:build unit || e2e

// Package memstore is an in-memory unit of work for usecase tests. Each
// transaction runs under one mutex, standing in for the row locks, and is
// rolled back by restoring a snapshot when fn fails.
package memstore

import (
	"context"
	"sort"
	"sync"

	"cowork-booking/internal/domain/reservation"
	"cowork-booking/internal/domain/room"
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	rooms        map[uuid.UUID]*room.Room
	reservations map[uuid.UUID]*reservation.Reservation
	users        map[uuid.UUID]*user.User

	// Transactions counts committed Within calls.
	Transactions int
}

func New() *Store {
	return &Store{
		rooms:        map[uuid.UUID]*room.Room{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		users:        map[uuid.UUID]*user.User{},
	}
}

var (
	_ shared.UnitOfWork            = (*Store)(nil)
	_ queries.ReservationReadStore = (*Store)(nil)
	_ queries.RoomReadStore        = (*roomReads)(nil)
	_ shared.ReservationRepository = (*reservationRepo)(nil)
)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, reservations, users := s.snapshot()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.rooms, s.reservations, s.users = rooms, reservations, users
		return err
	}
	s.Transactions++
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

// Seeding helpers bypass transactions.

func (s *Store) PutRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID()] = cloneRoom(r)
}

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = cloneReservation(r)
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

func (s *Store) Room(id uuid.UUID) (*room.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, false
	}
	return cloneRoom(r), true
}

func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *Store) snapshot() (map[uuid.UUID]*room.Room, map[uuid.UUID]*reservation.Reservation, map[uuid.UUID]*user.User) {
	rooms := make(map[uuid.UUID]*room.Room, len(s.rooms))
	for k, v := range s.rooms {
		rooms[k] = cloneRoom(v)
	}
	reservations := make(map[uuid.UUID]*reservation.Reservation, len(s.reservations))
	for k, v := range s.reservations {
		reservations[k] = cloneReservation(v)
	}
	users := make(map[uuid.UUID]*user.User, len(s.users))
	for k, v := range s.users {
		users[k] = v
	}
	return rooms, reservations, users
}

func (s *Store) bookedSlots() []reservation.BookedSlot {
	out := make([]reservation.BookedSlot, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, reservation.BookedSlot{ID: r.ID(), RoomID: r.RoomID(), Slot: r.TimeSlot(), Status: r.Status()})
	}
	return out
}

type tx struct {
	s *Store
}

func (t *tx) Reservations() shared.ReservationRepository { return &reservationRepo{s: t.s} }
func (t *tx) Rooms() shared.RoomRepository               { return &roomRepo{s: t.s} }
func (t *tx) Users() shared.UserRepository               { return &userRepo{s: t.s} }
func (t *tx) DB() sqlc.DBTX                              { return nil }

// reservationRepo assumes the caller holds s.mu (inside Within).
type reservationRepo struct {
	s *Store
}

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.rooms[res.RoomID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindForeignKeyViolated)
	}
	if len(r.s.users) > 0 {
		if _, ok := r.s.users[res.UserID()]; !ok {
			return infra.WrapRepoErr("failed to create reservation", nil, infra.KindForeignKeyViolated)
		}
	}
	if res.Status().BlocksRoom() && reservation.HasConflict(r.s.bookedSlots(), res.RoomID(), res.TimeSlot(), nil) {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindConflict)
	}
	r.s.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r *reservationRepo) Update(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("failed to update reservation", nil, infra.KindNotFound)
	}
	id := res.ID()
	if res.Status().BlocksRoom() && reservation.HasConflict(r.s.bookedSlots(), res.RoomID(), res.TimeSlot(), &id) {
		return infra.WrapRepoErr("failed to update reservation", nil, infra.KindConflict)
	}
	r.s.reservations[id] = cloneReservation(res)
	return nil
}

func (r *reservationRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.s.reservations, id)
	return nil
}

func (r *reservationRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to lock reservation", nil, infra.KindNotFound)
	}
	return cloneReservation(res), nil
}

func (r *reservationRepo) HasOverlap(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	return reservation.HasConflict(r.s.bookedSlots(), roomID, slot, excludeID), nil
}

type roomRepo struct {
	s *Store
}

func (r *roomRepo) Create(_ context.Context, _ sqlc.DBTX, rm *room.Room) error {
	r.s.rooms[rm.ID()] = cloneRoom(rm)
	return nil
}

func (r *roomRepo) Update(_ context.Context, _ sqlc.DBTX, rm *room.Room) error {
	if _, ok := r.s.rooms[rm.ID()]; !ok {
		return infra.WrapRepoErr("failed to update room", nil, infra.KindNotFound)
	}
	r.s.rooms[rm.ID()] = cloneRoom(rm)
	return nil
}

func (r *roomRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(r.s.rooms, id)
	for rid, res := range r.s.reservations {
		if res.RoomID() == id {
			delete(r.s.reservations, rid)
		}
	}
	return nil
}

func (r *roomRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to find room", nil, infra.KindNotFound)
	}
	return cloneRoom(rm), nil
}

func (r *roomRepo) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	return r.FindByID(ctx, db, id)
}

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	for _, existing := range r.s.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey)
		}
	}
	r.s.users[u.ID()] = u
	return nil
}

func (r *userRepo) FindByEmail(_ context.Context, _ sqlc.DBTX, email user.Email) (*user.User, error) {
	for _, u := range r.s.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr("failed to find user by email", nil, infra.KindNotFound)
}

// Users exposes the user repository outside a transaction.
func (s *Store) Users() shared.UserRepository {
	return &lockedUserRepo{s: s}
}

type lockedUserRepo struct {
	s *Store
}

func (r *lockedUserRepo) Create(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&userRepo{s: r.s}).Create(ctx, db, u)
}

func (r *lockedUserRepo) FindByEmail(ctx context.Context, db sqlc.DBTX, email user.Email) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return (&userRepo{s: r.s}).FindByEmail(ctx, db, email)
}

// Read side.

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return s.view(res), nil
}

func (s *Store) FindAll(_ context.Context) ([]*queries.ReservationView, error) {
	return s.list(func(*reservation.Reservation) bool { return true }), nil
}

func (s *Store) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	return s.list(func(r *reservation.Reservation) bool { return r.UserID() == userID }), nil
}

func (s *Store) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	return s.list(func(r *reservation.Reservation) bool { return r.RoomID() == roomID }), nil
}

func (s *Store) HasOverlap(_ context.Context, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reservation.HasConflict(s.bookedSlots(), roomID, slot, excludeID), nil
}

func (s *Store) list(keep func(*reservation.Reservation) bool) []*queries.ReservationView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*queries.ReservationView{}
	for _, r := range s.reservations {
		if keep(r) {
			out = append(out, s.view(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func (s *Store) view(r *reservation.Reservation) *queries.ReservationView {
	v := &queries.ReservationView{
		ID:              r.ID(),
		UserID:          r.UserID(),
		RoomID:          r.RoomID(),
		StartTime:       r.TimeSlot().Start(),
		EndTime:         r.TimeSlot().End(),
		TotalPriceCents: r.Price().Cents(),
		Status:          r.Status().String(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
	if rm, ok := s.rooms[r.RoomID()]; ok {
		v.RoomName = rm.Name()
	}
	if u, ok := s.users[r.UserID()]; ok {
		v.UserName = u.Name().Value()
		v.UserEmail = u.Email().Value()
	}
	return v
}

// RoomReads adapts the store to queries.RoomReadStore.
func (s *Store) RoomReads() queries.RoomReadStore {
	return &roomReads{s: s}
}

type roomReads struct {
	s *Store
}

func (r *roomReads) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return roomView(rm), nil
}

func (r *roomReads) FindAll(_ context.Context, activeOnly bool) ([]*queries.RoomView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*queries.RoomView{}
	for _, rm := range r.s.rooms {
		if activeOnly && !rm.IsActive() {
			continue
		}
		out = append(out, roomView(rm))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func roomView(rm *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:                rm.ID(),
		Name:              rm.Name(),
		Description:       rm.Description(),
		Capacity:          rm.Capacity(),
		PricePerHourCents: rm.PricePerHourCents(),
		ImageURL:          rm.ImageURL(),
		Media:             mediaViews(rm.Media()),
		IsActive:          rm.IsActive(),
		CreatedAt:         rm.CreatedAt(),
	}
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.UserID(), r.RoomID(), r.TimeSlot(), r.Price(), r.Status(), r.CreatedAt(), r.UpdatedAt(),
	)
}

func cloneRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(
		r.ID(), r.Name(), r.Description(), r.Capacity(), r.PricePerHourCents(), r.ImageURL(),
		append([]room.Media(nil), r.Media()...), r.IsActive(), r.CreatedAt(),
	)
}

func mediaViews(media []room.Media) []queries.MediaView {
	out := make([]queries.MediaView, len(media))
	for i, m := range media {
		out[i] = queries.MediaView{URL: m.URL, Type: string(m.Type)}
	}
	return out
}
