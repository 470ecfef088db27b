//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"cowork-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return base.Add(time.Duration(hour) * time.Hour)
}

func slot(t *testing.T, from, to int) reservation.TimeSlot {
	t.Helper()
	s, err := reservation.NewTimeSlot(at(from), at(to))
	require.NoError(t, err)
	return s
}

func TestTimeSlot(t *testing.T) {
	t.Run("rejects inverted and empty intervals", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(at(12), at(10))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)

		_, err = reservation.NewTimeSlot(at(10), at(10))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)

		_, err = reservation.NewTimeSlot(time.Time{}, at(10))
		assert.ErrorIs(t, err, reservation.ErrMissingTime)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		s, err := reservation.NewTimeSlot(at(10).In(jst), at(11).In(jst))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, s.Start().Location())
		assert.Equal(t, time.Hour, s.Duration())
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		tests := []struct {
			name       string
			a, b       [2]int
			overlapped bool
		}{
			{name: "identical", a: [2]int{10, 12}, b: [2]int{10, 12}, overlapped: true},
			{name: "partial tail", a: [2]int{10, 12}, b: [2]int{11, 13}, overlapped: true},
			{name: "partial head", a: [2]int{10, 12}, b: [2]int{9, 11}, overlapped: true},
			{name: "contained", a: [2]int{10, 14}, b: [2]int{11, 12}, overlapped: true},
			{name: "containing", a: [2]int{11, 12}, b: [2]int{10, 14}, overlapped: true},
			{name: "back to back after", a: [2]int{10, 12}, b: [2]int{12, 14}, overlapped: false},
			{name: "back to back before", a: [2]int{10, 12}, b: [2]int{8, 10}, overlapped: false},
			{name: "disjoint", a: [2]int{10, 12}, b: [2]int{15, 16}, overlapped: false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := slot(t, tt.a[0], tt.a[1])
				b := slot(t, tt.b[0], tt.b[1])
				assert.Equal(t, tt.overlapped, a.Overlaps(b))
				assert.Equal(t, tt.overlapped, b.Overlaps(a), "overlap must be symmetric")
			})
		}
	})
}

func TestHasConflict(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()
	confirmedID := uuid.New()

	existing := []reservation.BookedSlot{
		{ID: confirmedID, RoomID: roomA, Slot: slot(t, 10, 12), Status: reservation.StatusConfirmed},
		{ID: uuid.New(), RoomID: roomA, Slot: slot(t, 14, 16), Status: reservation.StatusCancelled},
		{ID: uuid.New(), RoomID: roomA, Slot: slot(t, 18, 19), Status: reservation.StatusCompleted},
		{ID: uuid.New(), RoomID: roomB, Slot: slot(t, 8, 20), Status: reservation.StatusConfirmed},
	}

	tests := []struct {
		name      string
		candidate [2]int
		room      uuid.UUID
		excludeID *uuid.UUID
		want      bool
	}{
		{name: "overlapping confirmed booking", candidate: [2]int{11, 13}, room: roomA, want: true},
		{name: "back to back is free", candidate: [2]int{12, 14}, room: roomA, want: false},
		{name: "cancelled booking never blocks", candidate: [2]int{14, 16}, room: roomA, want: false},
		{name: "completed booking still blocks", candidate: [2]int{18, 20}, room: roomA, want: true},
		{name: "other room is ignored", candidate: [2]int{8, 9}, room: roomA, want: false},
		{name: "excluding self allows same interval", candidate: [2]int{10, 12}, room: roomA, excludeID: &confirmedID, want: false},
		{name: "exclude id does not hide other bookings", candidate: [2]int{9, 19}, room: roomA, excludeID: &confirmedID, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.HasConflict(existing, tt.room, slot(t, tt.candidate[0], tt.candidate[1]), tt.excludeID)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty room has no conflict", func(t *testing.T) {
		assert.False(t, reservation.HasConflict(nil, roomA, slot(t, 1, 2), nil))
	})
}

// A sequence of accepted bookings must stay pairwise disjoint per room.
func TestAcceptedBookingsStayDisjoint(t *testing.T) {
	room := uuid.New()
	candidates := [][2]int{{9, 11}, {10, 12}, {11, 13}, {8, 9}, {12, 15}, {13, 14}, {15, 16}, {7, 10}}

	var accepted []reservation.BookedSlot
	for _, c := range candidates {
		s := slot(t, c[0], c[1])
		if reservation.HasConflict(accepted, room, s, nil) {
			continue
		}
		accepted = append(accepted, reservation.BookedSlot{ID: uuid.New(), RoomID: room, Slot: s, Status: reservation.StatusConfirmed})
	}

	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			assert.False(t, accepted[i].Slot.Overlaps(accepted[j].Slot), "%s overlaps %s", accepted[i].Slot, accepted[j].Slot)
		}
	}
	assert.Len(t, accepted, 5)
}
