package reservation

import "github.com/google/uuid"

// BookedSlot is the part of an existing reservation the conflict check needs.
type BookedSlot struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	Slot   TimeSlot
	Status Status
}

// HasConflict reports whether candidate overlaps any non-cancelled booking of
// roomID, ignoring excludeID when set. It is the reference for the store's
// overlap query and must agree with it.
func HasConflict(existing []BookedSlot, roomID uuid.UUID, candidate TimeSlot, excludeID *uuid.UUID) bool {
	for _, b := range existing {
		if b.RoomID != roomID || !b.Status.BlocksRoom() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Slot.Overlaps(candidate) {
			return true
		}
	}
	return false
}
