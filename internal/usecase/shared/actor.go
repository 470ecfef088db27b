package shared

import (
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner     = errs.NewKind("resource belongs to another user", errs.ErrForbidden)
	ErrAdminOnly    = errs.NewKind("administrator role required", errs.ErrForbidden)
	ErrUnknownActor = errs.NewKind("caller identity is missing", errs.ErrUnauthenticated)
)

// Actor is the authenticated caller of a usecase.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanAccess reports whether the actor may act on something owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}

func (a Actor) Authorize(ownerID uuid.UUID) error {
	if a.UserID == uuid.Nil {
		return ErrUnknownActor
	}
	if !a.CanAccess(ownerID) {
		return ErrNotOwner
	}
	return nil
}

func (a Actor) RequireAdmin() error {
	if a.UserID == uuid.Nil {
		return ErrUnknownActor
	}
	if !a.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
