package errs

// Error kinds. Every domain and usecase sentinel is marked with exactly one of
// these so the transport layer can map failures without knowing each sentinel.
var (
	ErrValidation        = New("validation failed")
	ErrConflict          = New("conflicting reservation")
	ErrNotFound          = New("entity not found")
	ErrInvalidTransition = New("invalid status transition")
	ErrForbidden         = New("operation not permitted")
	ErrUnauthenticated   = New("authentication required")
)

// Kind is a coarse error classification used by handlers and logs.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_FAILED"
	KindConflict          Kind = "RESERVATION_CONFLICT"
	KindNotFound          Kind = "NOT_FOUND"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindForbidden         Kind = "FORBIDDEN"
	KindUnauthenticated   Kind = "UNAUTHENTICATED"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// KindOf reports the kind err was marked with, or KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrConflict):
		return KindConflict
	case Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrForbidden):
		return KindForbidden
	case Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	default:
		return KindInternal
	}
}

// NewKind creates a sentinel already marked with kind.
func NewKind(msg string, kind error) error {
	return Mark(New(msg), kind)
}
