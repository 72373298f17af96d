package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so handlers can pick a status code and callers
// can decide whether a retry makes sense.
type Kind string

const (
	KindInvalidRequest       Kind = "invalid_request"
	KindUnauthorized         Kind = "unauthorized"
	KindNotFound             Kind = "not_found"
	KindInsufficientCapacity Kind = "insufficient_capacity"
	KindTransientStorage     Kind = "transient_storage"
	KindDuplicateReference   Kind = "duplicate_reference"
	KindReferenceExhausted   Kind = "reference_exhausted"
	KindInternal             Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	// Available carries the remaining seat count for insufficient_capacity
	// so the caller can offer a corrected seat count.
	Available int
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InsufficientCapacity(available int) *Error {
	return &Error{
		Kind:      KindInsufficientCapacity,
		Message:   fmt.Sprintf("not enough seats available, only %d seats left", available),
		Available: available,
	}
}

func TransientStorage(msg string, cause error) *Error {
	return &Error{Kind: KindTransientStorage, Message: msg, Err: cause}
}

func DuplicateReference(cause error) *Error {
	return &Error{Kind: KindDuplicateReference, Message: "booking reference already exists", Err: cause}
}

func ReferenceExhausted(attempts int) *Error {
	return &Error{
		Kind:    KindReferenceExhausted,
		Message: fmt.Sprintf("could not generate a unique booking reference after %d attempts", attempts),
	}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf extracts the Kind from err, unwrapping as needed. Unclassified
// errors report KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// AvailableSeats returns the remaining seat count attached to an
// insufficient_capacity error, if any.
func AvailableSeats(err error) (int, bool) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind == KindInsufficientCapacity {
		return appErr.Available, true
	}
	return 0, false
}
