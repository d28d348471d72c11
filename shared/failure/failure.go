package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure beyond its HTTP code so callers can branch on the
// reservation error taxonomy without parsing messages.
type Kind string

const (
	KindBadRequest        Kind = "bad_request"
	KindNotFound          Kind = "not_found"
	KindInvalidRange      Kind = "invalid_range"
	KindCapacityExceeded  Kind = "capacity_exceeded"
	KindConflict          Kind = "conflict"
	KindInvalidTransition Kind = "invalid_transition"
	KindBusy              Kind = "busy"
	KindInternal          Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Kind: KindBadRequest, Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Kind: KindBadRequest, Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindBadRequest,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindBadRequest,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// InvalidRange returns a new Failure for a zero-length, inverted, or unparsable date range.
func InvalidRange(msg string) error {
	return &Failure{
		Kind:    KindInvalidRange,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// CapacityExceeded returns a new Failure for a guest count above the room capacity.
func CapacityExceeded(msg string) error {
	return &Failure{
		Kind:    KindCapacityExceeded,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Conflict returns a new Failure for an overlapping reservation.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// InvalidTransition returns a new Failure for a lifecycle event that is not
// legal from the booking's current status.
func InvalidTransition(message string) error {
	return &Failure{
		Kind:    KindInvalidTransition,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Busy returns a new Failure for a lock-wait timeout. This is the only
// retryable kind; callers should retry with backoff.
func Busy(message string) error {
	return &Failure{
		Kind:    KindBusy,
		Code:    http.StatusServiceUnavailable,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// IsRetryable reports whether the caller may retry the failed operation.
// Only lock-wait timeouts qualify.
func IsRetryable(err error) bool {
	return IsKind(err, KindBusy)
}
