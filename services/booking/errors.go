package booking

import (
	"errors"
	"fmt"
)

// Booking error codes.
const (
	CodeInvalidDate        = "invalid_date"
	CodeInvalidTime        = "invalid_time"
	CodeSlotNotOffered     = "slot_not_offered"
	CodeNoMatchingSchedule = "no_matching_schedule"
	CodeDuplicate          = "duplicate_submission"
	CodeDayNotAllowed      = "day_not_allowed"
	CodeInvalidInterval    = "invalid_interval"
	CodeNotCancellable     = "not_cancellable"
	CodeNotDeletable       = "not_deletable"
	CodeQueueNotFound      = "queue_not_found"
	CodeForbidden          = "forbidden"
	CodeInvalidSchedule    = "invalid_schedule"
	CodeUnknownResource    = "unknown_resource"
)

// BookingError is a reservation refused by the gateway before anything was sent
// to the clinic API.
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func newBookingError(code, msg string, err error) error {
	return &BookingError{Code: code, Message: msg, Err: err}
}

// CodeOf returns the booking error code of err, or "" when err is not a BookingError.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
