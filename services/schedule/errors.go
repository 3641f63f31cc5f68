package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord    = errors.New("schedule: malformed time range")
	ErrInvalidTimeFormat  = errors.New("schedule: invalid time format")
	ErrInvalidInterval    = errors.New("schedule: interval must be positive")
	ErrNoMatchingSchedule = errors.New("schedule: no schedule covers the chosen time")
	ErrUnknownDay         = errors.New("schedule: unknown day name")
)

// RecordError reports a record that was left out of a merge.
type RecordError struct {
	Index int
	ID    string
	Raw   string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q (index %d, raw %q): %v", e.ID, e.Index, e.Raw, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
