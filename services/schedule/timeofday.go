package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time with second precision, stored as seconds since midnight.
type TimeOfDay int

const (
	StartOfDay TimeOfDay = 0
	EndOfDay   TimeOfDay = 24*60*60 - 1

	secondsPerDay = 24 * 60 * 60
)

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM" (seconds default to zero).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		values[i] = n
	}
	return TimeOfDay(values[0]*3600 + values[1]*60 + values[2]), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// MustParseTimeOfDay is ParseTimeOfDay for constants and tests.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String formats the time as zero-padded "HH:MM:SS".
func (t TimeOfDay) String() string {
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// MarshalText lets TimeOfDay cross JSON boundaries as "HH:MM:SS".
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Strings formats a slot sequence for the view layer.
func Strings(times []TimeOfDay) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}
