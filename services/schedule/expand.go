package schedule

import "strings"

const (
	// DefaultIntervalMinutes is the slot length used when callers do not pick one.
	DefaultIntervalMinutes = 30

	// MaxIntervalMinutes is the longest accepted slot length: one day.
	MaxIntervalMinutes = 24 * 60
)

// ValidInterval reports whether intervalMinutes is a usable slot length.
func ValidInterval(intervalMinutes int) bool {
	return intervalMinutes > 0 && intervalMinutes <= MaxIntervalMinutes
}

// Expand produces the bookable time points of every window, in window order.
// A value already emitted by an earlier window is not repeated.
func Expand(windows []Window, intervalMinutes int) ([]TimeOfDay, error) {
	if !ValidInterval(intervalMinutes) {
		return nil, ErrInvalidInterval
	}

	slots := []TimeOfDay{}
	seen := make(map[TimeOfDay]struct{})
	for _, w := range windows {
		for _, t := range expandWindow(w, intervalMinutes) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			slots = append(slots, t)
		}
	}
	return slots, nil
}

// ExpandWindow produces the bookable time points of a single normalized window.
func ExpandWindow(w Window, intervalMinutes int) ([]TimeOfDay, error) {
	if !ValidInterval(intervalMinutes) {
		return nil, ErrInvalidInterval
	}
	return expandWindow(w, intervalMinutes), nil
}

// ExpandRange expands raw start/end strings. An empty end leaves the window
// open until the end of the day.
func ExpandRange(start, end string, intervalMinutes int) ([]TimeOfDay, error) {
	if !ValidInterval(intervalMinutes) {
		return nil, ErrInvalidInterval
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	e := EndOfDay
	if strings.TrimSpace(end) != "" {
		if e, err = ParseTimeOfDay(end); err != nil {
			return nil, err
		}
	}
	return expandWindow(Window{Start: s, End: e}, intervalMinutes), nil
}

func expandWindow(w Window, intervalMinutes int) []TimeOfDay {
	step := TimeOfDay(intervalMinutes * 60)
	slots := []TimeOfDay{}
	for t := roundUp(w.Start, step); t <= w.End; t += step {
		slots = append(slots, t)
	}
	return slots
}

// roundUp aligns t to the next multiple of step counted from midnight.
func roundUp(t, step TimeOfDay) TimeOfDay {
	if rem := t % step; rem != 0 {
		return t + step - rem
	}
	return t
}
