package schedule

import (
	"fmt"
	"strings"
)

const rangeSeparator = " - "

// Record is one upstream schedule entry as the core sees it.
type Record struct {
	ID     string
	Window string
}

// Window is a time range on a single day. Normalized windows have Start <= End.
type Window struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// FullDay covers every second of the day.
var FullDay = Window{Start: StartOfDay, End: EndOfDay}

func (w Window) String() string {
	return w.Start.String() + rangeSeparator + w.End.String()
}

// Wraps reports whether the raw window spans midnight.
func (w Window) Wraps() bool {
	return w.Start > w.End
}

// Contains is inclusive on both ends. Only meaningful for normalized windows.
func (w Window) Contains(t TimeOfDay) bool {
	return t >= w.Start && t <= w.End
}

// Normalize splits an overnight window at the day boundary.
func (w Window) Normalize() []Window {
	if w.Wraps() {
		return []Window{
			{Start: w.Start, End: EndOfDay},
			{Start: StartOfDay, End: w.End},
		}
	}
	return []Window{w}
}

// ParseWindow parses "HH:MM:SS - HH:MM:SS". The result may wrap midnight.
func ParseWindow(raw string) (Window, error) {
	tokens := strings.Split(raw, rangeSeparator)
	if len(tokens) != 2 || strings.TrimSpace(tokens[0]) == "" || strings.TrimSpace(tokens[1]) == "" {
		return Window{}, fmt.Errorf("%w: %q", ErrMalformedRecord, raw)
	}
	start, err := ParseTimeOfDay(tokens[0])
	if err != nil {
		return Window{}, err
	}
	end, err := ParseTimeOfDay(tokens[1])
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}
