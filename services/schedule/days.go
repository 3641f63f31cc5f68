package schedule

import (
	"fmt"
	"strings"
	"time"
)

var dayNames = map[string]time.Weekday{
	"minggu": time.Sunday,
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"sabtu":  time.Saturday,
}

// ParseDays reads the practice days of a specialization schedule, e.g. "Senin",
// "Senin - Kamis", "Jumat - Senin", "Senin, Rabu" or "Setiap hari".
func ParseDays(hari string) ([]time.Weekday, error) {
	hari = strings.TrimSpace(hari)
	if strings.EqualFold(hari, "setiap hari") {
		return everyDay(), nil
	}

	var set [7]bool
	for _, part := range strings.Split(hari, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.Split(part, "-")
		switch len(bounds) {
		case 1:
			d, err := parseDay(bounds[0])
			if err != nil {
				return nil, err
			}
			set[d] = true
		case 2:
			from, err := parseDay(bounds[0])
			if err != nil {
				return nil, err
			}
			to, err := parseDay(bounds[1])
			if err != nil {
				return nil, err
			}
			// ranges may wrap past Saturday
			for d := from; ; d = (d + 1) % 7 {
				set[d] = true
				if d == to {
					break
				}
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownDay, part)
		}
	}

	var days []time.Weekday
	for d, ok := range set {
		if ok {
			days = append(days, time.Weekday(d))
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, hari)
	}
	return days, nil
}

// AllowsDate reports whether date falls on one of days.
func AllowsDate(days []time.Weekday, date time.Time) bool {
	for _, d := range days {
		if date.Weekday() == d {
			return true
		}
	}
	return false
}

// ParseDay reads a single day name such as "Senin".
func ParseDay(name string) (time.Weekday, error) {
	return parseDay(name)
}

func parseDay(s string) (time.Weekday, error) {
	d, ok := dayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
	}
	return d, nil
}

func everyDay() []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = time.Weekday(i)
	}
	return days
}

var dayLabels = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// DayNames renders weekdays with their Indonesian names.
func DayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, dayLabels[d%7])
	}
	return names
}
