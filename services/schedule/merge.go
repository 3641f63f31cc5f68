package schedule

import (
	"sort"
	"strings"
)

// FullDayLabel is what the clinic shows instead of "00:00:00 - 23:59:59".
const FullDayLabel = "24 Jam"

// MergeResult is the merged schedule plus every record that had to be skipped.
type MergeResult struct {
	Windows []Window
	Skipped []*RecordError
}

// Merge normalizes the raw windows of records into the minimal sorted set of
// non-overlapping windows. Records that do not parse are skipped and reported.
func Merge(records []Record) MergeResult {
	var (
		normalized []Window
		skipped    []*RecordError
	)
	for i, rec := range records {
		w, err := ParseWindow(rec.Window)
		if err != nil {
			skipped = append(skipped, &RecordError{Index: i, ID: rec.ID, Raw: rec.Window, Err: err})
			continue
		}
		normalized = append(normalized, w.Normalize()...)
	}
	return MergeResult{Windows: MergeWindows(normalized), Skipped: skipped}
}

// MergeWindows sweeps normalized windows into a merged schedule. Windows that
// touch (next.Start == current.End) are merged. The input is not modified.
func MergeWindows(windows []Window) []Window {
	if len(windows) == 0 {
		return []Window{}
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := []Window{sorted[0]}
	for _, next := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if next.Start > cur.End {
			merged = append(merged, next)
			continue
		}
		if next.End > cur.End {
			cur.End = next.End
		}
	}
	return merged
}

// Display renders the merged schedule, e.g. "08:00:00 - 12:00:00, 13:00:00 - 17:00:00".
func (r MergeResult) Display() string {
	return Render(r.Windows)
}

// FullDay reports whether the merged schedule is one window covering the whole day.
func (r MergeResult) FullDay() bool {
	return IsFullDay(r.Windows)
}

// Render joins windows as "start - end" with ", ".
func Render(windows []Window) string {
	if IsFullDay(windows) {
		return FullDay.String()
	}
	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = w.String()
	}
	return strings.Join(parts, ", ")
}

func IsFullDay(windows []Window) bool {
	return len(windows) == 1 && windows[0] == FullDay
}

// Label maps a rendered schedule to the text shown to patients.
func Label(display string) string {
	if display == FullDay.String() {
		return FullDayLabel
	}
	return display
}
