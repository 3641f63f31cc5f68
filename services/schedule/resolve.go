package schedule

// Resolve returns the id of the first record, in input order, whose raw window
// contains chosen. Overnight windows are checked against chosen and, when chosen
// falls before the window start, against chosen on the following day.
func Resolve(records []Record, chosen TimeOfDay) (string, bool) {
	for _, rec := range records {
		w, err := ParseWindow(rec.Window)
		if err != nil {
			continue
		}
		if covers(w, chosen) {
			return rec.ID, true
		}
	}
	return "", false
}

// ResolveString parses chosen and resolves it. No match yields ErrNoMatchingSchedule.
func ResolveString(records []Record, chosen string) (string, error) {
	t, err := ParseTimeOfDay(chosen)
	if err != nil {
		return "", err
	}
	id, ok := Resolve(records, t)
	if !ok {
		return "", ErrNoMatchingSchedule
	}
	return id, nil
}

func covers(w Window, chosen TimeOfDay) bool {
	if !w.Wraps() {
		return w.Contains(chosen)
	}
	end := w.End + secondsPerDay
	c := chosen
	if c < w.Start {
		c += secondsPerDay
	}
	return c >= w.Start && c <= end
}
