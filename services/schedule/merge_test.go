package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win(start, end string) Window {
	return Window{Start: MustParseTimeOfDay(start), End: MustParseTimeOfDay(end)}
}

func TestMerge_EmptyInput(t *testing.T) {
	res := Merge(nil)
	assert.Empty(t, res.Windows)
	assert.NotNil(t, res.Windows)
	assert.Equal(t, "", res.Display())
	assert.Empty(t, res.Skipped)
}

func TestMerge_FullDay(t *testing.T) {
	res := Merge([]Record{{ID: "1", Window: "00:00:00 - 23:59:59"}})
	assert.True(t, res.FullDay())
	assert.Equal(t, "00:00:00 - 23:59:59", res.Display())
	assert.Equal(t, FullDayLabel, Label(res.Display()))
}

func TestMerge_OvernightSplit(t *testing.T) {
	res := Merge([]Record{{ID: "1", Window: "22:00:00 - 05:00:00"}})
	assert.Equal(t, []Window{
		win("00:00:00", "05:00:00"),
		win("22:00:00", "23:59:59"),
	}, res.Windows)
	assert.Equal(t, "00:00:00 - 05:00:00, 22:00:00 - 23:59:59", res.Display())
}

func TestMerge_OverlappingAndDisjoint(t *testing.T) {
	res := Merge([]Record{
		{ID: "3", Window: "13:00:00 - 17:00:00"},
		{ID: "1", Window: "08:00:00 - 12:00:00"},
		{ID: "2", Window: "09:00:00 - 10:00:00"},
		{ID: "4", Window: "16:00:00 - 18:30:00"},
	})
	assert.Equal(t, []Window{
		win("08:00:00", "12:00:00"),
		win("13:00:00", "18:30:00"),
	}, res.Windows)
	assert.Equal(t, "08:00:00 - 12:00:00, 13:00:00 - 18:30:00", res.Display())
	assert.Equal(t, "08:00:00 - 12:00:00, 13:00:00 - 18:30:00", Label(res.Display()))
}

func TestMerge_ContainedWindowDoesNotShrink(t *testing.T) {
	res := Merge([]Record{
		{ID: "1", Window: "08:00:00 - 20:00:00"},
		{ID: "2", Window: "09:00:00 - 10:00:00"},
	})
	assert.Equal(t, []Window{win("08:00:00", "20:00:00")}, res.Windows)
}

func TestMerge_TouchingWindowsMerge(t *testing.T) {
	res := Merge([]Record{
		{ID: "1", Window: "08:00:00 - 12:00:00"},
		{ID: "2", Window: "12:00:00 - 16:00:00"},
	})
	assert.Equal(t, []Window{win("08:00:00", "16:00:00")}, res.Windows)

	// one second apart is a gap, not a touch
	res = Merge([]Record{
		{ID: "1", Window: "08:00:00 - 11:59:59"},
		{ID: "2", Window: "12:00:00 - 16:00:00"},
	})
	assert.Len(t, res.Windows, 2)
}

func TestMerge_OvernightPlusDayCoversFullDay(t *testing.T) {
	res := Merge([]Record{
		{ID: "1", Window: "22:00:00 - 08:00:00"},
		{ID: "2", Window: "08:00:00 - 22:00:00"},
	})
	assert.True(t, res.FullDay())
	assert.Equal(t, FullDayLabel, Label(res.Display()))
}

func TestMerge_DegenerateWindowKept(t *testing.T) {
	res := Merge([]Record{{ID: "1", Window: "10:00:00 - 10:00:00"}})
	assert.Equal(t, []Window{win("10:00:00", "10:00:00")}, res.Windows)
}

func TestMerge_MalformedRecordsSkipped(t *testing.T) {
	res := Merge([]Record{
		{ID: "1", Window: "08:00:00 - 12:00:00"},
		{ID: "bad", Window: "bad-data"},
		{ID: "worse", Window: "25:00:00 - 26:00:00"},
		{ID: "3", Window: "11:00:00 - 14:00:00"},
		{ID: "empty", Window: ""},
	})

	assert.Equal(t, []Window{win("08:00:00", "14:00:00")}, res.Windows)
	require.Len(t, res.Skipped, 3)

	assert.Equal(t, "bad", res.Skipped[0].ID)
	assert.Equal(t, 1, res.Skipped[0].Index)
	assert.True(t, errors.Is(res.Skipped[0], ErrMalformedRecord))

	assert.Equal(t, "worse", res.Skipped[1].ID)
	assert.True(t, errors.Is(res.Skipped[1], ErrInvalidTimeFormat))

	assert.True(t, errors.Is(res.Skipped[2], ErrMalformedRecord))
}

func TestMerge_Idempotent(t *testing.T) {
	inputs := [][]Record{
		{{ID: "1", Window: "22:00:00 - 05:00:00"}, {ID: "2", Window: "04:00:00 - 06:00:00"}},
		{{ID: "1", Window: "08:00:00 - 12:00:00"}, {ID: "2", Window: "13:00:00 - 17:00:00"}},
		{{ID: "1", Window: "00:00:00 - 23:59:59"}},
		{},
	}
	for _, records := range inputs {
		first := Merge(records)

		again := make([]Record, len(first.Windows))
		for i, w := range first.Windows {
			again[i] = Record{ID: "m", Window: w.String()}
		}
		second := Merge(again)

		assert.Equal(t, first.Windows, second.Windows)
		assert.Equal(t, first.Windows, MergeWindows(first.Windows))
	}
}

func TestMerge_CoverageAndOrdering(t *testing.T) {
	records := []Record{
		{ID: "1", Window: "21:30:00 - 02:15:00"},
		{ID: "2", Window: "07:00:00 - 09:00:00"},
		{ID: "3", Window: "08:30:00 - 08:45:00"},
		{ID: "4", Window: "01:00:00 - 03:00:00"},
		{ID: "5", Window: "12:00:00 - 12:00:00"},
	}
	res := Merge(records)

	for i := 1; i < len(res.Windows); i++ {
		assert.Less(t, int(res.Windows[i-1].End), int(res.Windows[i].Start))
	}

	inRaw := func(sec TimeOfDay) bool {
		for _, r := range records {
			w, err := ParseWindow(r.Window)
			require.NoError(t, err)
			for _, n := range w.Normalize() {
				if n.Contains(sec) {
					return true
				}
			}
		}
		return false
	}
	inMerged := func(sec TimeOfDay) bool {
		for _, w := range res.Windows {
			if w.Contains(sec) {
				return true
			}
		}
		return false
	}
	for sec := StartOfDay; sec <= EndOfDay; sec += 15 {
		assert.Equal(t, inRaw(sec), inMerged(sec), "second %s", sec)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	windows := []Window{win("13:00:00", "14:00:00"), win("08:00:00", "13:30:00")}
	MergeWindows(windows)
	assert.Equal(t, win("13:00:00", "14:00:00"), windows[0])
}
