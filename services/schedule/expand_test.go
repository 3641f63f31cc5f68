package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandWindow(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		interval int
		want     []string
	}{
		{"inclusive end", win("09:00:00", "10:00:00"), 30, []string{"09:00:00", "09:30:00", "10:00:00"}},
		{"start rounds up", win("09:05:00", "10:00:00"), 30, []string{"09:30:00", "10:00:00"}},
		{"seconds round up", win("09:00:30", "10:00:00"), 30, []string{"09:30:00", "10:00:00"}},
		{"end between slots", win("09:00:00", "09:59:59"), 30, []string{"09:00:00", "09:30:00"}},
		{"window shorter than interval", win("09:05:00", "09:20:00"), 30, []string{}},
		{"degenerate on boundary", win("10:00:00", "10:00:00"), 30, []string{"10:00:00"}},
		{"hour interval", win("07:15:00", "10:00:00"), 60, []string{"08:00:00", "09:00:00", "10:00:00"}},
		{"aligned to midnight", win("10:50:00", "12:00:00"), 45, []string{"11:15:00", "12:00:00"}},
		{"end of day", win("23:00:00", "23:59:59"), 30, []string{"23:00:00", "23:30:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandWindow(tt.window, tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Strings(got))
		})
	}
}

func TestExpand_MultipleWindows(t *testing.T) {
	merged := Merge([]Record{
		{ID: "1", Window: "22:00:00 - 01:00:00"},
		{ID: "2", Window: "08:00:00 - 09:00:00"},
	})
	got, err := Expand(merged.Windows, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"00:00:00", "00:30:00", "01:00:00",
		"08:00:00", "08:30:00", "09:00:00",
		"22:00:00", "22:30:00", "23:00:00", "23:30:00",
	}, Strings(got))
}

func TestExpand_AbuttingWindowsEmitBoundaryOnce(t *testing.T) {
	got, err := Expand([]Window{
		win("09:00:00", "10:00:00"),
		win("10:00:00", "11:00:00"),
	}, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00"}, Strings(got))
}

func TestExpand_Empty(t *testing.T) {
	got, err := Expand(nil, 30)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpand_InvalidInterval(t *testing.T) {
	for _, interval := range []int{0, -30, MaxIntervalMinutes + 1, 1 << 58, 1 << 62} {
		got, err := Expand([]Window{win("09:00:00", "10:00:00")}, interval)
		assert.ErrorIs(t, err, ErrInvalidInterval)
		assert.Nil(t, got)

		_, err = ExpandWindow(win("09:00:00", "10:00:00"), interval)
		assert.ErrorIs(t, err, ErrInvalidInterval)

		_, err = ExpandRange("09:00:00", "10:00:00", interval)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	}
}

func TestExpand_DayLongInterval(t *testing.T) {
	got, err := ExpandWindow(win("00:00:00", "23:59:59"), MaxIntervalMinutes)
	require.NoError(t, err)
	assert.Equal(t, []string{"00:00:00"}, Strings(got))

	got, err = ExpandRange("09:00:00", "", MaxIntervalMinutes)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandRange(t *testing.T) {
	got, err := ExpandRange("08:00:00", "09:00:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00:00", "08:30:00", "09:00:00"}, Strings(got))

	got, err = ExpandRange("22:40", "", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"23:00:00", "23:30:00"}, Strings(got))

	_, err = ExpandRange("8 pagi", "09:00:00", 30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = ExpandRange("08:00:00", "nine", 30)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestExpand_Deterministic(t *testing.T) {
	windows := []Window{win("08:10:00", "12:00:00"), win("13:00:00", "15:45:00")}
	a, err := Expand(windows, 15)
	require.NoError(t, err)
	b, err := Expand(windows, 15)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	for _, s := range a {
		assert.Zero(t, int(s)%(15*60))
	}
}
