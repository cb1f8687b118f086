package hours_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewgo/jewgo/internal/hours"
)

func TestNormalize_WeekdayMap(t *testing.T) {
	raw := map[string]any{
		"monday":    map[string]any{"open": "9:00 AM", "close": "5:00 PM"},
		"wednesday": map[string]any{"open": "11am", "close": "9 PM"},
	}

	sched := hours.Normalize(raw)
	require.False(t, sched.IsEmpty())

	mon := sched[hours.Monday]
	require.NotNil(t, mon)
	assert.Equal(t, 540, mon.OpenMinutes)
	assert.Equal(t, 1020, mon.CloseMinutes)
	assert.Equal(t, "9:00 AM", mon.Open)

	wed := sched[hours.Wednesday]
	require.NotNil(t, wed)
	assert.Equal(t, 660, wed.OpenMinutes)
	assert.Equal(t, 1260, wed.CloseMinutes)

	assert.Nil(t, sched[hours.Tuesday])
	assert.Nil(t, sched[hours.Sunday])
}

func TestNormalize_JSONString(t *testing.T) {
	raw := `{"friday": {"open": "10:00 AM", "close": "3:00 PM"}}`

	sched := hours.Normalize(raw)
	require.False(t, sched.IsEmpty())
	require.NotNil(t, sched[hours.Friday])
	assert.Equal(t, 600, sched[hours.Friday].OpenMinutes)
}

func TestNormalize_NoUsableData(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"malformed json", "{not json"},
		{"free text", "open weekdays 9-5"},
		{"empty object", map[string]any{}},
		{"unknown day keys", map[string]any{"someday": map[string]any{"open": "9am", "close": "5pm"}}},
		{"missing close", map[string]any{"monday": map[string]any{"open": "9am"}}},
		{"json array", "[1,2,3]"},
		{"number", 42},
		{"unmarshalable", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, hours.Normalize(tt.raw).IsEmpty())
		})
	}
}

func TestNormalize_DropsUnparseableTimes(t *testing.T) {
	// A day with a garbage time must disappear entirely, not open at midnight.
	raw := map[string]any{
		"monday":  map[string]any{"open": "whenever", "close": "5:00 PM"},
		"tuesday": map[string]any{"open": "9:00 AM", "close": "5:00 PM"},
	}

	sched := hours.Normalize(raw)
	assert.Nil(t, sched[hours.Monday])
	require.NotNil(t, sched[hours.Tuesday])
	assert.Equal(t, 540, sched[hours.Tuesday].OpenMinutes)
}

func TestParseWeekday(t *testing.T) {
	day, ok := hours.ParseWeekday("thursday")
	assert.True(t, ok)
	assert.Equal(t, hours.Thursday, day)

	_, ok = hours.ParseWeekday("Thursday")
	assert.False(t, ok, "weekday keys are lowercase")

	_, ok = hours.ParseWeekday("")
	assert.False(t, ok)
}

func TestWeekday_Plus(t *testing.T) {
	assert.Equal(t, hours.Sunday, hours.Saturday.Plus(1))
	assert.Equal(t, hours.Monday, hours.Monday.Plus(7))
	assert.Equal(t, hours.Friday, hours.Tuesday.Plus(3))
}
