//go:build unit

package calendar_test

import (
	"testing"

	"appointment-scheduler/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaySlots(t *testing.T) {
	t.Run("default calendar yields twenty slots around lunch", func(t *testing.T) {
		cal := mustCalendar(t, nil)

		slots := cal.GenerateDaySlots()

		want := []calendar.Slot{
			"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
			"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
			"17:00", "17:30", "18:00", "18:30",
		}
		assert.Equal(t, want, slots)
	})

	t.Run("every slot is inside hours, before close and outside breaks", func(t *testing.T) {
		cal := mustCalendar(t, func(o *calendar.Options) {
			o.IntervalMinutes = 20
			o.Breaks = []calendar.BreakSpec{
				{Name: "Coffee", Start: "10:10", End: "10:30"},
				{Name: "Lunch", Start: "12:00", End: "13:15"},
			}
		})

		slots := cal.GenerateDaySlots()
		require.NotEmpty(t, slots)
		for _, s := range slots {
			v, err := s.TimeOfDay()
			require.NoError(t, err)
			assert.True(t, cal.IsWithinBusinessHours(v), s)
			assert.Less(t, v.Minutes(), cal.Close().Minutes(), s)
			assert.False(t, cal.IsDuringBreak(v), s)
			assert.True(t, cal.IsOnGrid(v), s)
		}
		assert.NotContains(t, slots, calendar.Slot("10:20"))
		assert.Contains(t, slots, calendar.Slot("10:00"))
		assert.Contains(t, slots, calendar.Slot("13:20"))
	})

	t.Run("no breaks", func(t *testing.T) {
		cal := mustCalendar(t, func(o *calendar.Options) {
			o.Open, o.Close, o.Breaks = "09:00", "10:00", nil
		})
		assert.Equal(t, []calendar.Slot{"09:00", "09:30"}, cal.GenerateDaySlots())
	})
}

func TestIsDuringBreak(t *testing.T) {
	cal := mustCalendar(t, nil)

	assert.False(t, cal.IsDuringBreak(tod(t, "11:59")))
	assert.True(t, cal.IsDuringBreak(tod(t, "12:00")), "break start is inside")
	assert.True(t, cal.IsDuringBreak(tod(t, "12:15")))
	assert.True(t, cal.IsDuringBreak(tod(t, "12:59")))
	assert.False(t, cal.IsDuringBreak(tod(t, "13:00")), "break end is outside")
}

func TestIsWithinBusinessHours(t *testing.T) {
	t.Run("inclusive close bound", func(t *testing.T) {
		cal := mustCalendar(t, nil)

		assert.False(t, cal.IsWithinBusinessHours(tod(t, "07:59")))
		assert.True(t, cal.IsWithinBusinessHours(tod(t, "08:00")))
		assert.True(t, cal.IsWithinBusinessHours(tod(t, "18:30")))
		assert.True(t, cal.IsWithinBusinessHours(tod(t, "19:00")))
		assert.False(t, cal.IsWithinBusinessHours(tod(t, "19:01")))

		// The close time validates but is never offered.
		assert.NotContains(t, cal.GenerateDaySlots(), calendar.Slot("19:00"))
	})

	t.Run("exclusive close bound", func(t *testing.T) {
		cal := mustCalendar(t, func(o *calendar.Options) { o.CloseInclusive = false })

		assert.True(t, cal.IsWithinBusinessHours(tod(t, "18:59")))
		assert.False(t, cal.IsWithinBusinessHours(tod(t, "19:00")))
	})
}

func TestSlotOf(t *testing.T) {
	cal := mustCalendar(t, nil)

	testCases := []struct {
		in   string
		want calendar.Slot
	}{
		{in: "09:00", want: "09:00"},
		{in: "09:10", want: "09:00"},
		{in: "09:29", want: "09:00"},
		{in: "09:30", want: "09:30"},
		{in: "09:45", want: "09:30"},
		{in: "00:05", want: "00:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, cal.SlotOf(tod(t, tc.in)))
		})
	}
}

func TestGridAnchoredAtOpen(t *testing.T) {
	cal := mustCalendar(t, func(o *calendar.Options) {
		o.Open, o.Breaks = "08:15", nil
	})

	slots := cal.GenerateDaySlots()
	assert.Equal(t, calendar.Slot("08:15"), slots[0])
	assert.Equal(t, calendar.Slot("08:45"), slots[1])
	assert.Equal(t, calendar.Slot("08:45"), cal.SlotOf(tod(t, "09:00")))
	assert.True(t, cal.IsOnGrid(tod(t, "08:45")))
	assert.False(t, cal.IsOnGrid(tod(t, "00:00")))
	assert.True(t, cal.IsOnGrid(tod(t, "00:15")))
	assert.Equal(t, calendar.Slot("23:45"), cal.SlotOf(tod(t, "00:05")))
	assert.False(t, cal.IsOnGrid(tod(t, "09:00")))
}

func TestIsOnGrid(t *testing.T) {
	cal := mustCalendar(t, nil)

	assert.True(t, cal.IsOnGrid(tod(t, "08:00")))
	assert.True(t, cal.IsOnGrid(tod(t, "19:00")))
	assert.False(t, cal.IsOnGrid(tod(t, "09:15")))
	assert.False(t, cal.IsOnGrid(tod(t, "12:15")))
}
