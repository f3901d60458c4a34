//go:build unit || e2e

package builder

import (
	"testing"

	"appointment-scheduler/internal/domain/calendar"

	"github.com/stretchr/testify/require"
)

// CalendarBuilder starts from the stock business calendar: weekdays
// 08:00-19:00 in 30 minute slots with a 12:00-13:00 lunch, in UTC.
type CalendarBuilder struct {
	Options calendar.Options
}

func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{Options: calendar.Options{
		Open:            "08:00",
		Close:           "19:00",
		IntervalMinutes: 30,
		WorkingDays:     []int{1, 2, 3, 4, 5},
		Breaks:          []calendar.BreakSpec{{Name: "Lunch", Start: "12:00", End: "13:00"}},
		TimeZone:        "UTC",
		CloseInclusive:  true,
	}}
}

func (b *CalendarBuilder) With(mutate func(*calendar.Options)) *CalendarBuilder {
	mutate(&b.Options)
	return b
}

func (b *CalendarBuilder) Build(t *testing.T) *calendar.BusinessCalendar {
	t.Helper()
	cal, err := calendar.New(b.Options)
	require.NoError(t, err)
	return cal
}

// MustDate parses a YYYY-MM-DD literal.
func MustDate(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

// MustTime parses an HH:MM literal.
func MustTime(t *testing.T, s string) calendar.TimeOfDay {
	t.Helper()
	v, err := calendar.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}
