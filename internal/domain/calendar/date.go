package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a civil calendar date with no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q", ErrParse, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday is pinned to UTC midnight so the host zone never shifts the day.
func (d Date) Weekday() time.Weekday {
	return d.midnight(time.UTC).Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight(time.UTC).AddDate(0, 0, n))
}

func (d Date) midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (c *BusinessCalendar) IsWorkingDay(d Date) bool {
	return c.workingDays[d.Weekday()]
}

// At combines a business-local date and wall-clock time into an instant.
func (c *BusinessCalendar) At(d Date, t TimeOfDay) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, c.location)
}

// DayBounds returns [start, end) of the business-local day. Both ends come from
// time.Date so days around DST transitions keep their real length.
func (c *BusinessCalendar) DayBounds(d Date) (time.Time, time.Time) {
	next := d.AddDays(1)
	return d.midnight(c.location), next.midnight(c.location)
}

// LocalDate is the business-local date of an instant.
func (c *BusinessCalendar) LocalDate(t time.Time) Date {
	return DateOf(t.In(c.location))
}

// LocalTime is the business-local wall-clock time of an instant, seconds dropped.
func (c *BusinessCalendar) LocalTime(t time.Time) TimeOfDay {
	local := t.In(c.location)
	return TimeOfDay(local.Hour()*60 + local.Minute())
}

// SlotAt attributes an instant to its business-local date and grid slot.
func (c *BusinessCalendar) SlotAt(t time.Time) (Date, Slot) {
	return c.LocalDate(t), c.SlotOf(c.LocalTime(t))
}
