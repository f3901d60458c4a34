package calendar

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var ErrInvalidCalendar = errors.New("invalid business calendar")

type Break struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
}

func (b Break) Contains(t TimeOfDay) bool {
	return t >= b.Start && t < b.End
}

// BreakSpec is the textual form of a break as it appears in configuration.
type BreakSpec struct {
	Name  string
	Start string
	End   string
}

// ParseBreak reads "Name@HH:MM-HH:MM". The name part is optional.
func ParseBreak(s string) (BreakSpec, error) {
	name, span, found := strings.Cut(strings.TrimSpace(s), "@")
	if !found {
		span, name = name, ""
	}
	start, end, ok := strings.Cut(span, "-")
	if !ok {
		return BreakSpec{}, fmt.Errorf("%w: break %q must look like Name@HH:MM-HH:MM", ErrInvalidCalendar, s)
	}
	return BreakSpec{Name: strings.TrimSpace(name), Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}, nil
}

type Options struct {
	Open            string
	Close           string
	IntervalMinutes int
	WorkingDays     []int
	Breaks          []BreakSpec
	TimeZone        string
	CloseInclusive  bool
}

// BusinessCalendar is immutable after New and safe for concurrent use.
type BusinessCalendar struct {
	open           TimeOfDay
	close          TimeOfDay
	interval       int
	workingDays    [7]bool
	breaks         []Break
	location       *time.Location
	closeInclusive bool
}

func New(opts Options) (*BusinessCalendar, error) {
	open, err := ParseTimeOfDay(opts.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %w", ErrInvalidCalendar, err)
	}
	closeAt, err := ParseTimeOfDay(opts.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %w", ErrInvalidCalendar, err)
	}
	if closeAt <= open {
		return nil, fmt.Errorf("%w: close %s must be after open %s", ErrInvalidCalendar, closeAt, open)
	}
	if opts.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot interval must be positive, got %d", ErrInvalidCalendar, opts.IntervalMinutes)
	}

	c := &BusinessCalendar{
		open:           open,
		close:          closeAt,
		interval:       opts.IntervalMinutes,
		closeInclusive: opts.CloseInclusive,
	}

	for _, d := range opts.WorkingDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: weekday %d outside 0..6", ErrInvalidCalendar, d)
		}
		c.workingDays[d] = true
	}

	for _, spec := range opts.Breaks {
		b, err := buildBreak(spec)
		if err != nil {
			return nil, err
		}
		c.breaks = append(c.breaks, b)
	}
	for i := 1; i < len(c.breaks); i++ {
		if c.breaks[i].Start < c.breaks[i-1].End {
			return nil, fmt.Errorf("%w: break %q overlaps or precedes %q", ErrInvalidCalendar, c.breaks[i].Name, c.breaks[i-1].Name)
		}
	}

	tz := opts.TimeZone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: time zone %q: %w", ErrInvalidCalendar, tz, err)
	}
	c.location = loc

	return c, nil
}

func buildBreak(spec BreakSpec) (Break, error) {
	start, err := ParseTimeOfDay(spec.Start)
	if err != nil {
		return Break{}, fmt.Errorf("%w: break %q start: %w", ErrInvalidCalendar, spec.Name, err)
	}
	end, err := ParseTimeOfDay(spec.End)
	if err != nil {
		return Break{}, fmt.Errorf("%w: break %q end: %w", ErrInvalidCalendar, spec.Name, err)
	}
	if end <= start {
		return Break{}, fmt.Errorf("%w: break %q must end after it starts", ErrInvalidCalendar, spec.Name)
	}
	return Break{Name: spec.Name, Start: start, End: end}, nil
}

func (c *BusinessCalendar) Open() TimeOfDay          { return c.open }
func (c *BusinessCalendar) Close() TimeOfDay         { return c.close }
func (c *BusinessCalendar) IntervalMinutes() int     { return c.interval }
func (c *BusinessCalendar) Location() *time.Location { return c.location }
func (c *BusinessCalendar) CloseInclusive() bool     { return c.closeInclusive }

func (c *BusinessCalendar) Interval() time.Duration {
	return time.Duration(c.interval) * time.Minute
}

func (c *BusinessCalendar) Breaks() []Break {
	return slices.Clone(c.breaks)
}

func (c *BusinessCalendar) WorkingDays() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d, ok := range c.workingDays {
		if ok {
			days = append(days, time.Weekday(d))
		}
	}
	return days
}

// WorkingDayNames joins the working weekdays, e.g. "Monday, Tuesday".
func (c *BusinessCalendar) WorkingDayNames() string {
	days := c.WorkingDays()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}
