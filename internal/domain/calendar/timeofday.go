package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var ErrParse = errors.New("malformed time of day")

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

// Slot is the canonical "HH:MM" label of a bookable start time.
type Slot string

// TimeToMinutes parses a 24-hour "H:MM" or "HH:MM" string.
func TimeToMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	h, err := parseDigits(hh)
	if err != nil || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	m, err := parseDigits(mm)
	if err != nil || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return h*60 + m, nil
}

// MinutesToTime renders minutes since midnight as a zero-padded slot.
// Callers keep m inside [0, MinutesPerDay).
func MinutesToTime(m int) Slot {
	return Slot(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m, err := TimeToMinutes(s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(m), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }
func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Slot() Slot   { return MinutesToTime(int(t)) }
func (t TimeOfDay) String() string {
	return string(t.Slot())
}

func (s Slot) String() string { return string(s) }

func (s Slot) TimeOfDay() (TimeOfDay, error) {
	return ParseTimeOfDay(string(s))
}

func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrParse
		}
	}
	return strconv.Atoi(s)
}
