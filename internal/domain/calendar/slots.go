package calendar

// IsWithinBusinessHours checks the open/close bounds only; breaks are separate.
// The close bound is inclusive unless the calendar was built otherwise, so with
// the defaults 19:00 validates even though it is never generated.
func (c *BusinessCalendar) IsWithinBusinessHours(t TimeOfDay) bool {
	if t < c.open {
		return false
	}
	if c.closeInclusive {
		return t <= c.close
	}
	return t < c.close
}

func (c *BusinessCalendar) IsDuringBreak(t TimeOfDay) bool {
	for _, b := range c.breaks {
		if b.Contains(t) {
			return true
		}
	}
	return false
}

// GenerateDaySlots lists start times from open, stepping by the interval,
// strictly before close and outside every break.
func (c *BusinessCalendar) GenerateDaySlots() []Slot {
	slots := make([]Slot, 0, (c.close-c.open).Minutes()/c.interval+1)
	for t := c.open; t < c.close; t += TimeOfDay(c.interval) {
		if c.IsDuringBreak(t) {
			continue
		}
		slots = append(slots, t.Slot())
	}
	return slots
}

// SlotOf floors a time to the interval grid. The grid runs through the open
// time, which for the usual calendars (open on a multiple of the interval) is
// the same as floor(minutes/interval)*interval.
func (c *BusinessCalendar) SlotOf(t TimeOfDay) Slot {
	return c.floor(t).Slot()
}

// IsOnGrid reports whether t is exactly a slot start of this calendar.
func (c *BusinessCalendar) IsOnGrid(t TimeOfDay) bool {
	return c.floor(t) == t
}

func (c *BusinessCalendar) floor(t TimeOfDay) TimeOfDay {
	m := int(t)
	offset := int(c.open) % c.interval
	shift := ((m-offset)%c.interval + c.interval) % c.interval
	// Before the first grid point of the day the floor falls on the previous
	// day's grid, which keeps the :15/:45 phase of an 08:15 opening.
	return TimeOfDay((m - shift + MinutesPerDay) % MinutesPerDay)
}
