package queries

import (
	"appointment-scheduler/internal/domain/calendar"
)

type BreakView struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type CalendarView struct {
	Open            string      `json:"open"`
	Close           string      `json:"close"`
	IntervalMinutes int         `json:"interval_minutes"`
	WorkingDays     []int       `json:"working_days"`
	WorkingDayNames string      `json:"working_day_names"`
	Breaks          []BreakView `json:"breaks"`
	TimeZone        string      `json:"time_zone"`
	CloseInclusive  bool        `json:"close_inclusive"`
}

func DescribeCalendar(cal *calendar.BusinessCalendar) CalendarView {
	days := cal.WorkingDays()
	workingDays := make([]int, len(days))
	for i, d := range days {
		workingDays[i] = int(d)
	}

	breaks := cal.Breaks()
	breakViews := make([]BreakView, len(breaks))
	for i, b := range breaks {
		breakViews[i] = BreakView{Name: b.Name, Start: b.Start.String(), End: b.End.String()}
	}

	return CalendarView{
		Open:            cal.Open().String(),
		Close:           cal.Close().String(),
		IntervalMinutes: cal.IntervalMinutes(),
		WorkingDays:     workingDays,
		WorkingDayNames: cal.WorkingDayNames(),
		Breaks:          breakViews,
		TimeZone:        cal.Location().String(),
		CloseInclusive:  cal.CloseInclusive(),
	}
}
