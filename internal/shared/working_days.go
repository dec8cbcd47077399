package shared

import (
	"time"

	"github.com/rickar/cal/v2"
)

var workingCalendar = newWorkingCalendar()

// newWorkingCalendar is a Monday to Friday calendar with the England and
// Wales bank holidays.
func newWorkingCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.SetWorkday(time.Saturday, false)
	c.SetWorkday(time.Sunday, false)

	c.AddHoliday(
		&cal.Holiday{Name: "New Year's Day", Type: cal.ObservancePublic, Month: time.January, Day: 1, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Good Friday", Type: cal.ObservancePublic, Offset: -2, Func: cal.CalcEasterOffset},
		&cal.Holiday{Name: "Easter Monday", Type: cal.ObservancePublic, Offset: 1, Func: cal.CalcEasterOffset},
		&cal.Holiday{Name: "Early May bank holiday", Type: cal.ObservancePublic, Month: time.May, Weekday: time.Monday, Offset: 1, Func: cal.CalcWeekdayOffset},
		&cal.Holiday{Name: "Spring bank holiday", Type: cal.ObservancePublic, Month: time.May, Weekday: time.Monday, Offset: -1, Func: cal.CalcWeekdayOffset},
		&cal.Holiday{Name: "Summer bank holiday", Type: cal.ObservancePublic, Month: time.August, Weekday: time.Monday, Offset: -1, Func: cal.CalcWeekdayOffset},
		&cal.Holiday{Name: "Christmas Day", Type: cal.ObservancePublic, Month: time.December, Day: 25, Func: cal.CalcDayOfMonth},
		&cal.Holiday{Name: "Boxing Day", Type: cal.ObservancePublic, Month: time.December, Day: 26, Func: cal.CalcDayOfMonth},
	)

	return c
}

// IsWorkingDay reports whether t falls on a weekday that is not a bank holiday.
func IsWorkingDay(t time.Time) bool {
	return workingCalendar.IsWorkday(t)
}

// NextWorkingDay returns the first working day strictly after t.
func NextWorkingDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for !workingCalendar.IsWorkday(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// WorkingDaysAfter adds n working days to t.
func WorkingDaysAfter(t time.Time, n int) time.Time {
	for i := 0; i < n; i++ {
		t = NextWorkingDay(t)
	}
	return t
}
