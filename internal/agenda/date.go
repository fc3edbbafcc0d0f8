package agenda

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time zone attached. It is comparable and
// used as the key of the event store and of holiday sets.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of d in the local time zone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// AddDays normalizes overflowing days into following months and years.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsWeekend reports whether d falls on a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MondayOf returns the Monday starting the week that contains d.
func (d Date) MondayOf() Date {
	return d.AddDays(-mondayIndex(d.Weekday()))
}

func (d Date) Format(layout string) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the column of the first day of month, Monday = 0.
func FirstWeekday(year int, month time.Month) int {
	return mondayIndex(Date{Year: year, Month: month, Day: 1}.Weekday())
}

func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (c Clock) Before(o Clock) bool {
	if c.Hour != o.Hour {
		return c.Hour < o.Hour
	}
	return c.Minute < o.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Moment is a date with an optional time of day.
type Moment struct {
	Date Date
	Time *Clock // nil for untimed moments
}

// MomentOf converts t to a Moment, keeping the time of day only when
// hasTime is set.
func MomentOf(t time.Time, hasTime bool) Moment {
	m := Moment{Date: DateOf(t)}
	if hasTime {
		c := ClockOf(t)
		m.Time = &c
	}
	return m
}

// Span is one timestamp of an outline heading: a point when End is nil,
// otherwise a range.
type Span struct {
	Start Moment
	End   *Moment
}
