package agenda

import (
	"strings"

	"github.com/cwarden/agenda/internal/style"
)

// Event is one occurrence taken from an outline heading. It is not
// modified after construction.
type Event struct {
	Description string
	StartDate   Date
	StartTime   *Clock // nil for untimed events
	EndDate     *Date
	EndTime     *Clock // only set together with EndDate
	Special     bool   // deadline
}

// NewEvent builds an event starting at start and, when end is given,
// ending at end.
func NewEvent(description string, start Moment, end *Moment, special bool) Event {
	e := Event{
		Description: description,
		StartDate:   start.Date,
		StartTime:   copyClock(start.Time),
		Special:     special,
	}
	if end != nil {
		d := end.Date
		e.EndDate = &d
		e.EndTime = copyClock(end.Time)
	}
	return e
}

func copyClock(c *Clock) *Clock {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// Equal reports whether both events start at the same date and time. End
// fields are ignored.
func (e Event) Equal(o Event) bool {
	if e.StartDate != o.StartDate {
		return false
	}
	if e.StartTime == nil || o.StartTime == nil {
		return e.StartTime == nil && o.StartTime == nil
	}
	return *e.StartTime == *o.StartTime
}

// Less orders events by start date, then puts timed events before untimed
// ones and timed events by start time. Two untimed events on the same day
// are unordered, so a stable sort keeps them in insertion order.
func (e Event) Less(o Event) bool {
	if e.StartDate != o.StartDate {
		return e.StartDate.Before(o.StartDate)
	}
	switch {
	case e.StartTime != nil && o.StartTime != nil:
		return e.StartTime.Before(*o.StartTime)
	case e.StartTime != nil:
		return true
	default:
		return false
	}
}

// SingleDay reports whether the event starts and ends on the same day.
func (e Event) SingleDay() bool {
	return e.EndDate == nil || *e.EndDate == e.StartDate
}

// Render formats the event on one line. The leading style depends on
// whether the event is past, today or upcoming relative to today. In
// detailed mode single-day events show their hours; otherwise they show
// their date.
func (e Event) Render(st *style.Style, today Date, detailed bool, prefix string) string {
	var b strings.Builder

	b.WriteString(st.None)
	switch {
	case e.StartDate.Before(today):
		b.WriteString(st.EventPast)
	case e.StartDate.After(today):
		b.WriteString(st.EventFuture)
	default:
		b.WriteString(st.EventToday)
	}
	b.WriteString(prefix)

	if e.Special {
		b.WriteString(st.EventSpecial + "!! ")
	}

	switch {
	case !e.SingleDay():
		b.WriteString(e.StartDate.Format("02/01") + " - " + e.EndDate.Format("02/01") + " ")

	case !detailed:
		if e.StartDate == today {
			b.WriteString(st.EventToday)
			if e.StartTime != nil {
				b.WriteString("Today at " + e.StartTime.String() + " ")
			} else {
				b.WriteString("Today ")
			}
			b.WriteString(st.None)
		} else {
			b.WriteString(e.StartDate.Format("02 Jan 2006") + " ")
		}

	case e.StartTime != nil:
		b.WriteString(e.StartTime.String() + " ")
		if e.EndTime != nil {
			b.WriteString("- " + e.EndTime.String() + " ")
		} else {
			b.WriteString("....... ")
		}
	}

	b.WriteString(e.Description)
	b.WriteString(st.None)
	return b.String()
}
