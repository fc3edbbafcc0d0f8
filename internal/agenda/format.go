package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/cwarden/agenda/internal/style"
)

// DayState is the visual class of a day cell.
type DayState int

const (
	StateDefault DayState = iota
	StateToday
	StateBusy
	StateWeekend
	StateVacant
)

// Markers escalate with the number of deadlines on a day.
var markers = []string{"⠁", "⠃", "⠇"}

var weekdayNames = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Formatter turns days and months into styled text blocks.
type Formatter struct {
	style    *style.Style
	store    *Store
	holidays Holidays
	today    Date
	geometry Geometry
}

func NewFormatter(st *style.Style, store *Store, holidays Holidays, today Date) *Formatter {
	return &Formatter{
		style:    st,
		store:    store,
		holidays: holidays,
		today:    today,
		geometry: DefaultGeometry(),
	}
}

// State classifies d. Today wins over everything, then busy days, weekends
// and holidays. For busy days level is the saturated busy intensity.
func (f *Formatter) State(d Date) (state DayState, level int) {
	busy := f.store.Count(d)
	switch {
	case d == f.today:
		return StateToday, 0
	case busy > 0:
		return StateBusy, min(busy-1, style.Levels-1)
	case d.IsWeekend():
		return StateWeekend, 0
	case f.isVacant(d):
		return StateVacant, 0
	default:
		return StateDefault, 0
	}
}

func (f *Formatter) isVacant(d Date) bool {
	_, ok := f.holidays[d]
	return ok
}

func (f *Formatter) stateToken(d Date) string {
	state, level := f.State(d)
	switch state {
	case StateToday:
		return f.style.Today
	case StateBusy:
		return f.style.Levels[level]
	case StateWeekend:
		return f.style.Weekend
	case StateVacant:
		return f.style.Vacant
	default:
		return f.style.Default
	}
}

// marker returns the deadline marker of d, or a blank.
func (f *Formatter) marker(d Date) string {
	special := f.store.SpecialCount(d)
	if special == 0 {
		return " "
	}
	return markers[min(special, len(markers))-1]
}

// DayGlyph returns the unstyled three column glyph of d: the day number
// right-justified and a deadline marker.
func (f *Formatter) DayGlyph(d Date) string {
	return fmt.Sprintf("%2d", d.Day) + f.marker(d)
}

// FormatDay returns the styled glyph of d.
func (f *Formatter) FormatDay(d Date) string {
	return f.styledGlyph(d, f.stateToken(d))
}

// Highlight returns the glyph of d drawn in the highlight style.
func (f *Formatter) Highlight(d Date) string {
	return f.styledGlyph(d, f.style.Highlight)
}

func (f *Formatter) styledGlyph(d Date, token string) string {
	var b strings.Builder
	b.WriteString(f.style.None)
	b.WriteString(token)
	fmt.Fprintf(&b, "%2d", d.Day)
	if m := f.marker(d); m != " " {
		b.WriteString(f.style.Special)
		b.WriteString(m)
	} else {
		b.WriteString(" ")
	}
	b.WriteString(f.style.None)
	return b.String()
}

// MonthBlock returns the lines of a month: its name, the weekday names and
// six week rows. Every line is MonthCols columns wide.
func (f *Formatter) MonthBlock(year int, month time.Month) []string {
	g := f.geometry
	st := f.style
	cols := g.MonthCols()
	lines := make([]string, g.MonthRows())

	lines[0] = st.None + st.Month + center(month.String(), cols-1) + st.None + " "

	lines[1] = st.WeekdayName + strings.Join(weekdayNames[:5], " ") + " " + st.None +
		st.WeekendName + strings.Join(weekdayNames[5:], " ") + st.None + " "

	first := FirstWeekday(year, month)
	last := DaysIn(year, month)
	blank := strings.Repeat(" ", g.CellWidth)
	for row := 0; row < g.WeekRows; row++ {
		var b strings.Builder
		b.WriteString(st.None)
		for col := 0; col < 7; col++ {
			day := row*7 + col - first + 1
			if day < 1 || day > last {
				b.WriteString(blank)
				continue
			}
			b.WriteString(f.FormatDay(Date{Year: year, Month: month, Day: day}))
		}
		lines[g.HeaderRows+row] = b.String()
	}

	return lines
}

// center pads s with spaces to width, any odd space going to the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
