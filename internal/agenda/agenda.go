// Package agenda builds a year calendar with events taken from outline
// files, draws it on a terminal surface and maps terminal cells back to
// calendar days.
package agenda

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwarden/agenda/internal/style"
)

// Options configures a new Agenda. Files, Loader, Style and Surface are
// required.
type Options struct {
	Files    []string
	Loader   Loader
	Holidays Holidays
	Style    *style.Style
	Surface  Surface
	Geometry *Geometry
	Now      func() time.Time
}

// Agenda owns the event store and draws the calendar and the event panel.
// It is not safe for concurrent use; callers serialize every call.
type Agenda struct {
	Year int

	files    []string
	load     Loader
	holidays Holidays
	style    *style.Style
	surface  Surface
	geometry Geometry
	now      func() time.Time

	store *Store
}

func New(opts Options) (*Agenda, error) {
	if opts.Loader == nil {
		return nil, errors.New("agenda: no outline loader")
	}
	if opts.Surface == nil {
		return nil, errors.New("agenda: no surface")
	}

	a := &Agenda{
		files:    opts.Files,
		load:     opts.Loader,
		holidays: opts.Holidays,
		style:    opts.Style,
		surface:  opts.Surface,
		geometry: DefaultGeometry(),
		now:      opts.Now,
	}
	if a.style == nil {
		a.style = style.Plain()
	}
	if a.holidays == nil {
		a.holidays = Holidays{}
	}
	if opts.Geometry != nil {
		a.geometry = *opts.Geometry
	}
	if a.now == nil {
		a.now = time.Now
	}
	a.Year = a.now().Year()

	if err := a.Reload(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload parses every file again and replaces the event store. When a file
// fails to load the previous store is kept.
func (a *Agenda) Reload() error {
	outlines := make([]Outline, 0, len(a.files))
	for _, path := range a.files {
		o, err := a.load(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		outlines = append(outlines, o)
	}
	a.store = Ingest(outlines)
	return nil
}

// Store returns the current event store.
func (a *Agenda) Store() *Store {
	return a.store
}

// Style returns the tokens the agenda draws with.
func (a *Agenda) Style() *style.Style {
	return a.style
}

func (a *Agenda) Geometry() Geometry {
	return a.geometry
}

// Today returns the current day according to the agenda's clock.
func (a *Agenda) Today() Date {
	return DateOf(a.now())
}

// Events returns the events starting on d.
func (a *Agenda) Events(d Date) []Event {
	return a.store.On(d)
}

// Upcoming returns the days holding events among the days following from,
// from included.
func (a *Agenda) Upcoming(from Date, days int) []Dated {
	if days < 1 {
		return nil
	}
	return a.store.Between(from, from.AddDays(days-1))
}

// Holiday returns the label of d when it is a holiday.
func (a *Agenda) Holiday(d Date) (string, bool) {
	label, ok := a.holidays[d]
	return label, ok
}

func (a *Agenda) formatter() *Formatter {
	f := NewFormatter(a.style, a.store, a.holidays, a.Today())
	f.geometry = a.geometry
	return f
}

// DayAt returns the day drawn under p in the displayed year.
func (a *Agenda) DayAt(p Position) (Date, bool) {
	month, day, _, ok := a.geometry.Resolve(a.Year, p)
	if !ok {
		return Date{}, false
	}
	return Date{Year: a.Year, Month: month, Day: day}, true
}

// RenderCalendar draws the twelve months of year, or of the displayed year
// when year is zero.
func (a *Agenda) RenderCalendar(year int) error {
	if year == 0 {
		year = a.Year
	}
	f := a.formatter()

	a.surface.Clear()
	for month := time.January; month <= time.December; month++ {
		origin := a.geometry.MonthOrigin(month)
		for i, line := range f.MonthBlock(year, month) {
			a.surface.Write(line, Position{X: origin.X, Y: origin.Y + i})
		}
	}
	return a.surface.Flush()
}

// HighlightDay redraws the cell of d in the highlight style. Days outside
// the displayed year are ignored.
func (a *Agenda) HighlightDay(d Date) error {
	return a.redrawDay(d, true)
}

// UnhighlightDay redraws the cell of d in its normal style.
func (a *Agenda) UnhighlightDay(d Date) error {
	return a.redrawDay(d, false)
}

func (a *Agenda) redrawDay(d Date, highlight bool) error {
	if d.Year != a.Year {
		return nil
	}
	f := a.formatter()
	text := f.FormatDay(d)
	if highlight {
		text = f.Highlight(d)
	}
	a.surface.Write(text, a.geometry.CellOrigin(d.Year, d.Month, d.Day))
	return a.surface.Flush()
}

// RenderEvents draws the event panel below the calendar. With a nil day it
// lists the current week, otherwise the events of that day.
func (a *Agenda) RenderEvents(day *Date) error {
	st := a.style
	today := a.Today()
	pos := a.geometry.PanelOrigin()

	a.surface.ClearFrom(pos)

	if day == nil {
		start := today.MondayOf()
		end := start.AddDays(6)
		header := start.Format("Monday 02 January 2006") + " - " + end.Format("Monday 02 January 2006")
		a.surface.Write(st.EventHeader+header+st.None, pos)
		pos.Y += 2

		for d := start; !d.After(end); d = d.AddDays(1) {
			events := a.store.On(d)
			if len(events) == 0 {
				continue
			}
			for i, e := range events {
				prefix := fmt.Sprintf("%-12s : ", d.Format("Mon. 02 Jan."))
				if i > 0 {
					prefix = fmt.Sprintf("%15s", "")
				}
				a.surface.Write(e.Render(st, today, true, prefix), pos)
				pos.Y++
			}
			pos.Y++
		}
		return a.surface.Flush()
	}

	header := st.EventHeader + day.Format("Monday 02 January 2006")
	if label, ok := a.holidays[*day]; ok {
		header += st.Vacant + " (" + label + ")"
	}
	a.surface.Write(header+st.None, pos)
	pos.Y += 2

	for _, e := range a.store.On(*day) {
		a.surface.Write(e.Render(st, today, true, ""), pos)
		pos.Y++
	}
	return a.surface.Flush()
}

// SetYear changes the displayed year. It does not redraw.
func (a *Agenda) SetYear(year int) {
	a.Year = year
}
