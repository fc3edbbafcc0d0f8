package agenda

import (
	"errors"
	"sort"
	"time"
)

type testHeading struct {
	title      string
	deadline   *Span
	timestamps []Span
}

func (h testHeading) Title() string { return h.title }

func (h testHeading) Deadline() (Span, bool) {
	if h.deadline == nil {
		return Span{}, false
	}
	return *h.deadline, true
}

func (h testHeading) Timestamps() []Span { return h.timestamps }

type testOutline []Heading

func (o testOutline) Headings() []Heading { return o }

func loaderFor(outlines map[string]Outline) Loader {
	return func(path string) (Outline, error) {
		o, ok := outlines[path]
		if !ok {
			return nil, errors.New("no such file")
		}
		return o, nil
	}
}

type write struct {
	text string
	pos  Position
}

// memSurface records writes per row; a later write at the same position
// replaces the earlier one.
type memSurface struct {
	cells   map[Position]string
	writes  []write
	clears  int
	flushes int
}

func newMemSurface() *memSurface {
	return &memSurface{cells: make(map[Position]string)}
}

func (s *memSurface) Write(text string, pos Position) {
	s.cells[pos] = text
	s.writes = append(s.writes, write{text: text, pos: pos})
}

func (s *memSurface) Clear() {
	s.clears++
	s.cells = make(map[Position]string)
}

func (s *memSurface) ClearFrom(pos Position) {
	for p := range s.cells {
		if p.Y > pos.Y || (p.Y == pos.Y && p.X >= pos.X) {
			delete(s.cells, p)
		}
	}
}

func (s *memSurface) Flush() error {
	s.flushes++
	return nil
}

// rowsFrom returns the texts written at column x from row y on, in row
// order.
func (s *memSurface) rowsFrom(x, y int) []string {
	var rows []int
	for p := range s.cells {
		if p.X == x && p.Y >= y {
			rows = append(rows, p.Y)
		}
	}
	sort.Ints(rows)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.cells[Position{X: x, Y: r}])
	}
	return out
}

func at(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func point(d Date, hm ...int) Span {
	return Span{Start: moment(d, hm...)}
}

func moment(d Date, hm ...int) Moment {
	m := Moment{Date: d}
	if len(hm) == 2 {
		m.Time = &Clock{Hour: hm[0], Minute: hm[1]}
	}
	return m
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
