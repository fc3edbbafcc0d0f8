package agenda

import "time"

// Position is a terminal cell, 1-indexed.
type Position struct {
	X int
	Y int
}

// Geometry describes how the twelve month blocks are laid out.
type Geometry struct {
	Origin       Position
	MonthsPerRow int
	CellWidth    int // columns per day
	HeaderRows   int // month name and weekday names
	WeekRows     int
	Gutter       int // blank cells between month blocks
}

// DefaultGeometry lays out 21x8 months, four per row, one cell apart.
func DefaultGeometry() Geometry {
	return Geometry{
		Origin:       Position{X: 1, Y: 1},
		MonthsPerRow: 4,
		CellWidth:    3,
		HeaderRows:   2,
		WeekRows:     6,
		Gutter:       1,
	}
}

// MonthCols is the width of a month block.
func (g Geometry) MonthCols() int {
	return 7 * g.CellWidth
}

// MonthRows is the height of a month block.
func (g Geometry) MonthRows() int {
	return g.HeaderRows + g.WeekRows
}

// Rows is the number of month rows needed for a year.
func (g Geometry) Rows() int {
	return (12 + g.MonthsPerRow - 1) / g.MonthsPerRow
}

// MonthOrigin returns the top-left cell of a month block.
func (g Geometry) MonthOrigin(month time.Month) Position {
	i := int(month) - 1
	return Position{
		X: g.Origin.X + (i%g.MonthsPerRow)*(g.MonthCols()+g.Gutter),
		Y: g.Origin.Y + (i/g.MonthsPerRow)*(g.MonthRows()+g.Gutter),
	}
}

// PanelOrigin returns the first cell below the month grid.
func (g Geometry) PanelOrigin() Position {
	return Position{
		X: g.Origin.X,
		Y: g.Origin.Y + g.Rows()*(g.MonthRows()+g.Gutter),
	}
}

// CellOrigin returns the top-left cell of the glyph drawn for a day.
func (g Geometry) CellOrigin(year int, month time.Month, day int) Position {
	mo := g.MonthOrigin(month)
	index := day - 1 + FirstWeekday(year, month)
	return Position{
		X: mo.X + (index%7)*g.CellWidth,
		Y: mo.Y + g.HeaderRows + index/7,
	}
}

// Resolve finds the day drawn under p. It returns ok == false when p lies
// outside every month, in a gutter, on the header rows or on a blank cell.
// The returned cell is the origin of the day's glyph.
func (g Geometry) Resolve(year int, p Position) (month time.Month, day int, cell Position, ok bool) {
	x := p.X - g.Origin.X
	y := p.Y - g.Origin.Y
	if x < 0 || y < 0 {
		return 0, 0, Position{}, false
	}

	col := x / (g.MonthCols() + g.Gutter)
	row := y / (g.MonthRows() + g.Gutter)
	if col >= g.MonthsPerRow {
		return 0, 0, Position{}, false
	}
	m := 1 + col + g.MonthsPerRow*row
	if m < 1 || m > 12 {
		return 0, 0, Position{}, false
	}

	x -= col * (g.MonthCols() + g.Gutter)
	y -= row * (g.MonthRows() + g.Gutter)
	if x >= g.MonthCols() || y < g.HeaderRows || y >= g.MonthRows() {
		return 0, 0, Position{}, false
	}

	month = time.Month(m)
	day = (y-g.HeaderRows)*7 + x/g.CellWidth - FirstWeekday(year, month) + 1
	if day < 1 || day > DaysIn(year, month) {
		return 0, 0, Position{}, false
	}

	return month, day, g.CellOrigin(year, month, day), true
}
