// Package terminal provides the text surface the agenda draws on.
package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/cwarden/agenda/internal/agenda"
)

// Screen is an in-memory text frame addressed by 1-indexed cells. Writes
// are spliced into the working lines; Flush publishes them as the frame
// returned by Frame. Text may carry escape sequences, they take no cells.
//
// A zero width or height does not clip.
type Screen struct {
	width  int
	height int

	lines []string
	frame []string

	// OnFlush, when set, is called with every published frame.
	OnFlush func(frame string)
}

var _ agenda.Surface = (*Screen)(nil)

func NewScreen(width, height int) *Screen {
	return &Screen{width: width, height: height}
}

// Resize changes the clipping size. The working lines are kept.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

func (s *Screen) Write(text string, pos agenda.Position) {
	x, y := pos.X-1, pos.Y-1
	if x < 0 || y < 0 {
		return
	}
	for len(s.lines) <= y {
		s.lines = append(s.lines, "")
	}

	line := s.lines[y]
	lineWidth := ansi.StringWidth(line)
	if lineWidth < x {
		line += strings.Repeat(" ", x-lineWidth)
		lineWidth = x
	}

	textWidth := ansi.StringWidth(text)
	left := ansi.Cut(line, 0, x)
	right := ""
	if x+textWidth < lineWidth {
		right = ansi.Cut(line, x+textWidth, lineWidth)
	}
	s.lines[y] = left + text + right
}

func (s *Screen) Clear() {
	s.lines = nil
}

func (s *Screen) ClearFrom(pos agenda.Position) {
	x, y := max(pos.X-1, 0), max(pos.Y-1, 0)
	if y >= len(s.lines) {
		return
	}
	s.lines[y] = ansi.Cut(s.lines[y], 0, x)
	s.lines = s.lines[:y+1]
}

// Flush publishes the working lines, clipped to the screen size.
func (s *Screen) Flush() error {
	n := len(s.lines)
	if s.height > 0 {
		n = min(n, s.height)
	}

	frame := make([]string, n)
	for i, line := range s.lines[:n] {
		if s.width > 0 {
			line = truncate.String(line, uint(s.width))
		}
		frame[i] = line
	}
	s.frame = frame

	if s.OnFlush != nil {
		s.OnFlush(s.Frame())
	}
	return nil
}

// Frame returns the last flushed frame, one line per row.
func (s *Screen) Frame() string {
	return strings.Join(s.frame, "\n")
}

// Lines returns the rows of the last flushed frame.
func (s *Screen) Lines() []string {
	out := make([]string, len(s.frame))
	copy(out, s.frame)
	return out
}
