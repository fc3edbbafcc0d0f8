package terminal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/cwarden/agenda/internal/agenda"
)

func pos(x, y int) agenda.Position {
	return agenda.Position{X: x, Y: y}
}

func TestScreenWrite(t *testing.T) {
	tests := []struct {
		name   string
		writes []agenda.Position
		texts  []string
		want   []string
	}{
		{
			name:   "single write",
			writes: []agenda.Position{pos(1, 1)},
			texts:  []string{"hello"},
			want:   []string{"hello"},
		},
		{
			name:   "overwrite in the middle",
			writes: []agenda.Position{pos(1, 1), pos(2, 1)},
			texts:  []string{"hello", "XY"},
			want:   []string{"hXYlo"},
		},
		{
			name:   "past the end of the line",
			writes: []agenda.Position{pos(1, 1), pos(6, 1)},
			texts:  []string{"ab", "cd"},
			want:   []string{"ab   cd"},
		},
		{
			name:   "below the last line",
			writes: []agenda.Position{pos(3, 3)},
			texts:  []string{"x"},
			want:   []string{"", "", "  x"},
		},
		{
			name:   "multibyte runes",
			writes: []agenda.Position{pos(1, 1), pos(3, 1)},
			texts:  []string{"1 ⠁ 2", "*"},
			want:   []string{"1 * 2"},
		},
		{
			name:   "out of bounds is ignored",
			writes: []agenda.Position{pos(0, 1), pos(1, 0)},
			texts:  []string{"a", "b"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(0, 0)
			for i, p := range tt.writes {
				s.Write(tt.texts[i], p)
			}
			if err := s.Flush(); err != nil {
				t.Fatal(err)
			}
			if got := s.Lines(); strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenStyledText(t *testing.T) {
	s := NewScreen(0, 0)
	s.Write("\x1b[1mab\x1b[0m", pos(1, 1))
	s.Write("Z", pos(4, 1))
	s.Flush()

	if got := ansi.Strip(s.Frame()); got != "ab Z" {
		t.Errorf("frame = %q, want %q", got, "ab Z")
	}
	if !strings.Contains(s.Frame(), "\x1b[1m") {
		t.Error("escape sequences should be kept")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(0, 0)
	s.Write("first", pos(1, 1))
	s.Write("second", pos(1, 2))
	s.Write("third", pos(1, 3))

	s.ClearFrom(pos(3, 2))
	s.Flush()
	if got := s.Frame(); got != "first\nse" {
		t.Errorf("after ClearFrom: %q", got)
	}

	s.Clear()
	s.Flush()
	if got := s.Frame(); got != "" {
		t.Errorf("after Clear: %q", got)
	}
}

func TestScreenFlushClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.Write("hello", pos(1, 1))
	s.Write("world", pos(1, 2))
	s.Write("again", pos(1, 3))

	var published []string
	s.OnFlush = func(frame string) { published = append(published, frame) }

	// Nothing is visible before the first flush.
	if s.Frame() != "" {
		t.Error("frame should be empty before Flush")
	}

	s.Flush()
	if got := s.Frame(); got != "hell\nworl" {
		t.Errorf("frame = %q", got)
	}
	if len(published) != 1 || published[0] != s.Frame() {
		t.Errorf("OnFlush got %q", published)
	}

	// Growing the screen shows the kept working lines.
	s.Resize(10, 3)
	s.Flush()
	if got := s.Frame(); got != "hello\nworld\nagain" {
		t.Errorf("frame after resize = %q", got)
	}
	if w, h := s.Size(); w != 10 || h != 3 {
		t.Errorf("Size = %d %d", w, h)
	}
}
