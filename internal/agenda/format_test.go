package agenda

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/cwarden/agenda/internal/style"
)

func storeWith(day Date, events, specials int) *Store {
	var headings testOutline
	for i := 0; i < events; i++ {
		headings = append(headings, testHeading{title: "event", timestamps: []Span{point(day)}})
	}
	for i := 0; i < specials; i++ {
		dl := point(day)
		headings = append(headings, testHeading{title: "deadline", deadline: &dl})
	}
	return Ingest([]Outline{headings})
}

func TestDayGlyph(t *testing.T) {
	day := at(2024, time.March, 7)
	today := at(2024, time.January, 1)

	tests := []struct {
		name     string
		specials int
		want     string
	}{
		{"no events", 0, " 7 "},
		{"one deadline", 1, " 7⠁"},
		{"two deadlines", 2, " 7⠃"},
		{"three deadlines", 3, " 7⠇"},
		{"five deadlines saturate", 5, " 7⠇"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(style.Plain(), storeWith(day, 0, tt.specials), nil, today)
			if got := f.DayGlyph(day); got != tt.want {
				t.Errorf("DayGlyph = %q, want %q", got, tt.want)
			}
		})
	}

	f := NewFormatter(style.Plain(), storeWith(day, 0, 0), nil, today)
	if got := f.DayGlyph(at(2024, time.March, 17)); got != "17 " {
		t.Errorf("two digit DayGlyph = %q, want %q", got, "17 ")
	}
}

func TestDayState(t *testing.T) {
	// Wednesday, Saturday, Monday and Tuesday.
	today := at(2024, time.March, 6)
	saturday := at(2024, time.March, 9)
	holiday := at(2024, time.March, 11)
	plain := at(2024, time.March, 12)

	holidays := Holidays{holiday: "Founders day", saturday: "Weekend holiday"}

	tests := []struct {
		name      string
		day       Date
		events    int
		wantState DayState
		wantLevel int
	}{
		{"today with events", today, 4, StateToday, 0},
		{"busy weekend", saturday, 1, StateBusy, 0},
		{"busy holiday", holiday, 3, StateBusy, 2},
		{"weekend holiday", saturday, 0, StateWeekend, 0},
		{"holiday", holiday, 0, StateVacant, 0},
		{"plain", plain, 0, StateDefault, 0},
		{"ten events", plain, 10, StateBusy, 9},
		{"fifteen events saturate", plain, 15, StateBusy, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(style.Plain(), storeWith(tt.day, tt.events, 0), holidays, today)
			state, level := f.State(tt.day)
			if state != tt.wantState || level != tt.wantLevel {
				t.Errorf("State = %v/%d, want %v/%d", state, level, tt.wantState, tt.wantLevel)
			}
		})
	}
}

func TestFormatDayTokens(t *testing.T) {
	st := &style.Style{
		None:    "<0>",
		Today:   "<today>",
		Weekend: "<weekend>",
		Vacant:  "<vacant>",
		Default: "<default>",
		Special: "<special>",
	}
	for i := range st.Levels {
		st.Levels[i] = "<L" + string(rune('0'+i)) + ">"
	}
	day := at(2024, time.March, 12)

	f := NewFormatter(st, storeWith(day, 15, 2), nil, at(2024, time.March, 1))
	if got, want := f.FormatDay(day), "<0><L9>12<special>⠃<0>"; got != want {
		t.Errorf("FormatDay = %q, want %q", got, want)
	}

	f = NewFormatter(st, storeWith(day, 0, 0), nil, day)
	if got, want := f.FormatDay(day), "<0><today>12 <0>"; got != want {
		t.Errorf("FormatDay today = %q, want %q", got, want)
	}

	st.Highlight = "<hl>"
	if got, want := f.Highlight(day), "<0><hl>12 <0>"; got != want {
		t.Errorf("Highlight = %q, want %q", got, want)
	}
}

func TestMonthBlock(t *testing.T) {
	f := NewFormatter(style.Plain(), storeWith(at(2024, time.March, 15), 0, 2), nil, at(2024, time.January, 1))

	lines := f.MonthBlock(2024, time.March)
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != 21 {
			t.Errorf("line %d is %d wide: %q", i, n, line)
		}
	}

	if lines[0] != "       March         " {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su " {
		t.Errorf("weekday names = %q", lines[1])
	}
	// March 2024 starts on a Friday.
	if lines[2] != strings.Repeat(" ", 12)+" 1  2  3 " {
		t.Errorf("first week = %q", lines[2])
	}
	if lines[4] != "11 12 13 14 15⠃16 17 " {
		t.Errorf("third week = %q", lines[4])
	}
	if lines[7] != strings.Repeat(" ", 21) {
		t.Errorf("last row should be blank, got %q", lines[7])
	}
}

func TestMonthBlockSixWeeks(t *testing.T) {
	f := NewFormatter(style.Plain(), Ingest(nil), nil, at(2024, time.January, 1))

	// September 2024 starts on a Sunday and spans six week rows.
	lines := f.MonthBlock(2024, time.September)
	if lines[2] != strings.Repeat(" ", 18)+" 1 " {
		t.Errorf("first week = %q", lines[2])
	}
	if lines[7] != "30 "+strings.Repeat(" ", 18) {
		t.Errorf("sixth week = %q", lines[7])
	}
}
