package holiday

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwarden/agenda/internal/agenda"
)

func day(y int, m time.Month, d int) agenda.Date {
	return agenda.Date{Year: y, Month: m, Day: d}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "days.yaml", `2024-05-08: Victory day
"2030-01-01": Out of range
12-25: Christmas
02-29: Leap day
`)

	days, err := Load(path, day(2023, time.January, 1), day(2024, time.December, 31))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := agenda.Holidays{
		day(2024, time.May, 8):       "Victory day",
		day(2023, time.December, 25): "Christmas",
		day(2024, time.December, 25): "Christmas",
		day(2024, time.February, 29): "Leap day",
	}
	if len(days) != len(want) {
		t.Errorf("got %d days, want %d: %v", len(days), len(want), days)
	}
	for d, label := range want {
		if days[d] != label {
			t.Errorf("%s = %q, want %q", d, days[d], label)
		}
	}
}

func TestLoadYAMLInvalidKey(t *testing.T) {
	path := writeFile(t, "days.yml", "next friday: Party\n")
	_, err := Load(path, day(2024, time.January, 1), day(2024, time.December, 31))
	if err == nil || !strings.Contains(err.Error(), "next friday") {
		t.Errorf("expected invalid date error, got %v", err)
	}
}

const calendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//agenda//holidays//EN
BEGIN:VEVENT
UID:labour@agenda
DTSTART;VALUE=DATE:20200501
DTEND;VALUE=DATE:20200502
RRULE:FREQ=YEARLY
EXDATE;VALUE=DATE:20230501
SUMMARY:Labour day
END:VEVENT
BEGIN:VEVENT
UID:summer@agenda
DTSTART;VALUE=DATE:20240812
DTEND;VALUE=DATE:20240815
SUMMARY:Summer break
END:VEVENT
BEGIN:VEVENT
UID:broken@agenda
SUMMARY:No start
END:VEVENT
END:VCALENDAR
`

func TestLoadICS(t *testing.T) {
	path := writeFile(t, "days.ics", strings.ReplaceAll(calendar, "\n", "\r\n"))

	days, err := Load(path, day(2022, time.January, 1), day(2024, time.December, 31))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := agenda.Holidays{
		day(2022, time.May, 1):     "Labour day",
		day(2024, time.May, 1):     "Labour day",
		day(2024, time.August, 12): "Summer break",
		day(2024, time.August, 13): "Summer break",
		day(2024, time.August, 14): "Summer break",
	}
	if len(days) != len(want) {
		t.Errorf("got %d days, want %d: %v", len(days), len(want), days)
	}
	for d, label := range want {
		if days[d] != label {
			t.Errorf("%s = %q, want %q", d, days[d], label)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	from, to := day(2024, time.January, 1), day(2024, time.December, 31)

	if _, err := Load(writeFile(t, "days.txt", ""), from, to); err == nil {
		t.Error("expected error for unknown extension")
	}
	if _, err := Load("/nonexistent/days.yaml", from, to); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "days.yaml", ""), to, from); err == nil {
		t.Error("expected error for an empty range")
	}
}

func TestMerge(t *testing.T) {
	a := agenda.Holidays{day(2024, time.May, 1): "Labour day", day(2024, time.May, 8): "Victory day"}
	b := agenda.Holidays{day(2024, time.May, 1): "Lily of the valley", day(2024, time.May, 9): ""}
	c := agenda.Holidays{day(2024, time.May, 8): "Victory day"}

	got := Merge(a, b, c)

	tests := []struct {
		day  agenda.Date
		want string
	}{
		{day(2024, time.May, 1), "Labour day, Lily of the valley"},
		{day(2024, time.May, 8), "Victory day"},
		{day(2024, time.May, 9), ""},
	}
	for _, tt := range tests {
		label, ok := got[tt.day]
		if !ok || label != tt.want {
			t.Errorf("%s = %q %v, want %q", tt.day, label, ok, tt.want)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d days, want 3", len(got))
	}
}

func TestWindow(t *testing.T) {
	from, to := Window(day(2024, time.June, 15), 5)
	if from != day(2019, time.January, 1) || to != day(2029, time.December, 31) {
		t.Errorf("Window = %s..%s", from, to)
	}
}
