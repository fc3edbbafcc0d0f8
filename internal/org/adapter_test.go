package org

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwarden/agenda/internal/agenda"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderFeedsStore(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.org", `* TODO [#A] Dentist <2024-03-05 Tue 10:00>
* Taxes
DEADLINE: <2024-03-10 Sun>
* Trip <2024-03-15 Fri>--<2024-03-17 Sun>
`)

	o, err := Loader(path)
	if err != nil {
		t.Fatalf("Loader failed: %v", err)
	}
	if len(o.Headings()) != 3 {
		t.Fatalf("got %d headings, want 3", len(o.Headings()))
	}

	store := agenda.Ingest([]agenda.Outline{o})

	dentist := store.On(agenda.Date{Year: 2024, Month: time.March, Day: 5})
	if len(dentist) != 1 || dentist[0].Description != "Dentist" {
		t.Fatalf("March 5 = %+v", dentist)
	}
	if dentist[0].StartTime == nil || *dentist[0].StartTime != (agenda.Clock{Hour: 10}) {
		t.Errorf("StartTime = %v", dentist[0].StartTime)
	}

	if n := store.SpecialCount(agenda.Date{Year: 2024, Month: time.March, Day: 10}); n != 1 {
		t.Errorf("SpecialCount(March 10) = %d, want 1", n)
	}

	trip := store.On(agenda.Date{Year: 2024, Month: time.March, Day: 15})
	if len(trip) != 1 || trip[0].EndDate == nil || trip[0].EndDate.Day != 17 {
		t.Errorf("March 15 = %+v", trip)
	}
}

func TestLoaderError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.org", "* A <2024-02-30>\n")
	if _, err := Loader(path); err == nil {
		t.Error("expected parse error")
	}
}
