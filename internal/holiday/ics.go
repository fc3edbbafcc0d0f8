package holiday

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/cwarden/agenda/internal/agenda"
)

// maxOccurrences caps the expansion of a single recurring entry.
const maxOccurrences = 5000

type icsEntry struct {
	summary string
	start   time.Time
	days    int // number of days covered, at least 1
	rrule   string
	exdates []time.Time
}

// parseICS reads the VEVENTs of an iCalendar file. Each event marks the
// days it covers; RRULEs are expanded within [from, to]. Entries that
// cannot be read are logged and skipped.
func parseICS(data []byte, from, to agenda.Date) (agenda.Holidays, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	days := agenda.Holidays{}
	for _, ve := range cal.Events() {
		entry, err := readEntry(ve)
		if err != nil {
			log.Printf("holiday: skipping event: %v", err)
			continue
		}

		starts, err := entry.occurrences(from, to)
		if err != nil {
			log.Printf("holiday: skipping %q: %v", entry.summary, err)
			continue
		}

		for _, start := range starts {
			d := agenda.DateOf(start)
			for i := 0; i < entry.days; i++ {
				if day := d.AddDays(i); inRange(day, from, to) {
					add(days, day, entry.summary)
				}
			}
		}
	}
	return days, nil
}

func readEntry(ve *ical.VEvent) (icsEntry, error) {
	var entry icsEntry

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		entry.summary = strings.TrimSpace(p.Value)
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return entry, errors.New("missing DTSTART")
	}
	start, err := parseICSTime(dtStart.Value)
	if err != nil {
		return entry, fmt.Errorf("DTSTART: %w", err)
	}
	entry.start = start
	entry.days = 1

	// DTEND of an all-day event is exclusive.
	if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
		if end, err := parseICSTime(dtEnd.Value); err == nil {
			startDay, endDay := agenda.DateOf(start), agenda.DateOf(end)
			n := 0
			for d := startDay; d.Before(endDay); d = d.AddDays(1) {
				n++
			}
			if strings.Contains(dtEnd.Value, "T") && !end.Equal(endDay.Time()) {
				n++
			}
			entry.days = max(n, 1)
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		entry.rrule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				entry.exdates = append(entry.exdates, t)
			}
		}
	}

	return entry, nil
}

// occurrences returns the start of every occurrence of the entry from
// the first day to the last day of the range.
func (e icsEntry) occurrences(from, to agenda.Date) ([]time.Time, error) {
	// Occurrences starting a little before the range may still cover it.
	rangeStart := from.AddDays(-(e.days - 1)).Time()
	rangeEnd := to.AddDays(1).Time()

	if e.rrule == "" {
		if e.start.Before(rangeStart) || !e.start.Before(rangeEnd) {
			return nil, nil
		}
		return []time.Time{e.start}, nil
	}

	r, err := rrule.StrToRRule(e.rrule)
	if err != nil {
		return nil, err
	}
	r.DTStart(e.start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range e.exdates {
		set.ExDate(ex.In(e.start.Location()))
	}

	times := set.Between(rangeStart.In(e.start.Location()), rangeEnd.In(e.start.Location()), true)
	if len(times) > maxOccurrences {
		times = times[:maxOccurrences]
	}
	return times, nil
}

// parseICSTime parses DATE and DATE-TIME values, UTC or floating.
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		t, err := time.Parse("20060102T150405Z", v)
		return t.In(time.Local), err
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.Local)
	default:
		return time.ParseInLocation("20060102", v, time.Local)
	}
}
