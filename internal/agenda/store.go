package agenda

import (
	"regexp"
	"sort"
	"strings"
)

// headingNoise matches the parts of a heading that are not part of its
// description: bracketed cookies and tags, timestamps and TODO keywords.
var headingNoise = regexp.MustCompile(`\[.*\]|<.*>|NEXT|TODO`)

// Store holds the events of every day, each day sorted.
type Store struct {
	days map[Date][]Event
}

// Dated pairs a day with its events.
type Dated struct {
	Date   Date
	Events []Event
}

// Ingest builds a store from the given outlines. It always starts from an
// empty store; ingesting the same outlines twice yields equal stores.
func Ingest(outlines []Outline) *Store {
	s := &Store{days: make(map[Date][]Event)}

	for _, outline := range outlines {
		for _, h := range outline.Headings() {
			desc := Describe(h.Title())

			if dl, ok := h.Deadline(); ok {
				s.add(NewEvent(desc, dl.Start, nil, true))
			}

			for _, span := range h.Timestamps() {
				s.add(NewEvent(desc, span.Start, span.End, false))
			}
		}
	}

	for _, events := range s.days {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Less(events[j])
		})
	}

	return s
}

// Describe strips tags, timestamps and TODO keywords from a heading.
func Describe(title string) string {
	return strings.TrimSpace(headingNoise.ReplaceAllString(title, ""))
}

func (s *Store) add(e Event) {
	s.days[e.StartDate] = append(s.days[e.StartDate], e)
}

// On returns the events starting on d. It never returns nil.
func (s *Store) On(d Date) []Event {
	if events, ok := s.days[d]; ok {
		return events
	}
	return []Event{}
}

// Count returns how many events start on d.
func (s *Store) Count(d Date) int {
	return len(s.days[d])
}

// SpecialCount returns how many deadlines fall on d.
func (s *Store) SpecialCount(d Date) int {
	n := 0
	for _, e := range s.days[d] {
		if e.Special {
			n++
		}
	}
	return n
}

// Dates returns every day holding at least one event, in order.
func (s *Store) Dates() []Date {
	dates := make([]Date, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// Len returns the total number of events.
func (s *Store) Len() int {
	n := 0
	for _, events := range s.days {
		n += len(events)
	}
	return n
}

// Between returns the days in [from, to] that hold events, in order.
func (s *Store) Between(from, to Date) []Dated {
	var out []Dated
	for d := from; !d.After(to); d = d.AddDays(1) {
		if events, ok := s.days[d]; ok {
			out = append(out, Dated{Date: d, Events: events})
		}
	}
	return out
}
