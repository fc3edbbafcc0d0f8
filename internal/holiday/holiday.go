// Package holiday loads days off from YAML or iCalendar files.
package holiday

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwarden/agenda/internal/agenda"
)

// Load reads the holiday file at path. Recurring entries are expanded to
// the days between from and to, both included. The format is chosen by
// extension: .yaml or .yml for a YAML map, .ics for an iCalendar file.
func Load(path string, from, to agenda.Date) (agenda.Holidays, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("holiday range %s..%s is empty", from, to)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var days agenda.Holidays
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		days, err = parseYAML(data, from, to)
	case ".ics":
		days, err = parseICS(data, from, to)
	default:
		return nil, fmt.Errorf("%s: unsupported holiday format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return days, nil
}

// LoadAll loads every file and merges the results.
func LoadAll(paths []string, from, to agenda.Date) (agenda.Holidays, error) {
	sets := make([]agenda.Holidays, 0, len(paths))
	for _, path := range paths {
		days, err := Load(path, from, to)
		if err != nil {
			return nil, err
		}
		sets = append(sets, days)
	}
	return Merge(sets...), nil
}

// Merge combines holiday sets. Labels of a day listed more than once are
// joined in argument order.
func Merge(sets ...agenda.Holidays) agenda.Holidays {
	out := agenda.Holidays{}
	for _, set := range sets {
		for day, label := range set {
			add(out, day, label)
		}
	}
	return out
}

// Window returns the range covering years before and after the year of
// today.
func Window(today agenda.Date, years int) (from, to agenda.Date) {
	from = agenda.Date{Year: today.Year - years, Month: 1, Day: 1}
	to = agenda.Date{Year: today.Year + years, Month: 12, Day: 31}
	return from, to
}

func add(days agenda.Holidays, day agenda.Date, label string) {
	existing, ok := days[day]
	switch {
	case !ok || existing == "":
		days[day] = label
	case label == "" || existing == label:
	default:
		days[day] = existing + ", " + label
	}
}

func inRange(d, from, to agenda.Date) bool {
	return !d.Before(from) && !d.After(to)
}
