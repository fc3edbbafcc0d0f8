package holiday

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwarden/agenda/internal/agenda"
)

// parseYAML reads a map of days to labels. Keys are either full dates
// ("2024-05-08") or month and day ("12-25"), the latter repeating every
// year.
func parseYAML(data []byte, from, to agenda.Date) (agenda.Holidays, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	days := agenda.Holidays{}
	for key, label := range entries {
		if t, err := time.Parse("2006-01-02", key); err == nil {
			if d := agenda.DateOf(t); inRange(d, from, to) {
				add(days, d, label)
			}
			continue
		}

		t, err := time.Parse("01-02", key)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q", key)
		}
		for year := from.Year; year <= to.Year; year++ {
			d := agenda.Date{Year: year, Month: t.Month(), Day: t.Day()}
			// February 29th only exists in leap years.
			if d.Day > agenda.DaysIn(year, d.Month) {
				continue
			}
			if inRange(d, from, to) {
				add(days, d, label)
			}
		}
	}
	return days, nil
}
