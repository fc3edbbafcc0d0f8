package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/cwarden/agenda/internal/agenda"
	"github.com/cwarden/agenda/internal/holiday"
	"github.com/cwarden/agenda/internal/org"
	"github.com/cwarden/agenda/internal/style"
)

// now is the clock of every command.
var now = time.Now

// newAgenda loads the configured files and returns an agenda drawing on
// surface.
func newAgenda(surface agenda.Surface, plainStyle bool) (*agenda.Agenda, error) {
	st := style.Plain()
	if !plainStyle {
		var err error
		if st, err = cfg.Style(); err != nil {
			return nil, err
		}
	}

	today := agenda.DateOf(now())
	from, to := holiday.Window(today, cfg.HolidayYears)
	if year != 0 {
		// Cover the requested year too.
		if start := (agenda.Date{Year: year, Month: 1, Day: 1}); start.Before(from) {
			from = start
		}
		if end := (agenda.Date{Year: year, Month: 12, Day: 31}); end.After(to) {
			to = end
		}
	}
	holidays, err := holiday.LoadAll(cfg.HolidayFiles, from, to)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}

	geometry := cfg.Geometry()
	a, err := agenda.New(agenda.Options{
		Files:    cfg.OrgFiles,
		Loader:   org.Loader,
		Holidays: holidays,
		Style:    st,
		Surface:  surface,
		Geometry: &geometry,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}

	if year != 0 {
		a.SetYear(year)
	}
	return a, nil
}

// colorless reports whether w should get plain output: it is not a
// terminal or the environment disables colors.
func colorless(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii
}
