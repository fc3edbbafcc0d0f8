package cmd

import (
	"fmt"

	"github.com/cwarden/agenda/internal/agenda"
	"github.com/cwarden/agenda/internal/parser"
	"github.com/cwarden/agenda/internal/terminal"
	"github.com/spf13/cobra"
)

var calendarDay string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the year calendar and exit",
	Long: `Print the twelve month calendar followed by the events of the current
week, or of the day given with --day, and exit.`,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarDay, "day", "", "List the events of this day (2024-03-15, 3/15, \"next fri\", ...) instead of the week")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	var day *agenda.Date
	if calendarDay != "" {
		d, err := parser.ParseDay(calendarDay, agenda.DateOf(now()))
		if err != nil {
			return fmt.Errorf("invalid --day: %w", err)
		}
		day = &d
	}

	out := cmd.OutOrStdout()
	screen := terminal.NewScreen(0, 0)
	a, err := newAgenda(screen, plain || colorless(out))
	if err != nil {
		return err
	}

	if err := a.RenderCalendar(0); err != nil {
		return err
	}
	if day != nil && day.Year == a.Year {
		if err := a.HighlightDay(*day); err != nil {
			return err
		}
	}
	if err := a.RenderEvents(day); err != nil {
		return err
	}

	fmt.Fprintln(out, screen.Frame())
	return nil
}
