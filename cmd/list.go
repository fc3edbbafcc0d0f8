package cmd

import (
	"fmt"

	"github.com/cwarden/agenda/internal/parser"
	"github.com/cwarden/agenda/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	listDays int
	listFrom string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events and exit",
	Long: `List the events of the coming days, one per line, and exit. The list
starts today unless --from names another day.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listDays, "days", "d", 7, "Number of days to list, today included")
	listCmd.Flags().StringVar(&listFrom, "from", "", "First day to list (2024-03-15, tomorrow, \"in 2 weeks\", ...)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listDays < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", listDays)
	}

	out := cmd.OutOrStdout()
	a, err := newAgenda(terminal.NewScreen(0, 0), plain || colorless(out))
	if err != nil {
		return err
	}

	st := a.Style()
	today := a.Today()
	start := today
	if listFrom != "" {
		if start, err = parser.ParseDay(listFrom, today); err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
	}
	upcoming := a.Upcoming(start, listDays)

	if len(upcoming) == 0 {
		if listFrom != "" {
			fmt.Fprintf(out, "No events in the %d days from %s.\n", listDays, start.Format("02 Jan 2006"))
		} else {
			fmt.Fprintf(out, "No events in the next %d days.\n", listDays)
		}
		return nil
	}

	for _, day := range upcoming {
		for _, e := range day.Events {
			fmt.Fprintln(out, e.Render(st, today, false, ""))
		}
	}

	return nil
}
