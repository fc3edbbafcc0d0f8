package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/cwarden/agenda/internal/config"
	"github.com/cwarden/agenda/internal/org"
	"github.com/cwarden/agenda/internal/terminal"
	"github.com/cwarden/agenda/internal/ui"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	cfgFile      string
	orgFiles     []string
	holidayFiles []string
	year         int
	plain        bool
	cfg          *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "A terminal year calendar for org-mode agendas",
	Long: `Agenda draws a twelve month calendar in the terminal, shaded by how
busy each day is in your org-mode files. Hover a day with the mouse to list
its events; away from the grid the current week is listed.`,
	PersistentPreRunE: initConfig,
	RunE:              runTUI,
	SilenceUsage:      true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: search $AGENDA_CONFIG, $XDG_CONFIG_HOME/agenda/agendarc, ~/.agendarc)")
	rootCmd.PersistentFlags().StringSliceVarP(&orgFiles, "file", "f", []string{}, "Org file(s) to use (can be specified multiple times)")
	rootCmd.PersistentFlags().StringSliceVar(&holidayFiles, "holidays", []string{}, "Holiday file(s), .yaml or .ics")
	rootCmd.PersistentFlags().IntVar(&year, "year", 0, "Year to display (default: current year)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Draw without colors")
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg = config.DefaultConfig()
		err = cfg.LoadFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command-line files replace the configured ones.
	if len(orgFiles) > 0 {
		cfg.OrgFiles = orgFiles
	}
	if len(holidayFiles) > 0 {
		cfg.HolidayFiles = holidayFiles
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the program; log to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "agenda")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	screen := terminal.NewScreen(0, 0)
	a, err := newAgenda(screen, plain)
	if err != nil {
		return err
	}

	opts := ui.Options{Config: cfg, Agenda: a, Screen: screen}

	if cfg.WatchFiles {
		watcher, err := org.NewWatcher(org.DefaultDebounce)
		if err != nil {
			return fmt.Errorf("watch files: %w", err)
		}
		defer watcher.Close()

		for _, path := range cfg.OrgFiles {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		opts.Changes = watcher.Changes()
	}

	if cfg.RedrawSchedule != "" {
		scheduler, err := ui.NewScheduler(cfg.RedrawSchedule)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
		opts.Ticks = scheduler.Ticks()
	}

	model := ui.NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
