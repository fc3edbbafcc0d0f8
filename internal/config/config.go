package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cwarden/agenda/internal/agenda"
	"github.com/cwarden/agenda/internal/style"
)

// Actions a key can be bound to.
const (
	ActionQuit     = "quit"
	ActionToday    = "today"
	ActionNextYear = "next_year"
	ActionPrevYear = "prev_year"
	ActionReload   = "reload"
	ActionHelp     = "help"
)

var actions = map[string]bool{
	ActionQuit:     true,
	ActionToday:    true,
	ActionNextYear: true,
	ActionPrevYear: true,
	ActionReload:   true,
	ActionHelp:     true,
}

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

type Config struct {
	// File settings
	OrgFiles     []string
	HolidayFiles []string
	HolidayYears int
	WatchFiles   bool
	LogFile      string

	// Display settings
	Palette string
	Origin  agenda.Position

	// Behavior settings
	RedrawSchedule string

	// KeyBindings maps a key, as bubbletea names it, to an action.
	KeyBindings map[string]string
	// Colors maps a style element to a color spec, applied over the
	// palette by Style.
	Colors map[string]string
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		OrgFiles:     []string{filepath.Join(home, "org", "agenda.org")},
		HolidayYears: 5,
		WatchFiles:   true,

		Palette: style.DefaultPalette,
		Origin:  agenda.Position{X: 1, Y: 1},

		RedrawSchedule: "@midnight",

		KeyBindings: map[string]string{
			"q":      ActionQuit,
			"ctrl+c": ActionQuit,
			"t":      ActionToday,
			">":      ActionNextYear,
			"<":      ActionPrevYear,
			"r":      ActionReload,
			"?":      ActionHelp,
		},
		Colors: map[string]string{},
	}
}

// LoadConfig returns the defaults overridden by the first config file
// found.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config file locations
	configPaths := []string{
		os.Getenv("AGENDA_CONFIG"),
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configPaths = append(configPaths, filepath.Join(xdg, "agenda", "agendarc"))
	}
	if home := os.Getenv("HOME"); home != "" {
		configPaths = append(configPaths,
			filepath.Join(home, ".config", "agenda", "agendarc"),
			filepath.Join(home, ".agendarc"),
		)
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.LoadFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

// LoadFile applies the settings of the config file at path.
func (c *Config) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		if err := c.parseLine(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	line = strings.TrimSpace(line)

	// Skip comments and empty lines
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	// Handle set commands: set variable value
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// Handle bind commands: bind key action
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		if !actions[matches[2]] {
			return fmt.Errorf("unknown action: %s", matches[2])
		}
		c.KeyBindings[matches[1]] = matches[2]
		return nil
	}

	// Handle color commands: color element color_spec
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		spec := strings.Trim(strings.TrimSpace(matches[2]), `"'`)
		if err := style.Plain().Override(matches[1], spec); err != nil {
			return err
		}
		c.Colors[matches[1]] = spec
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(strings.TrimSpace(value), `"'`)

	switch name {
	case "org_file", "org_files":
		c.OrgFiles = splitPaths(value)

	case "holidays_file", "holidays_files":
		c.HolidayFiles = splitPaths(value)

	case "holiday_years":
		years, err := strconv.Atoi(value)
		if err != nil || years < 0 {
			return fmt.Errorf("invalid holiday_years: %s", value)
		}
		c.HolidayYears = years

	case "watch_files":
		c.WatchFiles = parseBool(value)

	case "log_file":
		c.LogFile = expandHome(value)

	case "palette":
		if _, err := style.Default(value); err != nil {
			return err
		}
		c.Palette = value

	case "origin":
		xs, ys, ok := strings.Cut(value, ",")
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if !ok || errX != nil || errY != nil || x < 1 || y < 1 {
			return fmt.Errorf("invalid origin: %s", value)
		}
		c.Origin = agenda.Position{X: x, Y: y}

	case "redraw_schedule":
		c.RedrawSchedule = value

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// Style builds the palette style with the configured color overrides.
func (c *Config) Style() (*style.Style, error) {
	st, err := style.Default(c.Palette)
	if err != nil {
		return nil, err
	}
	for element, spec := range c.Colors {
		if err := st.Override(element, spec); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Geometry returns the default calendar layout moved to the configured
// origin.
func (c *Config) Geometry() agenda.Geometry {
	g := agenda.DefaultGeometry()
	g.Origin = c.Origin
	return g
}

// Action returns the action bound to key.
func (c *Config) Action(key string) (string, bool) {
	action, ok := c.KeyBindings[key]
	return action, ok
}

// KeysFor returns the keys bound to action, sorted.
func (c *Config) KeysFor(action string) []string {
	var keys []string
	for key, a := range c.KeyBindings {
		if a == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// splitPaths handles multiple files separated by commas.
func splitPaths(value string) []string {
	var files []string
	for _, file := range strings.Split(value, ",") {
		if file = strings.TrimSpace(file); file != "" {
			files = append(files, expandHome(file))
		}
	}
	return files
}

// expandHome expands ~ to the home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func parseBool(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}
