package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/cwarden/agenda/internal/agenda"
	"github.com/cwarden/agenda/internal/config"
	"github.com/cwarden/agenda/internal/terminal"
)

type ViewMode int

const (
	ViewCalendar ViewMode = iota
	ViewHelp
)

// messageDuration is how long a status message stays visible.
const messageDuration = 3 * time.Second

// Options holds the collaborators of a Model. Changes and Ticks are
// optional.
type Options struct {
	Config *config.Config
	Agenda *agenda.Agenda
	Screen *terminal.Screen

	// Changes delivers outline files that changed on disk.
	Changes <-chan string
	// Ticks delivers scheduled redraws.
	Ticks <-chan time.Time
}

type Model struct {
	// Core components
	config  *config.Config
	agenda  *agenda.Agenda
	screen  *terminal.Screen
	changes <-chan string
	ticks   <-chan time.Time

	// View state
	mode     ViewMode
	selected *agenda.Date // day under the pointer, nil shows the week

	// UI state
	width     int
	height    int
	message   string
	messageID int

	// Styles
	styles Styles
}

type Styles struct {
	Header  lipgloss.Style
	Normal  lipgloss.Style
	Help    lipgloss.Style
	Status  lipgloss.Style
	Message lipgloss.Style
}

func NewModel(opts Options) *Model {
	return &Model{
		config:  opts.Config,
		agenda:  opts.Agenda,
		screen:  opts.Screen,
		changes: opts.Changes,
		ticks:   opts.Ticks,
		mode:    ViewCalendar,
		styles:  DefaultStyles(),
	}
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
	}
}

// Selected returns the day under the pointer.
func (m *Model) Selected() (agenda.Date, bool) {
	if m.selected == nil {
		return agenda.Date{}, false
	}
	return *m.selected, true
}

func (m *Model) Mode() ViewMode {
	return m.mode
}

func (m *Model) Init() tea.Cmd {
	m.redraw()
	return tea.Batch(
		waitForChange(m.changes),
		waitForTick(m.ticks),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The last row holds the status line.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.check(m.screen.Flush())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case fileChangedMsg:
		log.Printf("reloading after change to %s", msg.path)
		m.reload()
		return m, waitForChange(m.changes)

	case redrawMsg:
		log.Printf("scheduled redraw at %s", msg.at.Format(time.RFC3339))
		m.redraw()
		return m, waitForTick(m.ticks)

	case messageTimeoutMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewHelp:
		return m.viewHelp()
	default:
		return m.viewCalendar()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, _ := m.config.Action(msg.String())

	if m.mode == ViewHelp && action != config.ActionQuit {
		// Any key returns from help.
		m.mode = ViewCalendar
		return m, nil
	}

	switch action {
	case config.ActionQuit:
		return m, tea.Quit

	case config.ActionHelp:
		m.mode = ViewHelp
		return m, nil

	case config.ActionToday:
		m.selected = nil
		m.agenda.SetYear(m.agenda.Today().Year)
		m.redraw()
		return m, nil

	case config.ActionNextYear:
		m.selected = nil
		m.agenda.SetYear(m.agenda.Year + 1)
		m.redraw()
		return m, nil

	case config.ActionPrevYear:
		m.selected = nil
		m.agenda.SetYear(m.agenda.Year - 1)
		m.redraw()
		return m, nil

	case config.ActionReload:
		if m.reload() {
			return m, m.showMessage(fmt.Sprintf("Reloaded %d events", m.agenda.Store().Len()))
		}
		return m, m.showMessage("Reload failed, see log")
	}

	return m, nil
}

// handleMouse follows the pointer: the day under it is highlighted and
// its events listed; off the grid the week is listed again.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ViewCalendar {
		return m, nil
	}

	motion := msg.Action == tea.MouseActionMotion
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if !motion && !click {
		return m, nil
	}

	// Terminal cells are 0-indexed, surface positions 1-indexed.
	day, ok := m.agenda.DayAt(agenda.Position{X: msg.X + 1, Y: msg.Y + 1})
	if !ok {
		if m.selected != nil {
			m.check(m.agenda.UnhighlightDay(*m.selected))
			m.selected = nil
			m.check(m.agenda.RenderEvents(nil))
		}
		return m, nil
	}

	if m.selected != nil {
		if *m.selected == day {
			return m, nil
		}
		m.check(m.agenda.UnhighlightDay(*m.selected))
	}
	m.selected = &day
	m.check(m.agenda.HighlightDay(day))
	m.check(m.agenda.RenderEvents(&day))
	return m, nil
}

// reload parses the outline files again and redraws everything. On failure
// the previous events stay on screen.
func (m *Model) reload() bool {
	if err := m.agenda.Reload(); err != nil {
		log.Printf("reload: %v", err)
		return false
	}
	m.redraw()
	return true
}

func (m *Model) redraw() {
	m.check(m.agenda.RenderCalendar(0))
	if m.selected != nil {
		m.check(m.agenda.HighlightDay(*m.selected))
	}
	m.check(m.agenda.RenderEvents(m.selected))
}

func (m *Model) check(err error) {
	if err != nil {
		log.Printf("draw: %v", err)
	}
}

func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	m.messageID++
	id := m.messageID
	return tea.Tick(messageDuration, func(time.Time) tea.Msg {
		return messageTimeoutMsg{id: id}
	})
}

func waitForChange(changes <-chan string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

func waitForTick(ticks <-chan time.Time) tea.Cmd {
	if ticks == nil {
		return nil
	}
	return func() tea.Msg {
		at, ok := <-ticks
		if !ok {
			return nil
		}
		return redrawMsg{at: at}
	}
}

// Message types
type fileChangedMsg struct {
	path string
}

type redrawMsg struct {
	at time.Time
}

type messageTimeoutMsg struct {
	id int
}
