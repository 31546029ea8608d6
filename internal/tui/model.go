// Package tui implements the interactive board
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/models"
)

type mode int

const (
	normalMode mode = iota
	viewTaskMode
	confirmDeleteMode
	helpMode
)

// celebrationTickMsg redraws the board once the celebration has timed out
type celebrationTickMsg struct{}

// Model is the board's bubbletea model. All board state lives in the App;
// the model only tracks the cursor and the current screen.
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config
	keys   keyMap
	help   help.Model
	styles boardStyles

	mode   mode
	column int // index into models.Statuses
	rows   map[models.Status]int

	width  int
	height int
}

// New creates the board model for application
func New(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		ctx:    ctx,
		app:    application,
		config: cfg,
		keys:   newKeyMap(cfg.KeyMappings),
		help:   help.New(),
		rows:   make(map[models.Status]int, len(models.Statuses)),
	}
	m.applyTheme()
	return m
}

// Run starts the board and blocks until the user quits
func Run(ctx context.Context, application *app.App, cfg *config.Config) error {
	_, err := tea.NewProgram(New(ctx, application, cfg), tea.WithContext(ctx)).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.celebrationCmd()
}

// applyTheme rebuilds styles for the App's current theme
func (m *Model) applyTheme() {
	theme := m.app.Theme()
	m.styles = newBoardStyles(m.config.Scheme(string(theme)))
	if theme == models.ThemeDark {
		m.help.Styles = help.DefaultDarkStyles()
	} else {
		m.help.Styles = help.DefaultLightStyles()
	}
}

// visibleStatuses returns the columns the status filter lets through
func (m Model) visibleStatuses() []models.Status {
	sf := m.app.StatusFilter()
	out := make([]models.Status, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		if sf.Shows(s) {
			out = append(out, s)
		}
	}
	return out
}

// currentStatus returns the selected column's status
func (m Model) currentStatus() models.Status {
	return models.Statuses[m.column]
}

// currentTask returns the selected task, or nil for an empty column
func (m Model) currentTask() *models.Task {
	tasks := m.app.VisibleTasks(m.currentStatus())
	if len(tasks) == 0 {
		return nil
	}
	row := min(m.rows[m.currentStatus()], len(tasks)-1)
	return tasks[max(row, 0)]
}

// selectTask moves the cursor onto task id
func (m *Model) selectTask(id string) {
	for i, s := range models.Statuses {
		for row, t := range m.app.VisibleTasks(s) {
			if t.ID == id {
				m.column = i
				m.rows[s] = row
				return
			}
		}
	}
}

// clampCursor keeps the cursor on a visible column and an existing row
func (m *Model) clampCursor() {
	visible := m.visibleStatuses()
	if !m.app.StatusFilter().Shows(m.currentStatus()) && len(visible) > 0 {
		for i, s := range models.Statuses {
			if s == visible[0] {
				m.column = i
			}
		}
	}
	for _, s := range models.Statuses {
		n := len(m.app.VisibleTasks(s))
		m.rows[s] = max(0, min(m.rows[s], n-1))
	}
}

// celebrationCmd schedules a redraw for when a running celebration ends
func (m Model) celebrationCmd() tea.Cmd {
	timeout := m.app.CelebrationTimeout()
	if !m.app.Celebrating() || timeout <= 0 {
		return nil
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return celebrationTickMsg{}
	})
}
