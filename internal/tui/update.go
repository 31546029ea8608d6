package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case celebrationTickMsg:
		// The App has already hidden the celebration; this only redraws
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case helpMode:
			return m.handleHelpMode(msg)
		case viewTaskMode:
			return m.handleViewTaskMode(msg)
		case confirmDeleteMode:
			return m.handleConfirmDeleteMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// A key press dismisses the last error
	m.app.ClearError()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.mode = helpMode
		m.help.ShowAll = true
	case key.Matches(msg, m.keys.PrevColumn):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.NextColumn):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.PrevTask):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.NextTask):
		m.moveRow(1)
	case key.Matches(msg, m.keys.ViewTask):
		if m.currentTask() != nil {
			m.mode = viewTaskMode
		}
	case key.Matches(msg, m.keys.DeleteTask):
		if m.currentTask() != nil {
			m.mode = confirmDeleteMode
		}
	case key.Matches(msg, m.keys.ShiftTask):
		return m.drop(m.currentStatus())
	case key.Matches(msg, m.keys.DropNextStage):
		return m.drop(m.currentStatus().Next())
	case key.Matches(msg, m.keys.DropPrevStage):
		return m.drop(m.currentStatus().Prev())
	case key.Matches(msg, m.keys.CycleStatusFilter):
		return m.cycleStatusFilter()
	case key.Matches(msg, m.keys.CycleLabelFilter):
		return m.cycleLabelFilter()
	case key.Matches(msg, m.keys.ToggleTheme):
		if _, err := m.app.ToggleTheme(); err != nil {
			slog.Warn("theme not saved", "error", err)
		}
		m.applyTheme()
	case key.Matches(msg, m.keys.DismissCelebration):
		m.app.DismissCelebration()
	case key.Matches(msg, m.keys.Reload):
		if err := m.app.Load(m.ctx); err != nil {
			slog.Error("failed to reload board", "error", err)
		}
		m.clampCursor()
	}

	return m, nil
}

func (m *Model) moveColumn(delta int) {
	sf := m.app.StatusFilter()
	for i := m.column + delta; i >= 0 && i < len(models.Statuses); i += delta {
		if sf.Shows(models.Statuses[i]) {
			m.column = i
			return
		}
	}
}

func (m *Model) moveRow(delta int) {
	status := m.currentStatus()
	n := len(m.app.VisibleTasks(status))
	if n == 0 {
		return
	}
	m.rows[status] = max(0, min(n-1, m.rows[status]+delta))
}

// drop applies a drag-and-drop of the selected task onto status and keeps
// the cursor on the task
func (m Model) drop(status models.Status) (tea.Model, tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		return m, nil
	}
	wasCelebrating := m.app.Celebrating()

	if err := m.app.DropTask(m.ctx, task.ID, status); err != nil {
		slog.Error("failed to drop task", "task", task.ID, "status", status, "error", err)
		return m, nil
	}

	m.selectTask(task.ID)
	m.clampCursor()
	if !wasCelebrating {
		return m, m.celebrationCmd()
	}
	return m, nil
}

func (m Model) cycleStatusFilter() (tea.Model, tea.Cmd) {
	order := append([]app.StatusFilter{app.FilterAll}, statusFilters()...)
	current := m.app.StatusFilter()
	next := order[0]
	for i, f := range order {
		if f == current {
			next = order[(i+1)%len(order)]
			break
		}
	}

	wasCelebrating := m.app.Celebrating()
	if err := m.app.SetStatusFilter(next); err != nil {
		slog.Error("invalid status filter", "filter", next, "error", err)
		return m, nil
	}
	m.clampCursor()
	if !wasCelebrating {
		return m, m.celebrationCmd()
	}
	return m, nil
}

func (m Model) cycleLabelFilter() (tea.Model, tea.Cmd) {
	order := []string{app.LabelFilterAll}
	for _, l := range m.app.Labels() {
		order = append(order, l.ID)
	}
	current := m.app.LabelFilter()
	next := order[0]
	for i, id := range order {
		if id == current {
			next = order[(i+1)%len(order)]
			break
		}
	}

	wasCelebrating := m.app.Celebrating()
	m.app.SetLabelFilter(next)
	m.clampCursor()
	if !wasCelebrating {
		return m, m.celebrationCmd()
	}
	return m, nil
}

func statusFilters() []app.StatusFilter {
	out := make([]app.StatusFilter, len(models.Statuses))
	for i, s := range models.Statuses {
		out[i] = app.StatusFilter(s)
	}
	return out
}

// ============================================================================
// OVERLAY MODE HANDLERS
// ============================================================================

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ShowHelp, m.keys.Quit), msg.String() == "esc", msg.String() == "enter":
		m.mode = normalMode
		m.help.ShowAll = false
	}
	return m, nil
}

func (m Model) handleViewTaskMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ViewTask, m.keys.Quit), msg.String() == "esc":
		m.mode = normalMode
	}
	return m, nil
}

func (m Model) handleConfirmDeleteMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.mode = normalMode
	if msg.String() != "y" {
		return m, nil
	}

	task := m.currentTask()
	if task == nil {
		return m, nil
	}
	wasCelebrating := m.app.Celebrating()
	if err := m.app.RemoveTask(m.ctx, task.ID); err != nil {
		slog.Error("failed to delete task", "task", task.ID, "error", err)
		return m, nil
	}
	m.clampCursor()
	if !wasCelebrating {
		return m, m.celebrationCmd()
	}
	return m, nil
}
