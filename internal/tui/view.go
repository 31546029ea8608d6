package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// View implements tea.Model
func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	return view
}

// render returns the screen content for the current mode
func (m Model) render() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case helpMode:
		return m.place(m.styles.Dialog.Render(m.help.View(m.keys)))
	case viewTaskMode:
		if task := m.currentTask(); task != nil {
			return m.place(m.renderTask(task))
		}
	}
	return m.renderBoard()
}

func (m Model) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderBoard() string {
	statuses := m.visibleStatuses()
	counts := m.app.ColumnCounts()
	labels := m.app.Labels()

	colWidth := max(20, m.width/max(1, len(statuses))-2)
	columns := make([]string, 0, len(statuses))
	for _, s := range statuses {
		columns = append(columns, m.renderColumn(s, counts[s], labels, colWidth))
	}

	sections := []string{
		m.renderHeader(labels),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
	}
	if m.app.Celebrating() {
		sections = append(sections, m.styles.Celebrate.Render("🎉 All tasks completed! 🎉"))
	}
	if msg := m.app.Err(); msg != "" {
		sections = append(sections, m.styles.Error.Render("✗ "+msg))
	}
	if m.mode == confirmDeleteMode {
		if task := m.currentTask(); task != nil {
			sections = append(sections, m.styles.Error.Render(fmt.Sprintf("Delete '%s'? (y/n)", task.Title)))
		}
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(labels []*models.Label) string {
	labelFilter := m.app.LabelFilter()
	if l := models.FindLabel(labels, labelFilter); l != nil {
		labelFilter = l.Name
	}
	return m.styles.Header.Render("tasklane") + "  " + m.styles.Subtle.Render(fmt.Sprintf(
		"status: %s  label: %s  theme: %s", m.app.StatusFilter(), labelFilter, m.app.Theme()))
}

func (m Model) renderColumn(status models.Status, count int, labels []*models.Label, width int) string {
	var b strings.Builder
	b.WriteString(m.styles.ColumnTitle.Render(fmt.Sprintf("%s (%d)", status.Title(), count)))
	b.WriteString("\n")

	tasks := m.app.VisibleTasks(status)
	if len(tasks) == 0 {
		b.WriteString(m.styles.Empty.Render("No tasks"))
	}

	selected := status == m.currentStatus()
	for i, t := range tasks {
		style := m.styles.Task
		if selected && i == m.rows[status] {
			style = m.styles.SelectedTask
		}
		b.WriteString(style.Width(width - 2).Render(taskCardContent(t, labels)))
		b.WriteString("\n")
	}

	return m.styles.Column.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func taskCardContent(t *models.Task, labels []*models.Label) string {
	if chips := labelChips(t, labels); chips != "" {
		return t.Title + "\n" + chips
	}
	return t.Title
}

// labelChips renders the task's labels; references to deleted labels are skipped
func labelChips(t *models.Task, labels []*models.Label) string {
	chips := make([]string, 0, len(t.Labels))
	for _, id := range t.Labels {
		if l := models.FindLabel(labels, id); l != nil {
			chips = append(chips, styles.LabelChip(l))
		}
	}
	return strings.Join(chips, " ")
}

func (m Model) renderTask(t *models.Task) string {
	width := max(40, m.width*2/3)
	labels := m.app.Labels()

	var b strings.Builder
	b.WriteString(m.styles.ColumnTitle.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s · %s", t.Status.Title(), t.ID)))
	b.WriteString("\n")
	if chips := labelChips(t, labels); chips != "" {
		b.WriteString(chips)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Markdown(t.Description, width-6, string(m.app.Theme())))

	return m.styles.Dialog.Width(width).Render(b.String())
}
