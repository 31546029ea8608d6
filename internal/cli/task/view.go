package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// labelRef is a label as embedded in task output
type labelRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// taskView is the output shape of a single task
type taskView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	Labels      []labelRef    `json:"labels"`
	Order       int           `json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func newTaskView(t *models.Task, labels []*models.Label) taskView {
	refs := make([]labelRef, 0, len(t.Labels))
	for _, id := range t.Labels {
		// References to deleted labels are not shown
		if l := models.FindLabel(labels, id); l != nil {
			refs = append(refs, labelRef{ID: l.ID, Name: l.Name, Color: l.Color})
		}
	}
	return taskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Labels:      refs,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// GetID returns the task id for quiet output
func (v taskView) GetID() string {
	return v.ID
}

func (v taskView) chips() string {
	if len(v.Labels) == 0 {
		return ""
	}
	parts := make([]string, len(v.Labels))
	for i, l := range v.Labels {
		parts[i] = styles.LabelChip(&models.Label{ID: l.ID, Name: l.Name, Color: l.Color})
	}
	return strings.Join(parts, " ")
}

// line renders the one-line summary used in lists
func (v taskView) line() string {
	line := fmt.Sprintf("  %s  %s", styles.SubtitleStyle.Render(cli.ShortID(v.ID)), v.Title)
	if chips := v.chips(); chips != "" {
		line += "  " + chips
	}
	return line
}

// taskAction reports a write on a single task
type taskAction struct {
	Action string   `json:"action"`
	Task   taskView `json:"task"`
}

// GetID returns the task id for quiet output
func (a taskAction) GetID() string {
	return a.Task.ID
}

// Render returns the human-readable confirmation
func (a taskAction) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Task '%s' %s (ID: %s)\n", styles.SuccessStyle.Render("✓"), a.Task.Title, a.Action, a.Task.ID)
	fmt.Fprintf(&b, "  Status: %s", a.Task.Status.Title())
	if chips := a.Task.chips(); chips != "" {
		fmt.Fprintf(&b, "\n  Labels: %s", chips)
	}
	return b.String()
}

// deleted reports a removed task
type deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// GetID returns the removed task id for quiet output
func (d deleted) GetID() string {
	return d.ID
}

// Render returns the human-readable confirmation
func (d deleted) Render() string {
	return fmt.Sprintf("%s Task %s deleted", styles.SuccessStyle.Render("✓"), d.ID)
}

// findTask returns the task with id, or nil
func findTask(tasks []*models.Task, id string) *models.Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
