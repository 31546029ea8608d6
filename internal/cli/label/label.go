// Package label implements the "tasklane label" command group
package label

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// labelView is the output shape of a label
type labelView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Tasks int    `json:"tasks"`
}

func newLabelView(l *models.Label, tasks []*models.Task) labelView {
	n := 0
	for _, t := range tasks {
		if t.HasLabel(l.ID) {
			n++
		}
	}
	return labelView{ID: l.ID, Name: l.Name, Color: l.Color, Tasks: n}
}

// labelAction reports a write on a single label
type labelAction struct {
	Action string    `json:"action"`
	Label  labelView `json:"label"`
}

// GetID returns the label id for quiet output
func (a labelAction) GetID() string {
	return a.Label.ID
}

// Render returns the human-readable confirmation
func (a labelAction) Render() string {
	chip := styles.LabelChip(&models.Label{Name: a.Label.Name, Color: a.Label.Color})
	return fmt.Sprintf("%s Label %s %s (ID: %s, color %s)",
		styles.SuccessStyle.Render("✓"), chip, a.Action, a.Label.ID, a.Label.Color)
}

// labelList is the output of label list
type labelList []labelView

// GetID returns every label id, one per line
func (l labelList) GetID() string {
	ids := make([]string, len(l))
	for i, v := range l {
		ids[i] = v.ID
	}
	return strings.Join(ids, "\n")
}

// Render prints one label per line with its usage count
func (l labelList) Render() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No labels")
	}
	lines := make([]string, len(l))
	for i, v := range l {
		chip := styles.LabelChip(&models.Label{Name: v.Name, Color: v.Color})
		lines[i] = fmt.Sprintf("  %s  %s %s  %s",
			styles.SubtitleStyle.Render(v.ID), chip, v.Color,
			styles.SubtitleStyle.Render(fmt.Sprintf("%d task(s)", v.Tasks)))
	}
	return strings.Join(lines, "\n")
}

// labelDeleted reports a removed label
type labelDeleted struct {
	ID       string `json:"id"`
	Deleted  bool   `json:"deleted"`
	Detached int    `json:"detached"`
}

// GetID returns the removed label id for quiet output
func (d labelDeleted) GetID() string {
	return d.ID
}

// Render returns the human-readable confirmation
func (d labelDeleted) Render() string {
	return fmt.Sprintf("%s Label %s deleted (removed from %d task(s))", styles.SuccessStyle.Render("✓"), d.ID, d.Detached)
}
