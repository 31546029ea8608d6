package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by status",
		Long: `List the board column by column.

Examples:
  tasklane task list
  tasklane task list --status=inProgress
  tasklane task list --label=bug --json
  tasklane task list --quiet   # one id per line
`,
		RunE: handler.Command(handler.HandlerFunc(runList), parseListFlags),
	}

	cmd.Flags().String("status", string(app.FilterAll), "Status filter: all, todo, inProgress, done")
	cmd.Flags().String("label", app.LabelFilterAll, "Label filter: all, or a label name or ID")

	handler.AddOutputFlags(cmd)

	return cmd
}

func parseListFlags(cmd *cobra.Command) error {
	raw, err := handler.NewFlagParser(cmd).ParseString("status")
	if err != nil {
		return err
	}
	_, err = statusFilter(raw)
	return err
}

// statusFilter accepts "all" or any status spelling ParseStatus understands
func statusFilter(raw string) (app.StatusFilter, error) {
	if strings.EqualFold(raw, string(app.FilterAll)) {
		return app.FilterAll, nil
	}
	status, err := cli.ParseStatus(raw)
	if err != nil {
		return "", err
	}
	return app.StatusFilter(status), nil
}

// column is one status column of the listing
type column struct {
	Status models.Status `json:"status"`
	Count  int           `json:"count"`
	Tasks  []taskView    `json:"tasks"`
}

// boardList is the output of task list
type boardList struct {
	StatusFilter      app.StatusFilter `json:"statusFilter"`
	LabelFilter       string           `json:"labelFilter"`
	Columns           []column         `json:"columns"`
	AllTasksCompleted bool             `json:"allTasksCompleted"`
}

// GetID returns every listed id, one per line
func (l boardList) GetID() string {
	var ids []string
	for _, c := range l.Columns {
		for _, t := range c.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return strings.Join(ids, "\n")
}

// Render draws each column with its count, or an empty-state line
func (l boardList) Render() string {
	var b strings.Builder
	for i, c := range l.Columns {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", styles.TitleStyle.Render(c.Status.Title()), styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", c.Count)))
		if len(c.Tasks) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("  No tasks"))
			b.WriteString("\n")
			continue
		}
		for _, t := range c.Tasks {
			b.WriteString(t.line())
			b.WriteString("\n")
		}
	}
	if l.AllTasksCompleted {
		b.WriteString("\n")
		b.WriteString(styles.CelebrateStyle.Render("🎉 All tasks completed!"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	sf, err := statusFilter(args.GetString("status", string(app.FilterAll)))
	if err != nil {
		return nil, err
	}
	labelFilter := app.LabelFilterAll
	if ref := args.GetString("label", app.LabelFilterAll); !strings.EqualFold(ref, app.LabelFilterAll) {
		labelFilter, err = cli.ResolveLabelID(application.Labels(), ref)
		if err != nil {
			return nil, err
		}
	}

	if err := application.SetStatusFilter(sf); err != nil {
		return nil, err
	}
	application.SetLabelFilter(labelFilter)

	labels := application.Labels()
	counts := application.ColumnCounts()
	result := boardList{
		StatusFilter:      sf,
		LabelFilter:       labelFilter,
		AllTasksCompleted: application.AllTasksCompleted(),
	}
	for _, status := range models.Statuses {
		if !sf.Shows(status) {
			continue
		}
		visible := application.VisibleTasks(status)
		views := make([]taskView, len(visible))
		for i, t := range visible {
			views[i] = newTaskView(t, labels)
		}
		result.Columns = append(result.Columns, column{Status: status, Count: counts[status], Tasks: views})
	}
	return result, nil
}
