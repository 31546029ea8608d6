package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/cli/handler"
	"github.com/thenoetrevino/tasklane/internal/cli/styles"
	"github.com/thenoetrevino/tasklane/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task with its rendered description",
		Long: `Show a single task. The id may be shortened to any unique prefix
of at least four characters.

Examples:
  tasklane task show 3f2a9c1e
  tasklane task show 3f2a --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

// taskCard is the detailed view of one task
type taskCard struct {
	taskView
	theme models.Theme
}

// Render draws the task as a bordered card
func (c taskCard) Render() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(c.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(c.ID))
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Status:"), styles.ValueStyle.Render(c.Status.Title()))
	if chips := c.chips(); chips != "" {
		fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Labels:"), chips)
	}
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Created:"), styles.ValueStyle.Render(c.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.Markdown(c.Description, styles.CardWidth-6, string(c.theme)))
	return styles.CardStyle.Render(b.String())
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	application := args.CLI.App

	ref, err := args.Arg(0, "task id")
	if err != nil {
		return nil, err
	}
	tasks := application.Tasks()
	id, err := cli.ResolveTaskID(tasks, ref)
	if err != nil {
		return nil, err
	}

	task := findTask(tasks, id)
	return taskCard{taskView: newTaskView(task, application.Labels()), theme: application.Theme()}, nil
}
