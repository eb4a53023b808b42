package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List loggable tasks and their rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Tasks"))
			for _, t := range engine.Tasks {
				fmt.Fprintf(out, "  %s %s %s\n", ui.Key.Render(t.ID), t.Label, ui.Dewdrops(t.Reward))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Log one with: sprout log <task-id>"))
			return nil
		},
	}

	return cmd
}
