package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <task-id>",
		Short: "Log a completed task and earn dewdrops",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task-id is required (see: sprout tasks)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.LogTask(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Logged"), res.Label, ui.Water.Render(fmt.Sprintf("+%d", res.Reward)))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Dewdrops(res.Balance)))
			if res.StageUp() {
				fmt.Fprintf(out, "%s stage %d → %d\n", ui.Good.Render(ui.IconSparkle+" Milestone!"), res.StageBefore, res.StageAfter)
			}
			return nil
		},
	}

	return cmd
}
