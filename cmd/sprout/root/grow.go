package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Buy the next growth stage for the active plant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.UpgradePlant(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(ui.IconSprout+" Grew"),
				engine.DisplayName(res.PlantID),
				ui.StageBar(res.StageAfter, engine.MaxStage))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Dewdrops(res.Balance)))
			return nil
		},
	}

	return cmd
}
