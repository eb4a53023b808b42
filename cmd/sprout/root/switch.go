package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch <plant-id>",
		Short: "Switch which owned plant is displayed (free)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("plant-id is required (see: sprout status)")
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

			if err := svc.SwitchActivePlant(args[0]); err != nil {
				return err
			}

			snap := svc.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSwap+" Now tending"),
				engine.DisplayName(args[0]),
				ui.StageBar(snap.PlantStages[args[0]], engine.MaxStage))
			return nil
		},
	}

	return cmd
}
