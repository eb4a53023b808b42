package root

import (
	"context"

	"github.com/spf13/cobra"

	"sprout/internal/tui"
)

func newSceneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Open the live companion scene (plant + wandering pets)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunScene(ctx, svc, cfg.TickInterval, cmd.OutOrStdout())
		},
	}

	return cmd
}
