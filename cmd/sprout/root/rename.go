package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <item-id> <name>",
		Short: "Give an owned pet or plant a custom name",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("item-id and name are required")
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

			itemID := args[0]
			name := strings.TrimSpace(strings.Join(args[1:], " "))

			if err := svc.RenameItem(itemID, name); err != nil {
				return err
			}

			label := ui.ItemLabel(engine.DisplayName(itemID), name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconTag+" Renamed"), label)
			return nil
		},
	}

	return cmd
}
