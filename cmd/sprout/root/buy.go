package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a plant or pet from the shop",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item-id is required (see: sprout shop)")
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

			res, err := svc.Purchase(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			icon := ui.IconSprout
			if res.Kind == engine.KindPet {
				icon = ui.IconPet
			}
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(icon+" Bought"), res.Name, ui.Muted.Render(fmt.Sprintf("(-%d)", res.Cost)))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Dewdrops(res.Balance)))
			if res.Kind == engine.KindPlant {
				fmt.Fprintln(out, ui.Muted.Render("Make it the displayed plant with: sprout switch "+res.ItemID))
			}
			return nil
		},
	}

	return cmd
}
