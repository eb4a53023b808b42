package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the shop (plants and pets)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Snapshot()
			owned := make(map[string]bool, len(snap.Inventory))
			for _, e := range snap.Inventory {
				owned[e.ItemID] = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Dewdrops(snap.CurrencyBalance)))
			fmt.Fprintln(out, "")

			sections := []struct {
				title string
				kind  engine.ItemKind
			}{
				{ui.IconSprout + " Plants", engine.KindPlant},
				{ui.IconPet + " Pets", engine.KindPet},
			}
			for _, sec := range sections {
				fmt.Fprintln(out, ui.H2.Render(sec.title))
				for _, it := range engine.ShopItemsByKind(sec.kind) {
					tag := ""
					if owned[it.ID] {
						tag = " " + ui.Muted.Render("(owned)")
					}
					fmt.Fprintf(out, "  %s %s — %s%s\n", ui.Key.Render(it.ID), it.Name, ui.Dewdrops(it.Cost), tag)
				}
				fmt.Fprintln(out, "")
			}
			fmt.Fprintln(out, ui.Muted.Render("Buy with: sprout buy <item-id>"))
			return nil
		},
	}

	return cmd
}
