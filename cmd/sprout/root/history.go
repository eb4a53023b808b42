package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sprout/internal/storage"
	"sprout/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent dewdrop earnings and spends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			journal := svc.Journal()
			if journal == nil {
				return errors.New("journal is unavailable")
			}

			entries, err := journal.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			total, err := journal.TotalEarned(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Ledger History"))
			fmt.Fprintln(out, ui.LabelValue("Total earned (journaled)", ui.Dewdrops(total)))
			fmt.Fprintln(out, "")
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty — log a task to get started)"))
				return nil
			}
			for _, e := range entries {
				sign := ui.Good.Render(fmt.Sprintf("%+d", e.Delta))
				if e.Delta < 0 {
					sign = ui.Warn.Render(fmt.Sprintf("%+d", e.Delta))
				}
				kind := e.Kind
				if kind == storage.JournalUpgrade {
					kind = "grow"
				}
				fmt.Fprintf(out, "%s  %-6s %-22s %s %s\n",
					ui.Muted.Render(e.At.Local().Format("2006-01-02 15:04")),
					kind, e.Ref, sign,
					ui.Muted.Render(fmt.Sprintf("(balance %d)", e.Balance)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Max entries to show")

	return cmd
}
