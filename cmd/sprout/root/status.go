package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sprout/internal/engine"
	"sprout/internal/storage"
	"sprout/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show balance, active plant, and inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Snapshot()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Sprout Status"))
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Dewdrops(snap.CurrencyBalance)))
			fmt.Fprintln(out, ui.LabelValue("Lifetime earned", ui.Dewdrops(snap.LifetimeEarned)))
			fmt.Fprintln(out, ui.LabelValue("Last login", snap.LastLogin))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSprout+" Plants"))
			for _, e := range snap.Inventory {
				if e.Kind != string(engine.KindPlant) {
					continue
				}
				name := ui.ItemLabel(engine.DisplayName(e.ItemID), e.CustomName)
				marker := "  "
				if e.ItemID == snap.ActivePlantID {
					marker = ui.Good.Render("▶ ")
				}
				fmt.Fprintf(out, "%s%s %s\n", marker, name, ui.StageBar(snap.PlantStages[e.ItemID], engine.MaxStage))
			}
			fmt.Fprintln(out, "")

			mStage := engine.MilestoneStage(snap.LifetimeEarned)
			if mStage < engine.MaxStage {
				toNext := engine.Milestones[mStage+1] - snap.LifetimeEarned
				fmt.Fprintln(out, ui.LabelValue("Next milestone", fmt.Sprintf("stage %d at %d lifetime dewdrops (%d to go)", mStage+1, engine.Milestones[mStage+1], toNext)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Milestones", ui.Good.Render("all reached")))
			}
			fmt.Fprintln(out, "")

			pets := svc.OwnedPets()
			fmt.Fprintln(out, ui.H2.Render(ui.IconPet+" Pets"))
			if len(pets) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (none yet — visit the shop)"))
			}
			for _, e := range pets {
				fmt.Fprintf(out, "  %s\n", ui.ItemLabel(engine.DisplayName(e.ItemID), e.CustomName))
			}

			if repo := svc.Journal(); repo != nil {
				now := time.Now()
				midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				if n, err := repo.CountSince(ctx, storage.JournalEarn, midnight.UTC()); err == nil {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.LabelValue("Tasks logged today", fmt.Sprintf("%d", n)))
				}
			}

			return nil
		},
	}

	return cmd
}
