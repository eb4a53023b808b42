package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sprout/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sprout",
	Short:         "Sprout — a desk companion that turns chores into dewdrops",
	Long:          "Sprout is a single-user desk companion: log real-world tasks to earn Dewdrops, spend them on plants and pets, and watch the scene grow.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newSceneCmd(),
		newStatusCmd(),
		newTasksCmd(),
		newLogCmd(),
		newShopCmd(),
		newBuyCmd(),
		newGrowCmd(),
		newSwitchCmd(),
		newRenameCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
