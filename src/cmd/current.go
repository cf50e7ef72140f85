package cmd

import (
	"fmt"

	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the pinned and resolved Node.js version",
	Long: `Show the version specifier pinned by the nearest .nvmrc and the
installed version it resolves to.

Examples:
  npmenv current`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		project := resolveProject("")

		if project.Specifier == "" {
			ui.Info("No version pin found for the current directory")
			return
		}

		fmt.Printf("  pinned:   %s\n", ui.Highlight(project.Specifier))
		if project.Overlay == nil {
			ui.Warning("pinned version %s is not installed", project.Specifier)
			return
		}
		fmt.Printf("  resolved: %s (%s)\n",
			ui.HighlightVersion(project.Selected.Name), project.Selected.Path)
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
