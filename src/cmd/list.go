package cmd

import (
	"fmt"

	"github.com/npmenv/npmenv/src/internal/config"
	"github.com/npmenv/npmenv/src/internal/nodever"
	"github.com/npmenv/npmenv/src/internal/tui"
	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List locally installed Node.js versions",
	Long: `List every Node.js version found under the install root, in scan
order. The version the current project resolves to is highlighted.

Examples:
  npmenv list`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		paths := config.DefaultPaths()

		spinner := ui.NewSpinner("Scanning installed versions...")
		spinner.Start()
		catalog := nodever.Scan(nodever.ScanRoots(paths.Root))
		if len(catalog) == 0 {
			spinner.Stop()
			ui.Info("No installed versions found under %s", paths.Root)
			return
		}
		spinner.Success(fmt.Sprintf("Found %d installed versions", len(catalog)))

		project := resolveProject("")

		table := tui.NewTable("Version", "Path")
		table.SetTitle(fmt.Sprintf("Installed versions (%s)", paths.Root))
		for _, installed := range catalog {
			if installed == project.Selected {
				table.AddActiveRow(installed.Name+" *", installed.Path)
				continue
			}
			table.AddRow(installed.Name, installed.Path)
		}

		fmt.Println(table.Render())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
