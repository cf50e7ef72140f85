package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npmenv/npmenv/src/internal/config"
	"github.com/npmenv/npmenv/src/internal/manifest"
	"github.com/npmenv/npmenv/src/internal/tui"
	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

// manifests is the process-wide parse cache shared by commands
// that read package.json.
var manifests = manifest.NewStore()

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List the npm scripts of the current project",
	Long: `List the scripts defined in the nearest package.json.

Examples:
  npmenv scripts
  npmenv run npm run <script>`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.FindManifest("")
		if err != nil {
			ui.Info("No package.json found for the current directory")
			return
		}

		doc, err := manifests.ReadParsed(path, manifest.ShapeScripts)
		if err != nil {
			reportManifestError(err)
			return
		}

		if len(doc.Scripts) == 0 {
			ui.Info("No scripts defined in %s", path)
			return
		}

		names := make([]string, 0, len(doc.Scripts))
		for name := range doc.Scripts {
			names = append(names, name)
		}
		sort.Strings(names)

		table := tui.NewTable("Script", "Command")
		table.SetTitle(path)
		for _, name := range names {
			table.AddRow(name, doc.Scripts[name])
		}
		fmt.Println(table.Render())
	},
}

// reportManifestError surfaces a manifest read failure without
// treating it as fatal; a malformed package.json never stops the
// tool.
func reportManifestError(err error) {
	var parseErr *manifest.ParseError
	if errors.As(err, &parseErr) {
		ui.Warning("%v", parseErr)
		return
	}
	ui.Error("%v", err)
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
}
