package cmd

import (
	"fmt"
	"strings"

	"github.com/npmenv/npmenv/src/internal/config"
	"github.com/npmenv/npmenv/src/internal/manifest"
	"github.com/npmenv/npmenv/src/internal/tui"
	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current project's manifest summary",
	Long: `Show the name, version, engine constraints and dependency counts
of the nearest package.json.

Examples:
  npmenv info`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.FindManifest("")
		if err != nil {
			ui.Info("No package.json found for the current directory")
			return
		}

		meta, err := manifests.ReadParsed(path, manifest.ShapeMeta)
		if err != nil {
			reportManifestError(err)
			return
		}
		deps, err := manifests.ReadParsed(path, manifest.ShapeDependencies)
		if err != nil {
			reportManifestError(err)
			return
		}

		var lines []string
		name := meta.Name
		if name == "" {
			name = "(unnamed)"
		}
		lines = append(lines, fmt.Sprintf("%s %s", name, tui.RenderVersion(meta.Version)))
		if engine, ok := meta.Engines["node"]; ok {
			lines = append(lines, fmt.Sprintf("engines.node: %s", engine))
		}
		lines = append(lines, fmt.Sprintf("dependencies: %d, devDependencies: %d",
			len(deps.Dependencies), len(deps.DevDependencies)))
		lines = append(lines, tui.RenderMuted(path))

		fmt.Println(tui.RenderInfoBox(strings.Join(lines, "\n")))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
