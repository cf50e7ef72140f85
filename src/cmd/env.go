package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the synthesized environment as shell exports",
	Long: `Print the environment overlay for the resolved version as export
lines, suitable for eval in a shell:

  eval "$(npmenv env)"

Exits non-zero when no pinned version resolves, leaving the calling
shell untouched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		project := resolveProject("")
		if project.Overlay == nil {
			warnUnresolved(project)
			os.Exit(1)
		}

		names := make([]string, 0, len(project.Overlay.Vars))
		for name := range project.Overlay.Vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("export %s=%q\n", name, project.Overlay.Vars[name])
		}
		pathValue := strings.Join(project.Overlay.Path, string(filepath.ListSeparator))
		fmt.Printf("export PATH=%q\n", pathValue)

		ui.Debug("overlay for %s", project.Selected.Name)
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
