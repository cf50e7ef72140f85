package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/npmenv/npmenv/src/internal/constants"
	"github.com/npmenv/npmenv/src/internal/envsynth"
	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which [executable]",
	Short: "Show the path a command resolves to",
	Long: `Display the path of an executable in the resolved version's bin
directory. With no argument, the node executable is shown.

Examples:
  npmenv which
  npmenv which npm`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executable := "node"
		if len(args) == 1 {
			executable = args[0]
		}

		project := resolveProject("")
		if project.Overlay == nil {
			warnUnresolved(project)
			os.Exit(1)
		}

		binDir := project.Overlay.Vars[envsynth.VarBin]
		if goruntime.GOOS == constants.OSWindows {
			executable += constants.ExtExe
		}
		execPath := filepath.Join(binDir, executable)

		if _, err := os.Stat(execPath); err != nil {
			ui.Error("%s not found in %s", executable, binDir)
			os.Exit(1)
		}

		fmt.Println(execPath)
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
