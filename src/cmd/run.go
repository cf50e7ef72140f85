package cmd

import (
	"os"
	"strings"

	"github.com/npmenv/npmenv/src/internal/shell"
	"github.com/npmenv/npmenv/src/internal/ui"
	"github.com/spf13/cobra"
)

var runCwd string

var runCmd = &cobra.Command{
	Use:   "run <command...>",
	Short: "Run a command under the project's pinned Node.js version",
	Long: `Run a shell command with the environment rewritten so the project's
pinned Node.js version is first on PATH.

The pinned version is read from the nearest .nvmrc above the working
directory and matched against locally installed versions. Partial pins
select the highest installed match ("16" picks the newest 16.x.y).
When the pinned version is not installed the command still runs, with
the ambient environment and a warning.

Examples:
  npmenv run npm install
  npmenv run npm run build
  npmenv run --cwd ../service npm test`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runCommand(strings.Join(args, " "), runCwd)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// runCommand resolves the project environment for dir and executes
// the command string under it, returning the subprocess exit code.
func runCommand(command, dir string) int {
	project := resolveProject(dir)

	env := os.Environ()
	if project.Overlay != nil {
		ui.Debug("using %s (%s)", project.Selected.Name, project.Selected.Path)
		env = project.Overlay.Merge(env)
	} else {
		warnUnresolved(project)
	}

	exitCode, err := shell.Run(command, dir, env)
	if err != nil {
		ui.Error("failed to run %q: %v", command, err)
		return 1
	}
	return exitCode
}

func init() {
	runCmd.Flags().StringVar(&runCwd, "cwd", "", "Working directory for the command (defaults to the current directory)")
	rootCmd.AddCommand(runCmd)
}
