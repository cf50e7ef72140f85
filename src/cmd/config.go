package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// configGlobal selects the global npm config scope. Unlike the
// tools this replaces, the flag means the same thing for every
// verb: true operates on the global scope, false on the project
// scope.
var configGlobal bool

var configCmd = &cobra.Command{
	Use:   "config <list|get|set|delete> [key] [value]",
	Short: "Manage npm configuration under the resolved version",
	Long: `Delegate to "npm config" with the project's resolved environment,
so the configuration of the pinned Node.js version is edited rather
than whatever npm is first on the ambient PATH.

The --global flag applies uniformly: every verb operates on the
global scope when it is set and on the project scope otherwise.

Examples:
  npmenv config list
  npmenv config get registry
  npmenv config set registry https://registry.example.com --global
  npmenv config delete registry`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		verb := args[0]
		switch verb {
		case "list", "get", "set", "delete":
		default:
			cmd.PrintErrf("unknown config verb %q\n", verb)
			os.Exit(1)
		}

		npmArgs := append([]string{"npm", "config", verb}, args[1:]...)
		if configGlobal {
			npmArgs = append(npmArgs, "--global")
		}

		exitCode := runCommand(strings.Join(npmArgs, " "), "")
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	configCmd.Flags().BoolVarP(&configGlobal, "global", "g", false,
		"Operate on the global npm configuration")
	rootCmd.AddCommand(configCmd)
}
