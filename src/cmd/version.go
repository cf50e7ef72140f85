package cmd

import (
	"fmt"

	"github.com/npmenv/npmenv/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the npmenv version",
	Long:  `Display the current version of npmenv.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("npmenv %s", tui.RenderVersion(Version))
		fmt.Println(tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
