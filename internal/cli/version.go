package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via
// -ldflags "-X github.com/voltlabhq/voltlab/internal/cli.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the voltlab version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("voltlab " + version)
	},
}
