package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZettaAI/SEAMLeSS/version"
)

// Cmd represents the "version" command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of slaunch.",
	Run: func(cmd *cobra.Command, args []string) {
		if version.GitCommit != "" {
			fmt.Println("git commit:", version.GitCommit)
		}
		if version.GitBranch != "" {
			fmt.Println("git branch:", version.GitBranch)
		}
		if version.BuildDate != "" {
			fmt.Println("build date:", version.BuildDate)
		}
		fmt.Println("version:", version.Version)
	},
}
