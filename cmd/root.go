// Package cmd contains the slaunch CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ZettaAI/SEAMLeSS/cmd/cancel"
	"github.com/ZettaAI/SEAMLeSS/cmd/examples"
	"github.com/ZettaAI/SEAMLeSS/cmd/launch"
	"github.com/ZettaAI/SEAMLeSS/cmd/submit"
	"github.com/ZettaAI/SEAMLeSS/cmd/version"
	"github.com/ZettaAI/SEAMLeSS/cmd/wait"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "slaunch",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(cancel.Cmd)
	RootCmd.AddCommand(examples.Cmd)
	RootCmd.AddCommand(launch.NewCommand())
	RootCmd.AddCommand(submit.NewCommand())
	RootCmd.AddCommand(version.Cmd)
	RootCmd.AddCommand(wait.Cmd)
}
