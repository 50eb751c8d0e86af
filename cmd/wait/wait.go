package wait

import (
	"context"
	"syscall"

	"github.com/spf13/cobra"

	cmdutil "github.com/ZettaAI/SEAMLeSS/cmd/util"
	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
	"github.com/ZettaAI/SEAMLeSS/slurm"
	"github.com/ZettaAI/SEAMLeSS/util"
)

var configFile string

// Cmd represents the wait command.
var Cmd = &cobra.Command{
	Use:   "wait [jobID...]",
	Short: "Wait for one or more submitted jobs to complete.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		conf, err := cmdutil.MergeConfigFileWithFlags(configFile, config.Config{})
		if err != nil {
			return err
		}
		log := logger.NewLogger("slaunch", conf.Logger)
		b := slurm.NewBackend(conf, log.Sub("slurm"))

		ctx := util.SignalContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

		for _, id := range args {
			if err := b.Wait(ctx, id); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config File")
}
