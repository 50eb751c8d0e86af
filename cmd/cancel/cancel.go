package cancel

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdutil "github.com/ZettaAI/SEAMLeSS/cmd/util"
	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
	"github.com/ZettaAI/SEAMLeSS/slurm"
)

var configFile string

// Cmd represents the cancel command.
var Cmd = &cobra.Command{
	Use:   "cancel [jobID...]",
	Short: "Cancel one or more submitted jobs.",
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

		for _, id := range args {
			if err := b.Cancel(id); err != nil {
				return fmt.Errorf("failed to cancel job %s: %v", id, err)
			}
			log.Info("Canceled job", "jobID", id)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config File")
}
