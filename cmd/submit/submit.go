package submit

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/spf13/cobra"

	cmdutil "github.com/ZettaAI/SEAMLeSS/cmd/util"
	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
	"github.com/ZettaAI/SEAMLeSS/slurm"
)

// NewCommand returns the submit command.
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	Submit func(conf config.Config, runName string, log *logger.Logger) (string, error)
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		Submit: Submit,
	}

	var (
		configFile string
		flagConf   config.Config
	)

	cmd := &cobra.Command{
		Use:   "submit [run name]",
		Short: "Submit the training job to Slurm.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := cmdutil.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}

			runName := conf.Launch.RunName
			if len(args) > 0 {
				runName = args[0]
			}
			if runName == "" {
				runName = xid.New().String()
			}

			log := logger.NewLogger("slaunch", conf.Logger)

			jobID, err := hooks.Submit(conf, runName, log)
			if err != nil {
				return err
			}

			fmt.Println(jobID)
			return nil
		},
	}

	cmd.SetGlobalNormalizationFunc(cmdutil.NormalizeFlags)
	cmd.Flags().AddFlagSet(cmdutil.SubmitFlags(&flagConf, &configFile))

	return cmd, hooks
}

// Submit renders the batch script for the run and hands it to sbatch.
func Submit(conf config.Config, runName string, log *logger.Logger) (string, error) {
	b := slurm.NewBackend(conf, log.Sub("slurm"))
	return b.Submit(runName)
}
