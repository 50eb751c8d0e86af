package launch

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/rs/xid"
	"github.com/spf13/cobra"

	cmdutil "github.com/ZettaAI/SEAMLeSS/cmd/util"
	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/launcher"
	"github.com/ZettaAI/SEAMLeSS/logger"
	"github.com/ZettaAI/SEAMLeSS/util"
	"github.com/ZettaAI/SEAMLeSS/version"
)

// NewCommand returns the launch command.
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	Run func(ctx context.Context, conf config.Config, log *logger.Logger) (int, error)
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		Run: Run,
	}

	var (
		configFile string
		flagConf   config.Config
	)

	cmd := &cobra.Command{
		Use:   "launch [run name]",
		Short: "Run the training job on this host.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := cmdutil.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}

			if len(args) > 0 {
				conf.Launch.RunName = args[0]
			}
			if conf.Launch.RunName == "" {
				conf.Launch.RunName = xid.New().String()
			}

			log := logger.NewLogger("slaunch", conf.Logger)
			log.Info("Version", version.LogFields()...)

			ctx := util.SignalContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			code, err := hooks.Run(ctx, conf, log)
			if err != nil {
				log.Error("Launch failed", err)
			}
			if code != 0 {
				// The launcher's exit status equals the child's.
				os.Exit(code)
			}
			return err
		},
	}

	cmd.SetGlobalNormalizationFunc(cmdutil.NormalizeFlags)
	cmd.Flags().AddFlagSet(cmdutil.LaunchFlags(&flagConf, &configFile))

	return cmd, hooks
}

// Run executes the launch sequence and blocks until the training program
// exits.
func Run(ctx context.Context, conf config.Config, log *logger.Logger) (int, error) {
	launcher.CheckHost(conf.Slurm, log.Sub("hostcheck"))

	l := &launcher.Launcher{
		Conf:   conf.Launch,
		Log:    log.Sub("launcher", "run", conf.Launch.RunName),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return l.Run(ctx)
}
