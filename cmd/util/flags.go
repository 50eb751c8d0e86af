package util

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/ZettaAI/SEAMLeSS/config"
)

// LaunchFlags returns a new flag set for configuring a local launch.
func LaunchFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(launchFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

// SubmitFlags returns a new flag set for configuring a Slurm submission.
func SubmitFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(launchFlags(flagConf))
	f.AddFlagSet(slurmFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

func launchFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Launch.Program, "Launch.Program", flagConf.Launch.Program, "Training program to execute")
	f.StringVar(&flagConf.Launch.WorkDir, "Launch.WorkDir", flagConf.Launch.WorkDir, "Directory the training program runs in")
	f.StringVar(&flagConf.Launch.CondaRoot, "Launch.CondaRoot", flagConf.Launch.CondaRoot, "Root of the conda install")
	f.StringVar(&flagConf.Launch.CondaEnv, "Launch.CondaEnv", flagConf.Launch.CondaEnv, "Runtime environment name")
	f.StringVar(&flagConf.Launch.Locale, "Launch.Locale", flagConf.Launch.Locale, "Locale applied to LANGUAGE, LANG, and LC_ALL")
	f.IntVar(&flagConf.Launch.NumWorkers, "Launch.NumWorkers", flagConf.Launch.NumWorkers, "Parallel worker count")
	f.IntSliceVar(&flagConf.Launch.GPUIds, "Launch.GpuIds", flagConf.Launch.GPUIds, "GPU device id. This flag can be used multiple times")
	f.StringVar(&flagConf.Launch.TrainingSet, "Launch.TrainingSet", flagConf.Launch.TrainingSet, "Training data file")
	f.StringVar(&flagConf.Launch.ValidationSet, "Launch.ValidationSet", flagConf.Launch.ValidationSet, "Validation data file")
	f.IntVar(&flagConf.Launch.Height, "Launch.Height", flagConf.Launch.Height, "Model height")
	f.IntVar(&flagConf.Launch.Seed, "Launch.Seed", flagConf.Launch.Seed, "RNG seed")
	f.Float64Var(&flagConf.Launch.LearningRate, "Launch.LearningRate", flagConf.Launch.LearningRate, "Learning rate")
	f.Float64Var(&flagConf.Launch.Lambda1, "Launch.Lambda1", flagConf.Launch.Lambda1, "Loss weighting coefficient")
	f.StringVar(&flagConf.Launch.Plan, "Launch.Plan", flagConf.Launch.Plan, "Execution plan selector")
	f.BoolVar(&flagConf.Launch.Update, "Launch.Update", flagConf.Launch.Update, "Pass the -u flag to the training program")
	f.BoolVar(&flagConf.Launch.Encodings, "Launch.Encodings", flagConf.Launch.Encodings, "Pass the --encodings flag to the training program")

	return f
}

func slurmFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Slurm.WorkDir, "Slurm.WorkDir", flagConf.Slurm.WorkDir, "Directory submit files are written to")
	f.IntVar(&flagConf.Slurm.Nodes, "Slurm.Nodes", flagConf.Slurm.Nodes, "Node count")
	f.IntVar(&flagConf.Slurm.CpusPerTask, "Slurm.CpusPerTask", flagConf.Slurm.CpusPerTask, "Cpus per task")
	f.IntVar(&flagConf.Slurm.Gpus, "Slurm.Gpus", flagConf.Slurm.Gpus, "GPU count")
	f.Float64Var(&flagConf.Slurm.RamGb, "Slurm.RamGb", flagConf.Slurm.RamGb, "Memory ceiling (GB)")
	f.StringVar(&flagConf.Slurm.WallTime, "Slurm.WallTime", flagConf.Slurm.WallTime, "Wall-clock limit, e.g. 7-00:00:00")
	f.StringVar(&flagConf.Slurm.OutputPath, "Slurm.OutputPath", flagConf.Slurm.OutputPath, "Job output log path")
	f.StringVar(&flagConf.Slurm.MailType, "Slurm.MailType", flagConf.Slurm.MailType, "Mail notification triggers")
	f.StringVar(&flagConf.Slurm.MailUser, "Slurm.MailUser", flagConf.Slurm.MailUser, "Mail recipient address")
	f.Var(&flagConf.Slurm.PollRate, "Slurm.PollRate", "Job state poll rate")

	return f
}

func loggerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Logger.Level, "Logger.Level", flagConf.Logger.Level, "Level of logging")
	f.StringVar(&flagConf.Logger.OutputFile, "Logger.OutputFile", flagConf.Logger.OutputFile, "File path to write logs to")
	f.StringVar(&flagConf.Logger.Formatter, "Logger.Formatter", flagConf.Logger.Formatter, "Logs formatter. One of ['text', 'json']")

	return f
}

func normalize(name string) string {
	from := []string{"-", "_"}
	to := "."
	for _, sep := range from {
		name = strings.Replace(name, sep, to, -1)
	}
	return strings.ToLower(name)
}

// NormalizeFlags allows for flags to be case and separator insensitive.
// Use it by passing it to cobra.Command.SetGlobalNormalizationFunc
func NormalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	lookup := map[string]string{"help": "help", normalize(name): name}

	f.VisitAll(func(f *pflag.Flag) {
		lookup[normalize(f.Name)] = f.Name
	})

	return pflag.NormalizedName(lookup[normalize(name)])
}
