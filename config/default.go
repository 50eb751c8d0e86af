package config

import (
	"os"
	"path"
	"time"

	"github.com/ZettaAI/SEAMLeSS/logger"
)

// DefaultConfig returns configuration with simple defaults, matching the
// cluster setup this tool was written for. Most deployments override at
// least the dataset paths and the mail recipient.
func DefaultConfig() Config {
	cwd, _ := os.Getwd()
	workDir := path.Join(cwd, "slaunch-work-dir")
	home, _ := os.UserHomeDir()

	return Config{
		Launch: Launch{
			Program:       "train.py",
			WorkDir:       "/home/runzhey/SEAMLeSS/",
			CondaRoot:     path.Join(home, "miniconda3"),
			CondaEnv:      "rllab3",
			Locale:        "en_US.UTF-8",
			NumWorkers:    8,
			GPUIds:        []int{0, 1, 2, 3, 4, 5, 6, 7},
			TrainingSet:   "data/training_set.h5",
			ValidationSet: "data/validation_set.h5",
			Height:        8,
			Seed:          1,
			LearningRate:  0.00003,
			Lambda1:       0.1,
			Plan:          "stack",
			Update:        true,
			Encodings:     true,
		},
		Slurm: Slurm{
			Template:    slurmTemplate,
			WorkDir:     workDir,
			Nodes:       1,
			CpusPerTask: 16,
			Gpus:        8,
			RamGb:       300.0,
			WallTime:    "7-00:00:00",
			OutputPath:  "slurm-%j.out",
			MailType:    "END,FAIL",
			PollRate:    Duration(time.Second * 30),
		},
		Logger: logger.DefaultConfig(),
	}
}
