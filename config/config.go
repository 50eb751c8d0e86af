package config

import (
	"github.com/ZettaAI/SEAMLeSS/logger"
)

// Config describes configuration for slaunch.
type Config struct {
	Launch Launch
	Slurm  Slurm
	Logger logger.Config
}

// Launch describes one invocation of the external training program: the
// runtime environment it runs in, where it runs, and the full set of
// hyperparameter arguments passed to it. It is built once at process start
// and never mutated afterwards.
type Launch struct {
	// RunName identifies the training run. A name is generated when empty.
	RunName string
	// Program is the training executable. It is resolved relative to the
	// working directory when it contains a path separator, otherwise it is
	// looked up on the activated environment's PATH.
	Program string
	// WorkDir is the directory the training program runs in.
	WorkDir string

	// CondaRoot is the root of the conda install holding runtime environments.
	CondaRoot string
	// CondaEnv names the runtime environment the program runs in.
	CondaEnv string
	// Locale is applied to LANGUAGE, LANG, and LC_ALL in the child environment.
	Locale string

	NumWorkers    int
	GPUIds        []int
	TrainingSet   string
	ValidationSet string
	Height        int
	Seed          int
	LearningRate  float64
	Lambda1       float64
	Plan          string
	// Update enables the "-u" flag.
	Update bool
	// Encodings enables the "--encodings" flag.
	Encodings bool
}

// Slurm describes the resource request rendered into #SBATCH directives,
// plus the submission working directory. The request is consumed by the
// cluster manager; the launcher itself never inspects it.
type Slurm struct {
	// Template is the submit file template.
	// See template.go for the available fields.
	Template string
	// WorkDir is where submit files and per-run configs are written.
	WorkDir     string
	Nodes       int
	CpusPerTask int
	Gpus        int
	RamGb       float64
	// WallTime is a Slurm time limit, e.g. "7-00:00:00".
	WallTime   string
	OutputPath string
	MailType   string
	MailUser   string
	// PollRate is how often "slaunch wait" checks job state.
	PollRate Duration
}
