package slurm

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
	"github.com/ZettaAI/SEAMLeSS/util"
)

// Commands used to talk to the cluster manager.
const (
	submitCmd = "sbatch"
	cancelCmd = "scancel"
	queueCmd  = "squeue"
	acctCmd   = "sacct"
)

// ErrJobIDNotFound is returned when the job ID cannot be parsed from the
// sbatch output.
var ErrJobIDNotFound = errors.New("could not find a job ID in the sbatch output")

// Backend submits launch jobs to a Slurm cluster by rendering the resource
// request into a batch script and handing it to sbatch.
type Backend struct {
	Conf config.Config
	Log  *logger.Logger
}

// NewBackend returns a new Slurm Backend instance.
func NewBackend(conf config.Config, log *logger.Logger) *Backend {
	return &Backend{Conf: conf, Log: log}
}

// Submit renders the submit file for the given run and hands it to sbatch.
// Returns the Slurm job ID.
func (b *Backend) Submit(runName string) (string, error) {
	submitPath, err := b.setupSubmit(runName)
	if err != nil {
		return "", err
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd := exec.Command(submitCmd, submitPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		b.Log.Error("Error submitting job",
			"error", err, "stderr", stderr.String(), "stdout", stdout.String())
		return "", fmt.Errorf("sbatch failed: %v", err)
	}

	jobID := extractID(stdout.String())
	if jobID == "" {
		return "", ErrJobIDNotFound
	}

	b.Log.Info("Submitted batch job", "run", runName, "jobID", jobID)
	return jobID, nil
}

// Cancel cancels a submitted job via scancel.
func (b *Backend) Cancel(jobID string) error {
	return exec.Command(cancelCmd, jobID).Run()
}

// setupSubmit writes the run's submission directory: the effective config
// that the remote "slaunch launch" consumes and the templated submit file.
// The directory needs manual cleanup.
func (b *Backend) setupSubmit(runName string) (string, error) {
	workdir, err := filepath.Abs(path.Join(b.Conf.Slurm.WorkDir, runName))
	if err == nil {
		err = util.EnsureDir(workdir)
	}
	if err != nil {
		return "", err
	}

	conf := b.Conf
	conf.Launch.RunName = runName
	confPath := path.Join(workdir, "launch.conf.yml")
	if err := config.ToYamlFile(conf, confPath); err != nil {
		return "", err
	}

	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to detect path of the slaunch binary")
	}

	submitPath := path.Join(workdir, "slurm.submit")
	f, err := os.Create(submitPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	submitTpl, err := template.New("slurm.submit").Parse(b.Conf.Slurm.Template)
	if err != nil {
		return "", err
	}

	output := b.Conf.Slurm.OutputPath
	if output == "" {
		output = "slurm-%j.out"
	}
	if !path.IsAbs(output) {
		output = path.Join(workdir, output)
	}

	err = submitTpl.Execute(f, map[string]interface{}{
		"RunName":    runName,
		"Executable": executable,
		"Config":     confPath,
		"WorkDir":    workdir,
		"Output":     output,
		"Nodes":      b.Conf.Slurm.Nodes,
		"Cpus":       b.Conf.Slurm.CpusPerTask,
		"Gpus":       b.Conf.Slurm.Gpus,
		"RamGb":      b.Conf.Slurm.RamGb,
		"WallTime":   b.Conf.Slurm.WallTime,
		"MailType":   b.Conf.Slurm.MailType,
		"MailUser":   b.Conf.Slurm.MailUser,
	})
	if err != nil {
		return "", err
	}

	return submitPath, nil
}

// extractID extracts the job id from the response returned by the `sbatch`
// command. Example response:
// Submitted batch job 2
func extractID(in string) string {
	re := regexp.MustCompile(`Submitted batch job ([0-9]+)`)
	m := re.FindStringSubmatch(in)
	if m == nil {
		return ""
	}
	return m[1]
}
