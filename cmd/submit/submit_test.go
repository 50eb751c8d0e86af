package submit

import (
	"testing"

	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
)

func TestSubmitFlagConfig(t *testing.T) {
	cmd, h := newCommandHooks()

	var gotConf config.Config
	var gotRun string
	h.Submit = func(conf config.Config, runName string, log *logger.Logger) (string, error) {
		gotConf = conf
		gotRun = runName
		return "42", nil
	}

	cmd.SetArgs([]string{
		"my-run",
		"--Slurm.Gpus", "4",
		"--Slurm.WallTime", "1-00:00:00",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if gotRun != "my-run" {
		t.Error("unexpected run name", gotRun)
	}
	if gotConf.Slurm.Gpus != 4 {
		t.Error("unexpected gpu count", gotConf.Slurm.Gpus)
	}
	if gotConf.Slurm.WallTime != "1-00:00:00" {
		t.Error("unexpected wall time", gotConf.Slurm.WallTime)
	}
	// untouched values fall through to defaults
	if gotConf.Slurm.Nodes != 1 {
		t.Error("unexpected node count", gotConf.Slurm.Nodes)
	}
}
