package slurm

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
)

func testLogger() *logger.Logger {
	l := logger.NewLogger("test", logger.DefaultConfig())
	l.Discard()
	return l
}

func TestSetupSubmit(t *testing.T) {
	tmp := t.TempDir()

	conf := config.DefaultConfig()
	conf.Slurm.WorkDir = tmp
	conf.Slurm.MailUser = "runzhey@example.com"

	b := NewBackend(conf, testLogger())

	sf, err := b.setupSubmit("test-run")
	if err != nil {
		t.Fatal(err)
	}

	actual, rerr := os.ReadFile(sf)
	if rerr != nil {
		t.Fatal(rerr)
	}

	executable, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}

	workdir := filepath.Join(tmp, "test-run")
	expected := `#!/bin/bash
#SBATCH --job-name test-run
#SBATCH --ntasks 1
#SBATCH --nodes 1
#SBATCH --error %s/slaunch-stderr
#SBATCH --output %s/slurm-%%j.out
#SBATCH --cpus-per-task 16
#SBATCH --gres gpu:8
#SBATCH --mem 300GB
#SBATCH --time 7-00:00:00
#SBATCH --mail-type END,FAIL
#SBATCH --mail-user runzhey@example.com

%s launch --config %s/launch.conf.yml
`
	expected = fmt.Sprintf(expected, workdir, workdir, executable, workdir)

	if string(actual) != expected {
		t.Fatalf("unexpected submit file content:\nwant:\n%s\ngot:\n%s", expected, string(actual))
	}

	// The per-run config must carry the run name for the remote launch.
	var remote config.Config
	raw, err := os.ReadFile(filepath.Join(workdir, "launch.conf.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := config.Parse(raw, &remote); err != nil {
		t.Fatal(err)
	}
	if remote.Launch.RunName != "test-run" {
		t.Error("unexpected run name in per-run config", remote.Launch.RunName)
	}
}

func TestExtractID(t *testing.T) {
	if id := extractID("Submitted batch job 2\n"); id != "2" {
		t.Error("unexpected job ID", id)
	}
	if id := extractID("sbatch: verbose output\nSubmitted batch job 1234\n"); id != "1234" {
		t.Error("unexpected job ID", id)
	}
	if id := extractID("something went wrong"); id != "" {
		t.Error("expected no job ID, got", id)
	}
}

func TestParseState(t *testing.T) {
	cases := map[string]string{
		"RUNNING\n":           "RUNNING",
		"PENDING":             "PENDING",
		"CANCELLED by 1001\n": "CANCELLED",
		"CANCELLED+":          "CANCELLED",
		" COMPLETED \n":       "COMPLETED",
		"":                    "",
	}
	for in, want := range cases {
		if got := parseState(in); got != want {
			t.Errorf("parseState(%q) = %q, want %q", in, got, want)
		}
	}
}
