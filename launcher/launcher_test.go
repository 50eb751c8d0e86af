package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
)

func testLogger() *logger.Logger {
	l := logger.NewLogger("test", logger.DefaultConfig())
	l.Discard()
	return l
}

// testConf builds a launch config with a fake conda environment and a fake
// training program that records its arguments.
func testConf(t *testing.T, script string) config.Launch {
	tmp := t.TempDir()

	conf := config.DefaultConfig().Launch
	conf.RunName = "test-run"
	conf.CondaRoot = tmp
	conf.WorkDir = filepath.Join(tmp, "workdir")

	err := os.MkdirAll(filepath.Join(tmp, "envs", conf.CondaEnv, "bin"), 0755)
	if err != nil {
		t.Fatal(err)
	}
	err = os.MkdirAll(conf.WorkDir, 0755)
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(filepath.Join(conf.WorkDir, conf.Program), []byte(script), 0755)
	if err != nil {
		t.Fatal(err)
	}
	return conf
}

const recordScript = "#!/bin/sh\necho \"$@\" > args.out\n"

func TestRunHappyPath(t *testing.T) {
	conf := testConf(t, recordScript)
	l := &Launcher{Conf: conf, Log: testLogger()}

	code, err := l.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Fatal("unexpected exit code", code)
	}

	out, err := os.ReadFile(filepath.Join(conf.WorkDir, "args.out"))
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join(Args(conf), " ") + "\n"
	if string(out) != expected {
		t.Fatalf("unexpected child args:\nwant %q\ngot  %q", expected, string(out))
	}
}

func TestRunExitCode(t *testing.T) {
	conf := testConf(t, "#!/bin/sh\nexit 3\n")
	l := &Launcher{Conf: conf, Log: testLogger()}

	code, err := l.Run(context.Background())
	if code != 3 {
		t.Fatal("unexpected exit code", code)
	}

	var cerr *ChildFailedError
	if !errors.As(err, &cerr) || cerr.Code != 3 {
		t.Fatal("expected ChildFailedError with code 3, got", err)
	}
}

func TestRunMissingEnvironment(t *testing.T) {
	conf := testConf(t, recordScript)
	conf.CondaEnv = "nonexistent"
	l := &Launcher{Conf: conf, Log: testLogger()}

	_, err := l.Run(context.Background())

	var eerr *EnvironmentNotFoundError
	if !errors.As(err, &eerr) {
		t.Fatal("expected EnvironmentNotFoundError, got", err)
	}
	if eerr.Name != "nonexistent" {
		t.Error("unexpected environment name", eerr.Name)
	}

	// No child process may be spawned after the failure.
	if _, err := os.Stat(filepath.Join(conf.WorkDir, "args.out")); !os.IsNotExist(err) {
		t.Fatal("child process was spawned despite a missing environment")
	}
}

func TestRunMissingWorkDir(t *testing.T) {
	conf := testConf(t, recordScript)
	conf.WorkDir = filepath.Join(conf.WorkDir, "nonexistent")
	l := &Launcher{Conf: conf, Log: testLogger()}

	_, err := l.Run(context.Background())

	var derr *DirectoryNotFoundError
	if !errors.As(err, &derr) {
		t.Fatal("expected DirectoryNotFoundError, got", err)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	conf := testConf(t, recordScript)
	conf.Program = "missing-program-xyz"
	l := &Launcher{Conf: conf, Log: testLogger()}

	_, err := l.Run(context.Background())

	var xerr *ExecutableNotFoundError
	if !errors.As(err, &xerr) {
		t.Fatal("expected ExecutableNotFoundError, got", err)
	}
}

func TestEnviron(t *testing.T) {
	conf := config.DefaultConfig().Launch
	envBin := "/opt/conda/envs/rllab3/bin"

	env := Environ(conf, envBin)

	byKey := map[string]string{}
	for _, kv := range env {
		if i := strings.Index(kv, "="); i != -1 {
			byKey[kv[:i]] = kv[i+1:]
		}
	}

	for _, k := range []string{"LANGUAGE", "LANG", "LC_ALL"} {
		if byKey[k] != "en_US.UTF-8" {
			t.Error("unexpected locale value", k, byKey[k])
		}
	}
	if !strings.HasPrefix(byKey["PATH"], envBin+string(os.PathListSeparator)) {
		t.Error("environment bin dir not prepended to PATH", byKey["PATH"])
	}
	if byKey["CONDA_DEFAULT_ENV"] != "rllab3" {
		t.Error("unexpected CONDA_DEFAULT_ENV", byKey["CONDA_DEFAULT_ENV"])
	}
	if byKey["CONDA_PREFIX"] != "/opt/conda/envs/rllab3" {
		t.Error("unexpected CONDA_PREFIX", byKey["CONDA_PREFIX"])
	}

	// The launcher's own environment is untouched.
	if os.Getenv("CONDA_PREFIX") == "/opt/conda/envs/rllab3" {
		t.Error("parent environment was mutated")
	}
}
