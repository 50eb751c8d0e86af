package launcher

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"

	"github.com/ZettaAI/SEAMLeSS/config"
	"github.com/ZettaAI/SEAMLeSS/logger"
)

// Launcher produces a fully specified invocation of the external training
// program from static configuration, runs it, and propagates its exit code.
type Launcher struct {
	Conf   config.Launch
	Log    *logger.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the launch sequence: resolve the runtime environment, check
// the working directory, resolve the program, invoke it. The sequence is
// strictly linear; the first failure aborts the job and no child process is
// spawned. Run blocks until the training program exits and returns its
// exit code.
func (l *Launcher) Run(ctx context.Context) (int, error) {
	log := l.Log
	if log == nil {
		log = logger.NewLogger("launcher", logger.DefaultConfig())
	}

	envBin, err := ResolveEnv(l.Conf.CondaRoot, l.Conf.CondaEnv)
	if err != nil {
		return 0, err
	}
	log.Debug("Resolved runtime environment", "env", l.Conf.CondaEnv, "bin", envBin)

	workdir, err := filepath.Abs(l.Conf.WorkDir)
	if err == nil {
		var info os.FileInfo
		info, err = os.Stat(workdir)
		if err == nil && !info.IsDir() {
			err = os.ErrNotExist
		}
	}
	if err != nil {
		return 0, &DirectoryNotFoundError{Path: l.Conf.WorkDir}
	}

	prog, err := resolveProgram(l.Conf.Program, workdir, envBin)
	if err != nil {
		return 0, err
	}

	args := Args(l.Conf)
	log.Info("Launching training program",
		"run", l.Conf.RunName,
		"cmd", shellquote.Join(append([]string{prog}, args...)...),
		"workDir", workdir)

	cmd := exec.CommandContext(ctx, prog, args...)
	cmd.Dir = workdir
	cmd.Env = Environ(l.Conf, envBin)
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	runErr := cmd.Run()
	if runErr != nil {
		code := getExitCode(runErr, log)
		return code, &ChildFailedError{Code: code}
	}

	log.Info("Training program completed", "run", l.Conf.RunName)
	return 0, nil
}

// resolveProgram resolves the training program either relative to the
// working directory or on a search path with the working directory and the
// runtime environment's bin directory first.
func resolveProgram(program, workdir, envBin string) (string, error) {
	if strings.ContainsRune(program, os.PathSeparator) {
		p := program
		if !filepath.IsAbs(p) {
			p = filepath.Join(workdir, p)
		}
		if !isExecutable(p) {
			return "", &ExecutableNotFoundError{Path: program}
		}
		return p, nil
	}

	dirs := append([]string{workdir, envBin}, filepath.SplitList(os.Getenv("PATH"))...)
	for _, dir := range dirs {
		p := filepath.Join(dir, program)
		if isExecutable(p) {
			return p, nil
		}
	}
	return "", &ExecutableNotFoundError{Path: program}
}

func isExecutable(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir() && info.Mode()&0111 != 0
}

// getExitCode gets the exit status (i.e. exit code) from the result of an
// executed command. The exit code is zero if the command completed without
// error.
func getExitCode(err error, log *logger.Logger) int {
	if err != nil {
		if exiterr, exitOk := err.(*exec.ExitError); exitOk {
			if status, statusOk := exiterr.Sys().(syscall.WaitStatus); statusOk {
				return status.ExitStatus()
			}
		}
		log.Info("Could not determine exit code. Using default -999", "err", err)
		return -999
	}
	return 0
}
