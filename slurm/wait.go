package slurm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ZettaAI/SEAMLeSS/util"
)

// terminalStates are the Slurm job states a job never leaves.
var terminalStates = map[string]bool{
	"BOOT_FAIL":     true,
	"CANCELLED":     true,
	"COMPLETED":     true,
	"DEADLINE":      true,
	"FAILED":        true,
	"NODE_FAIL":     true,
	"OUT_OF_MEMORY": true,
	"PREEMPTED":     true,
	"TIMEOUT":       true,
}

// Wait blocks until the job reaches a terminal state. Terminal states other
// than COMPLETED return an error.
func (b *Backend) Wait(ctx context.Context, jobID string) error {
	rate := time.Duration(b.Conf.Slurm.PollRate)
	if rate <= 0 {
		rate = time.Second * 30
	}
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	// Transient slurmctld timeouts are common; retry the state query.
	retrier := util.NewRetrier()
	retrier.MaxTries = 5

	for {
		var state string
		err := retrier.Retry(ctx, func() error {
			var qerr error
			state, qerr = jobState(jobID)
			return qerr
		})
		if err != nil {
			return err
		}

		b.Log.Debug("Polled job state", "jobID", jobID, "state", state)

		if terminalStates[state] {
			if state != "COMPLETED" {
				return fmt.Errorf("job %s finished in state %s", jobID, state)
			}
			b.Log.Info("Job completed", "jobID", jobID)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// jobState asks squeue for the job's state, falling back to sacct once the
// job has left the queue.
func jobState(jobID string) (string, error) {
	out, err := exec.Command(queueCmd, "-h", "-o", "%T", "-j", jobID).Output()
	state := parseState(string(out))
	if err == nil && state != "" {
		return state, nil
	}

	out, err = exec.Command(acctCmd, "-n", "-X", "-o", "State", "-j", jobID).Output()
	if err != nil {
		return "", fmt.Errorf("failed to query state of job %s: %v", jobID, err)
	}
	return parseState(string(out)), nil
}

// parseState normalizes scheduler output, e.g. "CANCELLED by 1234" or a
// state with a "+" suffix.
func parseState(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	state := fields[0]
	if i := strings.IndexRune(state, '+'); i != -1 {
		state = state[:i]
	}
	return state
}
