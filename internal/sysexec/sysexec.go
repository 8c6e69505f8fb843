// Package sysexec wraps synchronous subprocess execution behind a small
// interface so callers can be tested without spawning real processes.
package sysexec

import (
	"os/exec"
)

// Runner executes external commands. Run blocks until the child exits and
// returns its exit code; there is no timeout, so a hung child hangs the
// caller. LookPath reports whether a command is available on PATH.
type Runner interface {
	Run(name string, args ...string) (int, error)
	LookPath(name string) bool
}

type execRunner struct{}

// New returns a Runner backed by os/exec.
func New() Runner {
	return execRunner{}
}

// Run starts name with args, an empty environment, and discarded stdio,
// and waits for it to exit. The exit code is meaningful only when err is
// nil or the error wraps an exit status.
func (execRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = []string{}
	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		// Could not be started at all (missing script, permissions).
		return -1, err
	}
	return 0, nil
}

// LookPath reports whether name resolves to an executable on PATH.
func (execRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
