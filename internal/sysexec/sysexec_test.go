package sysexec

import (
	"runtime"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	r := New()

	code, err := r.Run("true")
	if err != nil || code != 0 {
		t.Errorf("Run(true) = (%d, %v), want (0, nil)", code, err)
	}

	code, err = r.Run("false")
	if err != nil || code == 0 {
		t.Errorf("Run(false) = (%d, %v), want nonzero code and nil error", code, err)
	}
}

func TestRunMissingCommand(t *testing.T) {
	r := New()
	_, err := r.Run("/nonexistent/definitely-not-a-command")
	if err == nil {
		t.Error("Run of missing command should return an error")
	}
}

func TestLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	r := New()
	if !r.LookPath("sh") {
		t.Error("LookPath(sh) = false, want true")
	}
	if r.LookPath("definitely-not-a-command-xyzzy") {
		t.Error("LookPath of missing command = true, want false")
	}
}
