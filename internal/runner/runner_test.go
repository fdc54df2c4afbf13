package runner_test

import (
	"io"
	"strings"
	"testing"

	"devsetup/internal/logger"
	"devsetup/internal/runner"
)

func TestExec_Run_Success(t *testing.T) {
	e := &runner.Exec{Log: logger.New(io.Discard, false)}

	if err := e.Run(t.TempDir(), "true"); err != nil {
		t.Errorf("Run(true) = %v, want nil", err)
	}
}

func TestExec_Run_NonzeroExit(t *testing.T) {
	e := &runner.Exec{Log: logger.New(io.Discard, false)}

	err := e.Run(t.TempDir(), "false")
	if err == nil {
		t.Fatal("Run(false) should report the nonzero exit")
	}
	if !strings.Contains(err.Error(), "false") {
		t.Errorf("error should name the failed command, got %q", err)
	}
}

func TestExec_Run_MissingBinary(t *testing.T) {
	e := &runner.Exec{Log: logger.New(io.Discard, false)}

	if err := e.Run(t.TempDir(), "devsetup-no-such-binary"); err == nil {
		t.Fatal("Run on a missing binary should fail")
	}
}

func TestExec_Run_RespectsWorkingDir(t *testing.T) {
	dir := t.TempDir()
	e := &runner.Exec{Log: logger.New(io.Discard, false)}

	// touch creates the file relative to the configured working directory.
	if err := e.Run(dir, "touch", "marker"); err != nil {
		t.Fatalf("Run(touch) = %v", err)
	}
	if err := e.Run(dir, "test", "-f", "marker"); err != nil {
		t.Errorf("marker file not created in working dir: %v", err)
	}
}
