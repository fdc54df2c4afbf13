package runner

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"devsetup/internal/logger"
)

// Runner executes an external command in a working directory and reports
// whether it exited cleanly. Hook setup uses it to invoke npm and npx; the
// interface exists so orchestration logic is testable without spawning
// real subprocesses.
type Runner interface {
	Run(dir, name string, args ...string) error
}

// Exec is the production Runner built on os/exec. Commands run synchronously
// with their standard streams forwarded to the parent process, so npm's own
// progress output reaches the user directly.
type Exec struct {
	Log logger.Logger
}

// Run executes name with args in dir and blocks until it exits. A nonzero
// exit status (or a failure to start) is returned as an error; it is up to
// the caller to log and continue, never to panic.
func (e *Exec) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	e.Log.Debug("running command: %s", strings.Join(cmd.Args, " "))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}
