// Package hooks manages Git hook files under .husky/ and the husky
// dependency they rely on.
package hooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"devsetup/internal/logger"
	"devsetup/internal/prompt"
	"devsetup/internal/runner"
)

// preamble is the fixed two-line bootstrap every hook file starts with.
// Husky's shim sources it to locate the project and load user environment.
const preamble = "#!/usr/bin/env sh\n. \"$(dirname -- \"$0\")/_/husky.sh\"\n"

// ErrNotGitRepo means the project directory has no .git directory. Hooks
// cannot exist without a repository, so this is fatal to the whole run.
var ErrNotGitRepo = errors.New(".git directory not found; run git init first")

// Installer writes hook files into <Dir>/.husky and, when the user agrees,
// installs or initializes husky via npm/npx.
type Installer struct {
	Dir     string
	Log     logger.Logger
	Confirm prompt.Confirmer
	Run     runner.Runner
}

// EnsureReady verifies the three preconditions for hook setup: the project
// is a Git repository, husky is installed under node_modules, and husky has
// been initialized (.husky/_/husky.sh exists).
//
// A missing repository returns ErrNotGitRepo. The other two conditions
// trigger a yes/no prompt offering to run the fixing command; declining, or
// the command exiting nonzero, yields (false, nil) with a warning so the
// caller can skip hook setup and carry on with the rest of the run.
func (i *Installer) EnsureReady() (bool, error) {
	if info, err := os.Stat(filepath.Join(i.Dir, ".git")); err != nil || !info.IsDir() {
		return false, ErrNotGitRepo
	}

	if _, err := os.Stat(filepath.Join(i.Dir, "node_modules", "husky")); err != nil {
		if !i.Confirm.Confirm("husky is not installed. Install it with npm now?") {
			i.Log.Warn("husky not installed, skipping hook setup")
			return false, nil
		}
		if err := i.Run.Run(i.Dir, "npm", "install", "--save-dev", "husky"); err != nil {
			i.Log.Error("failed to install husky: %v", err)
			return false, nil
		}
		i.Log.Success("installed husky")
	}

	i.versionAdvisory()

	if _, err := os.Stat(filepath.Join(i.Dir, ".husky", "_", "husky.sh")); err != nil {
		if !i.Confirm.Confirm("husky is not initialized in this project. Run npx husky init?") {
			i.Log.Warn("husky not initialized, skipping hook setup")
			return false, nil
		}
		if err := i.Run.Run(i.Dir, "npx", "husky", "init"); err != nil {
			i.Log.Error("failed to initialize husky: %v", err)
			return false, nil
		}
		i.Log.Success("initialized husky")
	}

	return true, nil
}

// versionAdvisory warns when the installed husky predates v9, whose hook
// layout the files written here target. Anything unreadable is only a debug
// line: the advisory is best-effort and never blocks setup.
func (i *Installer) versionAdvisory() {
	raw, err := os.ReadFile(filepath.Join(i.Dir, "node_modules", "husky", "package.json"))
	if err != nil {
		i.Log.Debug("cannot read husky package.json: %v", err)
		return
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &pkg); err != nil {
		i.Log.Debug("cannot parse husky package.json: %v", err)
		return
	}

	v, err := semver.NewVersion(pkg.Version)
	if err != nil {
		i.Log.Debug("cannot parse husky version %q: %v", pkg.Version, err)
		return
	}
	if v.LessThan(semver.MustParse("9.0.0")) {
		i.Log.Warn("husky %s detected; hooks are written for husky 9+, consider upgrading", pkg.Version)
	}
}

// Install writes command into .husky/<hook>.
//
// An absent hook file is created with the bootstrap preamble plus the
// command and marked executable on non-Windows platforms (Windows hook
// invocation does not need the bit). A hook that already contains the exact
// command is an idempotent no-op reported as success. A hook present
// without the command prompts for permission to overwrite unless overwrite
// is already true; a refusal is a non-fatal skip. Overwriting replaces the
// file content wholesale.
func (i *Installer) Install(hook, command string, overwrite bool) error {
	dir := filepath.Join(i.Dir, ".husky")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, hook)

	existing, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fresh hook: preamble plus the command.
	case err != nil:
		return fmt.Errorf("read hook %s: %w", hook, err)
	case strings.Contains(string(existing), command):
		i.Log.Success("%s hook already configured", hook)
		return nil
	case !overwrite:
		if !i.Confirm.Confirm(fmt.Sprintf(".husky/%s exists with other content. Overwrite?", hook)) {
			i.Log.Warn("keeping existing %s hook", hook)
			return nil
		}
	}

	content := preamble + command + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write hook %s: %w", hook, err)
	}
	if err := markExecutable(path); err != nil {
		return fmt.Errorf("chmod hook %s: %w", hook, err)
	}

	i.Log.Success("installed %s hook", hook)
	return nil
}

// Append adds command to the end of an existing .husky/<hook> file. The
// hook must already exist; callers wanting creation use Install. A hook
// that already contains the command is left byte-identical.
func (i *Installer) Append(hook, command string) error {
	path := filepath.Join(i.Dir, ".husky", hook)

	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("hook %s does not exist, use Install instead: %w", hook, err)
	}
	if strings.Contains(string(existing), command) {
		i.Log.Success("%s hook already runs that command", hook)
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open hook %s: %w", hook, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + command); err != nil {
		return fmt.Errorf("append to hook %s: %w", hook, err)
	}

	i.Log.Success("added command to %s hook", hook)
	return nil
}

// markExecutable sets 755 on the hook file except on Windows, where Git
// invokes hooks through sh and the permission bit is meaningless.
func markExecutable(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, 0755)
}
