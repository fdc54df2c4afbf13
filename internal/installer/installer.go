// Package installer sequences one tool setup: copy bundled configs, merge
// package.json entries, install Git hooks, persist the manifest.
package installer

import (
	"io/fs"
	"path/filepath"

	"devsetup/internal/assets"
	"devsetup/internal/copier"
	"devsetup/internal/hooks"
	"devsetup/internal/logger"
	"devsetup/internal/manifest"
	"devsetup/internal/prompt"
	"devsetup/internal/runner"
)

// Setup carries the capabilities one installer run needs. Everything is
// injected so the whole orchestration runs in tests against a temp
// directory with scripted prompts and a fake command runner.
type Setup struct {
	Dir     string
	Assets  fs.FS
	Log     logger.Logger
	Confirm prompt.Confirmer
	Run     runner.Runner
}

// total is the number of numbered steps every run logs.
const total = 4

// Install runs the full setup sequence for the named bundled tool.
//
// The returned error is reserved for fatal preconditions and the final
// manifest write: a missing or invalid package.json, a missing bundled
// descriptor, a project that is not a Git repository, or a failure to
// persist the manifest. Every other failure along the way is logged and the
// remaining steps proceed, so one bad file never wastes the whole run.
//
// The manifest is read once up front, mutated in memory, and written back
// exactly once at the end; an abort in between leaves package.json on disk
// exactly as it was.
func (s *Setup) Install(tool string) error {
	desc, err := assets.LoadDescriptor(s.Assets, tool)
	if err != nil {
		return err
	}

	manifestPath := filepath.Join(s.Dir, "package.json")
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	s.Log.Info("setting up %s: %s", desc.Name, desc.Summary)

	// Step 1: copy the bundled config files, prompting before overwrites.
	s.Log.Info("[1/%d] copying bundled config files", total)
	toolDir, err := assets.ToolDir(s.Assets, tool)
	if err != nil {
		return err
	}
	c := &copier.Copier{Source: toolDir, DestDir: s.Dir, Log: s.Log, Confirm: s.Confirm}
	tally := c.CopyBatch(desc.Files, true)
	s.Log.Info("copied %d, skipped %d, failed %d", tally.Copied, tally.Skipped, tally.Failed)

	// Step 2: merge scripts and the tool's config block into the manifest.
	// Existing user scripts win; the config block merges shallowly.
	s.Log.Info("[2/%d] updating package.json", total)
	m.MergeScripts(s.Log, desc.Scripts, false)
	if desc.Config.Key != "" {
		m.MergeConfigBlock(s.Log, desc.Config.Key, desc.Config.Value, desc.Config.Merge)
	}

	// Step 3: Git hooks. A missing repository is fatal; a declined husky
	// install or init skips this step and the run carries on.
	s.Log.Info("[3/%d] installing git hooks", total)
	h := &hooks.Installer{Dir: s.Dir, Log: s.Log, Confirm: s.Confirm, Run: s.Run}
	ready, err := h.EnsureReady()
	if err != nil {
		return err
	}
	if ready {
		for _, hook := range desc.Hooks {
			if err := h.Install(hook.Name, hook.Command, false); err != nil {
				s.Log.Error("hook %s: %v", hook.Name, err)
			}
		}
		m.MergeScripts(s.Log, map[string]string{"prepare": "husky"}, false)
	}

	// Step 4: persist the manifest. This is the run's primary goal, so a
	// write failure here is fatal.
	s.Log.Info("[4/%d] writing package.json", total)
	if err := m.Save(manifestPath); err != nil {
		return err
	}

	s.Log.Success("%s setup complete", desc.Name)
	return nil
}
