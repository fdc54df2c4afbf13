// Package copier writes bundled config files into the target project,
// prompting before anything already there is overwritten.
package copier

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"devsetup/internal/logger"
	"devsetup/internal/prompt"
)

// Outcome is the tri-state result of copying one file.
type Outcome int

const (
	// Copied: the file was written to the destination.
	Copied Outcome = iota
	// Skipped: the destination already exists and was left alone.
	Skipped
	// Failed: the bundled source is missing or the write itself failed.
	Failed
)

// Tally accumulates per-file outcomes over one batch copy. It is scoped to
// a single CopyBatch call and never persisted.
type Tally struct {
	Copied  int
	Skipped int
	Failed  int
}

// Copier copies files from a bundled source filesystem into a destination
// directory on disk.
type Copier struct {
	Source  fs.FS
	DestDir string
	Log     logger.Logger
	Confirm prompt.Confirmer
}

// CopyOne copies the named bundled file into the destination directory.
//
// If the destination exists and allowOverwrite is false the file is skipped
// with a warning. If it exists and allowOverwrite is true the user is asked
// first (empty answer means yes); a refusal skips without copying. A missing
// bundled source is the only hard failure and never creates the destination.
// Every path logs what happened; nothing here panics.
func (c *Copier) CopyOne(name string, allowOverwrite bool) Outcome {
	dest := filepath.Join(c.DestDir, name)

	if _, err := os.Stat(dest); err == nil {
		if !allowOverwrite {
			c.Log.Warn("%s already exists, skipping", name)
			return Skipped
		}
		if !c.Confirm.Confirm(name + " already exists. Overwrite?") {
			c.Log.Info("keeping existing %s", name)
			return Skipped
		}
	}

	src, err := c.Source.Open(name)
	if err != nil {
		c.Log.Error("bundled file %s is missing: %v", name, err)
		return Failed
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		c.Log.Error("failed to create %s: %v", dest, err)
		return Failed
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		c.Log.Error("failed to write %s: %v", dest, err)
		return Failed
	}
	if err := out.Close(); err != nil {
		c.Log.Error("failed to flush %s: %v", dest, err)
		return Failed
	}

	c.Log.Success("copied %s", name)
	return Copied
}

// CopyBatch applies CopyOne to each name in order and returns the tally.
// Order only matters for log readability; the outcomes are independent and
// one failure never stops the rest of the batch.
func (c *Copier) CopyBatch(names []string, allowOverwrite bool) Tally {
	var t Tally
	for _, name := range names {
		switch c.CopyOne(name, allowOverwrite) {
		case Copied:
			t.Copied++
		case Skipped:
			t.Skipped++
		case Failed:
			t.Failed++
		}
	}
	return t
}
