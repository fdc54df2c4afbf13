package manifest

import (
	"encoding/json" // For JSON encoding and decoding of package.json
	"fmt"
	"os" // For file system operations like reading and writing files

	"devsetup/internal/logger"
)

// Manifest is the project's package.json parsed as a mutable JSON document.
// It is loaded fresh at the start of an installer run, mutated in memory,
// and written back exactly once at the end; a crash mid-run leaves the file
// on disk untouched.
type Manifest map[string]any

// Load reads and parses the package.json at path. It returns an error when
// the file is missing, unreadable, or not valid JSON — callers treat all
// three as fatal preconditions, there is no recoverable-read mode.
//
// After a successful Load the manifest is guaranteed to carry a "scripts"
// object so merge operations never have to nil-check it.
func Load(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Ensure the scripts block exists and is an object. A package.json with
	// "scripts" set to a non-object value is as unusable as a missing one.
	switch m["scripts"].(type) {
	case map[string]any:
	case nil:
		m["scripts"] = map[string]any{}
	default:
		return nil, fmt.Errorf("parse %s: \"scripts\" is not an object", path)
	}

	return m, nil
}

// Save serializes the manifest with 2-space indentation plus a trailing
// newline and overwrites path wholesale. No atomic rename is attempted; a
// failed OS-level write is the only case that leaves prior content intact.
func (m Manifest) Save(path string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Scripts returns the manifest's scripts object. Load guarantees it exists.
func (m Manifest) Scripts() map[string]any {
	return m["scripts"].(map[string]any)
}

// MergeScripts sets each entry of scripts on the manifest's scripts block.
// An entry whose key already exists is left untouched unless overwrite is
// true; the skip is logged as a warning so the user knows their script won.
// Existing unrelated scripts are never removed.
func (m Manifest) MergeScripts(log logger.Logger, scripts map[string]string, overwrite bool) {
	target := m.Scripts()
	for name, command := range scripts {
		if existing, ok := target[name]; ok && !overwrite {
			log.Warn("script %q already defined (%v), keeping yours", name, existing)
			continue
		}
		target[name] = command
		log.Debug("set script %q = %q", name, command)
	}
}

// MergeConfigBlock installs value under the top-level key. When the key is
// absent or merge is false the block is replaced wholesale. When present
// and merge is true the merge is SHALLOW: top-level keys of value overwrite
// same-named existing keys, and colliding nested objects are replaced
// wholesale rather than deep-merged. Downstream tooling relies on the
// shallow semantics, so do not deepen this.
func (m Manifest) MergeConfigBlock(log logger.Logger, key string, value map[string]any, merge bool) {
	existing, ok := m[key].(map[string]any)
	if !ok || !merge {
		m[key] = value
		log.Debug("set config block %q", key)
		return
	}

	for k, v := range value {
		existing[k] = v
	}
	log.Debug("merged %d keys into existing config block %q", len(value), key)
}
