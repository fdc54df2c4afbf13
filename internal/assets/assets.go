// Package assets carries the static files devsetup ships: per-tool YAML
// descriptors naming what to install, plus the config files copied verbatim
// into the target project. Everything is compiled into the binary with
// go:embed so an installed devsetup has no loose data files to lose.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// descriptorFile is the per-tool manifest of files, scripts, config block,
// and hooks to install. Every tool directory under templates/ carries one.
const descriptorFile = "tool.yaml"

//go:embed all:templates
var templates embed.FS

// Hook names a Git hook file and the shell command it should run.
type Hook struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// ConfigBlock is one named top-level package.json block a tool installs,
// e.g. lint-staged. Merge selects shallow-merge into an existing block
// versus wholesale replacement.
type ConfigBlock struct {
	Key   string         `yaml:"key"`
	Merge bool           `yaml:"merge"`
	Value map[string]any `yaml:"value"`
}

// Descriptor is the parsed tool.yaml driving one installer run.
type Descriptor struct {
	Name    string            `yaml:"name"`
	Summary string            `yaml:"summary"`
	Files   []string          `yaml:"files"`
	Scripts map[string]string `yaml:"scripts"`
	Config  ConfigBlock       `yaml:"config"`
	Hooks   []Hook            `yaml:"hooks"`
}

// Templates returns the embedded asset tree. Tests substitute their own
// fs.FS to exercise the missing-descriptor failure paths.
func Templates() fs.FS {
	return templates
}

// Tools lists the tool names bundled under templates/, sorted.
func Tools(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "templates")
	if err != nil {
		return nil, fmt.Errorf("list bundled tools: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ToolDir returns the sub-filesystem holding one tool's bundled files, the
// source directory batch copies read from.
func ToolDir(fsys fs.FS, tool string) (fs.FS, error) {
	return fs.Sub(fsys, path.Join("templates", tool))
}

// LoadDescriptor reads and validates templates/<tool>/tool.yaml. A missing
// or malformed descriptor is an error the caller treats as fatal: without
// it there is nothing to install.
func LoadDescriptor(fsys fs.FS, tool string) (Descriptor, error) {
	raw, err := fs.ReadFile(fsys, path.Join("templates", tool, descriptorFile))
	if err != nil {
		return Descriptor{}, fmt.Errorf("read descriptor for %q: %w", tool, err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Descriptor{}, fmt.Errorf("parse descriptor for %q: %w", tool, err)
	}

	if d.Name == "" {
		return Descriptor{}, fmt.Errorf("descriptor for %q: missing name", tool)
	}
	if len(d.Files) == 0 && len(d.Scripts) == 0 {
		return Descriptor{}, fmt.Errorf("descriptor for %q: nothing to install", tool)
	}

	// Every listed file must actually be bundled; catching a typo here beats
	// a confusing copy failure mid-run.
	for _, name := range d.Files {
		if _, err := fs.Stat(fsys, path.Join("templates", tool, name)); err != nil {
			return Descriptor{}, fmt.Errorf("descriptor for %q lists %s, which is not bundled", tool, name)
		}
	}

	return d, nil
}
