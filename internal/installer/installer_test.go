package installer_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"devsetup/internal/assets"
	"devsetup/internal/installer"
)

type recorder struct {
	lines []string
}

func (r *recorder) Success(f string, a ...any) { r.lines = append(r.lines, "OK "+fmt.Sprintf(f, a...)) }
func (r *recorder) Info(f string, a ...any)    { r.lines = append(r.lines, "INFO "+fmt.Sprintf(f, a...)) }
func (r *recorder) Warn(f string, a ...any)    { r.lines = append(r.lines, "WARN "+fmt.Sprintf(f, a...)) }
func (r *recorder) Error(f string, a ...any)   { r.lines = append(r.lines, "ERROR "+fmt.Sprintf(f, a...)) }
func (r *recorder) Debug(f string, a ...any)   { r.lines = append(r.lines, "DEBUG "+fmt.Sprintf(f, a...)) }

func (r *recorder) contains(substr string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

type scripted struct {
	answers []bool
	asked   []string
}

func (s *scripted) Confirm(question string) bool {
	s.asked = append(s.asked, question)
	if len(s.answers) == 0 {
		return true
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer
}

type fakeRunner struct {
	calls []string
	fail  bool
}

func (f *fakeRunner) Run(dir, name string, args ...string) error {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.fail {
		return errors.New("exit status 1")
	}
	return nil
}

// readyProject lays out a git repo with package.json and husky installed
// and initialized, matching the happy-path end-to-end scenario.
func readyProject(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	for _, sub := range [][]string{
		{".git"},
		{"node_modules", "husky"},
		{".husky", "_"},
	} {
		if err := os.MkdirAll(filepath.Join(dir, filepath.Join(sub...)), 0755); err != nil {
			t.Fatal(err)
		}
	}
	files := map[string]string{
		filepath.Join("node_modules", "husky", "package.json"): `{"version":"9.1.7"}`,
		filepath.Join(".husky", "_", "husky.sh"):               "# husky shim\n",
	}
	if manifest != "" {
		files["package.json"] = manifest
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newSetup(dir string) (*installer.Setup, *recorder, *scripted, *fakeRunner) {
	log := &recorder{}
	ask := &scripted{}
	run := &fakeRunner{}
	return &installer.Setup{
		Dir:     dir,
		Assets:  assets.Templates(),
		Log:     log,
		Confirm: ask,
		Run:     run,
	}, log, ask, run
}

func loadManifest(t *testing.T, dir string) map[string]any {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestInstall_LintEndToEnd(t *testing.T) {
	dir := readyProject(t, `{"name":"x","scripts":{}}`)
	s, _, ask, run := newSetup(dir)

	if err := s.Install("lint"); err != nil {
		t.Fatalf("Install(lint) = %v", err)
	}

	m := loadManifest(t, dir)
	scripts := m["scripts"].(map[string]any)
	for name, want := range map[string]string{
		"lint":    "eslint .",
		"format":  "prettier --write .",
		"prepare": "husky",
	} {
		if scripts[name] != want {
			t.Errorf("scripts.%s = %v, want %q", name, scripts[name], want)
		}
	}
	if _, ok := m["lint-staged"]; !ok {
		t.Error("lint-staged block missing from package.json")
	}

	for _, name := range []string{"eslint.config.mjs", ".prettierrc"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("bundled config %s not copied: %v", name, err)
		}
	}

	hook, err := os.ReadFile(filepath.Join(dir, ".husky", "pre-commit"))
	if err != nil {
		t.Fatalf("pre-commit hook missing: %v", err)
	}
	if !strings.Contains(string(hook), "npx lint-staged") {
		t.Errorf("pre-commit hook = %q, want lint-staged invocation", hook)
	}

	if len(ask.asked) != 0 {
		t.Errorf("fully prepared project should not prompt, got %v", ask.asked)
	}
	if len(run.calls) != 0 {
		t.Errorf("fully prepared project should not run commands, got %v", run.calls)
	}
}

func TestInstall_CommitEndToEnd(t *testing.T) {
	dir := readyProject(t, `{"name":"x","scripts":{}}`)
	s, _, _, _ := newSetup(dir)

	if err := s.Install("commit"); err != nil {
		t.Fatalf("Install(commit) = %v", err)
	}

	m := loadManifest(t, dir)
	scripts := m["scripts"].(map[string]any)
	if scripts["commit"] != "cz" {
		t.Errorf("scripts.commit = %v, want cz", scripts["commit"])
	}
	cfg, ok := m["config"].(map[string]any)
	if !ok {
		t.Fatalf("config block missing, manifest = %v", m)
	}
	cz, ok := cfg["commitizen"].(map[string]any)
	if !ok || cz["path"] != "cz-conventional-changelog" {
		t.Errorf("config.commitizen = %v", cfg["commitizen"])
	}

	if _, err := os.Stat(filepath.Join(dir, "commitlint.config.mjs")); err != nil {
		t.Errorf("commitlint config not copied: %v", err)
	}
	hook, err := os.ReadFile(filepath.Join(dir, ".husky", "commit-msg"))
	if err != nil {
		t.Fatalf("commit-msg hook missing: %v", err)
	}
	if !strings.Contains(string(hook), "commitlint --edit") {
		t.Errorf("commit-msg hook = %q", hook)
	}
}

func TestInstall_MissingManifestIsFatalAndWritesNothing(t *testing.T) {
	dir := readyProject(t, "")
	s, _, _, _ := newSetup(dir)

	if err := s.Install("lint"); err == nil {
		t.Fatal("Install without package.json should fail")
	}

	for _, name := range []string{"eslint.config.mjs", ".prettierrc", filepath.Join(".husky", "pre-commit")} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s must not be created on a fatal precondition", name)
		}
	}
}

func TestInstall_UnknownToolIsFatal(t *testing.T) {
	dir := readyProject(t, `{"name":"x","scripts":{}}`)
	s, _, _, _ := newSetup(dir)

	if err := s.Install("nope"); err == nil {
		t.Fatal("Install of an unknown tool should fail")
	}
}

func TestInstall_MissingGitRepoIsFatal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x","scripts":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, _, _, _ := newSetup(dir)

	if err := s.Install("lint"); err == nil {
		t.Fatal("Install outside a git repository should fail")
	}
}

func TestInstall_DeclinedHuskySkipsHooksButPersists(t *testing.T) {
	dir := readyProject(t, `{"name":"x","scripts":{}}`)
	// Remove husky so EnsureReady has to ask, then answer no.
	if err := os.RemoveAll(filepath.Join(dir, "node_modules")); err != nil {
		t.Fatal(err)
	}
	s, log, ask, run := newSetup(dir)
	ask.answers = []bool{false}

	if err := s.Install("lint"); err != nil {
		t.Fatalf("declining husky must not fail the run, got %v", err)
	}
	if !log.contains("skipping hook setup") {
		t.Errorf("expected a skip warning, got %v", log.lines)
	}

	m := loadManifest(t, dir)
	scripts := m["scripts"].(map[string]any)
	if scripts["lint"] != "eslint ." {
		t.Error("scripts must still be merged when hooks are skipped")
	}
	if _, ok := scripts["prepare"]; ok {
		t.Error("prepare script should not be added when hook setup is skipped")
	}
	if _, err := os.Stat(filepath.Join(dir, ".husky", "pre-commit")); !os.IsNotExist(err) {
		t.Error("no hook should be written after declining husky")
	}
	if len(run.calls) != 0 {
		t.Errorf("no commands should run after a decline, got %v", run.calls)
	}
}

func TestInstall_PreservesUserScriptsAndRerunsCleanly(t *testing.T) {
	dir := readyProject(t, `{"name":"x","scripts":{"lint":"mylinter"},"private":true}`)
	s, _, _, _ := newSetup(dir)

	if err := s.Install("lint"); err != nil {
		t.Fatal(err)
	}

	m := loadManifest(t, dir)
	scripts := m["scripts"].(map[string]any)
	if scripts["lint"] != "mylinter" {
		t.Errorf("scripts.lint = %v, user value must win", scripts["lint"])
	}
	if m["private"] != true {
		t.Error("unrelated manifest keys must survive")
	}

	// Second run: everything exists. The only prompts are the overwrite
	// confirmations for the two copied files; accept both and expect the
	// same end state.
	s2, _, ask2, _ := newSetup(dir)
	if err := s2.Install("lint"); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(ask2.asked) != 2 {
		t.Errorf("second run prompts = %v, want the two file overwrites", ask2.asked)
	}
	hook1, err := os.ReadFile(filepath.Join(dir, ".husky", "pre-commit"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(hook1), "npx lint-staged") {
		t.Error("hook content changed across reruns")
	}
}

func TestInstall_BrokenDescriptorIsFatal(t *testing.T) {
	dir := readyProject(t, `{"name":"x","scripts":{}}`)
	s, _, _, _ := newSetup(dir)
	s.Assets = fstest.MapFS{
		"templates/lint/tool.yaml": {Data: []byte("name: [unclosed")},
	}

	if err := s.Install("lint"); err == nil {
		t.Fatal("a malformed bundled descriptor should be fatal")
	}
}
