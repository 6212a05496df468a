package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRuleCfg_BoolFalse(t *testing.T) {
	var cfg Config
	src := "rules:\n  strip-speakers: false\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatal(err)
	}
	rc, ok := cfg.Rules["strip-speakers"]
	if !ok {
		t.Fatal("strip-speakers not present")
	}
	if rc.Enabled {
		t.Error("expected Enabled=false")
	}
	if rc.Settings != nil {
		t.Error("expected nil Settings")
	}
}

func TestRuleCfg_BoolTrue(t *testing.T) {
	var cfg Config
	src := "rules:\n  strip-structure: true\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatal(err)
	}
	rc := cfg.Rules["strip-structure"]
	if !rc.Enabled {
		t.Error("expected Enabled=true")
	}
}

func TestRuleCfg_SettingsMapping(t *testing.T) {
	var cfg Config
	src := "rules:\n  strip-speakers:\n    indent: 4\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatal(err)
	}
	rc := cfg.Rules["strip-speakers"]
	if !rc.Enabled {
		t.Error("expected Enabled=true for settings mapping")
	}
	if rc.Settings["indent"] != 4 {
		t.Errorf("expected indent=4, got %v", rc.Settings["indent"])
	}
}

func TestRuleCfg_InvalidKind(t *testing.T) {
	var cfg Config
	src := "rules:\n  strip-speakers:\n    - a\n    - b\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err == nil {
		t.Fatal("expected error for sequence rule config")
	}
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
rules:
  strip-structure: true
  strip-speakers:
    indent: 2
  collapse-linebreaks: false
ignore:
  - "Sonnets*"
format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Rules) != 3 {
		t.Errorf("expected 3 rules, got %d", len(cfg.Rules))
	}
	if cfg.Rules["collapse-linebreaks"].Enabled {
		t.Error("expected collapse-linebreaks disabled")
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "Sonnets*" {
		t.Errorf("ignore: got %v", cfg.Ignore)
	}
	if cfg.Format != "json" {
		t.Errorf("format: got %q, want json", cfg.Format)
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "format: xml\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDiscover_FindsInStartDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "format: text\n")
	got, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("got %q, want %q", got, path)
	}
}

func TestDiscover_FindsInParent(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "format: text\n")
	child := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Discover(child)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("got %q, want %q", got, path)
	}
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format: text\n")
	repo := filepath.Join(dir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Discover(repo)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want no config (stopped at .git)", got)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"", "text", "json"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}
	if err := ValidateFormat("yaml"); err == nil {
		t.Error("expected error for yaml format")
	}
}
