package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"stagehand/internal/config"
	"stagehand/internal/toolchain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[toolchain]
version = "classic"

[explorer]
snippet = "demo.mini"
panels  = ["source", "tokens"]
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Version() != toolchain.VersionClassic {
		t.Errorf("Version = %s, want classic", cfg.Version())
	}
	if cfg.Explorer.Snippet != "demo.mini" {
		t.Errorf("Snippet = %q", cfg.Explorer.Snippet)
	}
	panels := cfg.StartupPanels()
	if len(panels) != 2 || panels[0] != toolchain.StageSource || panels[1] != toolchain.StageTokens {
		t.Errorf("StartupPanels = %v", panels)
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[toolchain]
version = "3.13"
`)
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for unknown version")
	}
}

func TestLoadRejectsBadPanel(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[explorer]
panels = ["backend"]
`)
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for unknown panel name")
	}
}

func TestDefaults(t *testing.T) {
	var cfg config.Config
	if cfg.Version() != toolchain.VersionFull {
		t.Errorf("zero-value Version = %s, want full", cfg.Version())
	}
	if cfg.StartupPanels() != nil {
		t.Errorf("zero-value StartupPanels = %v, want nil", cfg.StartupPanels())
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := config.Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find = %v, %v, %v", path, ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file in %q", path, root)
	}
}

func TestFindMiss(t *testing.T) {
	_, ok, err := config.Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if ok {
		t.Error("unexpectedly found a config in an empty temp dir")
	}
}
