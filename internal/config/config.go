// Package config loads the optional stagehand.toml read once at startup.
// Flags override file values; the file is found in the start directory or
// any parent.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"stagehand/internal/toolchain"
)

// FileName is the config file stagehand looks for.
const FileName = "stagehand.toml"

// Config mirrors the TOML file:
//
//	[toolchain]
//	version = "full"
//
//	[explorer]
//	snippet = "demo.mini"
//	panels  = ["source", "tokens", "final-bc"]
type Config struct {
	Toolchain ToolchainConfig `toml:"toolchain"`
	Explorer  ExplorerConfig  `toml:"explorer"`
}

// ToolchainConfig selects the active toolchain version.
type ToolchainConfig struct {
	Version string `toml:"version"`
}

// ExplorerConfig holds startup UI preferences.
type ExplorerConfig struct {
	Snippet string   `toml:"snippet"`
	Panels  []string `toml:"panels"`
}

// Find walks up from startDir looking for stagehand.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes and validates the config file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Toolchain.Version != "" {
		if _, err := toolchain.ParseVersion(c.Toolchain.Version); err != nil {
			return err
		}
	}
	for _, name := range c.Explorer.Panels {
		if _, ok := toolchain.StageByName(name); !ok {
			return fmt.Errorf("unknown panel %q in explorer.panels", name)
		}
	}
	return nil
}

// Version resolves the configured toolchain version, defaulting to full.
func (c Config) Version() toolchain.Version {
	v, err := toolchain.ParseVersion(c.Toolchain.Version)
	if err != nil {
		return toolchain.VersionFull
	}
	return v
}

// StartupPanels resolves explorer.panels to stage kinds; nil when the file
// does not set them.
func (c Config) StartupPanels() []toolchain.StageKind {
	if len(c.Explorer.Panels) == 0 {
		return nil
	}
	out := make([]toolchain.StageKind, 0, len(c.Explorer.Panels))
	for _, name := range c.Explorer.Panels {
		if kind, ok := toolchain.StageByName(name); ok {
			out = append(out, kind)
		}
	}
	return out
}
