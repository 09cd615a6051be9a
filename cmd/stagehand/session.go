package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stagehand/internal/config"
	"stagehand/internal/toolchain"
)

// session is everything a command needs resolved up front: the config
// file (if any), the active toolchain capabilities, and the snippet text.
type session struct {
	cfg    config.Config
	caps   toolchain.StageSet
	source string
}

// newSession loads the config, applies flag overrides, and reads the
// snippet. Precedence for the snippet: positional file argument, then
// explorer.snippet from the config (relative to the config file), then
// the built-in demo.
func newSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, cfgDir, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	ver := cfg.Version()
	if flag, _ := cmd.Root().PersistentFlags().GetString("toolchain"); flag != "" {
		ver, err = toolchain.ParseVersion(flag)
		if err != nil {
			return nil, err
		}
	}

	src, err := loadSnippet(cfg, cfgDir, args)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		caps:   toolchain.Capabilities(ver),
		source: src,
	}, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return config.Config{}, "", err
		}
		if !ok {
			return config.Config{}, "", nil
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, filepath.Dir(path), nil
}

func loadSnippet(cfg config.Config, cfgDir string, args []string) (string, error) {
	path := ""
	switch {
	case len(args) > 0:
		path = args[0]
	case cfg.Explorer.Snippet != "":
		path = cfg.Explorer.Snippet
		if !filepath.IsAbs(path) && cfgDir != "" {
			path = filepath.Join(cfgDir, path)
		}
	default:
		return toolchain.DefaultSnippet, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read snippet: %w", err)
	}
	return string(data), nil
}
