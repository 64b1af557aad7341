package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/ftlib/internal/demo"
	"github.com/danmuck/ftlib/internal/logging"
)

type fileConfig struct {
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
	Worker struct {
		Captured int `toml:"captured"`
	} `toml:"worker"`
}

type runConfig struct {
	Log  logging.Config
	Demo demo.Options
}

func defaultRunConfig() runConfig {
	return runConfig{
		Log:  logging.DefaultConfig(logging.ProfileRuntime),
		Demo: demo.DefaultOptions(),
	}
}

// loadRunConfig overlays only the keys present in the file onto the defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load ftlib config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return runConfig{}, fmt.Errorf("load ftlib config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log", "level") {
		lvl, ok := logging.ParseLevel(raw.Log.Level)
		if !ok {
			return runConfig{}, fmt.Errorf("parse log.level: unknown level %q", raw.Log.Level)
		}
		cfg.Log.Level = lvl
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}
	if meta.IsDefined("worker", "captured") {
		cfg.Demo.Captured = raw.Worker.Captured
	}
	return cfg, nil
}
