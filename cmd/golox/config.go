package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const defaultConfigFile = "golox.toml"

// Config is the golox.toml driver configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
}

// LogConfig configures pipeline tracing
type LogConfig struct {
	Level string `toml:"level"`
}

// OutputConfig configures diagnostics output
type OutputConfig struct {
	Color bool `toml:"color"`
}

// REPLConfig configures the interactive prompt
type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

func defaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Color: true},
		REPL: REPLConfig{
			Prompt:  "> ",
			History: ".golox_history",
		},
	}
}

// loadConfig reads path on top of the defaults. A missing file is only
// an error when the user asked for it explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return cfg, fmt.Errorf("invalid log level in %s: %w", path, err)
	}

	if cfg.REPL.History != "" && !filepath.IsAbs(cfg.REPL.History) {
		cfg.REPL.History = filepath.Join(filepath.Dir(path), cfg.REPL.History)
	}

	return cfg, nil
}
