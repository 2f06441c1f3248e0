package main

import (
	"github.com/BurntSushi/toml"
)

// Config is a script of list operations.
type Config struct {
	// Impl selects the list implementation: "doubly" or "singly".
	Impl        string    `toml:"impl"`
	StopOnError bool      `toml:"stop_on_error"`
	Log         LogConfig `toml:"log"`
	Steps       []Step    `toml:"step"`
}

// LogConfig configures the runner logger.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxAge     int    `toml:"max_age"`
	MaxBackups int    `toml:"max_backups"`
	Console    bool   `toml:"console"`
}

// Step is a single list or cursor operation.
type Step struct {
	Op     string `toml:"op"`
	Value  string `toml:"value"`
	Target string `toml:"target"`
	Index  int    `toml:"index"`
}

func defaultConfig() *Config {
	return &Config{
		Impl: implDoubly,
		Log: LogConfig{
			Level:   "info",
			MaxSize: 10,
			MaxAge:  7,
			Console: true,
		},
	}
}

func LoadConfigStr(str string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.Decode(str, config); err != nil {
		return nil, err
	}
	return config, nil
}

func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}
