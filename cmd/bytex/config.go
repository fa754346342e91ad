package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"bytex/log"
)

type Config struct {
	Log    []string     `toml:"log"`
	Output OutputConfig `toml:"output"`
	Dump   DumpConfig   `toml:"dump"`
}

type OutputConfig struct {
	JSON  bool `toml:"json"`
	Group bool `toml:"group"`
}

type DumpConfig struct {
	Offsets bool `toml:"offsets"`
	Width   int  `toml:"width"`
}

var defaultConfig = Config{
	Dump: DumpConfig{
		Offsets: true,
		Width:   1,
	},
}

const cfgFilename = "config.toml"

// defaultConfigPath returns the path of the config file in the user config
// directory, or an empty string if there's none.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.ModConfig.DebugZ("no user config directory").Error("err", err).End()
		return ""
	}
	return filepath.Join(dir, "bytex", cfgFilename)
}

// LoadConfigOrDefault loads the configuration at path, or provides the default
// one if the file doesn't exist or can't be decoded.
func LoadConfigOrDefault(path string) Config {
	if path == "" {
		return defaultConfig
	}

	cfg := defaultConfig
	_, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.ModConfig.DebugZ("no config file").String("path", path).End()
		return defaultConfig
	case err != nil:
		log.ModConfig.WarnZ("invalid config file, using defaults").
			String("path", path).
			Error("err", err).
			End()
		return defaultConfig
	}

	if cfg.Dump.Width < 1 {
		log.ModConfig.WarnZ("invalid dump width, using 1").
			String("path", path).
			Int("width", cfg.Dump.Width).
			End()
		cfg.Dump.Width = 1
	}

	log.ModConfig.DebugZ("loaded config").String("path", path).End()
	return cfg
}

// SaveConfig writes cfg at path, creating the parent directory if needed.
func SaveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
