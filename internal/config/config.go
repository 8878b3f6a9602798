// Package config loads ~/.archhelper.yml with ARCHHELPER_* environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the home directory.
const FileName = ".archhelper.yml"

// EnvPrefix prefixes environment overrides. A double underscore descends
// into a nested key: ARCHHELPER_LOG__LEVEL sets log.level.
const EnvPrefix = "ARCHHELPER_"

// View names accepted by start_view, in navigation order.
var Views = []string{
	"domain-chart",
	"influence-matrix",
	"stakeholders",
	"architectures",
	"databases",
}

type LogConfig struct {
	File  string `yaml:"file" koanf:"file"`
	Level string `yaml:"level" koanf:"level"`
}

// Config corresponds to ~/.archhelper.yml.
type Config struct {
	DataDir       string    `yaml:"data_dir" koanf:"data_dir"`
	Storage       string    `yaml:"storage" koanf:"storage"`
	ExportDir     string    `yaml:"export_dir" koanf:"export_dir"`
	ExportFormat  string    `yaml:"export_format" koanf:"export_format"`
	StartView     string    `yaml:"start_view" koanf:"start_view"`
	Confirmations bool      `yaml:"confirmations" koanf:"confirmations"`
	Log           LogConfig `yaml:"log" koanf:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:       "~/.archhelper",
		Storage:       "file",
		ExportDir:     "",
		ExportFormat:  "png",
		StartView:     Views[0],
		Confirmations: true,
		Log:           LogConfig{Level: "info"},
	}
}

// DefaultPath is ~/.archhelper.yml, or FileName in the working directory
// when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load starts from the defaults, applies the YAML file when it exists and
// then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validStorage = map[string]bool{"file": true, "sqlite": true}
	validFormats = map[string]bool{"png": true, "jpeg": true, "jpg": true}
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validStorage[c.Storage] {
		return fmt.Errorf("invalid storage %q: must be one of file, sqlite", c.Storage)
	}
	if !validFormats[strings.ToLower(c.ExportFormat)] {
		return fmt.Errorf("invalid export_format %q: must be png or jpeg", c.ExportFormat)
	}
	if !isView(c.StartView) {
		return fmt.Errorf("invalid start_view %q: must be one of %s", c.StartView, strings.Join(Views, ", "))
	}
	if c.Log.Level != "" && !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

func isView(name string) bool {
	for _, v := range Views {
		if v == name {
			return true
		}
	}
	return false
}

// DataPath is the expanded data directory.
func (c *Config) DataPath() string {
	return ExpandPath(c.DataDir)
}

// ExportPath is the expanded export directory; empty means the working
// directory.
func (c *Config) ExportPath() string {
	if c.ExportDir == "" {
		return "."
	}
	return ExpandPath(c.ExportDir)
}

// LogPath is the expanded log file, empty when logging is off.
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	return ExpandPath(c.Log.File)
}

// ExpandPath resolves a leading ~ and makes the result absolute.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}
