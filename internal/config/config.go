// Package config reads default settings from a YAML, TOML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"
)

var ErrUnknownFormat = errors.New("unknown config file format")

type Log struct {
	Level string `yaml:"level" toml:"level" json:"level"`
	File  string `yaml:"file" toml:"file" json:"file"`
}

// Config mirrors the command line flags. Zero values mean "not set"; a nil
// Threshold likewise, since 0 is a valid threshold.
type Config struct {
	Log         Log    `yaml:"log" toml:"log" json:"log"`
	Width       int    `yaml:"width" toml:"width" json:"width"`
	Mode        string `yaml:"mode" toml:"mode" json:"mode"`
	Threshold   *int   `yaml:"threshold" toml:"threshold" json:"threshold"`
	Sensitivity int    `yaml:"sensitivity" toml:"sensitivity" json:"sensitivity"`
	Charset     string `yaml:"charset" toml:"charset" json:"charset"`
	Color       string `yaml:"color" toml:"color" json:"color"`
	Dark        bool   `yaml:"dark" toml:"dark" json:"dark"`
	Coloring    string `yaml:"coloring" toml:"coloring" json:"coloring"`
	Resample    string `yaml:"resample" toml:"resample" json:"resample"`
	Text        string `yaml:"text" toml:"text" json:"text"`
	TextFile    string `yaml:"text-file" toml:"text-file" json:"text-file"`
	Format      string `yaml:"format" toml:"format" json:"format"`
	Box         string `yaml:"box" toml:"box" json:"box"`
}

// Load reads path, choosing the decoder by extension. An empty path returns
// the zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Parse(filepath.Ext(path), data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".toml" or
// ".json").
func Parse(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.UnmarshalStrict(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}
