// Package config loads the configuration file of the command line tool.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/tdewolff/csstree/css"
)

// FileName is the base name of the config file without extension.
const FileName = ".csstree"

// extensions are the supported config file extensions in priority order.
var extensions = []string{".yaml", ".yml", ".json", ".jsonc"}

// Config holds the settings that may be given in a config file. Flags and CSSTREE_* environment variables take precedence.
type Config struct {
	// Files are the glob patterns checked when no files are given.
	Files   []string `yaml:"files" json:"files"`
	Lenient bool     `yaml:"lenient" json:"lenient"`
	// MaxDepth limits nesting, zero disables the limit.
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`
	// Jobs limits the number of files parsed concurrently, zero uses all CPUs.
	Jobs int `yaml:"jobs" json:"jobs"`
	// RootValue is the root font size used by px-to-rem conversion.
	RootValue float64 `yaml:"rootValue" json:"rootValue"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		MaxDepth:  css.DefaultMaxDepth,
		RootValue: 16.0,
	}
}

// Load searches for .csstree.{yaml,yml,json,jsonc} in dir of fsys. It returns nil if no config file exists.
func Load(fsys fs.FS, dir string) (*Config, error) {
	for _, ext := range extensions {
		name := path.Join(dir, FileName+ext)
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return decode(name, data)
	}
	return nil, nil
}

// LoadFile reads the config file at filename, its extension selects the format.
func LoadFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return decode(filename, data)
}

// LoadOrDefault returns the config in dir or the defaults if there is none or it is invalid.
func LoadOrDefault(fsys fs.FS, dir string) *Config {
	cfg, err := Load(fsys, dir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

func decode(name string, data []byte) (*Config, error) {
	cfg := Default()
	switch ext := filepath.Ext(name); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported config format %q", name, ext)
	}
	return cfg, nil
}
