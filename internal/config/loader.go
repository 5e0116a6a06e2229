package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roshni-games/gamemod/internal/defs"
)

// Load reads gamemod.yaml from the given directory and returns a Config
// with defaults applied for missing fields. A missing file yields the
// default configuration; malformed YAML is an error.
func Load(dir string) (*Config, error) {
	cfg := NewDefaultConfig()

	if _, err := loadYAMLFile(dir, defs.GamemodYAML, cfg); err != nil {
		return nil, err
	}

	// Re-apply defaults for fields the file left empty.
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = DefaultTemplateDir
	}

	return cfg, nil
}

// TemplateRoot returns the template directory path for this configuration.
func (c *Config) TemplateRoot() string {
	return filepath.Join(c.BaseDir, c.TemplateDir)
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals
// it into the target struct. Returns (true, nil) if the file was found and
// parsed, (false, nil) if the file does not exist, or (false, error) on
// failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
