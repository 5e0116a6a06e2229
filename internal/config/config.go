// Package config loads the optional gamemod.yaml tool configuration.
// A missing file or missing fields fall back to defaults, so the tool
// works out of the box in a checkout of the app repository.
package config

// Default value constants to avoid magic strings.
const (
	// DefaultBaseDir is the directory holding the template and all game
	// modules, relative to the repository root.
	DefaultBaseDir = "game"

	// DefaultTemplateDir is the template directory name under the base
	// module directory.
	DefaultTemplateDir = "template"
)

// Config holds the tool configuration.
type Config struct {
	// BaseDir is the base module directory.
	BaseDir string `yaml:"base_dir"`

	// TemplateDir is the template directory name under BaseDir.
	TemplateDir string `yaml:"template_dir"`
}

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		BaseDir:     DefaultBaseDir,
		TemplateDir: DefaultTemplateDir,
	}
}
