package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PathConfig is one search-path entry in a config file. ID is optional; a
// missing or invalid id is derived from the directory.
type PathConfig struct {
	ID  string `yaml:"id,omitempty"`
	Dir string `yaml:"dir"`
}

// Config is the file-based construction surface: search paths, the default
// template, the extension fallback list, and the debug toggle.
type Config struct {
	Paths           []PathConfig `yaml:"paths"`
	DefaultTemplate string       `yaml:"default_template,omitempty"`
	Extensions      []string     `yaml:"extensions,omitempty"`
	Debug           bool         `yaml:"debug,omitempty"`
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("engine: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: decode config %q: %w", path, err)
	}
	return cfg, nil
}

// Options converts the decoded config into engine options, preserving path
// order.
func (c Config) Options() []Option {
	var options []Option
	for _, entry := range c.Paths {
		options = append(options, WithNamedPath(entry.ID, entry.Dir))
	}
	if len(c.Extensions) > 0 {
		options = append(options, WithExtensions(c.Extensions...))
	}
	if c.DefaultTemplate != "" {
		options = append(options, WithDefaultTemplate(c.DefaultTemplate))
	}
	if c.Debug {
		options = append(options, WithDebug(true))
	}
	return options
}
