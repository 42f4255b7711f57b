package site

import (
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LayoutConfig declares a named layout in the site configuration.
type LayoutConfig struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// Config describes a site.
type Config struct {
	Name     string `json:"name" yaml:"name" mapstructure:"name"`
	URL      string `json:"url" yaml:"url" mapstructure:"url"`
	Language string `json:"language" yaml:"language" mapstructure:"language"`

	// Layout is the name of the default layout for pages without one.
	Layout string `json:"layout" yaml:"layout" mapstructure:"layout"`

	Layouts []LayoutConfig `json:"layouts" yaml:"layouts" mapstructure:"layouts"`
}

// DefaultConfig returns a config with a single "default" layout.
func DefaultConfig() Config {
	return Config{
		Language: "en",
		Layout:   "default",
		Layouts:  []LayoutConfig{{Name: "default"}},
	}
}

// Load reads a YAML site configuration on top of DefaultConfig.
// Unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read site config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse site config: %w", err)
	}

	cfg := DefaultConfig()
	if len(raw) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
		ZeroFields:  true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode site config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every declared layout has a unique, non-empty name.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		if l.Name == "" {
			return fmt.Errorf("layouts[%d]: name is required", i)
		}
		if seen[l.Name] {
			return fmt.Errorf("layouts[%d]: duplicate layout %q", i, l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}
