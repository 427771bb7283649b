// Package config loads the themekit configuration file.
package config

import (
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const (
	DefaultLogLevel = "info"
	DefaultTheme    = theme.Material
)

// Config represents the themekit configuration document.
type Config struct {
	Theme   string          `yaml:"theme" validate:"required,theme"`
	Log     LogSettings     `yaml:"log,omitempty"`
	Preview PreviewSettings `yaml:"preview,omitempty"`
}

// LogSettings configures the process logger.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// PreviewSettings configures terminal previews. A zero width means the
// width of the attached terminal.
type PreviewSettings struct {
	Width int  `yaml:"width,omitempty" validate:"omitempty,min=16,max=400"`
	Dark  bool `yaml:"dark,omitempty"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Theme: string(DefaultTheme),
		Log:   LogSettings{Level: DefaultLogLevel},
	}
}

// ActiveTheme returns the configured theme. It assumes the config has been
// validated.
func (c *Config) ActiveTheme() theme.Theme {
	t, err := theme.Parse(c.Theme)
	if err != nil {
		return ""
	}
	return t
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
