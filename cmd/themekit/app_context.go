package main

import (
	"io"

	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// AppContext bundles the configuration and services created before a
// command runs.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

func newAppContext(flags *rootFlags, stderr io.Writer) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.theme != "" {
		t, err := theme.Parse(flags.theme)
		if err != nil {
			return nil, err
		}
		cfg.Theme = t.String()
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: stderr, Theme: cfg.Theme})
	if err != nil {
		return nil, err
	}

	if err := theme.SetDefault(cfg.ActiveTheme()); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{"config": flags.configPath}).Debug("configuration loaded")
	return &AppContext{Config: cfg, Logger: log}, nil
}

// RenderContext returns the component context for one command.
func (a *AppContext) RenderContext() components.RenderContext {
	return components.DefaultContext().WithLogger(a.Logger)
}
