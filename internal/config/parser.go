package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	kiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes and validates the configuration file at path. An empty
// path yields DefaultConfig.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes and validates a configuration document. name is only used
// in error messages.
func Parse(name string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, kiterrors.NewParseError(name, extractLine(err), err)
	}

	cfg.applyDefaults()
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
