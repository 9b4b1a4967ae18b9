package main

import (
	"os"

	"go.yaml.in/yaml/v3"
)

// fileConfig is the shape of a --config YAML file: a project's checked-in
// equivalent of PKG_CONFIG_PATH and global variable overrides.
type fileConfig struct {
	SearchDirs         []string          `yaml:"search_dirs"`
	Variables          map[string]string `yaml:"variables"`
	Strict             bool              `yaml:"strict"`
	MSVCSyntax         bool              `yaml:"msvc_syntax"`
	DisableUninstalled bool              `yaml:"disable_uninstalled"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
