// Package cliconfig loads the CLI's optional YAML configuration file,
// layered underneath whatever flags the user passes explicitly.
// Grounded in gopatchy-bkl's use of gopkg.in/yaml.v3 for its own layered
// config format.
package cliconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file name looked up in the working
// directory when --config is not given.
const DefaultPath = ".ulight.yaml"

// Config is the YAML-decodable shape of a .ulight.yaml file. Every
// field is optional; a missing field keeps the built-in default.
type Config struct {
	Coalescing *bool  `yaml:"coalescing"`
	Format     string `yaml:"format"`
	Lang       string `yaml:"lang"`
	Theme      string `yaml:"theme"`
}

// Load decodes the YAML file at path into a Config. A missing file at
// the default path is not an error; Load returns a zero Config in that
// case so callers can fall through to built-in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
