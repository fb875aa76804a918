package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds defaults the merge command falls back to when the
// corresponding flag was not set on the command line. It is entirely
// optional: an absent config file is not an error.
type config struct {
	LineOffset   int32  `yaml:"line_offset"`
	ColumnOffset int32  `yaml:"column_offset"`
	Out          string `yaml:"out"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
