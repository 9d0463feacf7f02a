package main

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	notations = []string{"pin", "epin", "pnn", "snn", "sin"}
	outputs   = []string{"text", "json", "yaml"}
)

// Config configures a run of the inspector.
type Config struct {
	Notation string `json:"notation" yaml:"notation"` // notation the tokens are read in
	Output   string `json:"output" yaml:"output"`     // text, json or yaml
	Graph    bool   `json:"graph" yaml:"graph"`       // print the transformation graph of epin tokens
	Strict   bool   `json:"strict" yaml:"strict"`     // exit non-zero if any token is invalid
}

func DefaultConfig() Config {
	return Config{
		Notation: "epin",
		Output:   "text",
	}
}

func (conf Config) IsValid() bool {
	return slices.Contains(notations, conf.Notation) &&
		slices.Contains(outputs, conf.Output) &&
		(!conf.Graph || conf.Notation == "epin")
}

// loadConfig overlays the YAML file at path on conf.
func loadConfig(path string, conf Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "config %s", path)
	}
	return conf, nil
}
