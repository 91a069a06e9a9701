package main

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/wetsplit"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file. Command-line flags win over it.
type Config struct {
	Threshold    int      `yaml:"threshold"`
	FirstOnly    bool     `yaml:"first_only"`
	Strict       bool     `yaml:"strict"`
	Disable      []string `yaml:"disable"`
	Concurrency  int      `yaml:"concurrency"`
	Boilerplate  string   `yaml:"boilerplate"`
	MarkRepeated bool     `yaml:"mark_repeated"`
	DB           string   `yaml:"db"`
}

// LoadConfig reads the configuration at path. An empty path yields the
// zero configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "config file %q does not exist", path)
	} else if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "invalid config: %v", err)
	}
	return cfg, nil
}

// Apply overrides file values with global flags that were set.
func (c *Config) Apply(cli *CLI) {
	if cli.Boilerplate != "" {
		c.Boilerplate = cli.Boilerplate
	}
	c.Disable = append(c.Disable, cli.Disable...)
}

// DecideOptions merges command flags into the configured decision options.
func (c *Config) DecideOptions(f DecisionFlags) wetsplit.DecideOptions {
	opts := wetsplit.DecideOptions{
		Threshold: c.Threshold,
		FirstOnly: c.FirstOnly || f.FirstOnly,
		Strict:    c.Strict || f.Strict,
	}
	if f.Threshold != 0 {
		opts.Threshold = f.Threshold
	}
	return opts
}
