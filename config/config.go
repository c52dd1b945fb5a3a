package config

import (
	"fmt"
	"isolation/agent"
	"isolation/searcher"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the search settings of a player
type Config struct {
	Depth     int           `yaml:"depth"`
	Iterative bool          `yaml:"iterative"`
	Method    string        `yaml:"method"`
	Threshold time.Duration `yaml:"threshold"`
}

func Default() Config {
	return Config{
		Depth:     agent.DefaultDepth,
		Iterative: agent.DefaultIterative,
		Method:    agent.DefaultMethod.String(),
		Threshold: agent.DefaultThreshold,
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %s", c.Threshold)
	}
	if _, err := searcher.ParseMethod(c.Method); err != nil {
		return err
	}
	return nil
}

// Options converts the config to player options
func (c Config) Options() ([]agent.Option, error) {
	method, err := searcher.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	return []agent.Option{
		agent.WithDepth(c.Depth),
		agent.WithIterative(c.Iterative),
		agent.WithMethod(method),
		agent.WithThreshold(c.Threshold),
	}, nil
}
