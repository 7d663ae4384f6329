package sched

import (
	"fmt"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Policy   string `yaml:"policy"`    // fcfs (by default)
	Quantum  int    `yaml:"quantum"`   // 2 (by default), round robin only
	TickMS   int    `yaml:"tick_ms"`   // 500 (by default), wall-clock pacing in realtime mode
	Realtime bool   `yaml:"realtime"`  // false: run to completion at once
	LogLevel string `yaml:"log_level"` // info (by default)
	CSVPath  string `yaml:"csv_path"`  // empty: no event log
}

// If the config file is not given, we use default values
func DefaultConfig() Config {
	return Config{
		Policy:   string(KindFCFS),
		Quantum:  DefaultQuantum,
		TickMS:   500,
		LogLevel: "info",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.sanitize()
	return cfg, nil
}

// sanity clamps
func (c *Config) sanitize() {
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	if c.Policy == "" {
		c.Policy = string(KindFCFS)
	}
	if c.Quantum <= 0 {
		c.Quantum = DefaultQuantum
	}
	if c.TickMS <= 0 {
		c.TickMS = 500
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Selector builds the configured policy.
func (c Config) Selector() (Selector, error) {
	return NewSelector(c.Policy, c.Quantum)
}
