package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig is returned when a manifest cannot be parsed or holds
// out-of-range values.
var ErrBadConfig = errors.New("runner: bad config")

// Config is the optional YAML manifest:
//
//	inputs_dir: inputs
//	bench_samples: 500
//	inputs:
//	  3: testdata/schematic-large.txt
//
// Zero fields fall back to DefaultConfig values so a partial manifest
// stays valid.
type Config struct {
	// InputsDir is where numbered input files live; problem N resolves
	// to <InputsDir>/NN.txt unless overridden in Inputs.
	InputsDir string `yaml:"inputs_dir"`
	// BenchSamples is how many times Bench re-solves each part.
	BenchSamples int `yaml:"bench_samples"`
	// Inputs maps a problem number to an explicit input path.
	Inputs map[int]string `yaml:"inputs"`
}

// DefaultConfig returns the settings used when no manifest is given.
func DefaultConfig() Config {
	return Config{
		InputsDir:    "inputs",
		BenchSamples: 100,
	}
}

// LoadConfig reads and validates a YAML manifest from path, filling any
// omitted field with its DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runner: read config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes a YAML manifest from raw.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if cfg.InputsDir == "" {
		cfg.InputsDir = DefaultConfig().InputsDir
	}
	if cfg.BenchSamples == 0 {
		cfg.BenchSamples = DefaultConfig().BenchSamples
	}
	if cfg.BenchSamples < 0 {
		return Config{}, fmt.Errorf("%w: bench_samples %d", ErrBadConfig, cfg.BenchSamples)
	}
	return cfg, nil
}

// InputPath resolves the input file for a problem number, honoring a
// per-problem override before the numbered default.
func (c Config) InputPath(number int) string {
	if p, ok := c.Inputs[number]; ok {
		return p
	}
	return filepath.Join(c.InputsDir, fmt.Sprintf("%02d.txt", number))
}
