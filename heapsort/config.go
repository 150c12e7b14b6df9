// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapsort

import (
	"context"
	"fmt"
	"math"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
)

// Distribution names the distribution that workload values are drawn from.
type Distribution string

// Supported distributions.
const (
	// Uniform values are drawn from [-Range, Range).
	Uniform Distribution = "uniform"
	// Zipf values are drawn from a Zipf distribution over [0, Range].
	Zipf Distribution = "zipf"
	// Dup workloads consist entirely of the same value.
	Dup Distribution = "dup"
)

// Defaults for Config.
const (
	DefaultMinPower = 1
	DefaultMaxPower = 19
	DefaultRange    = 100000000
	MaxPower        = 30
	// MaxRange is the largest supported range, uniform values are
	// drawn from an interval of width 2*Range.
	MaxRange = math.MaxInt / 2
)

// Config specifies a set of heapsort workloads. It is typically parsed
// from YAML, eg:
//
//	min_power: 4
//	max_power: 16
//	repetitions: 3
//	distribution: zipf
//	pool: true
//
// Sizes, if specified, overrides min_power and max_power. An unset, or
// zero, max_power defaults to 19 and min_power defaults to 1 when
// max_power is also unset; use sizes to run a single element workload.
type Config struct {
	Sizes        []int        `yaml:"sizes"`
	MinPower     int          `yaml:"min_power"`
	MaxPower     int          `yaml:"max_power"`
	Repetitions  int          `yaml:"repetitions"`
	Seed         int64        `yaml:"seed"`
	Distribution Distribution `yaml:"distribution"`
	Range        int          `yaml:"range"`
	// Pool requests that heap nodes be recycled via a pairing.Pool.
	Pool bool `yaml:"pool"`
	// Verify requests that the order in which values are removed
	// from the heap be checked.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns a Config with all defaults applied, it runs
// uniform workloads over sizes 2^1 to 2^19.
func DefaultConfig() Config {
	var cfg Config
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.MaxPower == 0 {
		if c.MinPower == 0 {
			c.MinPower = DefaultMinPower
		}
		c.MaxPower = DefaultMaxPower
	}
	if c.Repetitions == 0 {
		c.Repetitions = 1
	}
	if len(c.Distribution) == 0 {
		c.Distribution = Uniform
	}
	if c.Range == 0 {
		c.Range = DefaultRange
	}
}

// Validate returns an error describing every invalid field in the config.
func (c Config) Validate() error {
	errs := errors.M{}
	for i, n := range c.Sizes {
		if n <= 0 {
			errs.Append(fmt.Errorf("sizes[%v]: %v is not a positive size", i, n))
		}
	}
	if len(c.Sizes) == 0 {
		if c.MinPower < 0 || c.MaxPower > MaxPower || c.MinPower > c.MaxPower {
			errs.Append(fmt.Errorf("min_power and max_power must satisfy 0 <= %v <= %v <= %v", c.MinPower, c.MaxPower, MaxPower))
		}
	}
	if c.Repetitions <= 0 {
		errs.Append(fmt.Errorf("repetitions: %v is not positive", c.Repetitions))
	}
	switch c.Distribution {
	case Uniform, Zipf, Dup:
	default:
		errs.Append(fmt.Errorf("distribution: unsupported distribution %q", c.Distribution))
	}
	if c.Range <= 0 {
		errs.Append(fmt.Errorf("range: %v is not positive", c.Range))
	}
	if c.Range > MaxRange {
		errs.Append(fmt.Errorf("range: %v exceeds %v", c.Range, MaxRange))
	}
	return errs.Err()
}

// WorkloadSizes returns the workload sizes specified by the config,
// either the explicit sizes or the powers of two from 2^MinPower to
// 2^MaxPower inclusive.
func (c Config) WorkloadSizes() []int {
	if len(c.Sizes) > 0 {
		return c.Sizes
	}
	if c.MaxPower < c.MinPower {
		return nil
	}
	sizes := make([]int, 0, c.MaxPower-c.MinPower+1)
	for p := c.MinPower; p <= c.MaxPower; p++ {
		sizes = append(sizes, 1<<p)
	}
	return sizes
}

// ParseConfig parses a YAML config, rejecting unknown fields, applies
// defaults and validates the result.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return finalize(cfg)
}

// ParseConfigFile is like ParseConfig but reads the config from the
// named file using cmdyaml.ParseConfigFileStrict.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return finalize(cfg)
}

func finalize(cfg Config) (Config, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
