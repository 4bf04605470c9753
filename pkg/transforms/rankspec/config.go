// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Config of the rank specialization transformation.
type Config struct {
	// MaxRankBinary is the largest rank specialized by the rank ladder of binary (and unary) broadcasting
	// operations. Larger ranks fail at run time with an assertion.
	MaxRankBinary int

	// MaxRankNary is the largest rank specialized for operations with more than 2 operands (select).
	MaxRankNary int

	// MaxIterations is the maximum number of sweeps over the function done by Legalize.
	MaxIterations int

	// Parallelism is the maximum number of functions legalized in parallel by LegalizeModule.
	// If 0 functions are legalized sequentially. If -1 parallelism is unlimited.
	Parallelism int
}

// Default values of Config.
const (
	DefaultMaxRankBinary = 5
	DefaultMaxRankNary   = 8
	DefaultMaxIterations = 16
)

// RANKSPEC_CONFIG is the environment variable with the configuration used by ConfigFromEnv.
// See ParseConfig for its format.
//
//nolint:revive,staticcheck // Environment variable name.
const RANKSPEC_CONFIG = "RANKSPEC_CONFIG"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxRankBinary: DefaultMaxRankBinary,
		MaxRankNary:   DefaultMaxRankNary,
		MaxIterations: DefaultMaxIterations,
		Parallelism:   runtime.NumCPU(),
	}
}

// MaxRank returns the largest specialized rank for an operation with the given number of operands.
func (c Config) MaxRank(arity int) int {
	if arity > 2 {
		return c.MaxRankNary
	}
	return c.MaxRankBinary
}

// Validate returns an error if a value is out of range.
func (c Config) Validate() error {
	if c.MaxRankBinary < 1 || c.MaxRankNary < 1 {
		return errors.Errorf("maximum ranks must be at least 1, got max_rank_binary=%d, max_rank_nary=%d",
			c.MaxRankBinary, c.MaxRankNary)
	}
	if c.MaxIterations < 1 {
		return errors.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.Parallelism < -1 {
		return errors.Errorf("parallelism must be -1 (unlimited), 0 (sequential) or positive, got %d", c.Parallelism)
	}
	return nil
}

// String returns the configuration in the format accepted by ParseConfig.
func (c Config) String() string {
	return fmt.Sprintf("max_rank_binary=%d,max_rank_nary=%d,max_iterations=%d,parallelism=%d",
		c.MaxRankBinary, c.MaxRankNary, c.MaxIterations, c.Parallelism)
}

// ParseConfig takes a configuration string formatted as a comma-separated list of "key=value"
// options, applied on top of DefaultConfig. E.g.: "max_rank_binary=6,parallelism=0".
//
// Keys: max_rank_binary, max_rank_nary, max_iterations and parallelism. Unknown keys are an error.
func ParseConfig(config string) (Config, error) {
	c := DefaultConfig()
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return c, errors.Errorf("invalid rank specialization option %q in %q: expected \"key=value\"", part, config)
		}
		key = strings.TrimSpace(key)
		intValue, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return c, errors.Wrapf(err, "invalid value for rank specialization option %q", key)
		}
		switch key {
		case "max_rank_binary":
			c.MaxRankBinary = intValue
		case "max_rank_nary":
			c.MaxRankNary = intValue
		case "max_iterations":
			c.MaxIterations = intValue
		case "parallelism":
			c.Parallelism = intValue
		default:
			return c, errors.Errorf("unknown rank specialization option %q in %q", key, config)
		}
	}
	if err := c.Validate(); err != nil {
		return c, errors.WithMessagef(err, "configuration %q", config)
	}
	return c, nil
}

// ConfigFromEnv returns the configuration given by the environment variable RANKSPEC_CONFIG if
// defined, or DefaultConfig otherwise.
func ConfigFromEnv() (Config, error) {
	config, found := os.LookupEnv(RANKSPEC_CONFIG)
	if !found {
		return DefaultConfig(), nil
	}
	return ParseConfig(config)
}
