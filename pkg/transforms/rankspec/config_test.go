// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = ParseConfig("max_rank_binary=3, max_rank_nary=4,max_iterations=7,parallelism=0")
	require.NoError(t, err)
	assert.Equal(t, Config{MaxRankBinary: 3, MaxRankNary: 4, MaxIterations: 7, Parallelism: 0}, cfg)
	assert.Equal(t, 3, cfg.MaxRank(2))
	assert.Equal(t, 4, cfg.MaxRank(3))

	roundTrip, err := ParseConfig(cfg.String())
	require.NoError(t, err)
	assert.Equal(t, cfg, roundTrip)

	_, err = ParseConfig("max_rank=3")
	require.ErrorContains(t, err, "unknown rank specialization option")
	_, err = ParseConfig("max_rank_binary")
	require.ErrorContains(t, err, "key=value")
	_, err = ParseConfig("max_rank_binary=x")
	require.Error(t, err)
	_, err = ParseConfig("max_rank_nary=0")
	require.ErrorContains(t, err, "at least 1")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(RANKSPEC_CONFIG, "max_rank_binary=2")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxRankBinary)
	assert.Equal(t, DefaultMaxRankNary, cfg.MaxRankNary)

	t.Setenv(RANKSPEC_CONFIG, "bogus=1")
	_, err = ConfigFromEnv()
	require.Error(t, err)
}
