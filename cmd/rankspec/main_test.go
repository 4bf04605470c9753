// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/gomlx/rankspec/pkg/transforms/rankspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectScenarios(t *testing.T) {
	all, err := selectScenarios("all")
	require.NoError(t, err)
	assert.Len(t, all, len(scenarios))

	selected, err := selectScenarios("select, ladder")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "select", selected[0].name)
	assert.Equal(t, "ladder", selected[1].name)

	_, err = selectScenarios("select,unknown")
	require.ErrorContains(t, err, `unknown scenario "unknown"`)
}

func TestScenarios(t *testing.T) {
	module, originals := buildModule(scenarios, 3)
	require.Len(t, module.Functions(), 3*len(scenarios))
	require.NotNil(t, module.Function("chain_2"))

	cfg := rankspec.DefaultConfig()
	cfg.Parallelism = 2
	allStats, err := legalize(module, cfg)
	require.NoError(t, err)
	for _, stats := range allStats {
		assert.Positivef(t, stats.NumRewrites(), "function %q", stats.Function)
	}
	require.NoError(t, evaluate(scenarios, module, originals))
}
