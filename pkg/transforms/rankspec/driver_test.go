// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/interp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainFunction builds tanh(x * y + z) - 1, with unranked x, y and z.
func chainFunction(name string) *ir.Function {
	fn := ir.NewFunction(name)
	b := ir.NewBuilder(fn)
	x := b.Parameter("x", f32)
	y := b.Parameter("y", f32)
	z := b.Parameter("z", f32)
	one := b.Constant(shapes.Scalar(dtypes.Float32), 1)
	v := b.Apply(ir.OpTypeBroadcastMul, f32, nil, x, y)
	v = b.Apply(ir.OpTypeBroadcastAdd, f32, nil, v, z)
	v = b.Apply(ir.OpTypeTanh, f32, nil, v)
	v = b.Apply(ir.OpTypeBroadcastSub, f32, nil, v, one)
	b.Return(v)
	return fn
}

func TestLegalizeChain(t *testing.T) {
	fn := chainFunction("chain")
	stats, _ := legalizeAndCompare(t, fn, DefaultConfig(),
		[]*interp.Tensor{interp.Iota(dtypes.Float32, []int{2, 3}, 0), interp.Iota(dtypes.Float32, []int{3}, 0),
			interp.Iota(dtypes.Float32, []int{2, 1}, 0)},
		[]*interp.Tensor{interp.Iota(dtypes.Float32, []int{4}, 0), interp.Iota(dtypes.Float32, []int{4}, 1),
			interp.Iota(dtypes.Float32, []int{1}, 0)},
		[]*interp.Tensor{interp.Iota(dtypes.Float32, []int{2, 1, 2}, 0), interp.Iota(dtypes.Float32, []int{3, 1}, 1),
			interp.Iota(dtypes.Float32, []int{2, 3, 2}, 0)})
	assert.Equal(t, 1, stats.Applied[PatternScalarBroadcast])
	assert.Equal(t, 2, stats.Applied[PatternNaryDispatch])
	assert.Equal(t, 3, stats.Applied[PatternFlatten]) // Tanh and the two equal shapes fast paths.
	assert.Equal(t, 6, stats.NumRewrites())
	assert.Equal(t, 3, stats.Iterations)
	assert.Positive(t, stats.Swept)
	assert.Equal(t, fn.NumLiveOps(), stats.LiveOps)
	assert.Contains(t, stats.String(), "NaryDispatch=2")

	// Legalizing again is a no-op.
	stats = must.M1(Legalize(fn, DefaultConfig()))
	assert.Zero(t, stats.NumRewrites())
	assert.Equal(t, 1, stats.Iterations)
}

func TestLegalizeFailures(t *testing.T) {
	fn := chainFunction("short")
	before := fn.String()
	numOps := fn.NumOps()
	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	_, err := Legalize(fn, cfg)
	require.ErrorContains(t, err, "failed to reach a fixed point after 1 iterations")

	// A failed legalization leaves the function untouched, and it can still be legalized.
	assert.Equal(t, before, fn.String())
	assert.Equal(t, numOps, fn.NumOps())
	require.NoError(t, ir.Verify(fn))
	_, err = Legalize(fn, DefaultConfig())
	require.NoError(t, err)
	requireAllLegal(t, fn)

	// An illegal operation without patterns.
	saved := patternsByOpType[ir.OpTypeNeg]
	patternsByOpType[ir.OpTypeNeg] = nil
	defer func() { patternsByOpType[ir.OpTypeNeg] = saved }()
	fn = singleOpFunction(ir.OpTypeNeg, f32, nil, f32)
	_, err = Legalize(fn, DefaultConfig())
	require.ErrorContains(t, err, "failed to legalize operation Neg #1")

	cfg = DefaultConfig()
	cfg.MaxRankBinary = 0
	_, err = Legalize(chainFunction("invalid"), cfg)
	require.Error(t, err)
}

func TestLegalizeModule(t *testing.T) {
	module := ir.NewModule("module")
	for ii := range 8 {
		require.NoError(t, module.AddFunction(chainFunction(fmt.Sprintf("chain_%d", ii))))
	}
	original := chainFunction("original")
	for _, parallelism := range []int{0, 3, -1} {
		cfg := DefaultConfig()
		cfg.Parallelism = parallelism
		var done atomic.Int32
		allStats, err := LegalizeModuleWithCallback(module, cfg, func(stats *Stats, err error) {
			if err == nil {
				done.Add(1)
			}
		})
		require.NoError(t, err)
		require.Len(t, allStats, 8)
		assert.Equal(t, int32(8), done.Load())
		for ii, fn := range module.Functions() {
			assert.Equal(t, fn.Name(), allStats[ii].Function)
			requireAllLegal(t, fn)
		}
	}
	inputs := []*interp.Tensor{interp.Iota(dtypes.Float32, []int{3, 1}, 0), interp.Iota(dtypes.Float32, []int{2}, 0),
		interp.Iota(dtypes.Float32, []int{1, 1, 2}, 0)}
	want := must.M1(interp.Run(original, inputs...))
	got := must.M1(interp.Run(module.Function("chain_5"), inputs...))
	assert.True(t, want[0].Equal(got[0]))

	// Failures are reported with the function names.
	module = ir.NewModule("failing")
	require.NoError(t, module.AddFunction(chainFunction("a")))
	ranked := shapes.MakeDynamic(dtypes.Float32, 1)
	require.NoError(t, module.AddFunction(singleOpFunction(ir.OpTypeNeg, ranked, nil, ranked)))
	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	_, err := LegalizeModule(module, cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "1 of 2 functions failed (a)"), err.Error())
}
