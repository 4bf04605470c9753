// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/interp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

var f32 = shapes.Unranked(dtypes.Float32)

// singleOpFunction builds a function with one parameter per operand shape, returning opType applied to them.
func singleOpFunction(opType ir.OpType, result shapes.Shape, attrs ir.Attributes, operandShapes ...shapes.Shape) *ir.Function {
	fn := ir.NewFunction(opType.String())
	b := ir.NewBuilder(fn)
	operands := make([]ir.Value, len(operandShapes))
	for ii, s := range operandShapes {
		operands[ii] = b.Parameter("x", s)
	}
	b.Return(b.Apply(opType, result, attrs, operands...))
	return fn
}

// alternatingDims returns dimensions of the given rank alternating between even and odd values,
// starting at axis 0.
func alternatingDims(rank, even, odd int) []int {
	dims := make([]int, rank)
	for ii := range dims {
		if ii%2 == 0 {
			dims[ii] = even
		} else {
			dims[ii] = odd
		}
	}
	return dims
}

// predicates returns a Bool tensor with alternating true/false values.
func predicates(dims []int) *interp.Tensor {
	values := make([]float64, shapes.NumElements(dims))
	for ii := range values {
		values[ii] = float64(ii % 2)
	}
	return interp.FromValues(dtypes.Bool, dims, values...)
}

// requireAllLegal checks that no illegal operation is left.
func requireAllLegal(t *testing.T, fn *ir.Function) {
	for _, op := range fn.Operations() {
		require.Truef(t, IsLegal(op), "operation %s is not legal after rank specialization", op)
	}
}

// legalizeAndCompare legalizes fn, and checks that it computes the same as the original for each
// set of inputs. It returns the outputs of the last set of inputs.
func legalizeAndCompare(t *testing.T, fn *ir.Function, cfg Config, inputs ...[]*interp.Tensor) (*Stats, []*interp.Tensor) {
	original := fn.Clone()
	stats, err := Legalize(fn, cfg)
	require.NoErrorf(t, err, "failed to legalize:\n%s", original)
	requireAllLegal(t, fn)
	var outputs []*interp.Tensor
	for _, in := range inputs {
		want := must.M1(interp.Run(original, in...))
		outputs = must.M1(interp.Run(fn, in...))
		require.Len(t, outputs, len(want))
		for ii := range want {
			require.Truef(t, want[ii].Equal(outputs[ii]), "output #%d: want %s, got %s\nfunction:\n%s",
				ii, want[ii], outputs[ii], fn)
		}
	}
	return stats, outputs
}

// rankedResults returns the ranks of the results of the executed operations of type opType with a ranked result.
func rankedResults(opType ir.OpType) (*[]int, interp.TraceFn) {
	var ranks []int
	return &ranks, func(op *ir.Op) {
		if op.Type() == opType && op.Shape().IsRanked() {
			ranks = append(ranks, op.Shape().Rank())
		}
	}
}
