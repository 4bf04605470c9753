// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/interp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarBroadcast(t *testing.T) {
	scalarShape := shapes.Scalar(dtypes.Float32)
	for _, scalarIsLHS := range []bool{true, false} {
		for _, dims := range [][]int{{}, {5}, {2, 3}, {2, 1, 3}, {1, 2, 1, 2, 1, 2}} {
			for _, s := range []float64{-2, 0.5, 3} {
				t.Run(fmt.Sprintf("lhs=%v/dims=%v/s=%g", scalarIsLHS, dims, s), func(t *testing.T) {
					operandShapes := []shapes.Shape{f32, scalarShape}
					if scalarIsLHS {
						operandShapes = []shapes.Shape{scalarShape, f32}
					}
					fn := singleOpFunction(ir.OpTypeBroadcastSub, f32, nil, operandShapes...)
					x := interp.Iota(dtypes.Float32, dims, -4)
					inputs := []*interp.Tensor{x, interp.Scalar(dtypes.Float32, s)}
					if scalarIsLHS {
						inputs = []*interp.Tensor{inputs[1], inputs[0]}
					}
					stats, outputs := legalizeAndCompare(t, fn, DefaultConfig(), inputs)
					assert.Equal(t, map[PatternID]int{PatternScalarBroadcast: 1}, stats.Applied)

					// Result has the shape of the unranked operand, and operand order is preserved.
					require.Equal(t, dims, outputs[0].Dims)
					for p, v := range x.Data {
						want := v - s
						if scalarIsLHS {
							want = s - v
						}
						assert.Equal(t, want, outputs[0].Data[p])
					}
				})
			}
		}
	}
}

func TestScalarBroadcastDeclines(t *testing.T) {
	scalarShape := shapes.Scalar(dtypes.Float32)
	for _, operandShapes := range [][]shapes.Shape{
		{scalarShape, scalarShape},
		{f32, f32},
		{shapes.MakeDynamic(dtypes.Float32, 1), f32},
		{scalarShape, shapes.MakeDynamic(dtypes.Float32, 1)},
	} {
		fn := singleOpFunction(ir.OpTypeBroadcastMul, f32, nil, operandShapes...)
		matched, err := (&ScalarBroadcastPattern{}).MatchAndRewrite(NewRewriter(fn, nil), fn.Op(2))
		require.NoError(t, err)
		assert.Falsef(t, matched, "operands %v", operandShapes)
	}

	// Both operands unranked go through the general dispatch, whose fast path handles the scalar.
	fn := singleOpFunction(ir.OpTypeBroadcastMul, f32, nil, f32, f32)
	stats, _ := legalizeAndCompare(t, fn, DefaultConfig(),
		[]*interp.Tensor{interp.Scalar(dtypes.Float32, 2), interp.Iota(dtypes.Float32, []int{2, 2}, 0)})
	assert.Equal(t, 1, stats.Applied[PatternNaryDispatch])
	assert.Zero(t, stats.Applied[PatternScalarBroadcast])

	outputs := must.M1(interp.Run(fn, interp.Iota(dtypes.Float32, []int{3}, 1), interp.Scalar(dtypes.Float32, 2)))
	assert.Equal(t, []float64{2, 4, 6}, outputs[0].Data)
}
