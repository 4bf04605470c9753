// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapeops_test

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	. "github.com/gomlx/rankspec/pkg/core/ir/shapeops"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/interp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runShapes builds a function with unranked Float32 parameters of the given dimensions, where buildFn
// returns the values to output, and executes it.
func runShapes(t *testing.T, buildFn func(b *ir.Builder, params []ir.Value) []ir.Value, dims ...[]int) []*interp.Tensor {
	fn := ir.NewFunction("shapes")
	b := ir.NewBuilder(fn)
	params := make([]ir.Value, len(dims))
	inputs := make([]*interp.Tensor, len(dims))
	for ii, d := range dims {
		params[ii] = b.Parameter("x", shapes.Unranked(dtypes.Float32))
		inputs[ii] = interp.Iota(dtypes.Float32, d, 0)
	}
	b.Return(buildFn(b, params)...)
	require.NoError(t, ir.Verify(fn))
	return must.M1(interp.Run(fn, inputs...))
}

func shapesOf(b *ir.Builder, params []ir.Value) []ir.Value {
	shapeValues := make([]ir.Value, len(params))
	for ii, p := range params {
		shapeValues[ii] = ShapeOf(b, p)
	}
	return shapeValues
}

func TestShapeQueries(t *testing.T) {
	outputs := runShapes(t, func(b *ir.Builder, params []ir.Value) []ir.Value {
		s := shapesOf(b, params)
		broadcast := BroadcastShape(b, s...)
		return []ir.Value{
			s[0],
			NumElements(b, s[0]),
			broadcast,
			FlatShape(b, broadcast),
			IsSingleElement(b, s[1]),
			ShapesEqual(b, s[0], s[1]),
			AllShapesEqual(b, []ir.Value{s[0], s[0], s[0]}),
			CountSingleElement(b, s),
			MaxRank(b, s),
			BroadcastToRank(b, s[1], 4),
		}
	}, []int{2, 1, 3}, []int{1}, []int{4, 1})
	assert.Equal(t, []int{2, 1, 3}, outputs[0].Ints())
	assert.Equal(t, []int{6}, outputs[1].Ints())
	assert.Equal(t, []int{2, 4, 3}, outputs[2].Ints())
	assert.Equal(t, []int{24}, outputs[3].Ints())
	assert.Equal(t, []int{1}, outputs[4].Ints())
	assert.Equal(t, []int{0}, outputs[5].Ints())
	assert.Equal(t, []int{1}, outputs[6].Ints())
	assert.Equal(t, []int{1}, outputs[7].Ints())
	assert.Equal(t, []int{3}, outputs[8].Ints())
	assert.Equal(t, []int{1, 1, 1, 1}, outputs[9].Ints())
}

func TestMinimumBroadcastShapes(t *testing.T) {
	outputs := runShapes(t, func(b *ir.Builder, params []ir.Value) []ir.Value {
		reduced := MinimumBroadcastShapes(b, shapesOf(b, params))
		return append(reduced, MaxRank(b, reduced))
	}, []int{2}, []int{3, 2}, []int{3, 2})
	assert.Equal(t, []int{2}, outputs[0].Ints())
	assert.Equal(t, []int{3, 2}, outputs[1].Ints())
	assert.Equal(t, []int{3, 2}, outputs[2].Ints())
	assert.Equal(t, []int{2}, outputs[3].Ints())
}

func TestReshapes(t *testing.T) {
	outputs := runShapes(t, func(b *ir.Builder, params []ir.Value) []ir.Value {
		s := ShapeOf(b, params[0])
		flat := Flatten(b, params[0], FlatShape(b, s))
		restored := Reshape(b, flat, s, shapes.Unranked(dtypes.Float32))
		return []ir.Value{flat, restored}
	}, []int{2, 3})
	assert.Equal(t, []int{6}, outputs[0].Dims)
	assert.Equal(t, []int{2, 3}, outputs[1].Dims)
	assert.Equal(t, outputs[0].Data, outputs[1].Data)

	// Incompatible broadcast fails at run time, not when building.
	fn := ir.NewFunction("incompatible")
	b := ir.NewBuilder(fn)
	x := b.Parameter("x", shapes.Unranked(dtypes.Float32))
	y := b.Parameter("y", shapes.Unranked(dtypes.Float32))
	b.Return(BroadcastShape(b, ShapeOf(b, x), ShapeOf(b, y)))
	_, err := interp.Run(fn, interp.Iota(dtypes.Float32, []int{2}, 0), interp.Iota(dtypes.Float32, []int{3}, 0))
	require.Error(t, err)

	// Programming errors panic.
	err = exceptions.TryCatch[error](func() { MaxRank(b, nil) })
	require.Error(t, err)
	err = exceptions.TryCatch[error](func() { NumElements(b, x) })
	require.Error(t, err)
}
