// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package interp

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binaryFunction(opType ir.OpType, result shapes.Shape, attrs ir.Attributes, lhs, rhs shapes.Shape) *ir.Function {
	fn := ir.NewFunction(opType.String())
	b := ir.NewBuilder(fn)
	x := b.Parameter("x", lhs)
	y := b.Parameter("y", rhs)
	b.Return(b.Apply(opType, result, attrs, x, y))
	return fn
}

func TestBroadcasting(t *testing.T) {
	f32 := shapes.Unranked(dtypes.Float32)
	fn := binaryFunction(ir.OpTypeBroadcastAdd, f32, nil, f32, f32)
	outputs := must.M1(Run(fn,
		FromValues(dtypes.Float32, []int{2, 1}, 10, 20),
		FromValues(dtypes.Float32, []int{3}, 1, 2, 3)))
	require.Len(t, outputs, 1)
	assert.Equal(t, []int{2, 3}, outputs[0].Dims)
	assert.Equal(t, []float64{11, 12, 13, 21, 22, 23}, outputs[0].Data)

	// Middle axis broadcast.
	outputs = must.M1(Run(fn, Iota(dtypes.Float32, []int{2, 1, 2}, 0), Iota(dtypes.Float32, []int{3, 1}, 100)))
	assert.Equal(t, []int{2, 3, 2}, outputs[0].Dims)
	assert.Equal(t, []float64{100, 101, 101, 102, 102, 103, 102, 103, 103, 104, 104, 105}, outputs[0].Data)

	// Incompatible shapes.
	_, err := Run(fn, Iota(dtypes.Float32, []int{2}, 0), Iota(dtypes.Float32, []int{3}, 0))
	require.ErrorContains(t, err, "cannot be broadcast")

	// Comparison with a scalar.
	fn = binaryFunction(ir.OpTypeBroadcastCompare, shapes.Unranked(dtypes.Bool),
		ir.Attributes{ir.AttrComparisonDirection: ir.CompareGT}, f32, shapes.Scalar(dtypes.Float32))
	outputs = must.M1(Run(fn, Iota(dtypes.Float32, []int{2, 2}, 0), Scalar(dtypes.Float32, 1.5)))
	assert.Equal(t, dtypes.Bool, outputs[0].DType)
	assert.Equal(t, []float64{0, 0, 1, 1}, outputs[0].Data)
}

func TestElementwise(t *testing.T) {
	f32 := shapes.Unranked(dtypes.Float32)
	fn := binaryFunction(ir.OpTypeMul, f32, nil, f32, f32)
	outputs := must.M1(Run(fn, Iota(dtypes.Float32, []int{3}, 1), Iota(dtypes.Float32, []int{3}, 1)))
	assert.Equal(t, []float64{1, 4, 9}, outputs[0].Data)

	_, err := Run(fn, Iota(dtypes.Float32, []int{3}, 1), Iota(dtypes.Float32, []int{1}, 1))
	require.ErrorContains(t, err, "different dimensions")

	// Input doesn't match the parameter type.
	_, err = Run(fn, Iota(dtypes.Int32, []int{3}, 1), Iota(dtypes.Float32, []int{3}, 1))
	require.ErrorContains(t, err, "doesn't match parameter type")

	// The static result type is checked.
	fn = binaryFunction(ir.OpTypeMul, shapes.MakeDynamic(dtypes.Float32, 2), nil, f32, f32)
	_, err = Run(fn, Iota(dtypes.Float32, []int{3}, 1), Iota(dtypes.Float32, []int{3}, 1))
	require.ErrorContains(t, err, "not compatible with its type")

	// Select with a scalar predicate.
	fn = ir.NewFunction("select")
	b := ir.NewBuilder(fn)
	pred := b.Parameter("pred", shapes.Scalar(dtypes.Bool))
	x := b.Parameter("x", shapes.Make(dtypes.Int32, 2))
	y := b.Parameter("y", shapes.Make(dtypes.Int32, 2))
	b.Return(b.Apply(ir.OpTypeSelect, shapes.Make(dtypes.Int32, 2), nil, pred, x, y))
	outputs = must.M1(Run(fn, Scalar(dtypes.Bool, 0), FromValues(dtypes.Int32, []int{2}, 1, 2), FromValues(dtypes.Int32, []int{2}, 3, 4)))
	assert.Equal(t, []float64{3, 4}, outputs[0].Data)
}

func TestElementFunctions(t *testing.T) {
	testCases := []struct {
		opType ir.OpType
		dtype  dtypes.DType
		args   []float64
		want   float64
	}{
		{ir.OpTypeDiv, dtypes.Int32, []float64{-7, 2}, -3},
		{ir.OpTypeDiv, dtypes.Int32, []float64{7, 0}, -1},
		{ir.OpTypeRem, dtypes.Int32, []float64{-7, 2}, -1},
		{ir.OpTypeShiftLeft, dtypes.Int8, []float64{1, 3}, 8},
		{ir.OpTypeShiftRightLogical, dtypes.Int8, []float64{-128, 7}, 1},
		{ir.OpTypeShiftRightArithmetic, dtypes.Int8, []float64{-128, 7}, -1},
		{ir.OpTypeClz, dtypes.Int32, []float64{1}, 31},
		{ir.OpTypePopulationCount, dtypes.Uint8, []float64{255}, 8},
		{ir.OpTypeNot, dtypes.Bool, []float64{1}, 0},
		{ir.OpTypeXor, dtypes.Int32, []float64{6, 3}, 5},
		{ir.OpTypeSign, dtypes.Float32, []float64{-3}, -1},
		{ir.OpTypeLogistic, dtypes.Float32, []float64{0}, 0.5},
	}
	for _, tc := range testCases {
		got := elementFns[tc.opType](tc.dtype, tc.args)
		assert.Equalf(t, tc.want, got, "%s(%v) for %s", tc.opType, tc.args, tc.dtype)
	}
	assert.InDelta(t, -0.5772156649, digamma(1), 1e-8)
	assert.InDelta(t, 1-0.5772156649, digamma(2), 1e-8)
	assert.True(t, math.IsNaN(digamma(-2)))
	assert.Nil(t, elementFns[ir.OpTypePolygamma])

	assert.True(t, IsSupported(ir.OpTypeAdd))
	assert.True(t, IsSupported(ir.OpTypeBroadcastCompare))
	assert.True(t, IsSupported(ir.OpTypeIf))
	assert.False(t, IsSupported(ir.OpTypeReal))
	assert.False(t, IsSupported(ir.OpTypeBroadcastZeta))
	assert.False(t, IsSupported(ir.OpTypeLast))
}

func TestBitWidthKernels(t *testing.T) {
	for dtype, want := range map[dtypes.DType]int{
		dtypes.Int8: 8, dtypes.Uint8: 8, dtypes.Int16: 16, dtypes.Uint16: 16,
		dtypes.Int32: 32, dtypes.Uint32: 32, dtypes.Int64: 64, dtypes.Uint64: 64,
	} {
		require.Equalf(t, want, bitWidth(dtype), "dtype %s", dtype)
		// Clz of 1 and shifts by the full width depend on the width of the dtype.
		assert.Equalf(t, float64(want-1), elementFns[ir.OpTypeClz](dtype, []float64{1}), "Clz for %s", dtype)
		assert.Zerof(t, elementFns[ir.OpTypeShiftLeft](dtype, []float64{1, float64(want)}), "ShiftLeft for %s", dtype)
		assert.Zerof(t, elementFns[ir.OpTypeShiftRightLogical](dtype, []float64{1, float64(want)}),
			"ShiftRightLogical for %s", dtype)
		switch dtype {
		case dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64:
			assert.Equalf(t, -1.0, elementFns[ir.OpTypeShiftRightArithmetic](dtype, []float64{-8, 100}),
				"ShiftRightArithmetic for %s", dtype)
		}
	}

	// Evaluated through a function, with masking to the dtype width.
	fn := binaryFunction(ir.OpTypeShiftRightLogical, shapes.Make(dtypes.Int16, 2),
		nil, shapes.Make(dtypes.Int16, 2), shapes.Make(dtypes.Int16, 2))
	outputs := must.M1(Run(fn, FromValues(dtypes.Int16, []int{2}, -1, 256), FromValues(dtypes.Int16, []int{2}, 15, 8)))
	assert.Equal(t, []float64{1, 1}, outputs[0].Data)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, []float64{-128, 127, 3}, FromValues(dtypes.Int8, []int{3}, 128, 127, 3.7).Data)
	assert.Equal(t, []float64{1, 0}, FromValues(dtypes.Bool, []int{2}, 7, 0).Data)
	assert.InDelta(t, 0.1, FromValues(dtypes.Float16, nil, 0.1).Data[0], 1e-4)
	assert.NotEqual(t, 0.1, FromValues(dtypes.Float16, nil, 0.1).Data[0])
	assert.InDelta(t, 0.1, FromValues(dtypes.BFloat16, nil, 0.1).Data[0], 1e-3)
	assert.Panics(t, func() { FromValues(dtypes.Float32, []int{2}, 1) })
}

func TestControlFlow(t *testing.T) {
	fn := ir.NewFunction("rank_check")
	b := ir.NewBuilder(fn)
	x := b.Parameter("x", shapes.Unranked(dtypes.Float32))
	rank := b.ShapeRank(b.ShapeOf(x))
	isTwo := b.CmpIndex(ir.CmpEQ, rank, b.ConstIndex(2))
	ifOp := b.If(isTwo, shapes.Unranked(dtypes.Float32))
	thenB := ir.NewBuilderAtEnd(ifOp.Region(0))
	thenB.Yield(thenB.Apply(ir.OpTypeNeg, shapes.Unranked(dtypes.Float32), nil, x))
	elseB := ir.NewBuilderAtEnd(ifOp.Region(1))
	elseB.Assert(isTwo, "rank must be 2")
	elseB.Yield(x)
	b.Return(ifOp.Id())
	require.NoError(t, ir.Verify(fn))

	var executed []ir.OpType
	outputs := must.M1(RunTraced(fn, func(op *ir.Op) { executed = append(executed, op.Type()) },
		Iota(dtypes.Float32, []int{1, 2}, 1)))
	assert.Equal(t, []float64{-1, -2}, outputs[0].Data)
	assert.Contains(t, executed, ir.OpTypeNeg)
	assert.NotContains(t, executed, ir.OpTypeAssert)

	_, err := Run(fn, Iota(dtypes.Float32, []int{2}, 1))
	var assertErr *AssertionError
	require.ErrorAs(t, err, &assertErr)
	assert.Equal(t, "rank must be 2", assertErr.Msg)
}

func TestShapeOperations(t *testing.T) {
	fn := ir.NewFunction("shapes")
	b := ir.NewBuilder(fn)
	x := b.Parameter("x", shapes.Unranked(dtypes.Float32))
	y := b.Parameter("y", shapes.Unranked(dtypes.Float32))
	sx, sy := b.ShapeOf(x), b.ShapeOf(y)
	broadcast := b.BroadcastShapes(sx, sy)
	reduced := b.MinimumBroadcastShape(1, sx, sy)
	padded := b.Cast(b.BroadcastShapes(b.ConstShape(1, 1, 1), sx), ir.ExtentShape(3))
	numElements := b.NumElements(broadcast)
	b.Return(broadcast, reduced, padded, numElements, b.ShapeEq(sx, sy))

	outputs := must.M1(Run(fn, Iota(dtypes.Float32, []int{4, 1, 5}, 0), Iota(dtypes.Float32, []int{1, 6, 5}, 0)))
	assert.Equal(t, []int{4, 6, 5}, outputs[0].Ints())
	assert.Equal(t, []int{6, 5}, outputs[1].Ints())
	assert.Equal(t, []int{4, 1, 5}, outputs[2].Ints())
	assert.Equal(t, []int{120}, outputs[3].Ints())
	assert.Equal(t, []int{0}, outputs[4].Ints())
}
