// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapeops emits the run-time shape computations used by the rank specialization rewrites:
// extracting shapes, counting elements, broadcasting and comparing shapes.
//
// Each function creates the operations at the builder's insertion point and returns the resulting
// ir.Value. Shapes are rank-1 Int64 tensors (see ir.ExtentShape) and element counts or ranks are
// Int64 scalars (see ir.IndexShape).
//
// Nothing here fails at compile time for valid inputs: incompatible broadcasts fail when the
// generated program is executed. Invalid inputs (e.g. passing a tensor where a shape is expected)
// are programming errors and panic, see github.com/gomlx/exceptions.
package shapeops

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/support/xslices"
)

// ShapeOf returns the run-time shape of the tensor v. If v is unranked, the length of the
// returned shape is only known at run time.
func ShapeOf(b *ir.Builder, v ir.Value) ir.Value {
	return b.ShapeOf(v)
}

// NumElements returns the number of elements described by shape.
func NumElements(b *ir.Builder, shape ir.Value) ir.Value {
	return b.NumElements(shape)
}

// BroadcastShape combines the shapes with the broadcasting rules (right-aligned, dimensions of 1
// stretch). With a single shape it is returned as is.
func BroadcastShape(b *ir.Builder, shapeValues ...ir.Value) ir.Value {
	if len(shapeValues) == 0 {
		exceptions.Panicf("shapeops.BroadcastShape requires at least one shape")
	}
	if len(shapeValues) == 1 {
		return shapeValues[0]
	}
	return b.BroadcastShapes(shapeValues...)
}

// ShapesEqual returns a boolean value telling whether lhs and rhs are the same shape.
func ShapesEqual(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.ShapeEq(lhs, rhs)
}

// AllShapesEqual returns a boolean value telling whether all shapes are equal to the first one.
func AllShapesEqual(b *ir.Builder, shapeValues []ir.Value) ir.Value {
	if len(shapeValues) < 2 {
		exceptions.Panicf("shapeops.AllShapesEqual requires at least two shapes, got %d", len(shapeValues))
	}
	allEqual := b.ShapeEq(shapeValues[0], shapeValues[1])
	for _, shape := range shapeValues[2:] {
		allEqual = b.AndBool(allEqual, b.ShapeEq(shapeValues[0], shape))
	}
	return allEqual
}

// FlatShape returns the rank-1 shape holding the number of elements of shape.
func FlatShape(b *ir.Builder, shape ir.Value) ir.Value {
	return b.FromElements(b.NumElements(shape))
}

// IsSingleElement returns a boolean value telling whether shape describes exactly one element.
func IsSingleElement(b *ir.Builder, shape ir.Value) ir.Value {
	return b.CmpIndex(ir.CmpEQ, b.NumElements(shape), b.ConstIndex(1))
}

// CountSingleElement returns the number of shapes describing exactly one element.
func CountSingleElement(b *ir.Builder, shapeValues []ir.Value) ir.Value {
	one := b.ConstIndex(1)
	counter := b.ConstIndex(0)
	for _, shape := range shapeValues {
		isOne := b.CmpIndex(ir.CmpEQ, b.NumElements(shape), one)
		counter = b.SelectIndex(isOne, b.AddIndex(counter, one), counter)
	}
	return counter
}

// BroadcastToRank pads shape with leading 1s up to the static rank: it broadcasts shape with a
// constant shape of rank ones, and casts the result to a shape of static length rank.
//
// It fails at run time if shape has a rank larger than rank.
func BroadcastToRank(b *ir.Builder, shape ir.Value, rank int) ir.Value {
	ones := b.ConstShape(xslices.SliceWithValue(rank, 1)...)
	broadcast := b.BroadcastShapes(ones, shape)
	return b.Cast(broadcast, ir.ExtentShape(rank))
}

// MinimumBroadcastShapes returns the reduced version of each shape, see shapes.MinimumBroadcastShapes.
func MinimumBroadcastShapes(b *ir.Builder, shapeValues []ir.Value) []ir.Value {
	reduced := make([]ir.Value, len(shapeValues))
	for ii := range shapeValues {
		reduced[ii] = b.MinimumBroadcastShape(ii, shapeValues...)
	}
	return reduced
}

// MaxRank returns the largest length (rank) among the shapes.
func MaxRank(b *ir.Builder, shapeValues []ir.Value) ir.Value {
	if len(shapeValues) == 0 {
		exceptions.Panicf("shapeops.MaxRank requires at least one shape")
	}
	maxRank := b.ShapeRank(shapeValues[0])
	for _, shape := range shapeValues[1:] {
		rank := b.ShapeRank(shape)
		isGreater := b.CmpIndex(ir.CmpSGT, maxRank, rank)
		maxRank = b.SelectIndex(isGreater, maxRank, rank)
	}
	return maxRank
}

// Reshape reshapes v to the run-time shape, with a result of static type result.
func Reshape(b *ir.Builder, v, shape ir.Value, result shapes.Shape) ir.Value {
	return b.DynamicReshape(v, shape, result)
}

// Flatten reshapes v to a rank-1 tensor using the given flat shape (see FlatShape).
func Flatten(b *ir.Builder, v, flatShape ir.Value) ir.Value {
	return b.DynamicReshape(v, flatShape, shapes.MakeDynamic(b.Shape(v).DType, 1))
}
