// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the type of tensor values in the rankspec IR, and the
// broadcasting rules shared by the rewrite patterns and the reference evaluator.
//
// A Shape is either ranked, with a fixed number of axes whose dimensions may be known
// (a non-negative integer) or dynamic (DynamicDim), or unranked, in which case only
// the DType is known at compile time.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a tensor. Unranked shapes have UnknownRank.
//   - Axis: the index of a dimension on a multidimensional tensor.
//   - Dimension: the size of a tensor in one of its axes. DynamicDim if only known at run time.
//   - DType: the data type of the unit element in a tensor. Enumeration defined in github.com/gomlx/gopjrt/dtypes
//   - Scalar: a ranked shape with no axes.
//
// Example: `shapes.Make(dtypes.Float32, 2, shapes.DynamicDim)` is printed as `(Float32)[2 ?]`, and
// `shapes.Unranked(dtypes.Float32)` is printed as `(Float32)[*]`.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// DynamicDim marks an axis whose dimension is only known at run time.
const DynamicDim = -1

// UnknownRank is returned by Shape.Rank for unranked shapes.
const UnknownRank = -1

// Shape represents the static type of a tensor value: its DType and, if ranked, its
// dimensions.
//
// Use Make, Unranked or Scalar to create a new shape.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
	unranked   bool
}

// Make returns a ranked Shape with the given dimensions. Use DynamicDim for axes whose
// dimension is only known at run time.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 && dim != DynamicDim {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension %d", s, dim)
		}
	}
	return s
}

// MakeDynamic returns a ranked Shape of the given rank where every dimension is DynamicDim.
func MakeDynamic(dtype dtypes.DType, rank int) Shape {
	if rank < 0 {
		exceptions.Panicf("shapes.MakeDynamic(%s, %d): negative rank", dtype, rank)
	}
	dims := make([]int, rank)
	for ii := range dims {
		dims[ii] = DynamicDim
	}
	return Shape{DType: dtype, Dimensions: dims}
}

// Unranked returns a Shape whose rank is not known at compile time.
func Unranked(dtype dtypes.DType) Shape {
	return Shape{DType: dtype, unranked: true}
}

// Scalar returns a rank-0 Shape for the given dtype.
func Scalar(dtype dtypes.DType) Shape {
	return Shape{DType: dtype}
}

// Invalid returns an invalid shape, used for operations without a result.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// IsRanked returns whether the rank of the shape is known at compile time.
func (s Shape) IsRanked() bool { return s.Ok() && !s.unranked }

// IsUnranked returns whether the rank of the shape is unknown at compile time.
func (s Shape) IsUnranked() bool { return s.Ok() && s.unranked }

// Rank of the shape, that is, the number of dimensions. It returns UnknownRank for unranked shapes.
func (s Shape) Rank() int {
	if s.unranked {
		return UnknownRank
	}
	return len(s.Dimensions)
}

// IsScalar returns whether the shape represents a scalar, that is there are no dimensions (rank==0).
func (s Shape) IsScalar() bool { return s.IsRanked() && len(s.Dimensions) == 0 }

// IsStatic returns whether the shape is ranked and all its dimensions are known.
func (s Shape) IsStatic() bool {
	return s.IsRanked() && !slices.Contains(s.Dimensions, DynamicDim)
}

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis, or if the shape is unranked.
func (s Shape) Dim(axis int) int {
	if s.unranked {
		exceptions.Panicf("Shape.Dim(%d) of unranked shape %s", axis, s)
	}
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Size returns the number of elements of DType needed for this shape. It's the product of all dimensions,
// or DynamicDim if that is not known at compile time.
func (s Shape) Size() int {
	if !s.IsStatic() {
		return DynamicDim
	}
	return NumElements(s.Dimensions)
}

// WithDType returns a copy of the shape with the DType replaced.
func (s Shape) WithDType(dtype dtypes.DType) Shape {
	s2 := s.Clone()
	s2.DType = dtype
	return s2
}

// Erased returns the unranked version of the shape, with the same DType.
func (s Shape) Erased() Shape {
	return Unranked(s.DType)
}

// String implements stringer, pretty-prints the shape.
func (s Shape) String() string {
	if !s.Ok() {
		return "(invalid)"
	}
	if s.unranked {
		return fmt.Sprintf("(%s)[*]", s.DType)
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	parts := make([]string, len(s.Dimensions))
	for ii, dim := range s.Dimensions {
		if dim == DynamicDim {
			parts[ii] = "?"
		} else {
			parts[ii] = fmt.Sprintf("%d", dim)
		}
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(parts, " "))
}

// Equal compares two shapes for equality: dtype, ranked-ness and dimensions are compared.
// A DynamicDim is only equal to another DynamicDim.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType || s.unranked != s2.unranked {
		return false
	}
	if s.unranked {
		return true
	}
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.unranked = s.unranked
	s2.Dimensions = slices.Clone(s.Dimensions)
	return
}

// UnifiesWith returns whether a value of shape s can be used where declared is expected:
// the DTypes must match, and either declared is unranked, or the ranks match and every
// known dimension of declared matches the corresponding dimension of s.
//
// A dynamic dimension in s only unifies with a dynamic dimension in declared.
func (s Shape) UnifiesWith(declared Shape) bool {
	if !s.Ok() || s.DType != declared.DType {
		return false
	}
	if declared.unranked {
		return true
	}
	if s.unranked || s.Rank() != declared.Rank() {
		return false
	}
	for axis, dim := range declared.Dimensions {
		if dim != DynamicDim && s.Dimensions[axis] != dim {
			return false
		}
	}
	return true
}

// AcceptsDimensions returns whether concrete run-time dimensions are compatible with the
// shape: always true for unranked shapes, otherwise the rank must match and every known
// dimension must be equal.
func (s Shape) AcceptsDimensions(dims []int) bool {
	if s.unranked {
		return true
	}
	if len(dims) != len(s.Dimensions) {
		return false
	}
	for axis, dim := range s.Dimensions {
		if dim != DynamicDim && dims[axis] != dim {
			return false
		}
	}
	return true
}
