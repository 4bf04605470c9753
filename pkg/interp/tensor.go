// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package interp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/support/xslices"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Tensor is a concrete value: a DType, its dimensions and the flat values in row-major order.
//
// Values are stored as float64, rounded to what the DType can represent: integers are truncated
// (and wrapped to their bit width), Bool is 0 or 1 and reduced precision floats are rounded
// through their own representation.
type Tensor struct {
	DType dtypes.DType
	Dims  []int
	Data  []float64
}

// FromValues creates a tensor with the given dimensions and flat values, rounded to dtype.
//
// It panics if the number of values doesn't match the dimensions, or if dtype is not supported.
func FromValues(dtype dtypes.DType, dims []int, values ...float64) *Tensor {
	if size := shapes.NumElements(dims); size != len(values) {
		exceptions.Panicf("interp.FromValues(%s, %v): requires %d values, got %d", dtype, dims, size, len(values))
	}
	t := &Tensor{DType: dtype, Dims: slices.Clone(dims), Data: make([]float64, len(values))}
	for ii, v := range values {
		t.Data[ii] = round(dtype, v)
	}
	return t
}

// Scalar creates a rank-0 tensor.
func Scalar(dtype dtypes.DType, value float64) *Tensor {
	return FromValues(dtype, nil, value)
}

// Iota creates a tensor with the given dimensions holding the values start, start+1, ...
func Iota(dtype dtypes.DType, dims []int, start float64) *Tensor {
	values := make([]float64, shapes.NumElements(dims))
	for ii := range values {
		values[ii] = start + float64(ii)
	}
	return FromValues(dtype, dims, values...)
}

// Rank of the tensor.
func (t *Tensor) Rank() int { return len(t.Dims) }

// Size returns the number of elements.
func (t *Tensor) Size() int { return len(t.Data) }

// Shape returns the static shape of the tensor.
func (t *Tensor) Shape() shapes.Shape { return shapes.Make(t.DType, t.Dims...) }

// Ints returns the values as ints, used for shapes and indices.
func (t *Tensor) Ints() []int {
	ints := make([]int, len(t.Data))
	for ii, v := range t.Data {
		ints[ii] = int(v)
	}
	return ints
}

// Equal returns whether both tensors have the same dtype, dimensions and values. NaNs are considered equal.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.InDelta(other, 0)
}

// InDelta is like Equal, but values only need to be within delta of each other.
func (t *Tensor) InDelta(other *Tensor, delta float64) bool {
	return t.DType == other.DType && slices.Equal(t.Dims, other.Dims) &&
		xslices.InDelta(t.Data, other.Data, delta)
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%s", t.Shape())
	if len(t.Data) <= 32 {
		_, _ = fmt.Fprintf(&sb, " %v", t.Data)
	} else {
		_, _ = fmt.Fprintf(&sb, " %v...", t.Data[:32])
	}
	return sb.String()
}

// checkSupported returns an error if values of dtype cannot be represented.
func checkSupported(dtype dtypes.DType) error {
	if dtype == dtypes.InvalidDType || dtype.IsComplex() {
		return errors.Errorf("dtype %s is not supported by the interpreter", dtype)
	}
	return nil
}

// round converts v to the closest value representable by dtype.
func round(dtype dtypes.DType, v float64) float64 {
	switch dtype {
	case dtypes.Bool:
		if v != 0 {
			return 1
		}
		return 0
	case dtypes.Int8:
		return float64(int8(int64(v)))
	case dtypes.Int16:
		return float64(int16(int64(v)))
	case dtypes.Int32:
		return float64(int32(int64(v)))
	case dtypes.Int64:
		return float64(int64(v))
	case dtypes.Uint8:
		return float64(uint8(int64(v)))
	case dtypes.Uint16:
		return float64(uint16(int64(v)))
	case dtypes.Uint32:
		return float64(uint32(int64(v)))
	case dtypes.Uint64:
		return float64(uint64(v))
	case dtypes.Float16:
		return float64(float16.Fromfloat32(float32(v)).Float32())
	case dtypes.BFloat16:
		return float64(bfloat16.FromFloat32(float32(v)).Float32())
	case dtypes.Float32:
		return float64(float32(v))
	case dtypes.Float64:
		return v
	}
	exceptions.Panicf("dtype %s is not supported by the interpreter", dtype)
	return 0
}
