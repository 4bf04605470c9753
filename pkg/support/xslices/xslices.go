// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide missing functionality to the slices package.
package xslices

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// SliceWithValue creates a slice of given size filled with given value.
func SliceWithValue[T any](size int, value T) []T {
	s := make([]T, size)
	for ii := range s {
		s[ii] = value
	}
	return s
}

// Product returns the product of all elements, 1 for an empty slice.
func Product[T constraints.Integer | constraints.Float](slice []T) T {
	p := T(1)
	for _, v := range slice {
		p *= v
	}
	return p
}

// InDelta returns whether both slices have the same length and every pair of elements is within delta.
// NaNs are considered equal to each other.
func InDelta(s0, s1 []float64, delta float64) bool {
	if len(s0) != len(s1) {
		return false
	}
	for ii, e0 := range s0 {
		e1 := s1[ii]
		if math.IsNaN(e0) || math.IsNaN(e1) {
			if math.IsNaN(e0) != math.IsNaN(e1) {
				return false
			}
			continue
		}
		if e0 == e1 {
			// Also covers infinities.
			continue
		}
		if math.Abs(e0-e1) > delta {
			return false
		}
	}
	return true
}
