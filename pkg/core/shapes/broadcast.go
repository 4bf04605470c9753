// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"slices"

	"github.com/gomlx/rankspec/pkg/support/xslices"
	"github.com/pkg/errors"
)

// NumElements returns the number of elements of a tensor with the given concrete dimensions.
// It is 1 for a scalar (no dimensions).
func NumElements(dims []int) int {
	return xslices.Product(dims)
}

// BroadcastDimensions combines concrete dimensions using the standard broadcasting rules:
// shapes are right-aligned, missing leading axes are taken as 1, and an axis of dimension 1
// stretches to match the other operands.
//
// It returns an error if two operands have different dimensions, none of them 1, on the same axis.
func BroadcastDimensions(operands ...[]int) ([]int, error) {
	rank := 0
	for _, dims := range operands {
		rank = max(rank, len(dims))
	}
	output := make([]int, rank)
	for ii := range output {
		output[ii] = 1
	}
	for operandIdx, dims := range operands {
		offset := rank - len(dims)
		for axis, dim := range dims {
			outAxis := offset + axis
			switch {
			case dim == output[outAxis] || dim == 1:
				// Nothing to do.
			case output[outAxis] == 1:
				output[outAxis] = dim
			default:
				return nil, errors.Errorf("dimension of operand #%d %v at axis %d (%d) cannot be broadcast with %d: "+
					"dimensions must either match or be 1", operandIdx, dims, axis, dim, output[outAxis])
			}
		}
	}
	return output, nil
}

// BroadcastToRank broadcasts dims against a rank-`rank` shape of ones, which pads dims with
// leading axes of dimension 1.
//
// It returns an error if dims already has a rank larger than rank.
func BroadcastToRank(dims []int, rank int) ([]int, error) {
	if len(dims) > rank {
		return nil, errors.Errorf("cannot broadcast dimensions %v (rank %d) to rank %d", dims, len(dims), rank)
	}
	output := make([]int, rank)
	offset := rank - len(dims)
	for ii := range offset {
		output[ii] = 1
	}
	copy(output[offset:], dims)
	return output, nil
}

// MinimumBroadcastShapes reduces the dimensions of each operand to the smallest rank that
// yields the same broadcast result, preserving the number of elements of each operand:
//
//  1. Operands are right-aligned (missing leading axes count as dimension 1).
//  2. Axes where every operand has dimension 1 are dropped.
//  3. Adjacent axes where each operand is "1" (or not "1") on both are merged, multiplying
//     their dimensions.
//  4. Leading 1s are stripped from each result.
//
// E.g.: [2] with [3, 2] reduces to [2] and [3, 2]; [4, 1, 5, 6] with [4, 1, 5, 6] reduces to [120] and [120].
//
// The operands are assumed to be broadcast-compatible.
func MinimumBroadcastShapes(operands ...[]int) [][]int {
	rank := 0
	for _, dims := range operands {
		rank = max(rank, len(dims))
	}
	// Reduced dimensions are collected in reverse order (from the last axis).
	reversed := make([][]int, len(operands))
	var prevIsOne []bool
	isOne := make([]bool, len(operands))
	for pos := range rank {
		allOnes := true
		for ii, dims := range operands {
			dim := dimFromEnd(dims, pos)
			isOne[ii] = dim == 1
			allOnes = allOnes && isOne[ii]
		}
		if allOnes {
			continue
		}
		if prevIsOne != nil && slices.Equal(prevIsOne, isOne) {
			for ii, dims := range operands {
				last := len(reversed[ii]) - 1
				reversed[ii][last] *= dimFromEnd(dims, pos)
			}
			continue
		}
		for ii, dims := range operands {
			reversed[ii] = append(reversed[ii], dimFromEnd(dims, pos))
		}
		prevIsOne = slices.Clone(isOne)
	}

	results := make([][]int, len(operands))
	for ii, rev := range reversed {
		// Strip leading ones: they are at the end of the reversed list.
		for len(rev) > 0 && rev[len(rev)-1] == 1 {
			rev = rev[:len(rev)-1]
		}
		result := make([]int, len(rev))
		for jj, dim := range rev {
			result[len(rev)-1-jj] = dim
		}
		results[ii] = result
	}
	return results
}

// dimFromEnd returns the dimension at position pos counting from the last axis, or 1 if
// the axis doesn't exist.
func dimFromEnd(dims []int, pos int) int {
	axis := len(dims) - 1 - pos
	if axis < 0 {
		return 1
	}
	return dims[axis]
}
