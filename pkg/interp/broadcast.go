// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package interp

// broadcastIterator iterates over the flat indices of an operand, in the order of the elements
// of the broadcast output.
type broadcastIterator struct {
	flatIdx     int
	perAxesIdx  []int
	targetDims  []int
	isBroadcast []bool
	strides     []int
}

// newBroadcastIterator creates an iterator over fromDims broadcast to toDims. fromDims can have a
// smaller rank, in which case it's right-aligned.
func newBroadcastIterator(fromDims, toDims []int) *broadcastIterator {
	rank := len(toDims)
	offset := rank - len(fromDims)
	bi := &broadcastIterator{
		perAxesIdx:  make([]int, rank),
		targetDims:  toDims,
		isBroadcast: make([]bool, rank),
		strides:     make([]int, rank),
	}
	stride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		dim := 1
		if axis >= offset {
			dim = fromDims[axis-offset]
		}
		bi.strides[axis] = stride
		stride *= dim
		bi.isBroadcast[axis] = dim != toDims[axis]
	}
	return bi
}

// Next returns the flat index of the operand for the current output element, and advances.
func (bi *broadcastIterator) Next() (flatIdx int) {
	flatIdx = bi.flatIdx
	rank := len(bi.perAxesIdx)
	for axis := rank - 1; axis >= 0; axis-- {
		bi.perAxesIdx[axis]++
		if !bi.isBroadcast[axis] {
			bi.flatIdx += bi.strides[axis]
		}
		if bi.perAxesIdx[axis] < bi.targetDims[axis] {
			return
		}
		// Wrap around this axis.
		if !bi.isBroadcast[axis] {
			bi.flatIdx -= bi.strides[axis] * bi.targetDims[axis]
		}
		bi.perAxesIdx[axis] = 0
	}
	return
}
