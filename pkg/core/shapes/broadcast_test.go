// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastDimensions(t *testing.T) {
	dims, err := BroadcastDimensions([]int{2, 1, 3}, []int{4, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3}, dims)

	dims, err = BroadcastDimensions([]int{3}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, dims)

	dims, err = BroadcastDimensions([]int{}, []int{})
	require.NoError(t, err)
	assert.Empty(t, dims)

	dims, err = BroadcastDimensions([]int{2}, []int{3, 2}, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, dims)

	_, err = BroadcastDimensions([]int{2, 3}, []int{3, 2})
	require.Error(t, err)
}

func TestBroadcastToRank(t *testing.T) {
	dims, err := BroadcastToRank([]int{5, 6}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 5, 6}, dims)

	dims, err = BroadcastToRank(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, dims)

	_, err = BroadcastToRank([]int{1, 2, 3}, 2)
	require.Error(t, err)
}

func TestMinimumBroadcastShapes(t *testing.T) {
	testCases := []struct {
		name     string
		operands [][]int
		want     [][]int
	}{
		{"select", [][]int{{2}, {3, 2}, {3, 2}}, [][]int{{2}, {3, 2}, {3, 2}}},
		{"equal shapes merge", [][]int{{4, 1, 5, 6}, {4, 1, 5, 6}}, [][]int{{120}, {120}}},
		{"leading ones dropped", [][]int{{1, 1, 4}, {1, 4}}, [][]int{{4}, {4}}},
		{"alternating", [][]int{{2, 1, 2}, {1, 3, 1}}, [][]int{{2, 1, 2}, {3, 1}}},
		{"scalars", [][]int{{}, {1, 1}}, [][]int{{}, {}}},
		{"outer broadcast", [][]int{{5, 1}, {1, 7}}, [][]int{{5, 1}, {7}}},
		{"merge trailing", [][]int{{3, 4, 5}, {1, 4, 5}}, [][]int{{3, 20}, {20}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MinimumBroadcastShapes(tc.operands...)
			require.Len(t, got, len(tc.operands))
			for ii := range got {
				assert.Equalf(t, tc.want[ii], got[ii], "operand #%d", ii)
				assert.Equalf(t, NumElements(tc.operands[ii]), NumElements(got[ii]), "operand #%d number of elements", ii)
			}
			// Broadcasting the reduced shapes must yield the same number of elements as the original ones.
			original, err := BroadcastDimensions(tc.operands...)
			require.NoError(t, err)
			reduced, err := BroadcastDimensions(got...)
			require.NoError(t, err)
			assert.Equal(t, NumElements(original), NumElements(reduced))
		})
	}
}
