// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Aliases
var (
	F32 = dtypes.Float32
	I64 = dtypes.Int64
	MS  = Make
)

func TestShape(t *testing.T) {
	s := MS(F32, 2, DynamicDim, 3)
	assert.True(t, s.Ok())
	assert.True(t, s.IsRanked())
	assert.False(t, s.IsStatic())
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 3, s.Dim(-1))
	assert.Equal(t, DynamicDim, s.Size())
	assert.Equal(t, "(Float32)[2 ? 3]", s.String())

	u := Unranked(F32)
	assert.True(t, u.IsUnranked())
	assert.False(t, u.IsScalar())
	assert.Equal(t, UnknownRank, u.Rank())
	assert.Equal(t, "(Float32)[*]", u.String())
	assert.Equal(t, "(Int64)", Scalar(I64).String())
	assert.True(t, Scalar(I64).IsScalar())
	assert.Equal(t, 6, MS(F32, 2, 3).Size())
	assert.False(t, Invalid().Ok())
	assert.Equal(t, "(invalid)", Invalid().String())

	require.NotNil(t, exceptions.Try(func() { _ = MS(F32, -2) }))
	require.NotNil(t, exceptions.Try(func() { _ = u.Dim(0) }))
	require.NotNil(t, exceptions.Try(func() { _ = s.Dim(3) }))
}

func TestEqualAndClone(t *testing.T) {
	s := MS(F32, 2, 3)
	c := s.Clone()
	c.Dimensions[0] = 7
	assert.Equal(t, 2, s.Dimensions[0])
	assert.True(t, s.Equal(MS(F32, 2, 3)))
	assert.False(t, s.Equal(MS(I64, 2, 3)))
	assert.False(t, s.Equal(Unranked(F32)))
	assert.True(t, Unranked(F32).Equal(Unranked(F32)))
	assert.True(t, s.WithDType(I64).Equal(MS(I64, 2, 3)))
	assert.True(t, s.Erased().Equal(Unranked(F32)))
	assert.True(t, MakeDynamic(F32, 2).Equal(MS(F32, DynamicDim, DynamicDim)))
}

func TestUnifiesWith(t *testing.T) {
	testCases := []struct {
		value, declared Shape
		want            bool
	}{
		{MS(F32, 2, 3), Unranked(F32), true},
		{Unranked(F32), Unranked(F32), true},
		{Unranked(F32), MS(F32, 2), false},
		{MS(F32, 2, 3), MS(F32, DynamicDim, 3), true},
		{MS(F32, DynamicDim, 3), MS(F32, 2, 3), false},
		{MS(F32, 2, 3), MS(F32, 2), false},
		{MS(F32, 2), Unranked(I64), false},
		{Invalid(), Unranked(F32), false},
	}
	for _, tc := range testCases {
		assert.Equalf(t, tc.want, tc.value.UnifiesWith(tc.declared), "%s.UnifiesWith(%s)", tc.value, tc.declared)
	}
}

func TestAcceptsDimensions(t *testing.T) {
	assert.True(t, Unranked(F32).AcceptsDimensions([]int{1, 2, 3}))
	assert.True(t, MS(F32, DynamicDim, 3).AcceptsDimensions([]int{7, 3}))
	assert.False(t, MS(F32, DynamicDim, 3).AcceptsDimensions([]int{7, 4}))
	assert.False(t, MS(F32, DynamicDim).AcceptsDimensions([]int{7, 4}))
	assert.True(t, Scalar(F32).AcceptsDimensions(nil))
}
