// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpTypeNames(t *testing.T) {
	require.Len(t, OpTypeValues(), int(OpTypeLast)+1)
	for opType := OpTypeInvalid; opType <= OpTypeLast; opType++ {
		require.Truef(t, opType.IsAOpType(), "OpType %d", int(opType))
		parsed, err := OpTypeString(opType.String())
		require.NoError(t, err)
		require.Equal(t, opType, parsed)
	}
	parsed, err := OpTypeString("broadcastadd")
	require.NoError(t, err)
	assert.Equal(t, OpTypeBroadcastAdd, parsed)
	_, err = OpTypeString("NoSuchOp")
	require.Error(t, err)
	assert.False(t, OpType(-1).IsAOpType())
	assert.Equal(t, "BroadcastSelect", OpTypeBroadcastSelect.String())
	assert.Equal(t, "OpType(1000)", OpType(1000).String())
}

func TestOpTypeFamilies(t *testing.T) {
	assert.Equal(t, FamilyElementwise, OpTypeNeg.Family())
	assert.Equal(t, FamilyElementwise, OpTypeSelect.Family())
	assert.Equal(t, FamilyBroadcasting, OpTypeBroadcastCompare.Family())
	assert.Equal(t, FamilyStructural, OpTypeDynamicReshape.Family())

	assert.Equal(t, 1, OpTypeTanh.Arity())
	assert.Equal(t, 2, OpTypeCompare.Arity())
	assert.Equal(t, 2, OpTypeBroadcastZeta.Arity())
	assert.Equal(t, 3, OpTypeBroadcastSelect.Arity())
	assert.Equal(t, -1, OpTypeIf.Arity())

	// Every broadcasting operation has an elementwise counterpart of the same arity.
	for opType := range BroadcastingOps {
		counterpart := opType.ElementwiseCounterpart()
		require.Equal(t, FamilyElementwise, counterpart.Family(), "%s", opType)
		require.Equal(t, opType.Arity(), counterpart.Arity(), "%s", opType)
	}
	assert.Equal(t, OpTypeInvalid, OpTypeAdd.ElementwiseCounterpart())

	assert.True(t, OpTypeShapeOf.IsPure())
	assert.False(t, OpTypeAssert.IsPure())
	assert.False(t, OpTypeIf.IsPure())
}

func TestCmpPredicate(t *testing.T) {
	assert.True(t, CmpUGE.Eval(3, 3))
	assert.True(t, CmpSGT.Eval(4, 3))
	assert.False(t, CmpEQ.Eval(4, 3))
	assert.Equal(t, "uge", CmpUGE.String())
	assert.Equal(t, "GT", CompareGT.String())
}
