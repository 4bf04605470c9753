// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

import (
	"fmt"

	"github.com/gomlx/rankspec/pkg/support/sets"
)

// OpType is an enum of all operations that can be represented in a Function.
//
// There are three families of operation types:
//
//   - Elementwise: apply a per-element computation to operands of identical shape
//     (e.g. OpTypeAdd, OpTypeCompare, OpTypeSelect). Their per-element semantics are opaque
//     to the rank specialization transformation.
//   - Broadcasting: like the elementwise ones, but operands are implicitly broadcast to a
//     common shape (e.g. OpTypeBroadcastAdd, OpTypeBroadcastSelect).
//   - Structural: parameters, control flow, reshapes and the shape computation ops used
//     by the rewrites.
type OpType int

const (
	OpTypeInvalid OpType = iota

	// Structural operations.

	OpTypeParameter
	OpTypeConstant
	OpTypeReturn
	OpTypeYield
	OpTypeIf
	OpTypeAssert
	OpTypeDynamicReshape
	OpTypeCast

	// Shape computations: shapes are rank-1 Int64 tensors ("extent tensors"), indices are Int64 scalars.

	OpTypeShapeOf
	OpTypeNumElements
	OpTypeFromElements
	OpTypeBroadcastShapes
	OpTypeShapeEq
	OpTypeMinimumBroadcastShape
	OpTypeShapeRank
	OpTypeConstIndex
	OpTypeConstShape
	OpTypeAddIndex
	OpTypeCmpIndex
	OpTypeSelectIndex
	OpTypeAndBool

	// Elementwise unary operations.

	OpTypeAbs
	OpTypeCeil
	OpTypeClz
	OpTypeConvert
	OpTypeCos
	OpTypeExp
	OpTypeExpm1
	OpTypeFloor
	OpTypeImag
	OpTypeIsFinite
	OpTypeLog
	OpTypeLog1p
	OpTypeLogistic
	OpTypeNot
	OpTypeNeg
	OpTypePopulationCount
	OpTypeReal
	OpTypeRound
	OpTypeRsqrt
	OpTypeSign
	OpTypeSin
	OpTypeSqrt
	OpTypeTanh
	OpTypeAcos
	OpTypeAcosh
	OpTypeAsin
	OpTypeAsinh
	OpTypeAtan
	OpTypeAtanh
	OpTypeConj
	OpTypeCosh
	OpTypeDigamma
	OpTypeErf
	OpTypeErfc
	OpTypeIsInf
	OpTypeLgamma
	OpTypeSinh
	OpTypeTan

	// Elementwise binary operations.

	OpTypeAdd
	OpTypeAnd
	OpTypeAtan2
	OpTypeComplex
	OpTypeDiv
	OpTypeMax
	OpTypeMin
	OpTypeMul
	OpTypeOr
	OpTypePow
	OpTypeRem
	OpTypeShiftLeft
	OpTypeShiftRightArithmetic
	OpTypeShiftRightLogical
	OpTypeSub
	OpTypeXor
	OpTypePolygamma
	OpTypeZeta
	OpTypeCompare

	// Elementwise ternary operation.

	OpTypeSelect

	// Broadcasting operations.

	OpTypeBroadcastAdd
	OpTypeBroadcastAnd
	OpTypeBroadcastAtan2
	OpTypeBroadcastComplex
	OpTypeBroadcastCompare
	OpTypeBroadcastDiv
	OpTypeBroadcastMax
	OpTypeBroadcastMin
	OpTypeBroadcastMul
	OpTypeBroadcastOr
	OpTypeBroadcastPolygamma
	OpTypeBroadcastPow
	OpTypeBroadcastRem
	OpTypeBroadcastShiftLeft
	OpTypeBroadcastShiftRightArithmetic
	OpTypeBroadcastShiftRightLogical
	OpTypeBroadcastSub
	OpTypeBroadcastXor
	OpTypeBroadcastZeta
	OpTypeBroadcastSelect

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)

// OpFamily classifies OpTypes by how they treat the shapes of their operands.
type OpFamily int

const (
	FamilyStructural OpFamily = iota
	FamilyElementwise
	FamilyBroadcasting
)

// String implements fmt.Stringer.
func (f OpFamily) String() string {
	switch f {
	case FamilyStructural:
		return "Structural"
	case FamilyElementwise:
		return "Elementwise"
	case FamilyBroadcasting:
		return "Broadcasting"
	}
	return fmt.Sprintf("OpFamily(%d)", int(f))
}

var (
	// ElementwiseUnaryOps have a single operand and a result of the same shape.
	ElementwiseUnaryOps = sets.MakeWith(
		OpTypeAbs, OpTypeCeil, OpTypeClz, OpTypeConvert, OpTypeCos, OpTypeExp, OpTypeExpm1, OpTypeFloor,
		OpTypeImag, OpTypeIsFinite, OpTypeLog, OpTypeLog1p, OpTypeLogistic, OpTypeNot, OpTypeNeg,
		OpTypePopulationCount, OpTypeReal, OpTypeRound, OpTypeRsqrt, OpTypeSign, OpTypeSin, OpTypeSqrt,
		OpTypeTanh, OpTypeAcos, OpTypeAcosh, OpTypeAsin, OpTypeAsinh, OpTypeAtan, OpTypeAtanh, OpTypeConj,
		OpTypeCosh, OpTypeDigamma, OpTypeErf, OpTypeErfc, OpTypeIsInf, OpTypeLgamma, OpTypeSinh, OpTypeTan,
	)

	// ElementwiseBinaryOps have two operands of identical shapes.
	ElementwiseBinaryOps = sets.MakeWith(
		OpTypeAdd, OpTypeAnd, OpTypeAtan2, OpTypeComplex, OpTypeDiv, OpTypeMax, OpTypeMin, OpTypeMul, OpTypeOr,
		OpTypePow, OpTypeRem, OpTypeShiftLeft, OpTypeShiftRightArithmetic, OpTypeShiftRightLogical, OpTypeSub,
		OpTypeXor, OpTypePolygamma, OpTypeZeta, OpTypeCompare,
	)

	// ElementwiseOps include every operation of the elementwise family: unary, binary and OpTypeSelect.
	ElementwiseOps = sets.Union(ElementwiseUnaryOps, ElementwiseBinaryOps, sets.MakeWith(OpTypeSelect))

	// broadcastToElementwise maps each broadcasting operation to the elementwise operation that
	// computes the same values when no broadcasting is needed.
	broadcastToElementwise = map[OpType]OpType{
		OpTypeBroadcastAdd:                  OpTypeAdd,
		OpTypeBroadcastAnd:                  OpTypeAnd,
		OpTypeBroadcastAtan2:                OpTypeAtan2,
		OpTypeBroadcastComplex:              OpTypeComplex,
		OpTypeBroadcastCompare:              OpTypeCompare,
		OpTypeBroadcastDiv:                  OpTypeDiv,
		OpTypeBroadcastMax:                  OpTypeMax,
		OpTypeBroadcastMin:                  OpTypeMin,
		OpTypeBroadcastMul:                  OpTypeMul,
		OpTypeBroadcastOr:                   OpTypeOr,
		OpTypeBroadcastPolygamma:            OpTypePolygamma,
		OpTypeBroadcastPow:                  OpTypePow,
		OpTypeBroadcastRem:                  OpTypeRem,
		OpTypeBroadcastShiftLeft:            OpTypeShiftLeft,
		OpTypeBroadcastShiftRightArithmetic: OpTypeShiftRightArithmetic,
		OpTypeBroadcastShiftRightLogical:    OpTypeShiftRightLogical,
		OpTypeBroadcastSub:                  OpTypeSub,
		OpTypeBroadcastXor:                  OpTypeXor,
		OpTypeBroadcastZeta:                 OpTypeZeta,
		OpTypeBroadcastSelect:               OpTypeSelect,
	}

	// BroadcastingOps include every operation of the broadcasting family.
	BroadcastingOps = func() sets.Set[OpType] {
		s := sets.Make[OpType](len(broadcastToElementwise))
		for op := range broadcastToElementwise {
			s.Insert(op)
		}
		return s
	}()

	// PureOps have no side effects: they can be removed if their result is not used.
	PureOps = sets.Union(ElementwiseOps, BroadcastingOps, sets.MakeWith(
		OpTypeConstant, OpTypeDynamicReshape, OpTypeCast,
		OpTypeShapeOf, OpTypeNumElements, OpTypeFromElements, OpTypeBroadcastShapes, OpTypeShapeEq,
		OpTypeMinimumBroadcastShape, OpTypeShapeRank, OpTypeConstIndex, OpTypeConstShape, OpTypeAddIndex,
		OpTypeCmpIndex, OpTypeSelectIndex, OpTypeAndBool,
	))
)

// Family of the operation type.
func (t OpType) Family() OpFamily {
	switch {
	case ElementwiseOps.Has(t):
		return FamilyElementwise
	case BroadcastingOps.Has(t):
		return FamilyBroadcasting
	}
	return FamilyStructural
}

// Arity returns the number of tensor operands taken by elementwise and broadcasting operations.
// It returns -1 for structural operations.
func (t OpType) Arity() int {
	switch {
	case ElementwiseUnaryOps.Has(t):
		return 1
	case t == OpTypeSelect || t == OpTypeBroadcastSelect:
		return 3
	case ElementwiseBinaryOps.Has(t) || BroadcastingOps.Has(t):
		return 2
	}
	return -1
}

// ElementwiseCounterpart returns the elementwise operation that computes the same as the broadcasting
// operation t, when all operands have the same shape. It returns OpTypeInvalid if t is not a broadcasting
// operation.
func (t OpType) ElementwiseCounterpart() OpType {
	if elementwise, found := broadcastToElementwise[t]; found {
		return elementwise
	}
	return OpTypeInvalid
}

// IsPure returns whether the operation is side-effect free. Pure operations whose result is unused
// are removed by Function.SweepDead.
func (t OpType) IsPure() bool {
	return PureOps.Has(t)
}
