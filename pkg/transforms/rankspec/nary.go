// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/ir/shapeops"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/pkg/errors"
)

// NaryDispatchPattern rewrites a broadcasting operation with unranked operands into a run-time
// dispatch:
//
//  1. If at most one operand has more than one element, the operands are flattened, the operation is
//     applied at rank 1 and the result is reshaped to the broadcast shape.
//  2. Else, if all operand shapes are equal, the elementwise counterpart of the operation is applied
//     to the operands as they are.
//  3. Else, the operand shapes are reduced to their minimum broadcast shapes and the operation is
//     applied at the rank of the largest one, selected by a ladder of conditionals from rank 1 to
//     MaxRankBinary (MaxRankNary for operations with more than 2 operands). Larger ranks fail at run time.
type NaryDispatchPattern struct {
	MaxRankBinary, MaxRankNary int
}

// ID implements Pattern.
func (p *NaryDispatchPattern) ID() PatternID { return PatternNaryDispatch }

// maxRank for an operation with the given number of operands.
func (p *NaryDispatchPattern) maxRank(arity int) int {
	if arity > 2 {
		return p.MaxRankNary
	}
	return p.MaxRankBinary
}

// MatchAndRewrite implements Pattern.
func (p *NaryDispatchPattern) MatchAndRewrite(rw *Rewriter, op *ir.Op) (matched bool, err error) {
	if op.Type().Family() != ir.FamilyBroadcasting || !anyUnranked(op.OperandShapes()) {
		return false, nil
	}
	err = exceptions.TryCatch[error](func() {
		rw.ReplaceOp(op, p.dispatch(rw.BuilderBefore(op), op))
	})
	if err != nil {
		return false, errors.WithMessagef(err, "rank specializing %s", op)
	}
	return true, nil
}

func (p *NaryDispatchPattern) dispatch(b *ir.Builder, op *ir.Op) ir.Value {
	operands := op.Operands()
	shapeValues := make([]ir.Value, len(operands))
	for ii, operand := range operands {
		shapeValues[ii] = shapeops.ShapeOf(b, operand)
	}

	// At most one operand with more than one element.
	numSingleElement := shapeops.CountSingleElement(b, shapeValues)
	isScalarLike := b.CmpIndex(ir.CmpUGE, numSingleElement, b.ConstIndex(len(operands)-1))
	ifScalarLike := b.If(isScalarLike, op.Shape())
	thenBuilder := ir.NewBuilderAtEnd(ifScalarLike.Region(0))
	thenBuilder.Yield(flattenEachAndApply(thenBuilder, op, shapeValues))

	// All shapes equal: no broadcasting needed.
	elseBuilder := ir.NewBuilderAtEnd(ifScalarLike.Region(1))
	allEqual := shapeops.AllShapesEqual(elseBuilder, shapeValues)
	ifEqual := elseBuilder.If(allEqual, op.Shape())
	equalBuilder := ir.NewBuilderAtEnd(ifEqual.Region(0))
	equalBuilder.Yield(equalBuilder.Apply(op.Type().ElementwiseCounterpart(), op.Shape(), op.Attrs(), operands...))

	ladderBuilder := ir.NewBuilderAtEnd(ifEqual.Region(1))
	ladderBuilder.Yield(p.rankSpecialize(ladderBuilder, op, shapeValues))
	elseBuilder.Yield(ifEqual.Id())
	return ifScalarLike.Id()
}

// flattenEachAndApply reshapes each operand to rank 1 with its own number of elements, applies the
// operation at rank 1 and reshapes the result to the broadcast of all shapes.
func flattenEachAndApply(b *ir.Builder, op *ir.Op, shapeValues []ir.Value) ir.Value {
	operands := op.Operands()
	flatOperands := make([]ir.Value, len(operands))
	for ii, operand := range operands {
		flatOperands[ii] = shapeops.Flatten(b, operand, shapeops.FlatShape(b, shapeValues[ii]))
	}
	flatResult := b.Apply(op.Type(), shapes.MakeDynamic(op.Shape().DType, 1), op.Attrs(), flatOperands...)
	return shapeops.Reshape(b, flatResult, shapeops.BroadcastShape(b, shapeValues...), op.Shape())
}

// rankSpecialize emits the ladder over the rank of the minimum broadcast shapes, and reshapes its
// result to the broadcast of all shapes.
func (p *NaryDispatchPattern) rankSpecialize(b *ir.Builder, op *ir.Op, shapeValues []ir.Value) ir.Value {
	operands := op.Operands()
	reducedShapes := shapeops.MinimumBroadcastShapes(b, shapeValues)
	reducedOperands := make([]ir.Value, len(operands))
	for ii, operand := range operands {
		reducedOperands[ii] = shapeops.Reshape(b, operand, reducedShapes[ii], shapes.Unranked(b.Shape(operand).DType))
	}
	maxRank := shapeops.MaxRank(b, reducedShapes)

	resultDType := op.Shape().DType
	ladder := newRankLadder(p.maxRank(len(operands)), func(rank int) bodyFn {
		return func(b *ir.Builder) ir.Value {
			rankedOperands := make([]ir.Value, len(reducedOperands))
			for ii, operand := range reducedOperands {
				rankedShape := shapeops.BroadcastToRank(b, reducedShapes[ii], rank)
				rankedOperands[ii] = shapeops.Reshape(b, operand, rankedShape,
					shapes.MakeDynamic(b.Shape(operand).DType, rank))
			}
			result := b.Apply(op.Type(), shapes.MakeDynamic(resultDType, rank), op.Attrs(), rankedOperands...)
			return b.Cast(result, shapes.Unranked(resultDType))
		}
	})
	result := emitLadder(b, maxRank, ladder, shapes.Unranked(resultDType))
	return shapeops.Reshape(b, result, shapeops.BroadcastShape(b, shapeValues...), op.Shape())
}
