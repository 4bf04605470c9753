// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/ir/shapeops"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/pkg/errors"
)

// FlattenPattern rewrites an elementwise operation with unranked operands: the operands are reshaped
// to rank 1 tensors with the number of elements of their (broadcast) shape, the operation is applied
// at rank 1, and the result is reshaped back to the shape of the operands.
//
// A scalar predicate of OpTypeSelect is used as is.
type FlattenPattern struct{}

// ID implements Pattern.
func (p *FlattenPattern) ID() PatternID { return PatternFlatten }

// MatchAndRewrite implements Pattern.
func (p *FlattenPattern) MatchAndRewrite(rw *Rewriter, op *ir.Op) (matched bool, err error) {
	if op.Type().Family() != ir.FamilyElementwise || !anyUnranked(op.OperandShapes()) {
		return false, nil
	}
	err = exceptions.TryCatch[error](func() {
		rw.ReplaceOp(op, flattenApplyRestore(rw.BuilderBefore(op), op))
	})
	if err != nil {
		return false, errors.WithMessagef(err, "flattening %s", op)
	}
	return true, nil
}

func isScalarPredicate(op *ir.Op, operandIdx int) bool {
	return op.Type() == ir.OpTypeSelect && operandIdx == 0 && op.Function().Shape(op.Operand(0)).IsScalar()
}

func flattenApplyRestore(b *ir.Builder, op *ir.Op) ir.Value {
	operands := op.Operands()
	var shapeValues []ir.Value
	for ii, operand := range operands {
		if isScalarPredicate(op, ii) {
			continue
		}
		shapeValues = append(shapeValues, shapeops.ShapeOf(b, operand))
	}
	shape := shapeops.BroadcastShape(b, shapeValues...)
	flatShape := shapeops.FlatShape(b, shape)
	flatOperands := make([]ir.Value, len(operands))
	for ii, operand := range operands {
		if isScalarPredicate(op, ii) {
			flatOperands[ii] = operand
			continue
		}
		flatOperands[ii] = shapeops.Flatten(b, operand, flatShape)
	}
	resultDType := op.Shape().DType
	flatResult := b.Apply(op.Type(), shapes.MakeDynamic(resultDType, 1), op.Attrs(), flatOperands...)
	return shapeops.Reshape(b, flatResult, shape, op.Shape())
}
