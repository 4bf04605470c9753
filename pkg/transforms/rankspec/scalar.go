// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/ir/shapeops"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/pkg/errors"
)

// ScalarBroadcastPattern rewrites a binary broadcasting operation where exactly one operand is a
// scalar and the other is unranked: the unranked operand is flattened to rank 1, the operation is
// applied to the scalar and the flat operand (in their original order), and the result is reshaped
// to the shape of the unranked operand.
//
// Broadcasting a scalar is always valid, so no run-time shape check is needed.
type ScalarBroadcastPattern struct{}

// ID implements Pattern.
func (p *ScalarBroadcastPattern) ID() PatternID { return PatternScalarBroadcast }

// MatchAndRewrite implements Pattern.
func (p *ScalarBroadcastPattern) MatchAndRewrite(rw *Rewriter, op *ir.Op) (matched bool, err error) {
	if op.Type().Family() != ir.FamilyBroadcasting || op.NumOperands() != 2 {
		return false, nil
	}
	operandShapes := op.OperandShapes()
	lhsScalar := operandShapes[0].IsScalar() && operandShapes[1].IsUnranked()
	rhsScalar := operandShapes[1].IsScalar() && operandShapes[0].IsUnranked()
	if lhsScalar == rhsScalar {
		return false, nil
	}
	unrankedIdx := 1
	if rhsScalar {
		unrankedIdx = 0
	}
	err = exceptions.TryCatch[error](func() {
		b := rw.BuilderBefore(op)
		operands := op.Operands()
		shape := shapeops.ShapeOf(b, operands[unrankedIdx])
		operands[unrankedIdx] = shapeops.Flatten(b, operands[unrankedIdx], shapeops.FlatShape(b, shape))
		flatResult := b.Apply(op.Type(), shapes.MakeDynamic(op.Shape().DType, 1), op.Attrs(), operands...)
		rw.ReplaceOp(op, shapeops.Reshape(b, flatResult, shape, op.Shape()))
	})
	if err != nil {
		return false, errors.WithMessagef(err, "rewriting scalar broadcast %s", op)
	}
	return true, nil
}
