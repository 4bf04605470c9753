// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/pkg/errors"
)

// Verify checks the structural invariants of the function:
//
//   - The body is terminated by OpTypeReturn, and every region by OpTypeYield, with no other terminator
//     in the middle of a block.
//   - Every operand of a live operation refers to a live value defined before it, in the same block or
//     in an enclosing block.
//   - Elementwise and broadcasting operations have the number of operands of their arity.
//   - Yielded values unify with the result type of the region's owner.
func Verify(fn *Function) error {
	visible := make(map[Value]bool, len(fn.ops))
	if err := verifyBlock(fn, fn.body, visible); err != nil {
		return errors.WithMessagef(err, "function %q", fn.name)
	}
	return nil
}

func verifyBlock(fn *Function, blk *Block, visible map[Value]bool) error {
	ops := blk.Ops()
	var defined []Value
	defer func() {
		for _, v := range defined {
			delete(visible, v)
		}
	}()

	wantTerminator := OpTypeYield
	if blk.owner == InvalidValue {
		wantTerminator = OpTypeReturn
	}
	if len(ops) == 0 {
		return errors.Errorf("empty block, missing %s", wantTerminator)
	}
	for ii, op := range ops {
		isLast := ii == len(ops)-1
		if op.parent != blk {
			return errors.Errorf("%s: parent block mismatch", op)
		}
		isTerminator := op.opType == OpTypeReturn || op.opType == OpTypeYield
		if isTerminator && !isLast {
			return errors.Errorf("%s: terminator in the middle of a block", op)
		}
		if isLast && op.opType != wantTerminator {
			return errors.Errorf("%s: block must be terminated by %s", op, wantTerminator)
		}
		for _, operand := range op.operands {
			if operand < 0 || int(operand) >= len(fn.ops) {
				return errors.Errorf("%s: operand %s out of range", op, operand)
			}
			if fn.ops[operand].erased {
				return errors.Errorf("%s: uses erased value %s", op, operand)
			}
			if !visible[operand] {
				return errors.Errorf("%s: operand %s is not defined before its use", op, operand)
			}
		}
		if err := verifyOp(fn, op, visible); err != nil {
			return err
		}
		if op.HasResult() {
			visible[op.id] = true
			defined = append(defined, op.id)
		}
	}
	return nil
}

func verifyOp(fn *Function, op *Op, visible map[Value]bool) error {
	switch op.opType.Family() {
	case FamilyElementwise, FamilyBroadcasting:
		if len(op.operands) != op.opType.Arity() {
			return errors.Errorf("%s: expected %d operands", op, op.opType.Arity())
		}
		return nil
	}
	switch op.opType {
	case OpTypeParameter:
		if op.parent != fn.body {
			return errors.Errorf("%s: parameters must be in the function body", op)
		}
	case OpTypeYield:
		owner := op.parent.Owner()
		if len(op.operands) != 1 {
			return errors.Errorf("%s: must yield exactly one value", op)
		}
		if !fn.Shape(op.operands[0]).UnifiesWith(owner.shape) {
			return errors.Errorf("%s: yielded type %s doesn't unify with %s", op, fn.Shape(op.operands[0]), owner)
		}
	case OpTypeIf:
		if len(op.regions) != 2 {
			return errors.Errorf("%s: must have 2 regions, got %d", op, len(op.regions))
		}
		for _, region := range op.regions {
			if err := verifyBlock(fn, region, visible); err != nil {
				return errors.WithMessagef(err, "in region of %s", op)
			}
		}
	case OpTypeInvalid, OpTypeLast:
		return errors.Errorf("%s: invalid operation type", op)
	}
	return nil
}
