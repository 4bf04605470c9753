// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir defines the intermediate representation transformed by rank specialization: a Function
// holding an arena of operations (Op), organized in nested blocks (Block).
//
// Operations are addressed by a stable Value -- their index in the Function's arena -- which also
// refers to the operation's (single) result. Ids are never reused: replacing an operation redirects
// every reference to the old Value and marks the old operation as erased, and a separate
// Function.SweepDead pass drops erased and unused operations from their blocks.
//
// Functions are not safe for concurrent use; different Functions can be built and transformed in
// parallel.
package ir

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/shapes"
)

// Value identifies an operation in a Function and its result.
type Value int

// InvalidValue is used where there is no value, e.g. the owner of a function body.
const InvalidValue = Value(-1)

// String implements fmt.Stringer.
func (v Value) String() string {
	if v == InvalidValue {
		return "%invalid"
	}
	return fmt.Sprintf("%%%d", int(v))
}

// Function is a named computation: a body Block with parameters and a final OpTypeReturn.
type Function struct {
	name       string
	ops        []*Op
	body       *Block
	parameters []Value
}

// NewFunction creates an empty Function. Use NewBuilder to populate it.
func NewFunction(name string) *Function {
	fn := &Function{name: name}
	fn.body = &Block{fn: fn, owner: InvalidValue}
	return fn
}

// Name of the function.
func (fn *Function) Name() string { return fn.name }

// Body is the top-level block of the function.
func (fn *Function) Body() *Block { return fn.body }

// Op returns the operation that defines v. It panics if v is not in the arena.
func (fn *Function) Op(v Value) *Op {
	if v < 0 || int(v) >= len(fn.ops) {
		exceptions.Panicf("function %q has no value %s", fn.name, v)
	}
	return fn.ops[v]
}

// Shape returns the static type of the value v.
func (fn *Function) Shape(v Value) shapes.Shape {
	return fn.Op(v).shape
}

// Parameters returns the parameters of the function, in order.
func (fn *Function) Parameters() []Value {
	return slices.Clone(fn.parameters)
}

// Results returns the values returned by the function, or nil if the function has no OpTypeReturn yet.
func (fn *Function) Results() []Value {
	terminator := fn.body.Terminator()
	if terminator == nil || terminator.opType != OpTypeReturn {
		return nil
	}
	return terminator.Operands()
}

// NumOps returns the size of the arena, including erased operations.
func (fn *Function) NumOps() int { return len(fn.ops) }

// NumLiveOps returns the number of operations that are not erased.
func (fn *Function) NumLiveOps() (count int) {
	for _, op := range fn.ops {
		if !op.erased {
			count++
		}
	}
	return
}

// Operations returns a snapshot of the live operations, in pre-order: an operation with regions comes
// before the operations in its regions.
func (fn *Function) Operations() []*Op {
	ops := make([]*Op, 0, len(fn.ops))
	var visit func(blk *Block)
	visit = func(blk *Block) {
		for _, v := range blk.ops {
			op := fn.ops[v]
			if op.erased {
				continue
			}
			ops = append(ops, op)
			for _, region := range op.regions {
				visit(region)
			}
		}
	}
	visit(fn.body)
	return ops
}

// Users returns the live operations that take v as an operand.
func (fn *Function) Users(v Value) []*Op {
	var users []*Op
	for _, op := range fn.ops {
		if !op.erased && slices.Contains(op.operands, v) {
			users = append(users, op)
		}
	}
	return users
}

// ReplaceAllUsesWith redirects every reference to old, in live operations, to replacement.
// It returns the number of operands changed.
func (fn *Function) ReplaceAllUsesWith(old, replacement Value) (count int) {
	fn.Op(old)
	fn.Op(replacement)
	for _, op := range fn.ops {
		if op.erased || op.id == replacement {
			continue
		}
		for ii, operand := range op.operands {
			if operand == old {
				op.operands[ii] = replacement
				count++
			}
		}
	}
	return
}

// ReplaceOp redirects all uses of op to replacement and erases op.
//
// It panics if the type of replacement doesn't unify with the type of op, or if op has no result.
func (fn *Function) ReplaceOp(op *Op, replacement Value) {
	if op.fn != fn {
		exceptions.Panicf("ReplaceOp(%s): operation doesn't belong to function %q", op, fn.name)
	}
	if !op.HasResult() {
		exceptions.Panicf("ReplaceOp(%s): operation has no result to replace", op)
	}
	if replacement == op.id {
		exceptions.Panicf("ReplaceOp(%s): cannot replace operation by itself", op)
	}
	newShape := fn.Shape(replacement)
	if !newShape.UnifiesWith(op.shape) {
		exceptions.Panicf("ReplaceOp(%s): replacement %s has type %s, which doesn't unify with %s",
			op, replacement, newShape, op.shape)
	}
	fn.ReplaceAllUsesWith(op.id, replacement)
	fn.EraseOp(op)
}

// EraseOp marks op, and all operations in its regions, as erased. They are kept in the arena
// (their ids are not reused) and are dropped from their blocks by SweepDead.
func (fn *Function) EraseOp(op *Op) {
	op.erased = true
	for _, region := range op.regions {
		for _, v := range region.ops {
			fn.EraseOp(fn.ops[v])
		}
	}
}

// SweepDead removes erased operations from their blocks, and erases (and removes) pure operations
// whose results are not used, transitively. It returns the number of operations removed.
func (fn *Function) SweepDead() (removed int) {
	uses := make([]int, len(fn.ops))
	for _, op := range fn.ops {
		if op.erased {
			continue
		}
		for _, operand := range op.operands {
			uses[operand]++
		}
	}
	var worklist []*Op
	for _, op := range fn.ops {
		if !op.erased && op.opType.IsPure() && uses[op.id] == 0 {
			worklist = append(worklist, op)
		}
	}
	for len(worklist) > 0 {
		var op *Op
		op, worklist = worklist[len(worklist)-1], worklist[:len(worklist)-1]
		if op.erased {
			continue
		}
		fn.EraseOp(op)
		for _, operand := range op.operands {
			uses[operand]--
			operandOp := fn.ops[operand]
			if uses[operand] == 0 && !operandOp.erased && operandOp.opType.IsPure() {
				worklist = append(worklist, operandOp)
			}
		}
	}

	var sweep func(blk *Block)
	sweep = func(blk *Block) {
		live := blk.ops[:0]
		for _, v := range blk.ops {
			op := fn.ops[v]
			if op.erased {
				removed++
				removed += countNested(fn, op)
				continue
			}
			for _, region := range op.regions {
				sweep(region)
			}
			live = append(live, v)
		}
		blk.ops = live
	}
	sweep(fn.body)
	return
}

// countNested returns the number of operations in the regions of op, recursively.
func countNested(fn *Function, op *Op) (count int) {
	for _, region := range op.regions {
		for _, v := range region.ops {
			count += 1 + countNested(fn, fn.ops[v])
		}
	}
	return
}

// Clone returns a deep copy of the function. Values in the copy are the same as in the original.
func (fn *Function) Clone() *Function {
	clone := &Function{
		name:       fn.name,
		ops:        make([]*Op, len(fn.ops)),
		parameters: slices.Clone(fn.parameters),
	}
	cloneBlock := func(blk *Block) *Block {
		return &Block{fn: clone, owner: blk.owner, ops: slices.Clone(blk.ops)}
	}
	clone.body = cloneBlock(fn.body)
	blocks := map[*Block]*Block{fn.body: clone.body}
	for ii, op := range fn.ops {
		opClone := &Op{
			fn:       clone,
			id:       op.id,
			opType:   op.opType,
			operands: slices.Clone(op.operands),
			attrs:    op.attrs.Clone(),
			shape:    op.shape.Clone(),
			erased:   op.erased,
		}
		for _, region := range op.regions {
			regionClone := cloneBlock(region)
			blocks[region] = regionClone
			opClone.regions = append(opClone.regions, regionClone)
		}
		clone.ops[ii] = opClone
	}
	for ii, op := range fn.ops {
		clone.ops[ii].parent = blocks[op.parent]
	}
	return clone
}

// Restore replaces the contents of fn with the ones of snapshot, a Clone of fn taken earlier.
// snapshot must not be used afterwards.
func (fn *Function) Restore(snapshot *Function) {
	if snapshot == fn {
		return
	}
	fn.name = snapshot.name
	fn.ops = snapshot.ops
	fn.body = snapshot.body
	fn.parameters = snapshot.parameters
	fn.body.fn = fn
	for _, op := range fn.ops {
		op.fn = fn
		for _, region := range op.regions {
			region.fn = fn
		}
	}
}

// Block is an ordered list of operations. The function body is a Block, and so are the regions of
// control flow operations like OpTypeIf.
type Block struct {
	fn    *Function
	owner Value
	ops   []Value
}

// Function that holds the block.
func (blk *Block) Function() *Function { return blk.fn }

// Owner returns the operation holding this block as a region, or nil for the function body.
func (blk *Block) Owner() *Op {
	if blk.owner == InvalidValue {
		return nil
	}
	return blk.fn.ops[blk.owner]
}

// Ops returns the live operations of the block, in order.
func (blk *Block) Ops() []*Op {
	ops := make([]*Op, 0, len(blk.ops))
	for _, v := range blk.ops {
		if op := blk.fn.ops[v]; !op.erased {
			ops = append(ops, op)
		}
	}
	return ops
}

// Terminator returns the last live operation of the block, or nil if the block is empty.
func (blk *Block) Terminator() *Op {
	for ii := len(blk.ops) - 1; ii >= 0; ii-- {
		if op := blk.fn.ops[blk.ops[ii]]; !op.erased {
			return op
		}
	}
	return nil
}

// indexOf returns the position of v in the block, or -1 if not found.
func (blk *Block) indexOf(v Value) int {
	return slices.Index(blk.ops, v)
}
