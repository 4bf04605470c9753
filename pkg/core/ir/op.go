// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/support/xslices"
)

// Op is an operation node in a Function.
//
// Operations are immutable once created, except for the redirection of operands done by
// Function.ReplaceAllUsesWith.
type Op struct {
	fn       *Function
	id       Value
	opType   OpType
	operands []Value
	attrs    Attributes

	// shape is the static type of the result, or shapes.Invalid() for operations without results
	// (OpTypeReturn, OpTypeYield, OpTypeAssert).
	shape shapes.Shape

	// regions are the nested blocks of control flow operations: OpTypeIf has the "then" and "else" regions.
	regions []*Block
	parent  *Block
	erased  bool
}

// Id of the operation, which is also the Value of its result.
func (op *Op) Id() Value { return op.id }

// Type of the operation.
func (op *Op) Type() OpType { return op.opType }

// Function that holds the operation.
func (op *Op) Function() *Function { return op.fn }

// Shape of the operation's result. It is invalid if the operation has no result.
func (op *Op) Shape() shapes.Shape { return op.shape }

// HasResult returns whether the operation yields a value.
func (op *Op) HasResult() bool { return op.shape.Ok() }

// NumOperands returns the number of operands.
func (op *Op) NumOperands() int { return len(op.operands) }

// Operand returns the i-th operand.
func (op *Op) Operand(i int) Value { return op.operands[i] }

// Operands returns a copy of the operands of the operation.
func (op *Op) Operands() []Value { return slices.Clone(op.operands) }

// OperandShapes returns the static types of the operands.
func (op *Op) OperandShapes() []shapes.Shape {
	return xslices.Map(op.operands, op.fn.Shape)
}

// Attr returns the attribute with the given name, or nil if not set.
func (op *Op) Attr(name string) any { return op.attrs[name] }

// Attrs returns a copy of the attributes of the operation.
func (op *Op) Attrs() Attributes { return op.attrs.Clone() }

// IntAttr returns the attribute with the given name as an int. It panics if it is missing or of another type.
func (op *Op) IntAttr(name string) int {
	v, ok := op.attrs[name].(int)
	if !ok {
		exceptions.Panicf("%s: attribute %q is not an int (%T)", op, name, op.attrs[name])
	}
	return v
}

// NumRegions returns the number of nested blocks.
func (op *Op) NumRegions() int { return len(op.regions) }

// Region returns the i-th nested block.
func (op *Op) Region(i int) *Block { return op.regions[i] }

// Parent returns the block holding the operation.
func (op *Op) Parent() *Block { return op.parent }

// IsErased returns whether the operation was erased (replaced or swept).
func (op *Op) IsErased() bool { return op.erased }

// String returns a single line description of the operation, without its regions.
// E.g.: "%5 = BroadcastAdd(%0, %1) : (Float32)[*]"
func (op *Op) String() string {
	var sb strings.Builder
	if op.HasResult() {
		_, _ = fmt.Fprintf(&sb, "%s = ", op.id)
	}
	sb.WriteString(op.opType.String())
	sb.WriteByte('(')
	for ii, operand := range op.operands {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(operand.String())
	}
	sb.WriteByte(')')
	if attrs := op.attrs.String(); attrs != "" {
		sb.WriteByte(' ')
		sb.WriteString(attrs)
	}
	if op.HasResult() {
		_, _ = fmt.Fprintf(&sb, " : %s", op.shape)
	}
	return sb.String()
}
