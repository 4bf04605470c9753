// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/shapes"
)

// Builder creates operations at an insertion point: either the end of a block, or just before an
// existing operation (subsequent operations are inserted after the previously created ones).
//
// Builder methods panic (see github.com/gomlx/exceptions) on invalid operands: those are programming
// errors of the code building the function. Use exceptions.TryCatch[error] to convert them to errors.
type Builder struct {
	fn    *Function
	block *Block

	// pos is the insertion position in block.ops, or -1 to append at the end.
	pos int
}

// NewBuilder returns a Builder that appends operations to the end of the body of fn.
func NewBuilder(fn *Function) *Builder {
	return &Builder{fn: fn, block: fn.body, pos: -1}
}

// NewBuilderAtEnd returns a Builder that appends operations to the end of blk.
func NewBuilderAtEnd(blk *Block) *Builder {
	return &Builder{fn: blk.fn, block: blk, pos: -1}
}

// NewBuilderBefore returns a Builder that inserts operations just before op.
func NewBuilderBefore(op *Op) *Builder {
	b := &Builder{fn: op.fn}
	b.SetInsertionPointBefore(op)
	return b
}

// Function being built.
func (b *Builder) Function() *Function { return b.fn }

// Block where operations are inserted.
func (b *Builder) Block() *Block { return b.block }

// SetInsertionPointToEnd makes the builder append operations at the end of blk.
func (b *Builder) SetInsertionPointToEnd(blk *Block) {
	if blk.fn != b.fn {
		exceptions.Panicf("SetInsertionPointToEnd: block belongs to function %q, builder to %q", blk.fn.name, b.fn.name)
	}
	b.block = blk
	b.pos = -1
}

// SetInsertionPointBefore makes the builder insert operations just before op.
func (b *Builder) SetInsertionPointBefore(op *Op) {
	if op.fn != b.fn {
		exceptions.Panicf("SetInsertionPointBefore(%s): operation belongs to function %q, builder to %q", op, op.fn.name, b.fn.name)
	}
	idx := op.parent.indexOf(op.id)
	if idx < 0 {
		exceptions.Panicf("SetInsertionPointBefore(%s): operation not found in its block", op)
	}
	b.block = op.parent
	b.pos = idx
}

// create registers a new operation in the arena and inserts it at the insertion point.
func (b *Builder) create(opType OpType, shape shapes.Shape, attrs Attributes, operands ...Value) *Op {
	for _, operand := range operands {
		if b.fn.Op(operand).erased {
			exceptions.Panicf("cannot create %s using erased value %s", opType, operand)
		}
	}
	op := &Op{
		fn:       b.fn,
		id:       Value(len(b.fn.ops)),
		opType:   opType,
		operands: slices.Clone(operands),
		attrs:    attrs,
		shape:    shape,
		parent:   b.block,
	}
	b.fn.ops = append(b.fn.ops, op)
	if b.pos < 0 {
		b.block.ops = append(b.block.ops, op.id)
	} else {
		b.block.ops = slices.Insert(b.block.ops, b.pos, op.id)
		b.pos++
	}
	return op
}

// Shape returns the static type of v.
func (b *Builder) Shape(v Value) shapes.Shape { return b.fn.Shape(v) }

var (
	indexShape = shapes.Scalar(dtypes.Int64)
	boolShape  = shapes.Scalar(dtypes.Bool)
)

// IndexShape is the type of index values: an Int64 scalar.
func IndexShape() shapes.Shape { return indexShape.Clone() }

// ExtentShape is the type of a shape value with the given rank (length), which can be shapes.DynamicDim.
func ExtentShape(rank int) shapes.Shape { return shapes.Make(dtypes.Int64, rank) }

func (b *Builder) checkIndex(opType OpType, v Value) {
	if !b.Shape(v).Equal(indexShape) {
		exceptions.Panicf("%s: operand %s must be an index %s, got %s", opType, v, indexShape, b.Shape(v))
	}
}

func (b *Builder) checkBool(opType OpType, v Value) {
	if !b.Shape(v).Equal(boolShape) {
		exceptions.Panicf("%s: operand %s must be a boolean %s, got %s", opType, v, boolShape, b.Shape(v))
	}
}

func (b *Builder) checkExtent(opType OpType, v Value) {
	s := b.Shape(v)
	if s.DType != dtypes.Int64 || s.Rank() != 1 {
		exceptions.Panicf("%s: operand %s must be a shape (rank-1 Int64 tensor), got %s", opType, v, s)
	}
}

// Parameter adds a new parameter to the function. Parameters can only be created in the function body.
func (b *Builder) Parameter(name string, shape shapes.Shape) Value {
	if b.block != b.fn.body {
		exceptions.Panicf("Parameter(%q) can only be created in the function body", name)
	}
	if !shape.Ok() {
		exceptions.Panicf("Parameter(%q) with invalid shape", name)
	}
	op := b.create(OpTypeParameter, shape, Attributes{AttrName: name})
	b.fn.parameters = append(b.fn.parameters, op.id)
	return op.id
}

// Constant creates a tensor constant with the given static shape and flat values (in row-major order).
func (b *Builder) Constant(shape shapes.Shape, values ...float64) Value {
	if !shape.IsStatic() {
		exceptions.Panicf("Constant requires a static shape, got %s", shape)
	}
	if shape.Size() != len(values) {
		exceptions.Panicf("Constant of shape %s requires %d values, got %d", shape, shape.Size(), len(values))
	}
	return b.create(OpTypeConstant, shape, Attributes{AttrValue: slices.Clone(values)}).id
}

// Return terminates the function body, returning the given values.
func (b *Builder) Return(values ...Value) {
	if b.block != b.fn.body {
		exceptions.Panicf("Return can only be created in the function body")
	}
	b.create(OpTypeReturn, shapes.Invalid(), nil, values...)
}

// Yield terminates the region of a control flow operation, yielding its value.
func (b *Builder) Yield(value Value) {
	owner := b.block.Owner()
	if owner == nil {
		exceptions.Panicf("Yield can only be created inside a region")
	}
	if !b.Shape(value).UnifiesWith(owner.shape) {
		exceptions.Panicf("Yield(%s) of type %s doesn't unify with the result type %s of %s",
			value, b.Shape(value), owner.shape, owner)
	}
	b.create(OpTypeYield, shapes.Invalid(), nil, value)
}

// If creates a conditional with a "then" region (op.Region(0)) and an "else" region (op.Region(1)).
// Both regions are created empty, and must be terminated by a Yield of a value of the given result type.
// The If's result is op.Id().
func (b *Builder) If(condition Value, result shapes.Shape) *Op {
	b.checkBool(OpTypeIf, condition)
	op := b.create(OpTypeIf, result, nil, condition)
	op.regions = []*Block{
		{fn: b.fn, owner: op.id},
		{fn: b.fn, owner: op.id},
	}
	return op
}

// Assert fails the execution of the generated program with msg if condition is false.
func (b *Builder) Assert(condition Value, msg string) {
	b.checkBool(OpTypeAssert, condition)
	b.create(OpTypeAssert, shapes.Invalid(), Attributes{AttrMessage: msg}, condition)
}

// DynamicReshape reshapes operand to the dimensions given by the shape value. The number of elements
// must be preserved, which is checked at run time. The result type must have the operand's DType.
func (b *Builder) DynamicReshape(operand, shape Value, result shapes.Shape) Value {
	b.checkExtent(OpTypeDynamicReshape, shape)
	operandShape := b.Shape(operand)
	if operandShape.DType != result.DType {
		exceptions.Panicf("DynamicReshape(%s, %s): result type %s must have the operand's dtype %s",
			operand, shape, result, operandShape.DType)
	}
	if extentRank := b.Shape(shape).Dim(0); result.IsRanked() && extentRank != shapes.DynamicDim && extentRank != result.Rank() {
		exceptions.Panicf("DynamicReshape(%s, %s): shape of length %d doesn't match result type %s",
			operand, shape, extentRank, result)
	}
	return b.create(OpTypeDynamicReshape, result, nil, operand, shape).id
}

// Cast changes the static type of operand, e.g. erasing its rank or refining its dimensions.
// The DType must be preserved. Refinements are checked at run time.
func (b *Builder) Cast(operand Value, result shapes.Shape) Value {
	if b.Shape(operand).DType != result.DType {
		exceptions.Panicf("Cast(%s): cannot change dtype from %s to %s", operand, b.Shape(operand).DType, result.DType)
	}
	return b.create(OpTypeCast, result, nil, operand).id
}

// ShapeOf returns the run-time shape of operand: a rank-1 Int64 tensor whose length is the rank of operand.
func (b *Builder) ShapeOf(operand Value) Value {
	s := b.Shape(operand)
	if !s.Ok() {
		exceptions.Panicf("ShapeOf(%s): operand has no value", operand)
	}
	rank := s.Rank()
	if s.IsUnranked() {
		rank = shapes.DynamicDim
	}
	return b.create(OpTypeShapeOf, ExtentShape(rank), nil, operand).id
}

// NumElements returns the number of elements described by the shape value.
func (b *Builder) NumElements(shape Value) Value {
	b.checkExtent(OpTypeNumElements, shape)
	return b.create(OpTypeNumElements, IndexShape(), nil, shape).id
}

// FromElements creates a shape value from index values.
func (b *Builder) FromElements(elements ...Value) Value {
	for _, e := range elements {
		b.checkIndex(OpTypeFromElements, e)
	}
	return b.create(OpTypeFromElements, ExtentShape(len(elements)), nil, elements...).id
}

// BroadcastShapes returns the broadcast of the given shape values. It fails at run time if they are not
// compatible.
func (b *Builder) BroadcastShapes(shapeValues ...Value) Value {
	if len(shapeValues) == 0 {
		exceptions.Panicf("BroadcastShapes requires at least one shape")
	}
	for _, s := range shapeValues {
		b.checkExtent(OpTypeBroadcastShapes, s)
	}
	return b.create(OpTypeBroadcastShapes, ExtentShape(shapes.DynamicDim), nil, shapeValues...).id
}

// ShapeEq returns whether the two shape values are equal.
func (b *Builder) ShapeEq(lhs, rhs Value) Value {
	b.checkExtent(OpTypeShapeEq, lhs)
	b.checkExtent(OpTypeShapeEq, rhs)
	return b.create(OpTypeShapeEq, boolShape.Clone(), nil, lhs, rhs).id
}

// MinimumBroadcastShape returns the reduced shape of the operand at position index, as computed by
// shapes.MinimumBroadcastShapes over all the given shape values.
func (b *Builder) MinimumBroadcastShape(index int, shapeValues ...Value) Value {
	if index < 0 || index >= len(shapeValues) {
		exceptions.Panicf("MinimumBroadcastShape(%d): index out of range for %d shapes", index, len(shapeValues))
	}
	for _, s := range shapeValues {
		b.checkExtent(OpTypeMinimumBroadcastShape, s)
	}
	return b.create(OpTypeMinimumBroadcastShape, ExtentShape(shapes.DynamicDim),
		Attributes{AttrIndex: index}, shapeValues...).id
}

// ShapeRank returns the length (the rank it describes) of a shape value.
func (b *Builder) ShapeRank(shape Value) Value {
	b.checkExtent(OpTypeShapeRank, shape)
	return b.create(OpTypeShapeRank, IndexShape(), nil, shape).id
}

// ConstIndex creates an index constant.
func (b *Builder) ConstIndex(value int) Value {
	return b.create(OpTypeConstIndex, IndexShape(), Attributes{AttrValue: value}).id
}

// ConstShape creates a constant shape value.
func (b *Builder) ConstShape(dims ...int) Value {
	return b.create(OpTypeConstShape, ExtentShape(len(dims)), Attributes{AttrValue: slices.Clone(dims)}).id
}

// AddIndex adds two index values.
func (b *Builder) AddIndex(lhs, rhs Value) Value {
	b.checkIndex(OpTypeAddIndex, lhs)
	b.checkIndex(OpTypeAddIndex, rhs)
	return b.create(OpTypeAddIndex, IndexShape(), nil, lhs, rhs).id
}

// CmpIndex compares two index values.
func (b *Builder) CmpIndex(predicate CmpPredicate, lhs, rhs Value) Value {
	b.checkIndex(OpTypeCmpIndex, lhs)
	b.checkIndex(OpTypeCmpIndex, rhs)
	return b.create(OpTypeCmpIndex, boolShape.Clone(), Attributes{AttrPredicate: predicate}, lhs, rhs).id
}

// SelectIndex returns onTrue if condition is true, onFalse otherwise.
func (b *Builder) SelectIndex(condition, onTrue, onFalse Value) Value {
	b.checkBool(OpTypeSelectIndex, condition)
	b.checkIndex(OpTypeSelectIndex, onTrue)
	b.checkIndex(OpTypeSelectIndex, onFalse)
	return b.create(OpTypeSelectIndex, IndexShape(), nil, condition, onTrue, onFalse).id
}

// AndBool returns the logical and of two boolean scalars.
func (b *Builder) AndBool(lhs, rhs Value) Value {
	b.checkBool(OpTypeAndBool, lhs)
	b.checkBool(OpTypeAndBool, rhs)
	return b.create(OpTypeAndBool, boolShape.Clone(), nil, lhs, rhs).id
}

// Apply creates an operation of the elementwise or broadcasting families, with the given result type.
//
// The per-element semantics of opType are opaque to the builder: it only checks the number of operands,
// and that the operands are tensors.
func (b *Builder) Apply(opType OpType, result shapes.Shape, attrs Attributes, operands ...Value) Value {
	if family := opType.Family(); family == FamilyStructural {
		exceptions.Panicf("Apply(%s): operation is not elementwise nor broadcasting", opType)
	}
	if arity := opType.Arity(); arity != len(operands) {
		exceptions.Panicf("Apply(%s): takes %d operands, %d given", opType, arity, len(operands))
	}
	if !result.Ok() {
		exceptions.Panicf("Apply(%s): invalid result type", opType)
	}
	for _, operand := range operands {
		if !b.Shape(operand).Ok() {
			exceptions.Panicf("Apply(%s): operand %s has no value", opType, operand)
		}
	}
	if (opType == OpTypeCompare || opType == OpTypeBroadcastCompare) && attrs[AttrComparisonDirection] == nil {
		exceptions.Panicf("Apply(%s): missing attribute %q", opType, AttrComparisonDirection)
	}
	return b.create(opType, result, attrs.Clone(), operands...).id
}
