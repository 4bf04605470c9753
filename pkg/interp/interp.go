// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package interp is a reference evaluator of ir.Function: it executes the operations on concrete
// tensors, one at a time, in program order.
//
// It's used to check that rewritten functions compute the same values as the original ones: it
// evaluates broadcasting operations directly at any rank, and checks that every value produced
// at run time matches the static type of its operation.
//
// Values are computed with float64 and rounded to their DType, see Tensor.
package interp

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/pkg/errors"
)

// AssertionError is returned when an OpTypeAssert fails during the execution.
type AssertionError struct {
	Msg string
}

// Error implements error.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s", e.Msg)
}

// TraceFn is called with each operation just before it's executed.
type TraceFn func(op *ir.Op)

// Run executes fn with the given inputs, one per parameter, and returns the values returned by fn.
func Run(fn *ir.Function, inputs ...*Tensor) ([]*Tensor, error) {
	return RunTraced(fn, nil, inputs...)
}

// RunTraced is like Run, but calls trace (if not nil) on each executed operation.
func RunTraced(fn *ir.Function, trace TraceFn, inputs ...*Tensor) (outputs []*Tensor, err error) {
	params := fn.Parameters()
	if len(inputs) != len(params) {
		return nil, errors.Errorf("function %q takes %d inputs, %d given", fn.Name(), len(params), len(inputs))
	}
	ex := &executor{fn: fn, trace: trace, values: make(map[ir.Value]*Tensor, fn.NumOps())}
	for ii, param := range params {
		input := inputs[ii]
		declared := fn.Shape(param)
		if input.DType != declared.DType || !declared.AcceptsDimensions(input.Dims) {
			return nil, errors.Errorf("function %q input #%d %s doesn't match parameter type %s",
				fn.Name(), ii, input.Shape(), declared)
		}
		ex.values[param] = input
	}
	err = exceptions.TryCatch[error](func() {
		outputs = ex.runBlock(fn.Body())
	})
	if err != nil {
		var assertErr *AssertionError
		if errors.As(err, &assertErr) {
			return nil, assertErr
		}
		return nil, errors.WithMessagef(err, "executing function %q", fn.Name())
	}
	return outputs, nil
}

type executor struct {
	fn     *ir.Function
	trace  TraceFn
	values map[ir.Value]*Tensor
}

// runBlock executes the operations of the block, and returns the values of its terminator.
func (ex *executor) runBlock(blk *ir.Block) []*Tensor {
	for _, op := range blk.Ops() {
		if ex.trace != nil {
			ex.trace(op)
		}
		switch op.Type() {
		case ir.OpTypeParameter:
			continue
		case ir.OpTypeReturn, ir.OpTypeYield:
			outputs := make([]*Tensor, op.NumOperands())
			for ii := range outputs {
				outputs[ii] = ex.value(op.Operand(ii))
			}
			return outputs
		case ir.OpTypeAssert:
			if ex.value(op.Operand(0)).Data[0] == 0 {
				panic(&AssertionError{Msg: op.Attr(ir.AttrMessage).(string)})
			}
			continue
		}
		result := ex.execOp(op)
		if result.DType != op.Shape().DType || !op.Shape().AcceptsDimensions(result.Dims) {
			exceptions.Panicf("%s: produced a value of shape %s, not compatible with its type", op, result.Shape())
		}
		ex.values[op.Id()] = result
	}
	exceptions.Panicf("block without terminator")
	return nil
}

func (ex *executor) value(v ir.Value) *Tensor {
	t, found := ex.values[v]
	if !found {
		exceptions.Panicf("value %s used before being computed", v)
	}
	return t
}

func (ex *executor) operands(op *ir.Op) []*Tensor {
	operands := make([]*Tensor, op.NumOperands())
	for ii := range operands {
		operands[ii] = ex.value(op.Operand(ii))
	}
	return operands
}

func indexTensor(v int) *Tensor { return Scalar(dtypes.Int64, float64(v)) }

func boolTensor(b bool) *Tensor { return Scalar(dtypes.Bool, boolToFloat(b)) }

func shapeTensor(dims []int) *Tensor {
	values := make([]float64, len(dims))
	for ii, d := range dims {
		values[ii] = float64(d)
	}
	return FromValues(dtypes.Int64, []int{len(dims)}, values...)
}

// execOp executes an operation that has a result.
func (ex *executor) execOp(op *ir.Op) *Tensor {
	operands := ex.operands(op)
	switch op.Type() {
	case ir.OpTypeConstant:
		return FromValues(op.Shape().DType, op.Shape().Dimensions, op.Attr(ir.AttrValue).([]float64)...)
	case ir.OpTypeIf:
		var region *ir.Block
		if operands[0].Data[0] != 0 {
			region = op.Region(0)
		} else {
			region = op.Region(1)
		}
		return ex.runBlock(region)[0]
	case ir.OpTypeDynamicReshape:
		dims := operands[1].Ints()
		if shapes.NumElements(dims) != operands[0].Size() {
			exceptions.Panicf("%s: cannot reshape %s to dimensions %v", op, operands[0].Shape(), dims)
		}
		return &Tensor{DType: operands[0].DType, Dims: dims, Data: operands[0].Data}
	case ir.OpTypeCast:
		return operands[0]
	case ir.OpTypeShapeOf:
		return shapeTensor(operands[0].Dims)
	case ir.OpTypeNumElements:
		return indexTensor(shapes.NumElements(operands[0].Ints()))
	case ir.OpTypeFromElements:
		dims := make([]int, len(operands))
		for ii, operand := range operands {
			dims[ii] = int(operand.Data[0])
		}
		return shapeTensor(dims)
	case ir.OpTypeBroadcastShapes:
		all := make([][]int, len(operands))
		for ii, operand := range operands {
			all[ii] = operand.Ints()
		}
		dims, err := shapes.BroadcastDimensions(all...)
		if err != nil {
			panic(errors.WithMessagef(err, "%s", op))
		}
		return shapeTensor(dims)
	case ir.OpTypeShapeEq:
		return boolTensor(slices.Equal(operands[0].Ints(), operands[1].Ints()))
	case ir.OpTypeMinimumBroadcastShape:
		all := make([][]int, len(operands))
		for ii, operand := range operands {
			all[ii] = operand.Ints()
		}
		return shapeTensor(shapes.MinimumBroadcastShapes(all...)[op.IntAttr(ir.AttrIndex)])
	case ir.OpTypeShapeRank:
		return indexTensor(operands[0].Size())
	case ir.OpTypeConstIndex:
		return indexTensor(op.IntAttr(ir.AttrValue))
	case ir.OpTypeConstShape:
		return shapeTensor(op.Attr(ir.AttrValue).([]int))
	case ir.OpTypeAddIndex:
		return indexTensor(int(operands[0].Data[0] + operands[1].Data[0]))
	case ir.OpTypeCmpIndex:
		predicate := op.Attr(ir.AttrPredicate).(ir.CmpPredicate)
		return boolTensor(predicate.Eval(int(operands[0].Data[0]), int(operands[1].Data[0])))
	case ir.OpTypeSelectIndex:
		if operands[0].Data[0] != 0 {
			return operands[1]
		}
		return operands[2]
	case ir.OpTypeAndBool:
		return boolTensor(operands[0].Data[0] != 0 && operands[1].Data[0] != 0)
	}

	switch op.Type().Family() {
	case ir.FamilyElementwise:
		return execElementwise(op, operands)
	case ir.FamilyBroadcasting:
		return execBroadcasting(op, operands)
	}
	exceptions.Panicf("%s: operation not supported by the interpreter", op)
	return nil
}

// IsSupported returns whether operations of the given type can be evaluated. Complex operations,
// Polygamma and Zeta are not supported.
func IsSupported(opType ir.OpType) bool {
	switch opType.Family() {
	case ir.FamilyStructural:
		return opType > ir.OpTypeInvalid && opType < ir.OpTypeLast
	case ir.FamilyBroadcasting:
		opType = opType.ElementwiseCounterpart()
	}
	return opType == ir.OpTypeCompare || elementFns[opType] != nil
}

// elementFnFor returns the element function of the elementwise or broadcasting operation.
func elementFnFor(op *ir.Op) elementFn {
	opType := op.Type()
	if opType.Family() == ir.FamilyBroadcasting {
		opType = opType.ElementwiseCounterpart()
	}
	if opType == ir.OpTypeCompare {
		return compareFn(op.Attr(ir.AttrComparisonDirection).(ir.ComparisonDirection))
	}
	fn := elementFns[opType]
	if fn == nil {
		exceptions.Panicf("%s: operation %s not supported by the interpreter", op, opType)
	}
	return fn
}

// valuesDType is the dtype given to the element functions: the dtype of the operands that hold
// the values (for select, the predicate is skipped).
func valuesDType(op *ir.Op, operands []*Tensor) dtypes.DType {
	if op.Type() == ir.OpTypeSelect || op.Type() == ir.OpTypeBroadcastSelect {
		return operands[1].DType
	}
	return operands[0].DType
}

// execElementwise requires all operands to have the same dimensions, except the predicate of select,
// which can also be a scalar.
func execElementwise(op *ir.Op, operands []*Tensor) *Tensor {
	fn := elementFnFor(op)
	dims := operands[len(operands)-1].Dims
	for ii, operand := range operands {
		if op.Type() == ir.OpTypeSelect && ii == 0 && operand.Rank() == 0 {
			continue
		}
		if !slices.Equal(operand.Dims, dims) {
			exceptions.Panicf("%s: elementwise operands have different dimensions: %v and %v", op, operand.Dims, dims)
		}
	}
	dtype := valuesDType(op, operands)
	resultDType := op.Shape().DType
	if err := checkSupported(resultDType); err != nil {
		panic(err)
	}
	size := shapes.NumElements(dims)
	output := &Tensor{DType: resultDType, Dims: slices.Clone(dims), Data: make([]float64, size)}
	x := make([]float64, len(operands))
	for idx := range size {
		for ii, operand := range operands {
			if operand.Size() == 1 && size != 1 {
				x[ii] = operand.Data[0]
			} else {
				x[ii] = operand.Data[idx]
			}
		}
		output.Data[idx] = round(resultDType, fn(dtype, x))
	}
	return output
}

// execBroadcasting broadcasts the operands to their common shape before applying the element function.
func execBroadcasting(op *ir.Op, operands []*Tensor) *Tensor {
	fn := elementFnFor(op)
	all := make([][]int, len(operands))
	for ii, operand := range operands {
		all[ii] = operand.Dims
	}
	dims, err := shapes.BroadcastDimensions(all...)
	if err != nil {
		panic(errors.WithMessagef(err, "%s", op))
	}
	dtype := valuesDType(op, operands)
	resultDType := op.Shape().DType
	if err := checkSupported(resultDType); err != nil {
		panic(err)
	}
	size := shapes.NumElements(dims)
	output := &Tensor{DType: resultDType, Dims: dims, Data: make([]float64, size)}
	if size == 0 {
		return output
	}
	iters := make([]*broadcastIterator, len(operands))
	for ii, operand := range operands {
		iters[ii] = newBroadcastIterator(operand.Dims, dims)
	}
	x := make([]float64, len(operands))
	for idx := range size {
		for ii, operand := range operands {
			x[ii] = operand.Data[iters[ii].Next()]
		}
		output.Data[idx] = round(resultDType, fn(dtype, x))
	}
	return output
}
