// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package interp

import (
	"math"
	"math/bits"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
)

// elementFn computes one element of the result from one element of each operand. dtype is the
// dtype of the operands.
type elementFn func(dtype dtypes.DType, x []float64) float64

// elementFns are indexed by the elementwise OpType. Broadcasting operations use the function of
// their elementwise counterpart.
var elementFns [ir.OpTypeLast]elementFn

func unary(fn func(float64) float64) elementFn {
	return func(_ dtypes.DType, x []float64) float64 { return fn(x[0]) }
}

func binary(fn func(float64, float64) float64) elementFn {
	return func(_ dtypes.DType, x []float64) float64 { return fn(x[0], x[1]) }
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// bitWidth returns the number of bits of an element of dtype.
func bitWidth(dtype dtypes.DType) int {
	return dtype.Size() * 8
}

// bitsOf returns the value as an unsigned integer masked to the bit width of dtype.
func bitsOf(dtype dtypes.DType, v float64) uint64 {
	u := uint64(int64(v))
	if dtype == dtypes.Uint64 {
		u = uint64(v)
	}
	if width := bitWidth(dtype); width < 64 {
		u &= 1<<width - 1
	}
	return u
}

func checkIntegerOrBool(op string, dtype dtypes.DType) {
	if !dtype.IsInt() && dtype != dtypes.Bool {
		exceptions.Panicf("%s is not defined for dtype %s", op, dtype)
	}
}

func init() {
	elementFns[ir.OpTypeAbs] = unary(math.Abs)
	elementFns[ir.OpTypeCeil] = unary(math.Ceil)
	elementFns[ir.OpTypeFloor] = unary(math.Floor)
	elementFns[ir.OpTypeConvert] = unary(func(x float64) float64 { return x })
	elementFns[ir.OpTypeCos] = unary(math.Cos)
	elementFns[ir.OpTypeExp] = unary(math.Exp)
	elementFns[ir.OpTypeExpm1] = unary(math.Expm1)
	elementFns[ir.OpTypeIsFinite] = unary(func(x float64) float64 { return boolToFloat(!math.IsInf(x, 0) && !math.IsNaN(x)) })
	elementFns[ir.OpTypeIsInf] = unary(func(x float64) float64 { return boolToFloat(math.IsInf(x, 0)) })
	elementFns[ir.OpTypeLog] = unary(math.Log)
	elementFns[ir.OpTypeLog1p] = unary(math.Log1p)
	elementFns[ir.OpTypeLogistic] = unary(func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
	elementFns[ir.OpTypeNeg] = unary(func(x float64) float64 { return -x })
	elementFns[ir.OpTypeRound] = unary(math.Round)
	elementFns[ir.OpTypeRsqrt] = unary(func(x float64) float64 { return 1 / math.Sqrt(x) })
	elementFns[ir.OpTypeSign] = unary(func(x float64) float64 {
		switch {
		case math.IsNaN(x):
			return x
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	})
	elementFns[ir.OpTypeSin] = unary(math.Sin)
	elementFns[ir.OpTypeSqrt] = unary(math.Sqrt)
	elementFns[ir.OpTypeTanh] = unary(math.Tanh)
	elementFns[ir.OpTypeAcos] = unary(math.Acos)
	elementFns[ir.OpTypeAcosh] = unary(math.Acosh)
	elementFns[ir.OpTypeAsin] = unary(math.Asin)
	elementFns[ir.OpTypeAsinh] = unary(math.Asinh)
	elementFns[ir.OpTypeAtan] = unary(math.Atan)
	elementFns[ir.OpTypeAtanh] = unary(math.Atanh)
	elementFns[ir.OpTypeCosh] = unary(math.Cosh)
	elementFns[ir.OpTypeDigamma] = unary(digamma)
	elementFns[ir.OpTypeErf] = unary(math.Erf)
	elementFns[ir.OpTypeErfc] = unary(math.Erfc)
	elementFns[ir.OpTypeLgamma] = unary(func(x float64) float64 {
		lgamma, _ := math.Lgamma(x)
		return lgamma
	})
	elementFns[ir.OpTypeSinh] = unary(math.Sinh)
	elementFns[ir.OpTypeTan] = unary(math.Tan)
	elementFns[ir.OpTypeNot] = func(dtype dtypes.DType, x []float64) float64 {
		checkIntegerOrBool("Not", dtype)
		if dtype == dtypes.Bool {
			return boolToFloat(x[0] == 0)
		}
		return float64(^int64(x[0]))
	}
	elementFns[ir.OpTypeClz] = func(dtype dtypes.DType, x []float64) float64 {
		checkIntegerOrBool("Clz", dtype)
		return float64(bits.LeadingZeros64(bitsOf(dtype, x[0])) - (64 - bitWidth(dtype)))
	}
	elementFns[ir.OpTypePopulationCount] = func(dtype dtypes.DType, x []float64) float64 {
		checkIntegerOrBool("PopulationCount", dtype)
		return float64(bits.OnesCount64(bitsOf(dtype, x[0])))
	}

	elementFns[ir.OpTypeAdd] = binary(func(a, b float64) float64 { return a + b })
	elementFns[ir.OpTypeSub] = binary(func(a, b float64) float64 { return a - b })
	elementFns[ir.OpTypeMul] = binary(func(a, b float64) float64 { return a * b })
	elementFns[ir.OpTypeMax] = binary(math.Max)
	elementFns[ir.OpTypeMin] = binary(math.Min)
	elementFns[ir.OpTypePow] = binary(math.Pow)
	elementFns[ir.OpTypeAtan2] = binary(math.Atan2)
	elementFns[ir.OpTypeDiv] = func(dtype dtypes.DType, x []float64) float64 {
		if dtype.IsInt() {
			if x[1] == 0 {
				return -1
			}
			return math.Trunc(x[0] / x[1])
		}
		return x[0] / x[1]
	}
	elementFns[ir.OpTypeRem] = func(dtype dtypes.DType, x []float64) float64 {
		if dtype.IsInt() && x[1] == 0 {
			return x[0]
		}
		return math.Mod(x[0], x[1])
	}
	logical := func(name string, boolFn func(a, b bool) bool, intFn func(a, b uint64) uint64) elementFn {
		return func(dtype dtypes.DType, x []float64) float64 {
			checkIntegerOrBool(name, dtype)
			if dtype == dtypes.Bool {
				return boolToFloat(boolFn(x[0] != 0, x[1] != 0))
			}
			return float64(int64(intFn(bitsOf(dtype, x[0]), bitsOf(dtype, x[1]))))
		}
	}
	elementFns[ir.OpTypeAnd] = logical("And",
		func(a, b bool) bool { return a && b }, func(a, b uint64) uint64 { return a & b })
	elementFns[ir.OpTypeOr] = logical("Or",
		func(a, b bool) bool { return a || b }, func(a, b uint64) uint64 { return a | b })
	elementFns[ir.OpTypeXor] = logical("Xor",
		func(a, b bool) bool { return a != b }, func(a, b uint64) uint64 { return a ^ b })
	elementFns[ir.OpTypeShiftLeft] = func(dtype dtypes.DType, x []float64) float64 {
		checkIntegerOrBool("ShiftLeft", dtype)
		shift := bitsOf(dtype, x[1])
		if shift >= uint64(bitWidth(dtype)) {
			return 0
		}
		return float64(int64(bitsOf(dtype, x[0]) << shift))
	}
	elementFns[ir.OpTypeShiftRightLogical] = func(dtype dtypes.DType, x []float64) float64 {
		checkIntegerOrBool("ShiftRightLogical", dtype)
		shift := bitsOf(dtype, x[1])
		if shift >= uint64(bitWidth(dtype)) {
			return 0
		}
		return float64(bitsOf(dtype, x[0]) >> shift)
	}
	elementFns[ir.OpTypeShiftRightArithmetic] = func(dtype dtypes.DType, x []float64) float64 {
		checkIntegerOrBool("ShiftRightArithmetic", dtype)
		shift := min(bitsOf(dtype, x[1]), uint64(bitWidth(dtype)-1))
		return float64(int64(x[0]) >> shift)
	}
	elementFns[ir.OpTypeSelect] = func(_ dtypes.DType, x []float64) float64 {
		if x[0] != 0 {
			return x[1]
		}
		return x[2]
	}
}

// compareFn returns the element function of OpTypeCompare for the given direction.
func compareFn(direction ir.ComparisonDirection) elementFn {
	var cmp func(a, b float64) bool
	switch direction {
	case ir.CompareEQ:
		cmp = func(a, b float64) bool { return a == b }
	case ir.CompareNE:
		cmp = func(a, b float64) bool { return a != b }
	case ir.CompareGE:
		cmp = func(a, b float64) bool { return a >= b }
	case ir.CompareGT:
		cmp = func(a, b float64) bool { return a > b }
	case ir.CompareLE:
		cmp = func(a, b float64) bool { return a <= b }
	case ir.CompareLT:
		cmp = func(a, b float64) bool { return a < b }
	default:
		exceptions.Panicf("unknown comparison direction %s", direction)
	}
	return binary(func(a, b float64) float64 { return boolToFloat(cmp(a, b)) })
}

// digamma is the logarithmic derivative of the gamma function.
func digamma(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, -1) {
		return math.NaN()
	}
	if x <= 0 && x == math.Floor(x) {
		return math.NaN()
	}
	if x < 0 {
		// Reflection: psi(1-x) - psi(x) = pi * cot(pi * x).
		return digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
	}
	var result float64
	for x < 6 {
		result -= 1 / x
		x++
	}
	inv2 := 1 / (x * x)
	result += math.Log(x) - 0.5/x -
		inv2*(1.0/12-inv2*(1.0/120-inv2*(1.0/252-inv2*(1.0/240-inv2/132))))
	return result
}
