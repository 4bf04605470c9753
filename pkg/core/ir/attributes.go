// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Attributes holds the static (compile-time) parameters of an operation, by name.
//
// Attribute values are treated as immutable: they are shared between an operation and its
// rewritten replacements.
type Attributes map[string]any

// Well known attribute names.
const (
	// AttrComparisonDirection holds a ComparisonDirection, for OpTypeCompare and OpTypeBroadcastCompare.
	AttrComparisonDirection = "comparison_direction"

	// AttrPredicate holds a CmpPredicate for OpTypeCmpIndex.
	AttrPredicate = "predicate"

	// AttrValue holds the int value of OpTypeConstIndex, the []int of OpTypeConstShape or the
	// []float64 of OpTypeConstant.
	AttrValue = "value"

	// AttrIndex holds the operand index an OpTypeMinimumBroadcastShape computes the reduced shape for.
	AttrIndex = "index"

	// AttrMessage holds the message of OpTypeAssert.
	AttrMessage = "msg"

	// AttrName holds the name of an OpTypeParameter.
	AttrName = "name"
)

// Clone returns a shallow copy of the attributes. It returns nil for empty attributes.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	return maps.Clone(a)
}

// String returns the attributes sorted by name, in the format `{name=value, ...}`.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(a))
	parts := make([]string, len(keys))
	for ii, key := range keys {
		value := a[key]
		if s, ok := value.(string); ok {
			parts[ii] = fmt.Sprintf("%s=%q", key, s)
		} else {
			parts[ii] = fmt.Sprintf("%s=%v", key, value)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ComparisonDirection is the attribute of comparison operations.
type ComparisonDirection int

const (
	CompareEQ ComparisonDirection = iota
	CompareNE
	CompareGE
	CompareGT
	CompareLE
	CompareLT
)

var comparisonDirectionNames = [...]string{"EQ", "NE", "GE", "GT", "LE", "LT"}

// String implements fmt.Stringer.
func (d ComparisonDirection) String() string {
	if d < 0 || int(d) >= len(comparisonDirectionNames) {
		return fmt.Sprintf("ComparisonDirection(%d)", int(d))
	}
	return comparisonDirectionNames[d]
}

// CmpPredicate is the attribute of OpTypeCmpIndex.
type CmpPredicate int

const (
	CmpEQ CmpPredicate = iota
	CmpNE
	CmpSLT
	CmpSLE
	CmpSGT
	CmpSGE
	CmpUGE
)

var cmpPredicateNames = [...]string{"eq", "ne", "slt", "sle", "sgt", "sge", "uge"}

// String implements fmt.Stringer.
func (p CmpPredicate) String() string {
	if p < 0 || int(p) >= len(cmpPredicateNames) {
		return fmt.Sprintf("CmpPredicate(%d)", int(p))
	}
	return cmpPredicateNames[p]
}

// Eval applies the predicate to two index values. Index values are never negative, so the
// unsigned comparison is evaluated on the integers directly.
func (p CmpPredicate) Eval(lhs, rhs int) bool {
	switch p {
	case CmpEQ:
		return lhs == rhs
	case CmpNE:
		return lhs != rhs
	case CmpSLT:
		return lhs < rhs
	case CmpSLE:
		return lhs <= rhs
	case CmpSGT:
		return lhs > rhs
	case CmpSGE, CmpUGE:
		return lhs >= rhs
	}
	return false
}
