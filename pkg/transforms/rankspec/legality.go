// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
)

// IsLegal returns whether the operation already has the fixed rank form required downstream.
//
// Elementwise operations are legal if all their operands are ranked. Broadcasting operations are
// legal if none of their operands is unranked. Every other operation is always legal.
//
// Only the static types are inspected.
func IsLegal(op *ir.Op) bool {
	switch op.Type().Family() {
	case ir.FamilyElementwise:
		return allRanked(op.OperandShapes())
	case ir.FamilyBroadcasting:
		return !anyUnranked(op.OperandShapes())
	}
	return true
}

func allRanked(operands []shapes.Shape) bool {
	for _, s := range operands {
		if !s.IsRanked() {
			return false
		}
	}
	return true
}

func anyUnranked(operands []shapes.Shape) bool {
	for _, s := range operands {
		if s.IsUnranked() {
			return true
		}
	}
	return false
}
