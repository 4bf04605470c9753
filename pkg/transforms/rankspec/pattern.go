// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"fmt"
	"slices"

	"github.com/gomlx/rankspec/pkg/core/ir"
	"k8s.io/klog/v2"
)

// PatternID identifies the rewrite strategies.
type PatternID int

const (
	// PatternScalarBroadcast rewrites binary broadcasting operations of a scalar and an unranked operand.
	PatternScalarBroadcast PatternID = iota

	// PatternFlatten rewrites elementwise operations by flattening their operands to rank 1.
	PatternFlatten

	// PatternNaryDispatch rewrites broadcasting operations with a run-time dispatch to rank specialized versions.
	PatternNaryDispatch
)

var patternNames = [...]string{"ScalarBroadcast", "Flatten", "NaryDispatch"}

// String implements fmt.Stringer.
func (id PatternID) String() string {
	if id < 0 || int(id) >= len(patternNames) {
		return fmt.Sprintf("PatternID(%d)", int(id))
	}
	return patternNames[id]
}

// Pattern is a rewrite strategy for an illegal operation.
type Pattern interface {
	// ID of the pattern.
	ID() PatternID

	// MatchAndRewrite replaces op by an equivalent set of operations, using rw. It returns false (and no error)
	// if the pattern doesn't apply to op, in which case the function is left unchanged.
	MatchAndRewrite(rw *Rewriter, op *ir.Op) (bool, error)
}

// patternsByOpType lists, for each OpType, the patterns that may rewrite it. The driver offers an
// illegal operation only to the patterns listed here, in the priority order of Patterns.
var patternsByOpType [ir.OpTypeLast][]PatternID

func init() {
	for opType := range ir.ElementwiseOps {
		patternsByOpType[opType] = []PatternID{PatternFlatten}
	}
	for opType := range ir.BroadcastingOps {
		if opType.Arity() == 2 {
			patternsByOpType[opType] = []PatternID{PatternScalarBroadcast, PatternNaryDispatch}
		} else {
			patternsByOpType[opType] = []PatternID{PatternNaryDispatch}
		}
	}
}

// PatternsFor returns the ids of the patterns that may rewrite operations of the given type.
func PatternsFor(opType ir.OpType) []PatternID {
	if opType < 0 || opType >= ir.OpTypeLast {
		return nil
	}
	return slices.Clone(patternsByOpType[opType])
}

// Patterns returns the rewrite patterns in priority order: ScalarBroadcast, Flatten and NaryDispatch.
//
// Each pattern checks on its own whether it applies, so they can be used outside Legalize, see ApplyPatternsOnce.
func Patterns(cfg Config) []Pattern {
	return []Pattern{
		&ScalarBroadcastPattern{},
		&FlattenPattern{},
		&NaryDispatchPattern{MaxRankBinary: cfg.MaxRankBinary, MaxRankNary: cfg.MaxRankNary},
	}
}

// Rewriter is passed to the patterns to create the replacement operations and to replace the original one.
type Rewriter struct {
	fn    *ir.Function
	stats *Stats
}

// NewRewriter creates a Rewriter for fn. stats can be nil.
func NewRewriter(fn *ir.Function, stats *Stats) *Rewriter {
	return &Rewriter{fn: fn, stats: stats}
}

// Function being rewritten.
func (rw *Rewriter) Function() *ir.Function { return rw.fn }

// BuilderBefore returns a builder that inserts operations just before op.
func (rw *Rewriter) BuilderBefore(op *ir.Op) *ir.Builder {
	return ir.NewBuilderBefore(op)
}

// ReplaceOp redirects every use of op to replacement, and erases op.
func (rw *Rewriter) ReplaceOp(op *ir.Op, replacement ir.Value) {
	klog.V(2).Infof("rankspec: replacing %s by %s", op, replacement)
	rw.fn.ReplaceOp(op, replacement)
}

// apply offers op to pattern, and records the result in the statistics.
func (rw *Rewriter) apply(pattern Pattern, op *ir.Op) (bool, error) {
	numOps := rw.fn.NumOps()
	matched, err := pattern.MatchAndRewrite(rw, op)
	if err != nil || !matched {
		return matched, err
	}
	if rw.stats != nil {
		rw.stats.record(pattern.ID(), rw.fn.NumOps()-numOps)
	}
	return true, nil
}
