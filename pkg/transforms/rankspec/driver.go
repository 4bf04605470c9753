// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package rankspec implements rank specialization: it rewrites elementwise and broadcasting
// operations whose operands have a rank unknown at compile time into operations over tensors of
// fixed rank, dispatched at run time.
//
// Three rewrite patterns are used, in priority order:
//
//   - ScalarBroadcastPattern: a binary broadcasting operation of a scalar and an unranked operand is
//     applied on the flattened unranked operand.
//   - FlattenPattern: elementwise operations are applied on their flattened operands.
//   - NaryDispatchPattern: broadcasting operations dispatch at run time to fast paths or to versions
//     specialized for each rank up to a maximum. Larger ranks fail with a run-time assertion.
//
// Legalize applies them to a function until every operation is legal (see IsLegal), and
// LegalizeModule legalizes the functions of a module in parallel.
package rankspec

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Legalize rewrites every illegal operation of fn (see IsLegal) using the patterns, repeating
// the sweeps over fn until all operations are legal.
//
// It fails, naming the operation, if an illegal operation is left that no pattern can rewrite, or
// if cfg.MaxIterations sweeps were not enough. In case of failure fn is restored to its state before
// the call.
//
// On success, operations left unused are removed and the function is verified.
func Legalize(fn *ir.Function, cfg Config) (stats *Stats, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	stats = newStats(fn.Name())
	snapshot := fn.Clone()
	if exception := exceptions.TryCatch[error](func() { err = legalize(fn, cfg, stats) }); exception != nil {
		err = exception
	}
	if err != nil {
		fn.Restore(snapshot)
		return stats, errors.WithMessagef(err, "rank specialization of function %q", fn.Name())
	}
	stats.Swept = fn.SweepDead()
	stats.LiveOps = fn.NumLiveOps()
	if err = ir.Verify(fn); err != nil {
		fn.Restore(snapshot)
		return stats, errors.WithMessagef(err, "rank specialization of function %q produced an invalid function", fn.Name())
	}
	klog.V(1).Infof("rankspec: %s", stats)
	return stats, nil
}

func legalize(fn *ir.Function, cfg Config, stats *Stats) error {
	patterns := Patterns(cfg)
	rw := NewRewriter(fn, stats)
	for {
		if stats.Iterations >= cfg.MaxIterations {
			return errors.Errorf("failed to reach a fixed point after %d iterations", stats.Iterations)
		}
		stats.Iterations++
		var progress bool
		var unmatched []*ir.Op
		for _, op := range fn.Operations() {
			if op.IsErased() || IsLegal(op) {
				continue
			}
			matched, err := applyFirst(rw, patterns, op)
			if err != nil {
				return err
			}
			if matched {
				progress = true
			} else {
				unmatched = append(unmatched, op)
			}
		}
		klog.V(2).Infof("rankspec: function %q iteration %d: progress=%v, %d unmatched",
			fn.Name(), stats.Iterations, progress, len(unmatched))
		if len(unmatched) > 0 && !progress {
			op := unmatched[0]
			return errors.Errorf("failed to legalize operation %s #%d: %s", op.Type(), op.Id(), op)
		}
		if !progress {
			return nil
		}
	}
}

// applyFirst offers op to the patterns applicable to its type, in priority order, until one matches.
func applyFirst(rw *Rewriter, patterns []Pattern, op *ir.Op) (bool, error) {
	applicable := patternsByOpType[op.Type()]
	for _, pattern := range patterns {
		if !slices.Contains(applicable, pattern.ID()) {
			continue
		}
		matched, err := rw.apply(pattern, op)
		if err != nil || matched {
			return matched, err
		}
	}
	return false, nil
}

// ApplyPatternsOnce offers every operation of fn, as it is before any rewrite, to the patterns in the
// given order, and applies the first that matches. Operations created by the rewrites are not
// visited, and operations left illegal are not an error.
//
// It returns the number of rewrites.
func ApplyPatternsOnce(fn *ir.Function, patterns []Pattern) (count int, err error) {
	rw := NewRewriter(fn, nil)
	exception := exceptions.TryCatch[error](func() {
		for _, op := range fn.Operations() {
			if op.IsErased() {
				continue
			}
			for _, pattern := range patterns {
				var matched bool
				matched, err = pattern.MatchAndRewrite(rw, op)
				if err != nil {
					return
				}
				if matched {
					count++
					break
				}
			}
		}
	})
	if exception != nil {
		err = exception
	}
	return count, err
}
