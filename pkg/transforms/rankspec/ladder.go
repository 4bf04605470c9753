// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
)

// bodyFn emits, with the given builder, the computation of a branch and returns its result.
type bodyFn func(b *ir.Builder) ir.Value

// ladderBranch is taken when the run-time rank equals rank.
type ladderBranch struct {
	rank int
	body bodyFn
}

// rankLadder describes the run-time dispatch over ranks: branches are tested in order, and if none
// matches, the final branch is executed after asserting that the rank is final.rank.
type rankLadder struct {
	branches []ladderBranch
	final    ladderBranch

	// assertion is the message of the run-time assertion guarding the final branch.
	assertion string
}

// newRankLadder describes a ladder over ranks 1 to maxRank, with the body of each rank created by specialize.
func newRankLadder(maxRank int, specialize func(rank int) bodyFn) rankLadder {
	if maxRank < 1 {
		exceptions.Panicf("rank ladder requires a maximum rank >= 1, got %d", maxRank)
	}
	ladder := rankLadder{
		assertion: fmt.Sprintf("Input for dynamic binary op lowering was of a rank greater than %d", maxRank),
		final:     ladderBranch{rank: maxRank, body: specialize(maxRank)},
	}
	for rank := 1; rank < maxRank; rank++ {
		ladder.branches = append(ladder.branches, ladderBranch{rank: rank, body: specialize(rank)})
	}
	return ladder
}

// emitLadder creates the nested conditionals of the ladder at the builder's insertion point, testing
// the run-time index value rank. Each conditional's else region holds the next one, and the innermost
// else region holds the assertion and the final branch.
//
// It returns the value of the outermost conditional, of type result.
func emitLadder(b *ir.Builder, rank ir.Value, ladder rankLadder, result shapes.Shape) ir.Value {
	outer := ir.InvalidValue
	current := b
	for _, branch := range ladder.branches {
		isRank := current.CmpIndex(ir.CmpEQ, rank, current.ConstIndex(branch.rank))
		ifOp := current.If(isRank, result)
		thenBuilder := ir.NewBuilderAtEnd(ifOp.Region(0))
		thenBuilder.Yield(branch.body(thenBuilder))
		if outer == ir.InvalidValue {
			outer = ifOp.Id()
		} else {
			current.Yield(ifOp.Id())
		}
		current = ir.NewBuilderAtEnd(ifOp.Region(1))
	}

	isFinal := current.CmpIndex(ir.CmpEQ, rank, current.ConstIndex(ladder.final.rank))
	current.Assert(isFinal, ladder.assertion)
	finalValue := ladder.final.body(current)
	if outer == ir.InvalidValue {
		return finalValue
	}
	current.Yield(finalValue)
	return outer
}
