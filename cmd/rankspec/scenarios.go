// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/core/shapes"
	"github.com/gomlx/rankspec/pkg/interp"
	"github.com/pkg/errors"
)

// scenario is a sample function with unranked operations, along with inputs to evaluate it.
type scenario struct {
	name        string
	description string
	build       func(fn *ir.Function)
	inputs      func() []*interp.Tensor
}

var (
	f32     = shapes.Unranked(dtypes.Float32)
	boolAny = shapes.Unranked(dtypes.Bool)
)

func ramp(dims ...int) *interp.Tensor { return interp.Iota(dtypes.Float32, dims, 0) }

// binaryScenario returns a function applying opType to two unranked operands.
func binaryScenario(opType ir.OpType) func(fn *ir.Function) {
	return func(fn *ir.Function) {
		b := ir.NewBuilder(fn)
		x := b.Parameter("x", f32)
		y := b.Parameter("y", f32)
		b.Return(b.Apply(opType, f32, nil, x, y))
	}
}

var scenarios = []scenario{
	{
		name:        "scalar_like",
		description: "[3] + [1]: one operand has a single element",
		build:       binaryScenario(ir.OpTypeBroadcastAdd),
		inputs:      func() []*interp.Tensor { return []*interp.Tensor{ramp(3), ramp(1)} },
	},
	{
		name:        "equal_shapes",
		description: "[2,3] * [2,3]: operands of the same shape",
		build:       binaryScenario(ir.OpTypeBroadcastMul),
		inputs:      func() []*interp.Tensor { return []*interp.Tensor{ramp(2, 3), ramp(2, 3)} },
	},
	{
		name:        "ladder",
		description: "[2,1,2] max [3,1]: dispatched by rank",
		build:       binaryScenario(ir.OpTypeBroadcastMax),
		inputs:      func() []*interp.Tensor { return []*interp.Tensor{ramp(2, 1, 2), ramp(3, 1)} },
	},
	{
		name:        "scalar_broadcast",
		description: "scalar - unranked: a rank-0 operand against an unranked one",
		build: func(fn *ir.Function) {
			b := ir.NewBuilder(fn)
			x := b.Parameter("x", shapes.Scalar(dtypes.Float32))
			y := b.Parameter("y", f32)
			b.Return(b.Apply(ir.OpTypeBroadcastSub, f32, nil, x, y))
		},
		inputs: func() []*interp.Tensor {
			return []*interp.Tensor{interp.Scalar(dtypes.Float32, 10), ramp(2, 2)}
		},
	},
	{
		name:        "select",
		description: "select([2], [3,2], [3,2]): ternary broadcasting",
		build: func(fn *ir.Function) {
			b := ir.NewBuilder(fn)
			pred := b.Parameter("pred", boolAny)
			onTrue := b.Parameter("on_true", f32)
			onFalse := b.Parameter("on_false", f32)
			b.Return(b.Apply(ir.OpTypeBroadcastSelect, f32, nil, pred, onTrue, onFalse))
		},
		inputs: func() []*interp.Tensor {
			return []*interp.Tensor{interp.FromValues(dtypes.Bool, []int{2}, 0, 1), ramp(3, 2),
				interp.Iota(dtypes.Float32, []int{3, 2}, 100)}
		},
	},
	{
		name:        "chain",
		description: "tanh(x * y + z) - 1: mixed elementwise and broadcasting operations",
		build: func(fn *ir.Function) {
			b := ir.NewBuilder(fn)
			x := b.Parameter("x", f32)
			y := b.Parameter("y", f32)
			z := b.Parameter("z", f32)
			one := b.Constant(shapes.Scalar(dtypes.Float32), 1)
			v := b.Apply(ir.OpTypeBroadcastMul, f32, nil, x, y)
			v = b.Apply(ir.OpTypeBroadcastAdd, f32, nil, v, z)
			v = b.Apply(ir.OpTypeTanh, f32, nil, v)
			b.Return(b.Apply(ir.OpTypeBroadcastSub, f32, nil, v, one))
		},
		inputs: func() []*interp.Tensor { return []*interp.Tensor{ramp(2, 3), ramp(3), ramp(2, 1)} },
	},
}

// selectScenarios returns the scenarios listed in the comma-separated names, or all of them for "all".
func selectScenarios(names string) ([]scenario, error) {
	if names == "all" {
		return scenarios, nil
	}
	var selected []scenario
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		idx := slices.IndexFunc(scenarios, func(s scenario) bool { return s.name == name })
		if idx < 0 {
			return nil, errors.Errorf("unknown scenario %q, see -list", name)
		}
		selected = append(selected, scenarios[idx])
	}
	return selected, nil
}
