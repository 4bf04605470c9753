// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"strings"
)

// String pretty-prints the live operations of the function, one per line, with regions indented.
//
// Example:
//
//	func "f"(%0, %1) {
//	  %0 = Parameter() {name="x"} : (Float32)[*]
//	  ...
//	  Return(%9)
//	}
func (fn *Function) String() string {
	var sb strings.Builder
	params := make([]string, len(fn.parameters))
	for ii, p := range fn.parameters {
		params[ii] = p.String()
	}
	_, _ = fmt.Fprintf(&sb, "func %q(%s) {\n", fn.name, strings.Join(params, ", "))
	fn.writeBlock(&sb, fn.body, 1)
	sb.WriteString("}\n")
	return sb.String()
}

func (fn *Function) writeBlock(sb *strings.Builder, blk *Block, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, op := range blk.Ops() {
		sb.WriteString(indent)
		sb.WriteString(op.String())
		if len(op.regions) == 0 {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(" {\n")
		for ii, region := range op.regions {
			if ii > 0 {
				sb.WriteString(indent)
				sb.WriteString("} else {\n")
			}
			fn.writeBlock(sb, region, depth+1)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")
	}
}
