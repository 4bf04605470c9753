// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Stats collects what a legalization did to a function.
type Stats struct {
	// Function is the name of the legalized function.
	Function string

	// Iterations is the number of sweeps over the function.
	Iterations int

	// Applied counts the number of rewrites done by each pattern.
	Applied map[PatternID]int

	// Created is the number of operations created by the rewrites.
	Created int

	// Swept is the number of operations removed by the final dead operations sweep.
	Swept int

	// LiveOps is the number of operations in the function after legalization.
	LiveOps int
}

func newStats(functionName string) *Stats {
	return &Stats{Function: functionName, Applied: make(map[PatternID]int)}
}

func (s *Stats) record(id PatternID, created int) {
	s.Applied[id]++
	s.Created += created
}

// NumRewrites returns the total number of rewrites.
func (s *Stats) NumRewrites() (count int) {
	for _, n := range s.Applied {
		count += n
	}
	return
}

// String implements fmt.Stringer.
func (s *Stats) String() string {
	ids := maps.Keys(s.Applied)
	slices.Sort(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s=%d", id, s.Applied[id]))
	}
	return fmt.Sprintf("%q: %d iterations, rewrites [%s], %d ops created, %d swept, %d live ops",
		s.Function, s.Iterations, strings.Join(parts, ", "), s.Created, s.Swept, s.LiveOps)
}
