// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := MakeWith(3, 1, 2)
	require.Len(t, s, 3)
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(4))
	s.Insert(4, 4)
	assert.Len(t, s, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, Sorted(s))
}

func TestUnion(t *testing.T) {
	u := Union(MakeWith("a", "b"), MakeWith("b", "c"), Make[string]())
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(u))
}
