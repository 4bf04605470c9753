// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"slices"

	"github.com/pkg/errors"
)

// Module is a named collection of functions, with unique names.
type Module struct {
	name      string
	functions []*Function
}

// NewModule creates an empty Module.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Name of the module.
func (m *Module) Name() string { return m.name }

// AddFunction adds fn to the module. It returns an error if a function with the same name already exists.
func (m *Module) AddFunction(fn *Function) error {
	if m.Function(fn.Name()) != nil {
		return errors.Errorf("module %q already has a function named %q", m.name, fn.Name())
	}
	m.functions = append(m.functions, fn)
	return nil
}

// Function returns the function with the given name, or nil if not found.
func (m *Module) Function(name string) *Function {
	idx := slices.IndexFunc(m.functions, func(fn *Function) bool { return fn.Name() == name })
	if idx < 0 {
		return nil
	}
	return m.functions[idx]
}

// Functions returns the functions of the module, in the order they were added.
func (m *Module) Functions() []*Function {
	return slices.Clone(m.functions)
}

// Verify checks every function of the module, see Verify.
func (m *Module) Verify() error {
	for _, fn := range m.functions {
		if err := Verify(fn); err != nil {
			return errors.WithMessagef(err, "module %q", m.name)
		}
	}
	return nil
}
