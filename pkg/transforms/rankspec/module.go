// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rankspec

import (
	"strings"

	"github.com/gomlx/rankspec/internal/workerspool"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DoneFn is called after each function of a module is legalized. It may be called concurrently.
type DoneFn func(stats *Stats, err error)

// LegalizeModule legalizes each function of the module, see Legalize. Functions are legalized in
// parallel, up to cfg.Parallelism at a time.
//
// It returns the statistics of each function, in the order of the module's functions, and an error
// listing every function that failed.
func LegalizeModule(module *ir.Module, cfg Config) ([]*Stats, error) {
	return LegalizeModuleWithCallback(module, cfg, nil)
}

// LegalizeModuleWithCallback is like LegalizeModule, but calls done (if not nil) as each function is finished.
func LegalizeModuleWithCallback(module *ir.Module, cfg Config, done DoneFn) ([]*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	functions := module.Functions()
	allStats := make([]*Stats, len(functions))
	allErrors := make([]error, len(functions))
	pool := workerspool.New()
	pool.SetMaxParallelism(cfg.Parallelism)
	for ii, fn := range functions {
		pool.WaitToStart(func() {
			allStats[ii], allErrors[ii] = Legalize(fn, cfg)
			if done != nil {
				done(allStats[ii], allErrors[ii])
			}
		})
	}
	pool.Wait()

	var failed []string
	var firstErr error
	for ii, err := range allErrors {
		if err == nil {
			continue
		}
		klog.V(1).Infof("rankspec: function %q failed: %v", functions[ii].Name(), err)
		failed = append(failed, functions[ii].Name())
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return allStats, errors.WithMessagef(firstErr, "module %q: %d of %d functions failed (%s), first error",
			module.Name(), len(failed), len(functions), strings.Join(failed, ", "))
	}
	return allStats, nil
}
