// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// rankspec builds sample functions with unranked elementwise and broadcasting operations, rank
// specializes them and reports what was done.
//
// Usage:
//
//	rankspec -scenario=select,ladder -print -eval
//	rankspec -scenario=all -repeat=1000 -config=parallelism=4
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/rankspec/pkg/core/ir"
	"github.com/gomlx/rankspec/pkg/interp"
	"github.com/gomlx/rankspec/pkg/support/sets"
	"github.com/gomlx/rankspec/pkg/support/xslices"
	"github.com/gomlx/rankspec/pkg/transforms/rankspec"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagScenario = flag.String("scenario", "all", "Comma-separated list of scenarios to rank specialize, or \"all\".")
	flagList     = flag.Bool("list", false, "List the available scenarios and exit.")
	flagPatterns = flag.Bool("patterns", false, "List the rewrite patterns and the operations they apply to, and exit.")
	flagPrint    = flag.Bool("print", false, "Print the functions before and after rank specialization.")
	flagEval     = flag.Bool("eval", false, "Evaluate the functions before and after rank specialization "+
		"with the sample inputs, and compare the results.")
	flagRepeat = flag.Int("repeat", 1, "Number of copies of each scenario added to the module. "+
		"With large values, a progress bar is displayed.")
	flagConfig = flag.String("config", "", "Rank specialization options, formatted as a comma-separated "+
		"list of key=value. If empty, $"+rankspec.RANKSPEC_CONFIG+" is used.")
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

func newTable(headers ...string) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case row%2 == 0:
				s = evenRowStyle
			default:
				s = oddRowStyle
			}
			if col == 0 {
				return s.Align(lipgloss.Left)
			}
			return s.Align(lipgloss.Right)
		}).
		Headers(headers...)
}

// progressThreshold is the number of functions above which a progress bar is displayed.
const progressThreshold = 100

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagList {
		table := newTable("Scenario", "Description")
		for _, s := range scenarios {
			table.Row(s.name, s.description)
		}
		fmt.Println(table.Render())
		return
	}
	if *flagPatterns {
		printPatterns()
		return
	}

	var cfg rankspec.Config
	if *flagConfig != "" {
		cfg = must.M1(rankspec.ParseConfig(*flagConfig))
	} else {
		cfg = must.M1(rankspec.ConfigFromEnv())
	}
	selected, err := selectScenarios(*flagScenario)
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
	if *flagRepeat < 1 {
		klog.Errorf("-repeat must be >= 1, got %d", *flagRepeat)
		os.Exit(1)
	}

	module, originals := buildModule(selected, *flagRepeat)
	if *flagPrint {
		printFunctions("Before", selected, module)
	}

	start := time.Now()
	allStats, err := legalize(module, cfg)
	elapsed := time.Since(start)
	if err != nil {
		klog.Errorf("Rank specialization failed: %+v", err)
		os.Exit(1)
	}

	if *flagPrint {
		printFunctions("After", selected, module)
	}
	report(cfg, allStats, elapsed)
	if *flagEval {
		if err := evaluate(selected, module, originals); err != nil {
			klog.Errorf("%+v", err)
			os.Exit(1)
		}
	}
}

// functionName of the copy of scenario s.
func functionName(s scenario, copyIdx int) string {
	if copyIdx == 0 {
		return s.name
	}
	return fmt.Sprintf("%s_%d", s.name, copyIdx)
}

// buildModule creates a module with repeat copies of each scenario. It also returns a clone of the
// first copy of each scenario, before any transformation.
func buildModule(selected []scenario, repeat int) (*ir.Module, map[string]*ir.Function) {
	module := ir.NewModule("rankspec")
	originals := make(map[string]*ir.Function, len(selected))
	for _, s := range selected {
		for copyIdx := range repeat {
			fn := ir.NewFunction(functionName(s, copyIdx))
			s.build(fn)
			must.M(module.AddFunction(fn))
			if copyIdx == 0 {
				originals[s.name] = fn.Clone()
			}
		}
	}
	must.M(module.Verify())
	return module, originals
}

func legalize(module *ir.Module, cfg rankspec.Config) ([]*rankspec.Stats, error) {
	numFunctions := len(module.Functions())
	if numFunctions < progressThreshold {
		return rankspec.LegalizeModule(module, cfg)
	}
	bar := progressbar.NewOptions(numFunctions,
		progressbar.OptionSetDescription("Rank specializing"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("functions"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()
	return rankspec.LegalizeModuleWithCallback(module, cfg, func(_ *rankspec.Stats, _ error) {
		_ = bar.Add(1)
	})
}

// printPatterns lists the operation types each pattern is offered, in priority order.
func printPatterns() {
	opTypesByPattern := make(map[rankspec.PatternID]sets.Set[ir.OpType])
	for opType := ir.OpTypeInvalid + 1; opType < ir.OpTypeLast; opType++ {
		for _, id := range rankspec.PatternsFor(opType) {
			if opTypesByPattern[id] == nil {
				opTypesByPattern[id] = sets.Make[ir.OpType]()
			}
			opTypesByPattern[id].Insert(opType)
		}
	}
	table := newTable("Pattern", "# Ops", "Operations")
	for _, pattern := range rankspec.Patterns(rankspec.DefaultConfig()) {
		opTypes := sets.Sorted(opTypesByPattern[pattern.ID()])
		names := xslices.Map(opTypes, ir.OpType.String)
		table.Row(pattern.ID().String(), humanize.Comma(int64(len(names))), strings.Join(names, " "))
	}
	fmt.Println(table.Render())
}

func printFunctions(title string, selected []scenario, module *ir.Module) {
	fmt.Println(titleStyle.Render(title + ":"))
	for _, s := range selected {
		fmt.Println(module.Function(s.name))
	}
}

// report prints the statistics aggregated per scenario, and the totals.
func report(cfg rankspec.Config, allStats []*rankspec.Stats, elapsed time.Duration) {
	fmt.Println(titleStyle.Render("Rank specialization"))
	summary := newTable("Option", "Value")
	for _, option := range strings.Split(cfg.String(), ",") {
		key, value, _ := strings.Cut(option, "=")
		summary.Row(key, value)
	}
	summary.Row("# functions", humanize.Comma(int64(len(allStats))))
	summary.Row("elapsed", elapsed.String())
	fmt.Println(summary.Render())

	table := newTable("Function", "Iterations", "ScalarBroadcast", "Flatten", "NaryDispatch",
		"Created", "Swept", "Live ops")
	var total rankspec.Stats
	for _, stats := range allStats {
		total.Created += stats.Created
		total.Swept += stats.Swept
		total.LiveOps += stats.LiveOps
		if len(allStats) > progressThreshold {
			continue
		}
		table.Row(stats.Function, humanize.Comma(int64(stats.Iterations)),
			humanize.Comma(int64(stats.Applied[rankspec.PatternScalarBroadcast])),
			humanize.Comma(int64(stats.Applied[rankspec.PatternFlatten])),
			humanize.Comma(int64(stats.Applied[rankspec.PatternNaryDispatch])),
			humanize.Comma(int64(stats.Created)), humanize.Comma(int64(stats.Swept)),
			humanize.Comma(int64(stats.LiveOps)))
	}
	table.Row("total", "", "", "", "", humanize.Comma(int64(total.Created)),
		humanize.Comma(int64(total.Swept)), humanize.Comma(int64(total.LiveOps)))
	fmt.Println(table.Render())
}

// evaluate runs the original and the rank specialized version of each scenario on its sample
// inputs, and checks that they compute the same.
func evaluate(selected []scenario, module *ir.Module, originals map[string]*ir.Function) error {
	fmt.Println(titleStyle.Render("Evaluation"))
	table := newTable("Scenario", "Inputs", "Output", "Match")
	var mismatches []string
	for _, s := range selected {
		inputs := s.inputs()
		want, err := interp.Run(originals[s.name], inputs...)
		if err != nil {
			return errors.WithMessagef(err, "evaluating original %q", s.name)
		}
		got, err := interp.Run(module.Function(s.name), inputs...)
		if err != nil {
			return errors.WithMessagef(err, "evaluating rank specialized %q", s.name)
		}
		match := len(want) == len(got)
		for ii := 0; match && ii < len(want); ii++ {
			match = want[ii].Equal(got[ii])
		}
		inputDims := make([]string, len(inputs))
		for ii, input := range inputs {
			inputDims[ii] = fmt.Sprint(input.Dims)
		}
		outputs := make([]string, len(got))
		for ii, output := range got {
			outputs[ii] = output.String()
		}
		table.Row(s.name, strings.Join(inputDims, " "), strings.Join(outputs, " "), fmt.Sprint(match))
		if !match {
			mismatches = append(mismatches, s.name)
		}
	}
	fmt.Println(table.Render())
	if len(mismatches) > 0 {
		return errors.Errorf("rank specialized functions computed different results for %s",
			strings.Join(mismatches, ", "))
	}
	return nil
}
