// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Alignplot aggregates per-run alignment benchmark statistics files
// and renders comparative charts.
//
// Each input file holds one run's parameters and measurements. Runs
// are grouped by aligner (plus any strategy selections that vary),
// bucketed along the sequence-length axis, merged into summary
// statistics, and drawn as box plots, mean lines, and histograms.
package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/seqbench/alignplot/benchagg"
	"github.com/seqbench/alignplot/benchchart"
	"github.com/seqbench/alignplot/benchrec"
	"github.com/seqbench/alignplot/benchscale"
	"github.com/seqbench/alignplot/internal/logging"
)

type config struct {
	buckets   int
	transform string
	outDir    string
	csvPath   string
	sequence  string
	histBins  int
	verbose   bool

	costPlot    bool
	runtimePlot bool
	memoryPlot  bool
	openedPlot  bool
	costHist    bool
}

func main() {
	log := logging.NewConsole()
	cmd := newRootCmd(afero.NewOsFs(), &log)
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("alignplot failed")
	}
}

func newRootCmd(fsys afero.Fs, log *zerolog.Logger) *cobra.Command {
	cfg := new(config)
	cmd := &cobra.Command{
		Use:           "alignplot [flags] statistics-file.toml...",
		Short:         "aggregate alignment benchmark statistics and render comparison charts",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.verbose {
				*log = log.Level(zerolog.DebugLevel)
			} else {
				*log = log.Level(zerolog.InfoLevel)
			}
			return run(fsys, log, cfg, args)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&cfg.buckets, "buckets", 0, "number of key-axis buckets; 0 merges per distinct key")
	fl.StringVar(&cfg.transform, "transform", "linear", "value-axis transform: linear, log, or root:D")
	fl.StringVar(&cfg.outDir, "out", "plots", "directory for chart output")
	fl.StringVar(&cfg.csvPath, "csv", "", "write a runtime/memory CSV to this file")
	fl.StringVar(&cfg.sequence, "sequence", "", "only chart runs of this test sequence")
	fl.IntVar(&cfg.histBins, "histogram-bins", 16, "bin count for histograms")
	fl.BoolVarP(&cfg.verbose, "verbose", "v", false, "log per-group detail")

	fl.BoolVar(&cfg.costPlot, "cost", true, "render the cost box plot")
	fl.BoolVar(&cfg.runtimePlot, "runtime", false, "render the runtime box plot")
	fl.BoolVar(&cfg.memoryPlot, "memory", false, "render the memory box plot")
	fl.BoolVar(&cfg.openedPlot, "opened", false, "render the opened-nodes mean lines")
	fl.BoolVar(&cfg.costHist, "cost-histogram", false, "render the cost histogram")

	return cmd
}

func run(fsys afero.Fs, log *zerolog.Logger, cfg *config, paths []string) error {
	if cfg.buckets < 0 {
		return fmt.Errorf("--buckets must be >= 1 (or 0 for per-key merging), got %d", cfg.buckets)
	}
	transform, err := benchscale.ParseTransform(cfg.transform)
	if err != nil {
		return err
	}

	records, err := benchrec.ReadFiles(fsys, paths)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Msg("loaded statistics files")

	if cfg.csvPath != "" {
		if err := writeCSV(fsys, cfg.csvPath, records); err != nil {
			return err
		}
		log.Info().Str("file", cfg.csvPath).Msg("wrote runtime/memory csv")
	}

	labeler := benchrec.NewStrategyLabeler(records)
	groups, err := benchagg.GroupRecords(records, func(r *benchrec.Record) string {
		return r.Identity.Aligner + labeler.Label(r)
	})
	if err != nil {
		return err
	}
	for _, g := range groups {
		log.Debug().Str("group", g.Name).Int("records", len(g.Records)).Msg("grouped")
	}

	if cfg.sequence != "" {
		groups = benchagg.FilterGroups(groups, func(r *benchrec.Record) bool {
			return r.Identity.TestSequenceName == cfg.sequence
		})
		if len(groups) == 0 {
			log.Warn().Str("sequence", cfg.sequence).Msg("filter matched no runs, nothing to chart")
			return nil
		}
	}

	merged, _, err := benchagg.Merge(groups,
		func(r *benchrec.Record) float64 { return float64(r.Identity.Length) },
		benchagg.MergeOptions{Buckets: cfg.buckets})
	if err != nil {
		return err
	}

	opt := benchchart.Options{
		Dir:       cfg.outDir,
		Transform: transform,
		KeyLabel:  "sequence length",
	}

	reports := []struct {
		enabled bool
		name    string
		render  func() error
	}{
		{cfg.costPlot, "cost", func() error {
			return benchchart.BoxPlots(merged, benchrec.FieldCost, opt, "cost")
		}},
		{cfg.runtimePlot, "runtime", func() error {
			return benchchart.BoxPlots(merged, benchrec.FieldRuntime, opt, "runtime")
		}},
		{cfg.memoryPlot, "memory", func() error {
			return benchchart.BoxPlots(merged, benchrec.FieldMemory, opt, "memory")
		}},
		{cfg.openedPlot, "opened-nodes", func() error {
			return benchchart.MeanLines(merged, benchrec.FieldOpenedNodes, opt, "opened-nodes")
		}},
		{cfg.costHist, "cost-histogram", func() error {
			return benchchart.Histogram(merged, benchrec.FieldCost, cfg.histBins, opt, "cost-histogram")
		}},
	}
	for _, rep := range reports {
		if !rep.enabled {
			continue
		}
		if err := rep.render(); err != nil {
			return fmt.Errorf("rendering %s: %w", rep.name, err)
		}
		log.Info().Str("report", rep.name).Str("dir", cfg.outDir).Msg("rendered")
	}
	return nil
}

func writeCSV(fsys afero.Fs, path string, records []*benchrec.Record) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	if err := benchrec.WriteRuntimeMemoryCSV(records, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
