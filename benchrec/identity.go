// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import "fmt"

// A RunIdentity is the full set of parameters identifying one run,
// including run-specific volatile fields. Use Experiment to project
// the merge-stable subset.
type RunIdentity struct {
	TestSequenceName string
	Aligner          string
	AlignmentMethod  string
	Length           int

	// Cost is copied from the cost measurement at load time so
	// that it is visibly part of the identity the Experiment
	// projection clears.
	Cost uint64

	Seed            uint64
	AlignmentConfig string
	RQRange         string
	CostLimit       string
	MemoryLimit     string

	// RuntimeRaw holds the raw "MM:SS" / "HH:MM:SS" readings the
	// runtime measurement was unpacked from.
	RuntimeRaw []string

	// MemoryRaw is the raw peak memory reading in kibibytes.
	MemoryRaw uint64

	Strategies Strategies
}

// An ExperimentIdentity is a RunIdentity with the run-specific
// volatile fields cleared: seed, cost, and the raw runtime and memory
// readings. Records merge iff their experiment identities and bucket
// coordinates are equal, so the type is comparable and usable as a
// map key.
type ExperimentIdentity struct {
	TestSequenceName string
	Aligner          string
	AlignmentMethod  string
	Length           int
	AlignmentConfig  string
	RQRange          string
	CostLimit        string
	MemoryLimit      string
	Strategies       Strategies
}

// Experiment projects the merge-stable subset of the identity.
func (id *RunIdentity) Experiment() ExperimentIdentity {
	return ExperimentIdentity{
		TestSequenceName: id.TestSequenceName,
		Aligner:          id.Aligner,
		AlignmentMethod:  id.AlignmentMethod,
		Length:           id.Length,
		AlignmentConfig:  id.AlignmentConfig,
		RQRange:          id.RQRange,
		CostLimit:        id.CostLimit,
		MemoryLimit:      id.MemoryLimit,
		Strategies:       id.Strategies,
	}
}

// A StrategyName identifies one tunable strategy of the aligner.
type StrategyName int

const (
	NodeOrd StrategyName = iota
	TSMinLength
)

// StrategyNames lists all strategies in display order.
var StrategyNames = []StrategyName{NodeOrd, TSMinLength}

func (n StrategyName) String() string {
	switch n {
	case NodeOrd:
		return "node_ord"
	case TSMinLength:
		return "ts_min_len"
	}
	return fmt.Sprintf("StrategyName(%d)", int(n))
}

// Strategies records the value selected for each strategy.
type Strategies struct {
	NodeOrd     string
	TSMinLength string
}

// Get returns the selected value for strategy n.
func (s Strategies) Get(n StrategyName) string {
	switch n {
	case NodeOrd:
		return s.NodeOrd
	case TSMinLength:
		return s.TSMinLength
	}
	panic(fmt.Sprintf("unknown strategy %d", int(n)))
}
