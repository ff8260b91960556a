// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrec provides the in-memory model and reader for
// per-run alignment benchmark statistics files.
//
// One statistics file describes one algorithm execution: the identity
// parameters the run was launched with and the numeric measurements
// it produced. This package is designed to be used with the
// higher-level packages benchagg, benchscale, and benchchart.
package benchrec

// A Record is a single benchmark run.
type Record struct {
	// Identity is the full parameter set of the run, including
	// run-specific volatile fields such as the seed.
	Identity RunIdentity

	// Stats is the run's measurement vector. Measurements are the
	// only fields that are ever aggregated.
	Stats Measurements
}

// Measurements is the fixed vector of numeric measurements taken from
// one run. Aggregation is defined field-wise over this vector; the
// authoritative field list is Fields.
type Measurements struct {
	// Cost is the total alignment cost.
	Cost float64 `toml:"cost"`

	// OpenedNodes, ClosedNodes, and SuppressedNodes count search
	// events during the run.
	OpenedNodes     float64 `toml:"opened_nodes"`
	ClosedNodes     float64 `toml:"closed_nodes"`
	SuppressedNodes float64 `toml:"suppressed_nodes"`

	// TemplateSwitches counts template switches in the reported
	// alignment.
	TemplateSwitches float64 `toml:"template_switches"`

	// Runtime is the wall time in seconds, unpacked from the raw
	// runtime strings at load time.
	Runtime float64 `toml:"runtime"`

	// Memory is the peak memory in bytes, unpacked from the raw
	// kibibyte reading at load time.
	Memory float64 `toml:"memory"`
}

// A Field names one measurement and gives access to it. Combinators
// and chart field selections both go through Fields so the
// measurement schema is declared exactly once.
type Field struct {
	Name string
	Get  func(*Measurements) *float64
}

// Of returns the field's value in m.
func (f Field) Of(m *Measurements) float64 { return *f.Get(m) }

func (f Field) String() string { return f.Name }

// The measurement fields, in display order.
var (
	FieldCost             = Field{"cost", func(m *Measurements) *float64 { return &m.Cost }}
	FieldOpenedNodes      = Field{"opened_nodes", func(m *Measurements) *float64 { return &m.OpenedNodes }}
	FieldClosedNodes      = Field{"closed_nodes", func(m *Measurements) *float64 { return &m.ClosedNodes }}
	FieldSuppressedNodes  = Field{"suppressed_nodes", func(m *Measurements) *float64 { return &m.SuppressedNodes }}
	FieldTemplateSwitches = Field{"template_switches", func(m *Measurements) *float64 { return &m.TemplateSwitches }}
	FieldRuntime          = Field{"runtime", func(m *Measurements) *float64 { return &m.Runtime }}
	FieldMemory           = Field{"memory", func(m *Measurements) *float64 { return &m.Memory }}
)

// Fields lists every measurement field. All piecewise combinators
// iterate this same list.
var Fields = []Field{
	FieldCost,
	FieldOpenedNodes,
	FieldClosedNodes,
	FieldSuppressedNodes,
	FieldTemplateSwitches,
	FieldRuntime,
	FieldMemory,
}
