// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// recordFile mirrors the on-disk TOML layout of one statistics file:
// identity keys at the top level, the measurement vector under
// [statistics].
type recordFile struct {
	TestSequenceName string   `toml:"test_sequence_name"`
	Aligner          string   `toml:"aligner"`
	AlignmentMethod  string   `toml:"alignment_method"`
	Length           int      `toml:"length"`
	Seed             uint64   `toml:"seed"`
	AlignmentConfig  string   `toml:"alignment_config"`
	RQRange          string   `toml:"rq_range"`
	CostLimit        string   `toml:"cost_limit"`
	MemoryLimit      string   `toml:"memory_limit"`
	RuntimeRaw       []string `toml:"runtime_raw"`
	MemoryRaw        uint64   `toml:"memory_raw"`
	NodeOrd          string   `toml:"ts_node_ord_strategy"`
	TSMinLength      string   `toml:"ts_min_length_strategy"`

	// TemplateSwitchAmount is an optional out-of-band correction
	// for runs whose statistics predate the template_switches
	// measurement.
	TemplateSwitchAmount uint64 `toml:"template_switch_amount"`

	Statistics Measurements `toml:"statistics"`
}

// ReadFiles reads one Record per statistics file. All files of a
// batch must carry the same key schema; a mismatch indicates the
// inputs come from different tool versions and aborts the whole load.
func ReadFiles(fsys afero.Fs, paths []string) ([]*Record, error) {
	var (
		schema     []string
		schemaPath string
		records    []*Record
	)
	for _, path := range paths {
		rec, keys, err := readFile(fsys, path)
		if err != nil {
			return nil, err
		}
		if schema == nil {
			schema, schemaPath = keys, path
		} else if !equalStrings(schema, keys) {
			return nil, fmt.Errorf("%s: record schema %v does not match schema %v of %s",
				path, keys, schema, schemaPath)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readFile(fsys afero.Fs, path string) (*Record, []string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, nil, err
	}
	var rf recordFile
	md, err := toml.Decode(string(data), &rf)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", path, err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return nil, nil, fmt.Errorf("%s: unknown keys %v", path, un)
	}
	keys := make([]string, 0, len(md.Keys()))
	for _, k := range md.Keys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	rec, err := rf.record()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", path, err)
	}
	return rec, keys, nil
}

// record builds a Record from the decoded file and applies the load
// time post-processing: raw runtime and memory readings are unpacked
// into measurements, the cost measurement is mirrored into the
// identity, and the template switch correction is applied.
func (f *recordFile) record() (*Record, error) {
	r := &Record{
		Identity: RunIdentity{
			TestSequenceName: f.TestSequenceName,
			Aligner:          f.Aligner,
			AlignmentMethod:  f.AlignmentMethod,
			Length:           f.Length,
			Seed:             f.Seed,
			AlignmentConfig:  f.AlignmentConfig,
			RQRange:          f.RQRange,
			CostLimit:        f.CostLimit,
			MemoryLimit:      f.MemoryLimit,
			RuntimeRaw:       f.RuntimeRaw,
			MemoryRaw:        f.MemoryRaw,
			Strategies: Strategies{
				NodeOrd:     f.NodeOrd,
				TSMinLength: f.TSMinLength,
			},
		},
		Stats: f.Statistics,
	}
	r.Identity.Cost = uint64(f.Statistics.Cost)

	runtime, err := unpackRuntime(f.RuntimeRaw)
	if err != nil {
		return nil, err
	}
	r.Stats.Runtime = runtime
	r.Stats.Memory = float64(f.MemoryRaw) * 1024

	if f.TemplateSwitchAmount > 0 {
		if r.Stats.TemplateSwitches != 0 {
			return nil, fmt.Errorf("template_switch_amount = %d conflicts with template_switches measurement %v",
				f.TemplateSwitchAmount, r.Stats.TemplateSwitches)
		}
		r.Stats.TemplateSwitches = float64(f.TemplateSwitchAmount)
	}
	return r, nil
}

// unpackRuntime sums colon-separated duration readings into seconds.
// Each reading has 2 or 3 components (minutes:seconds or
// hours:minutes:seconds); components fold right to left with a factor
// of 60.
func unpackRuntime(raw []string) (float64, error) {
	var total float64
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return 0, fmt.Errorf("runtime %q: want 2 or 3 colon-separated components, got %d", s, len(parts))
		}
		factor := 1.0
		for i := len(parts) - 1; i >= 0; i-- {
			v, err := strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return 0, fmt.Errorf("runtime %q: %v", s, err)
			}
			total += v * factor
			factor *= 60
		}
	}
	return total, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
