// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqbench/alignplot/internal/logging"
)

func statsFile(aligner string, length int, seed uint64, cost float64) string {
	return fmt.Sprintf(`test_sequence_name = "chr1-sim"
aligner = %q
alignment_method = "template-switch"
length = %d
seed = %d
alignment_config = "default"
rq_range = "full"
cost_limit = "none"
memory_limit = "16GiB"
runtime_raw = ["0:%02d"]
memory_raw = 1024
ts_node_ord_strategy = "anti-diagonal"
ts_min_length_strategy = "lookahead"

[statistics]
cost = %g
opened_nodes = 500
closed_nodes = 450
suppressed_nodes = 20
template_switches = 3
runtime = 0
memory = 0
`, aligner, length, seed, int(cost), cost)
}

func writeBatch(t *testing.T, fsys afero.Fs) []string {
	t.Helper()
	var paths []string
	for i, aligner := range []string{"astar", "edlib"} {
		for j := 0; j < 3; j++ {
			path := fmt.Sprintf("run%d%d.toml", i, j)
			content := statsFile(aligner, 100*(j+1), uint64(j), float64(10+i+j))
			require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
			paths = append(paths, path)
		}
	}
	return paths
}

// TestRunCSVOnly drives the full load/group/merge pipeline with every
// chart report disabled, so nothing is written outside the in-memory
// filesystem.
func TestRunCSVOnly(t *testing.T) {
	fsys := afero.NewMemMapFs()
	paths := writeBatch(t, fsys)

	log := logging.New(io.Discard)
	cmd := newRootCmd(fsys, &log)
	cmd.SetArgs(append([]string{"--cost=false", "--csv", "out.csv"}, paths...))
	require.NoError(t, cmd.Execute())

	data, err := afero.ReadFile(fsys, "out.csv")
	require.NoError(t, err)
	assert.Contains(t, string(data), "aligner,runtime_seconds,memory_bytes")
	assert.Contains(t, string(data), "astar")
	assert.Contains(t, string(data), "edlib")
}

func TestRunBadFlags(t *testing.T) {
	fsys := afero.NewMemMapFs()
	paths := writeBatch(t, fsys)
	log := logging.New(io.Discard)

	for _, args := range [][]string{
		{"--buckets=-1"},
		{"--transform", "log2"},
		{"--transform", "root:0"},
	} {
		cmd := newRootCmd(fsys, &log)
		cmd.SetArgs(append(append([]string{"--cost=false"}, args...), paths...))
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}

func TestRunFilterMatchesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	paths := writeBatch(t, fsys)
	log := logging.New(io.Discard)

	// A filter that empties every group is a warning, not an error.
	cmd := newRootCmd(fsys, &log)
	cmd.SetArgs(append([]string{"--cost=false", "--sequence", "no-such-sequence"}, paths...))
	assert.NoError(t, cmd.Execute())
}

func TestRunUnequalGroups(t *testing.T) {
	fsys := afero.NewMemMapFs()
	paths := writeBatch(t, fsys)
	extra := statsFile("astar", 400, 9, 99)
	require.NoError(t, afero.WriteFile(fsys, "extra.toml", []byte(extra), 0644))
	log := logging.New(io.Discard)

	cmd := newRootCmd(fsys, &log)
	cmd.SetArgs(append([]string{"--cost=false"}, append(paths, "extra.toml")...))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unequal sizes")
}
