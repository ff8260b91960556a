// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import "testing"

func strategyRecord(nodeOrd, tsMinLen string) *Record {
	return &Record{Identity: RunIdentity{
		Aligner:    "astar",
		Strategies: Strategies{NodeOrd: nodeOrd, TSMinLength: tsMinLen},
	}}
}

func TestStrategyLabeler(t *testing.T) {
	// ts_min_len is constant across the batch, so only node_ord
	// shows up in labels.
	records := []*Record{
		strategyRecord("anti-diagonal", "lookahead"),
		strategyRecord("cost-only", "lookahead"),
	}
	l := NewStrategyLabeler(records)
	if got, want := l.Label(records[0]), "; node_ord anti-diagonal"; got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
	if got, want := l.Label(records[1]), "; node_ord cost-only"; got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}

func TestStrategyLabelerAllConstant(t *testing.T) {
	records := []*Record{
		strategyRecord("anti-diagonal", "lookahead"),
		strategyRecord("anti-diagonal", "lookahead"),
	}
	l := NewStrategyLabeler(records)
	if got := l.Label(records[0]); got != "" {
		t.Errorf("Label = %q, want empty", got)
	}
}

func TestStrategyLabelerAllVarying(t *testing.T) {
	records := []*Record{
		strategyRecord("anti-diagonal", "lookahead"),
		strategyRecord("cost-only", "fixed"),
	}
	l := NewStrategyLabeler(records)
	want := "; node_ord anti-diagonal; ts_min_len lookahead"
	if got := l.Label(records[0]); got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}
