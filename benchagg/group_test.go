// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"strings"
	"testing"

	"github.com/seqbench/alignplot/benchrec"
)

func rec(aligner string, length int, seed uint64, cost float64) *benchrec.Record {
	return &benchrec.Record{
		Identity: benchrec.RunIdentity{
			Aligner: aligner,
			Length:  length,
			Seed:    seed,
		},
		Stats: benchrec.Measurements{Cost: cost},
	}
}

func byAligner(r *benchrec.Record) string { return r.Identity.Aligner }

func TestGroupRecords(t *testing.T) {
	records := []*benchrec.Record{
		rec("b", 10, 1, 1),
		rec("a", 10, 1, 2),
		rec("b", 20, 2, 3),
		rec("a", 20, 2, 4),
	}
	groups, err := GroupRecords(records, byAligner)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 || groups[0].Name != "a" || groups[1].Name != "b" {
		t.Fatalf("group names = %v, want [a b]", groups)
	}
	// Input order is preserved within each group.
	if groups[0].Records[0].Stats.Cost != 2 || groups[0].Records[1].Stats.Cost != 4 {
		t.Errorf("group a out of order: %v", groups[0].Records)
	}
	if groups[1].Records[0].Stats.Cost != 1 || groups[1].Records[1].Stats.Cost != 3 {
		t.Errorf("group b out of order: %v", groups[1].Records)
	}
}

func TestGroupRecordsUnequalSizes(t *testing.T) {
	records := []*benchrec.Record{
		rec("a", 10, 1, 1),
		rec("a", 20, 2, 2),
		rec("b", 10, 1, 3),
	}
	_, err := GroupRecords(records, byAligner)
	if err == nil {
		t.Fatal("unequal group sizes did not fail")
	}
	// The diagnostic names every group and its size.
	for _, want := range []string{"a=2", "b=1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestFilterGroups(t *testing.T) {
	groups := []Group{
		{Name: "a", Records: []*benchrec.Record{rec("a", 10, 1, 1), rec("a", 20, 2, 2)}},
		{Name: "b", Records: []*benchrec.Record{rec("b", 30, 1, 3), rec("b", 40, 2, 4)}},
	}
	got := FilterGroups(groups, func(r *benchrec.Record) bool {
		return r.Identity.Length < 30
	})
	// Group b is emptied by the filter and dropped entirely.
	if len(got) != 1 || got[0].Name != "a" || len(got[0].Records) != 2 {
		t.Errorf("filtered groups = %v, want only a with 2 records", got)
	}
}
