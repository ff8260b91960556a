// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg implements the aggregation pipeline for alignment
// benchmark records: grouping records by a name projection, bucketing
// them along a numeric key axis, and merging same-bucket records into
// summary statistics for charting.
//
// The pipeline is a synchronous batch transform: group, then bucket
// and merge, then hand the sorted summaries to rendering. Each
// group's partition-and-fold step is independent of every other
// group's.
package benchagg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seqbench/alignplot/benchrec"
)

// A GroupNameFunc projects a record onto the name of the group (and
// chart series) it belongs to.
type GroupNameFunc func(*benchrec.Record) string

// A Group is a named, ordered subset of the input records.
type Group struct {
	Name    string
	Records []*benchrec.Record
}

// GroupRecords partitions records by name. Record order within a
// group follows input order; groups are returned in ascending name
// order for deterministic rendering.
//
// Every group must end up with the same number of records. Unequal
// sizes indicate a malformed experiment matrix (a missing or
// duplicated run), so GroupRecords fails with a diagnostic listing
// every group's size rather than attempting partial recovery.
func GroupRecords(records []*benchrec.Record, name GroupNameFunc) ([]Group, error) {
	index := make(map[string]int)
	var groups []Group
	for _, r := range records {
		n := name(r)
		i, ok := index[n]
		if !ok {
			i = len(groups)
			index[n] = i
			groups = append(groups, Group{Name: n})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	if len(groups) == 0 {
		return nil, nil
	}

	for _, g := range groups[1:] {
		if len(g.Records) != len(groups[0].Records) {
			sizes := make([]string, len(groups))
			for i, g := range groups {
				sizes[i] = fmt.Sprintf("%s=%d", g.Name, len(g.Records))
			}
			return nil, fmt.Errorf("groups have unequal sizes: %s", strings.Join(sizes, ", "))
		}
	}
	return groups, nil
}

// FilterGroups applies keep to each group's records and drops groups
// left empty. Filtering happens after grouping, so the equal-size
// invariant of GroupRecords does not apply to the result; downstream
// consumers treat a dropped group as absent.
func FilterGroups(groups []Group, keep func(*benchrec.Record) bool) []Group {
	var out []Group
	for _, g := range groups {
		fg := Group{Name: g.Name}
		for _, r := range g.Records {
			if keep(r) {
				fg.Records = append(fg.Records, r)
			}
		}
		if len(fg.Records) > 0 {
			out = append(out, fg)
		}
	}
	return out
}
