// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"
	"math"
	"sort"

	"github.com/seqbench/alignplot/benchrec"
)

// A KeyFunc projects a record onto its position on the key axis.
type KeyFunc func(*benchrec.Record) float64

// A KeyRange is the global key extent across all groups. Bucket
// boundaries derive from it so buckets line up between series.
type KeyRange struct {
	Min, Max float64
}

// GlobalKeyRange computes the key extent across every record of every
// group. Groups must be non-empty at this stage; filtering that can
// empty a group happens upstream, so an empty group here is a logic
// error.
func GlobalKeyRange(groups []Group, key KeyFunc) KeyRange {
	kr := KeyRange{math.Inf(1), math.Inf(-1)}
	for _, g := range groups {
		if len(g.Records) == 0 {
			panic(fmt.Sprintf("group %q is empty", g.Name))
		}
		for _, r := range g.Records {
			k := key(r)
			kr.Min = math.Min(kr.Min, k)
			kr.Max = math.Max(kr.Max, k)
		}
	}
	return kr
}

// A Bucketer assigns keys to a fixed number of equal-width half-open
// buckets spanning a key range.
type Bucketer struct {
	rng     KeyRange
	buckets int
}

// NewBucketer divides rng into the given number of equal-width
// buckets. The count must be at least 1. A degenerate range
// (Min == Max) collapses to a single bucket regardless of the count,
// so assignment never divides by zero.
func NewBucketer(rng KeyRange, buckets int) (*Bucketer, error) {
	if buckets < 1 {
		return nil, fmt.Errorf("bucket count must be >= 1, got %d", buckets)
	}
	return &Bucketer{rng, buckets}, nil
}

// Bucket returns the bucket index for key, clamped to the valid
// range so the maximum key lands in the last bucket rather than one
// past it.
func (b *Bucketer) Bucket(key float64) int {
	if b.rng.Max == b.rng.Min {
		return 0
	}
	i := int(math.Floor((key - b.rng.Min) * float64(b.buckets) / (b.rng.Max - b.rng.Min)))
	if i < 0 {
		i = 0
	}
	if i >= b.buckets {
		i = b.buckets - 1
	}
	return i
}

// Midpoint maps a bucket index back into the key range, at the middle
// of the bucket's interval. This is the representative key summaries
// plot at.
func (b *Bucketer) Midpoint(i int) float64 {
	if b.rng.Max == b.rng.Min {
		return b.rng.Min
	}
	width := (b.rng.Max - b.rng.Min) / float64(b.buckets)
	return b.rng.Min + (float64(i)+0.5)*width
}

// A MergedSummary aggregates every record of one group that shares an
// experiment identity and key bucket. It is immutable after
// construction.
type MergedSummary struct {
	// Key is the representative key for plotting: the bucket
	// midpoint when bucketing, the raw key otherwise.
	Key float64

	Min    benchrec.Measurements
	Max    benchrec.Measurements
	Mean   benchrec.Measurements
	Median benchrec.Measurements

	// Contained retains the raw measurement vector of every
	// merged record. Quartile computation draws from these, never
	// from the averaged statistics.
	Contained []benchrec.Measurements
}

// NewMergedSummary folds the given measurement vectors into one
// summary. A summary only ever exists for a populated partition, so
// an empty input is an invariant violation and panics.
func NewMergedSummary(key float64, stats []benchrec.Measurements) *MergedSummary {
	if len(stats) == 0 {
		panic("merging an empty measurement list")
	}
	s := &MergedSummary{
		Key:    key,
		Min:    benchrec.MaxSentinel(),
		Max:    benchrec.MinSentinel(),
		Median: benchrec.PiecewisePercentile(stats, 0.5),
	}
	for _, m := range stats {
		s.Min = s.Min.PiecewiseMin(m)
		s.Max = s.Max.PiecewiseMax(m)
		s.Mean = s.Mean.PiecewiseAdd(m)
		s.Contained = append(s.Contained, m)
	}
	s.Mean = s.Mean.PiecewiseDiv(float64(len(stats)))
	return s
}

// MergeOptions configures the bucket/merge phase.
type MergeOptions struct {
	// Buckets is the number of uniform key buckets. Zero merges
	// per distinct key instead (the merge coordinate is the key
	// value itself).
	Buckets int
}

// GroupSummaries is the merged output for one group, sorted ascending
// by representative key.
type GroupSummaries struct {
	Name      string
	Summaries []*MergedSummary
}

// A mergeKey decides which records of a group collapse into one
// summary. Exactly one of bucket or key carries the bucket
// coordinate: the bucket index when bucketing, the raw key value
// otherwise.
type mergeKey struct {
	id     benchrec.ExperimentIdentity
	bucket int
	key    float64
}

// Merge buckets and merges each group independently against the
// global key range and returns the per-group sorted summaries along
// with that range.
func Merge(groups []Group, key KeyFunc, opt MergeOptions) ([]GroupSummaries, KeyRange, error) {
	rng := GlobalKeyRange(groups, key)
	var bucketer *Bucketer
	if opt.Buckets != 0 {
		b, err := NewBucketer(rng, opt.Buckets)
		if err != nil {
			return nil, KeyRange{}, err
		}
		bucketer = b
	}
	out := make([]GroupSummaries, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupSummaries{g.Name, mergeGroup(g, key, bucketer)})
	}
	return out, rng, nil
}

func mergeGroup(g Group, key KeyFunc, bucketer *Bucketer) []*MergedSummary {
	type partition struct {
		key   float64
		stats []benchrec.Measurements
	}
	index := make(map[mergeKey]int)
	var parts []*partition
	for _, r := range g.Records {
		k := key(r)
		mk := mergeKey{id: r.Identity.Experiment()}
		rep := k
		if bucketer != nil {
			mk.bucket = bucketer.Bucket(k)
			rep = bucketer.Midpoint(mk.bucket)
		} else {
			mk.key = k
		}
		i, ok := index[mk]
		if !ok {
			i = len(parts)
			index[mk] = i
			parts = append(parts, &partition{key: rep})
		}
		parts[i].stats = append(parts[i].stats, r.Stats)
	}

	sums := make([]*MergedSummary, len(parts))
	for i, p := range parts {
		sums[i] = NewMergedSummary(p.key, p.stats)
	}
	// Partitions are in first-observation order, so the stable
	// sort breaks key ties by merge order.
	sort.SliceStable(sums, func(i, j int) bool { return sums[i].Key < sums[j].Key })
	return sums
}
