// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/seqbench/alignplot/benchrec"
	"github.com/seqbench/alignplot/benchscale"
)

// Quartiles are the five order statistics one box plot draws.
type Quartiles struct {
	Min, Q1, Median, Q3, Max float64
}

// RawQuartiles computes quartiles over the raw contained values of
// one summary for the given field. Boxes show the spread of the
// underlying runs, so the averaged statistics are not used.
func (s *MergedSummary) RawQuartiles(field benchrec.Field) Quartiles {
	if len(s.Contained) == 0 {
		panic("quartiles of a summary with no contained measurements")
	}
	xs := make([]float64, len(s.Contained))
	for i := range s.Contained {
		xs[i] = field.Of(&s.Contained[i])
	}
	samp := stats.Sample{Xs: xs}
	samp.Sort()
	min, max := samp.Bounds()
	return Quartiles{
		Min:    min,
		Q1:     samp.Quantile(0.25),
		Median: samp.Quantile(0.5),
		Q3:     samp.Quantile(0.75),
		Max:    max,
	}
}

// A ValueRange is the global extent of one field's raw values across
// all summaries of all groups.
type ValueRange struct {
	Min, Max float64
}

// GlobalValueRange scans the contained raw values of every summary in
// every group for the given field.
func GlobalValueRange(groups []GroupSummaries, field benchrec.Field) ValueRange {
	vr := ValueRange{math.Inf(1), math.Inf(-1)}
	for _, g := range groups {
		for _, s := range g.Summaries {
			for i := range s.Contained {
				v := field.Of(&s.Contained[i])
				vr.Min = math.Min(vr.Min, v)
				vr.Max = math.Max(vr.Max, v)
			}
		}
	}
	return vr
}

// Epsilon returns the threshold under which quartile values are
// treated as zero. It derives once from the global value range, not
// per box, so every box is suppressed consistently.
func (vr ValueRange) Epsilon() float64 {
	return math.Max(math.Abs(vr.Min), math.Max(math.Abs(vr.Max), vr.Max-vr.Min)) * 1e-12
}

// Suppress clamps quartile values under eps to exactly zero. Values
// that small are numeric noise and would otherwise produce wild
// artifacts under log or root transforms near zero.
func (q Quartiles) Suppress(eps float64) Quartiles {
	clamp := func(v float64) float64 {
		if v < eps {
			return 0
		}
		return v
	}
	return Quartiles{clamp(q.Min), clamp(q.Q1), clamp(q.Median), clamp(q.Q3), clamp(q.Max)}
}

// Transform maps all five quartile values into chart space.
func (q Quartiles) Transform(t benchscale.Transform) Quartiles {
	return Quartiles{t.Apply(q.Min), t.Apply(q.Q1), t.Apply(q.Median), t.Apply(q.Q3), t.Apply(q.Max)}
}
