// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrec

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// zip combines m and o field by field.
func (m Measurements) zip(o Measurements, f func(a, b float64) float64) Measurements {
	for _, fld := range Fields {
		p := fld.Get(&m)
		*p = f(*p, *fld.Get(&o))
	}
	return m
}

// MaxSentinel returns the identity element for PiecewiseMin: every
// field set to +Inf. Zero is not a safe identity for min/max folds,
// so folds must start from the explicit sentinel.
func MaxSentinel() Measurements {
	var m Measurements
	for _, fld := range Fields {
		*fld.Get(&m) = math.Inf(1)
	}
	return m
}

// MinSentinel returns the identity element for PiecewiseMax: every
// field set to -Inf.
func MinSentinel() Measurements {
	var m Measurements
	for _, fld := range Fields {
		*fld.Get(&m) = math.Inf(-1)
	}
	return m
}

// PiecewiseMin returns the field-wise minimum of m and o.
func (m Measurements) PiecewiseMin(o Measurements) Measurements {
	return m.zip(o, math.Min)
}

// PiecewiseMax returns the field-wise maximum of m and o.
func (m Measurements) PiecewiseMax(o Measurements) Measurements {
	return m.zip(o, math.Max)
}

// PiecewiseAdd returns the field-wise sum of m and o.
func (m Measurements) PiecewiseAdd(o Measurements) Measurements {
	return m.zip(o, func(a, b float64) float64 { return a + b })
}

// PiecewiseDiv divides every field of m by n.
func (m Measurements) PiecewiseDiv(n float64) Measurements {
	for _, fld := range Fields {
		*fld.Get(&m) /= n
	}
	return m
}

// PiecewisePercentile computes the q-th percentile independently for
// each field over the field's distribution across ms, with linear
// interpolation between adjacent order statistics. The resulting
// vector need not correspond to any single input vector.
//
// ms must be non-empty; a percentile of nothing is an invariant
// violation and panics.
func PiecewisePercentile(ms []Measurements, q float64) Measurements {
	if len(ms) == 0 {
		panic("piecewise percentile of an empty measurement list")
	}
	var out Measurements
	xs := make([]float64, len(ms))
	for _, fld := range Fields {
		for i := range ms {
			xs[i] = fld.Of(&ms[i])
		}
		samp := stats.Sample{Xs: xs}
		samp.Sort()
		*fld.Get(&out) = samp.Quantile(q)
	}
	return out
}
