// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"fmt"
	"math"
	"strconv"
)

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

type factor struct {
	factor float64
	prefix string
}

// Factors are tried smallest first; the first one that scales the
// value under 1000 wins.
var factors = []factor{
	{1, ""},
	{1e3, "k"},
	{1e6, "M"},
	{1e9, "G"},
}

// Formattable reports whether Format accepts v: finite, non-negative,
// not subnormal, and under 1e12.
func Formattable(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= 1e12 {
		return false
	}
	return v == 0 || v >= minNormal
}

// Format renders val for an axis label, scaled by the largest of no
// prefix, "k", "M", or "G" that keeps the scaled value under 1000.
// Zero formats as "0". Unprefixed values print with no decimals;
// prefixed values print 2, 1, or 0 decimals as the scaled value falls
// in [1,10), [10,100), or [100,1000).
//
// val must be finite, non-negative, not subnormal, and under 1e12.
// Anything else signals a measurement or unit bug upstream, not a
// formatting edge case, and panics.
func Format(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		panic(fmt.Sprintf("formatting non-finite value %v", val))
	}
	if val < 0 {
		panic(fmt.Sprintf("formatting negative value %v", val))
	}
	if val == 0 {
		return "0"
	}
	if val < minNormal {
		panic(fmt.Sprintf("formatting subnormal value %v", val))
	}
	if val >= 1e12 {
		panic(fmt.Sprintf("formatting value %v with no supported unit prefix", val))
	}

	for _, f := range factors {
		scaled := val / f.factor
		if scaled >= 1000 {
			continue
		}
		prec := 0
		if f.factor > 1 {
			switch {
			case scaled < 10:
				prec = 2
			case scaled < 100:
				prec = 1
			}
		}
		return strconv.FormatFloat(scaled, 'f', prec, 64) + f.prefix
	}
	panic("not reachable")
}
