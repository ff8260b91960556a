// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchscale provides value-axis presentation tools:
// monotonic, invertible axis transforms for chart scaling and
// human-readable magnitude formatting for axis labels.
package benchscale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Transform is a monotonic rescaling of a value axis with an exact
// inverse. Transforms apply to value axes only, never to the key
// axis.
type Transform interface {
	// Apply maps a raw value into chart space. The argument must
	// lie in the transform's domain: positive for Log10,
	// non-negative for Root.
	Apply(x float64) float64

	// ApplyInverse is the exact mathematical inverse of Apply, so
	// ApplyInverse(Apply(x)) == x for all x in the domain.
	ApplyInverse(y float64) float64

	// String returns the transform's display label for axis
	// titles.
	String() string
}

// Linear is the identity transform.
type Linear struct{}

func (Linear) Apply(x float64) float64        { return x }
func (Linear) ApplyInverse(y float64) float64 { return y }
func (Linear) String() string                 { return "linear" }

// Log10 makes an axis linear in the decimal logarithm. Its domain is
// x > 0.
type Log10 struct{}

func (Log10) Apply(x float64) float64        { return math.Log10(x) }
func (Log10) ApplyInverse(y float64) float64 { return math.Pow(10, y) }
func (Log10) String() string                 { return "log10" }

// Root makes an axis linear in the Degree-th root. Its domain is
// x >= 0.
type Root struct {
	Degree int
}

// NewRoot returns a Root transform of the given degree. The degree
// must be at least 1.
func NewRoot(degree int) (Root, error) {
	if degree < 1 {
		return Root{}, fmt.Errorf("root transform degree must be >= 1, got %d", degree)
	}
	return Root{degree}, nil
}

func (r Root) Apply(x float64) float64        { return math.Pow(x, 1/float64(r.Degree)) }
func (r Root) ApplyInverse(y float64) float64 { return math.Pow(y, float64(r.Degree)) }
func (r Root) String() string                 { return fmt.Sprintf("%d-th root", r.Degree) }

// ParseTransform parses a transform selection as supplied on a
// command line: "linear", "log", or "root:D" for a D-th root.
func ParseTransform(s string) (Transform, error) {
	switch {
	case s == "linear":
		return Linear{}, nil
	case s == "log":
		return Log10{}, nil
	case strings.HasPrefix(s, "root:"):
		d, err := strconv.Atoi(s[len("root:"):])
		if err != nil {
			return nil, fmt.Errorf("bad degree in transform %q: %v", s, err)
		}
		r, err := NewRoot(d)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown transform %q (want linear, log, or root:D)", s)
}
