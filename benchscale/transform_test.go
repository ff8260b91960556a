// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"math"
	"testing"
)

func TestTransformRoundTrip(t *testing.T) {
	transforms := []Transform{
		Linear{},
		Log10{},
		Root{Degree: 1},
		Root{Degree: 2},
		Root{Degree: 7},
	}
	domain := func(tr Transform, x float64) bool {
		switch tr.(type) {
		case Log10:
			return x > 0
		case Root:
			return x >= 0
		}
		return true
	}
	for _, tr := range transforms {
		for _, x := range []float64{0, 1e-9, 0.25, 1, 2, 10, 1234.5, 1e6, 1e12} {
			if !domain(tr, x) {
				continue
			}
			got := tr.ApplyInverse(tr.Apply(x))
			if !closeTo(got, x, 1e-9) {
				t.Errorf("%s: ApplyInverse(Apply(%v)) = %v, want %v", tr, x, got, x)
			}
		}
	}
}

func closeTo(a, b, rel float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

func TestTransformLabels(t *testing.T) {
	if got := (Linear{}).String(); got != "linear" {
		t.Errorf("Linear label = %q", got)
	}
	if got := (Log10{}).String(); got != "log10" {
		t.Errorf("Log10 label = %q", got)
	}
	if got := (Root{Degree: 3}).String(); got != "3-th root" {
		t.Errorf("Root label = %q", got)
	}
}

func TestNewRoot(t *testing.T) {
	if _, err := NewRoot(0); err == nil {
		t.Error("NewRoot(0) did not fail")
	}
	if _, err := NewRoot(-2); err == nil {
		t.Error("NewRoot(-2) did not fail")
	}
	r, err := NewRoot(2)
	if err != nil {
		t.Fatalf("NewRoot(2): %v", err)
	}
	if got := r.Apply(9); got != 3 {
		t.Errorf("2-th root of 9 = %v, want 3", got)
	}
	if got := r.ApplyInverse(3); got != 9 {
		t.Errorf("inverse 2-th root of 3 = %v, want 9", got)
	}
}

func TestParseTransform(t *testing.T) {
	check := func(in string, want string) {
		t.Helper()
		tr, err := ParseTransform(in)
		if err != nil {
			t.Errorf("ParseTransform(%q): %v", in, err)
			return
		}
		if tr.String() != want {
			t.Errorf("ParseTransform(%q) = %s, want %s", in, tr, want)
		}
	}
	check("linear", "linear")
	check("log", "log10")
	check("root:4", "4-th root")

	for _, bad := range []string{"", "log2", "root:", "root:x", "root:0"} {
		if _, err := ParseTransform(bad); err == nil {
			t.Errorf("ParseTransform(%q) did not fail", bad)
		}
	}
}
