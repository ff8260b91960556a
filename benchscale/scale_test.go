// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchscale

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	test := func(num float64, want string) {
		t.Helper()
		if got := Format(num); got != want {
			t.Errorf("for %v, got %s, want %s", num, got, want)
		}
	}

	test(0, "0")
	test(1, "1")
	test(999, "999")
	test(1000, "1.00k")
	test(1500, "1.50k")
	test(15000, "15.0k")
	test(150000, "150k")
	test(999999, "1000k")
	test(1e6, "1.00M")
	test(2.5e9, "2.50G")
	test(999.5e9, "1000G")
}

func TestFormatUnsupported(t *testing.T) {
	mustPanic := func(name string, num float64) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("Format(%s) did not panic", name)
			}
		}()
		Format(num)
	}

	mustPanic("-1", -1)
	mustPanic("NaN", math.NaN())
	mustPanic("+Inf", math.Inf(1))
	mustPanic("-Inf", math.Inf(-1))
	mustPanic("subnormal", math.SmallestNonzeroFloat64)
	mustPanic("1e12", 1e12)
	mustPanic("1e15", 1e15)
}

func TestFormattable(t *testing.T) {
	for _, v := range []float64{0, 1, 999.5, 1e11} {
		if !Formattable(v) {
			t.Errorf("Formattable(%v) = false", v)
		}
	}
	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.SmallestNonzeroFloat64, 1e12} {
		if Formattable(v) {
			t.Errorf("Formattable(%v) = true", v)
		}
	}
}
