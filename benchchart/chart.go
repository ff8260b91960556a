// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders merged benchmark summaries as charts.
//
// It is a consumer of the aggregation pipeline: it borrows the
// immutable summaries benchagg produces and draws box plots, mean
// line plots, and histograms as PNG files. Quartiles come from
// benchagg's raw-value pipeline; the plotters here never recompute
// them.
package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/seqbench/alignplot/benchscale"
)

// Options configure chart output.
type Options struct {
	// Dir is the directory chart files are written into.
	Dir string

	// Transform rescales the value axis. Nil means linear.
	Transform benchscale.Transform

	// KeyLabel is the key-axis title, e.g. "sequence length".
	KeyLabel string
}

func (o Options) transform() benchscale.Transform {
	if o.Transform == nil {
		return benchscale.Linear{}
	}
	return o.Transform
}

// valueLabel names a value axis after its field, qualified by the
// transform when it is not the identity.
func (o Options) valueLabel(field fmt.Stringer) string {
	t := o.transform()
	if _, ok := t.(benchscale.Linear); ok {
		return field.String()
	}
	return fmt.Sprintf("%s (%s)", field, t)
}

// seriesPalette colors one group per entry, cycling when there are
// more groups than entries.
var seriesPalette = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	color.NRGBA{0x94, 0x67, 0xbd, 0xff},
	color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
}

func seriesColor(i int) color.Color {
	return seriesPalette[i%len(seriesPalette)]
}

// valueTicks labels chart-space tick positions with the raw
// magnitudes they transform back to, so log and root axes still read
// in original units.
type valueTicks struct {
	transform benchscale.Transform
}

func (vt valueTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			// Minor tick.
			continue
		}
		v := vt.transform.ApplyInverse(t.Value)
		ticks[i].Label = tickLabel(v)
	}
	return ticks
}

// tickLabel formats a tick magnitude, falling back to plain
// formatting where the magnitude formatter's preconditions don't
// hold (a widened axis can put ticks at negative or huge positions).
func tickLabel(v float64) string {
	if benchscale.Formattable(v) {
		return benchscale.Format(v)
	}
	return fmt.Sprintf("%.3g", v)
}

// newPlot builds a plot with the shared axis setup.
func newPlot(title string, opt Options, field fmt.Stringer) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = opt.KeyLabel
	pl.Y.Label.Text = opt.valueLabel(field)
	pl.Y.Tick.Marker = valueTicks{opt.transform()}
	pl.Legend.Top = true
	return pl
}

// widenDegenerate pads an axis whose data collapses to a single
// position, so a single column or point still renders visibly.
func widenDegenerate(pl *plot.Plot) {
	if pl.X.Min == pl.X.Max || math.IsInf(pl.X.Min, 0) {
		m := pl.X.Min
		pl.X.Min, pl.X.Max = m-0.5, m+0.5
	}
	if pl.Y.Min == pl.Y.Max || math.IsInf(pl.Y.Min, 0) {
		m := pl.Y.Min
		pl.Y.Min, pl.Y.Max = m-0.5, m+0.5
	}
}

// writePNG renders pl into dir/name.png.
func writePNG(pl *plot.Plot, dir, name string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(24*vg.Centimeter, 14*vg.Centimeter),
		vgimg.UseDPI(192),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	file := filepath.Join(dir, name+".png")
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
