// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/seqbench/alignplot/benchagg"
	"github.com/seqbench/alignplot/benchrec"
)

var boxWidth = vg.Points(12)

// BoxPlots draws one chart with a box per merged summary, positioned
// at the summary's representative key, one color per group. Boxes
// draw the epsilon-suppressed, transformed quartiles over the raw
// contained values of the chosen field. Groups without summaries are
// skipped.
func BoxPlots(groups []benchagg.GroupSummaries, field benchrec.Field, opt Options, name string) error {
	vr := benchagg.GlobalValueRange(groups, field)
	eps := vr.Epsilon()
	t := opt.transform()

	pl := newPlot(name, opt, field)

	drawn := 0
	for gi, g := range groups {
		if len(g.Summaries) == 0 {
			continue
		}
		clr := seriesColor(gi)
		for _, s := range g.Summaries {
			q := s.RawQuartiles(field).Suppress(eps).Transform(t)

			values := make(plotter.Values, len(s.Contained))
			for i := range s.Contained {
				v := field.Of(&s.Contained[i])
				if v < eps {
					v = 0
				}
				values[i] = t.Apply(v)
			}

			b, err := plotter.NewBoxPlot(boxWidth, s.Key, values)
			if err != nil {
				return err
			}
			// The box draws the pipeline's quartiles, not the
			// plotter's own estimates over chart-space values.
			b.Median = q.Median
			b.Quartile1 = q.Q1
			b.Quartile3 = q.Q3
			b.AdjLow = q.Min
			b.AdjHigh = q.Max
			b.Min = q.Min
			b.Max = q.Max
			b.Outside = nil

			b.BoxStyle.Color = clr
			b.MedianStyle.Color = clr
			b.WhiskerStyle.Color = clr
			// Nudge overlapping groups apart at shared keys.
			b.Offset = vg.Length(gi) * boxWidth

			pl.Add(b)
			drawn++
		}
		thumb, err := plotter.NewLine(plotter.XYs{})
		if err != nil {
			return err
		}
		thumb.Color = clr
		pl.Legend.Add(g.Name, thumb)
	}
	if drawn == 0 {
		// Everything was filtered away upstream.
		return nil
	}

	widenDegenerate(pl)
	return writePNG(pl, opt.Dir, name)
}
