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

// MeanLines draws one line-and-points series per group through the
// transformed mean of the chosen field at each representative key.
// Groups without summaries are skipped.
func MeanLines(groups []benchagg.GroupSummaries, field benchrec.Field, opt Options, name string) error {
	t := opt.transform()
	pl := newPlot(name, opt, field)

	drawn := 0
	for gi, g := range groups {
		if len(g.Summaries) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(g.Summaries))
		for i, s := range g.Summaries {
			pts[i].X = s.Key
			pts[i].Y = t.Apply(field.Of(&s.Mean))
		}
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		clr := seriesColor(gi)
		line.Color = clr
		scatter.Color = clr
		scatter.Radius = vg.Points(2)

		pl.Add(line, scatter)
		pl.Legend.Add(g.Name, line, scatter)
		drawn++
	}
	if drawn == 0 {
		return nil
	}

	widenDegenerate(pl)
	return writePNG(pl, opt.Dir, name)
}
