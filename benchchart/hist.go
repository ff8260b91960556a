// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/seqbench/alignplot/benchagg"
	"github.com/seqbench/alignplot/benchrec"
	"github.com/seqbench/alignplot/benchscale"
)

// Histogram draws the distribution of one field's raw values across
// all contained measurements of all groups. The value axis is the
// horizontal one here, so bins stay in raw units and only the tick
// labels go through the magnitude formatter.
func Histogram(groups []benchagg.GroupSummaries, field benchrec.Field, bins int, opt Options, name string) error {
	var values plotter.Values
	for _, g := range groups {
		for _, s := range g.Summaries {
			for i := range s.Contained {
				values = append(values, field.Of(&s.Contained[i]))
			}
		}
	}
	if len(values) == 0 {
		return nil
	}

	pl := plot.New()
	pl.Title.Text = name
	pl.X.Label.Text = field.String()
	pl.Y.Label.Text = "runs"
	pl.X.Tick.Marker = valueTicks{benchscale.Linear{}}

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}
	h.FillColor = seriesColor(0)
	pl.Add(h)

	widenDegenerate(pl)
	return writePNG(pl, opt.Dir, name)
}
