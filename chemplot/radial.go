/*
 * radial.go, part of anaprot.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package chemplot draws plots of the analyses of anaprot, using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/anaprot/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the produced images
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

func basicRadialPlot(title string, normalized bool) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Distance to Cg (A)"
	p.Y.Label.Text = "Atoms"
	if normalized {
		p.Y.Label.Text = "Fraction of atoms"
	}
	p.X.Min = 0
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//RadialPlot draws the histogram d as bars and saves it in filename.
//The format of the image is taken from the extension of filename (png, svg, pdf...).
func RadialPlot(d *histo.Data, title, filename string) error {
	values := d.View()
	if len(values) == 0 {
		return fmt.Errorf("chemplot.RadialPlot: Empty histogram")
	}
	dividers := d.CopyDividers()
	bins := make([]plotter.HistogramBin, len(values))
	for i, v := range values {
		bins[i] = plotter.HistogramBin{Min: dividers[i], Max: dividers[i+1], Weight: v}
	}
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     dividers[1] - dividers[0],
		FillColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
	}
	h.LineStyle = plotter.DefaultLineStyle
	p := basicRadialPlot(title, d.Normalized())
	p.Add(h)
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("chemplot.RadialPlot: %w", err)
	}
	return nil
}
