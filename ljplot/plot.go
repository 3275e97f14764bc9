/*
 * plot.go, part of ljscan
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package ljplot draws Lennard-Jones potential curves and scans.
package ljplot

import (
	"fmt"
	"image/color"
	"math"

	lj "github.com/rmera/ljscan"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//CurvePoints is the number of points used to draw the potential curve
const CurvePoints = 300

//Curve returns n points of the potential of P between from and to (A), with the
//energies in units of 10^exponent J.
func Curve(P *lj.Pair, from, to float64, n int, exponent int) (plotter.XYs, error) {
	grid, err := lj.Grid(from, to, n)
	if err != nil {
		return nil, errDecorate(err, "Curve")
	}
	S, err := P.Scan(grid)
	if err != nil {
		return nil, errDecorate(err, "Curve")
	}
	e := S.Scaled(exponent)
	ret := make(plotter.XYs, n)
	for i := range ret {
		ret[i].X = grid[i]
		ret[i].Y = e[i]
	}
	return ret, nil
}

func basicPlot(title string, exponent int) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "r (A)"
	p.Y.Label.Text = fmt.Sprintf("V (1e%d J)", exponent)
	p.Add(plotter.NewGrid())
	return p
}

//PotentialPlot plots the potential curve of the pair of S over the scanned range, the
//scanned energies, and highlights the minimum m (if m.Distance is not 0). Energies are shown
//in units of 10^exponent J. The format is given by the extension of filename (png, svg, pdf...).
func PotentialPlot(S *lj.Scan, m lj.Min, exponent int, title, filename string) error {
	if S.Len() == 0 {
		return lj.NewError(lj.EmptyInput, "PotentialPlot", true)
	}
	from := floats.Min(S.Distances)
	to := floats.Max(S.Distances)
	if to-from < 1e-6 {
		to = from + S.Pair.Sigma
	}
	curve, err := Curve(S.Pair, from, to, CurvePoints, exponent)
	if err != nil {
		return errDecorate(err, "PotentialPlot")
	}
	p := basicPlot(title, exponent)
	line, err := plotter.NewLine(curve)
	if err != nil {
		return errDecorate(err, "PotentialPlot")
	}
	line.Color = color.RGBA{B: 200, A: 255}
	p.Add(line)
	p.Legend.Add("Lennard-Jones", line)

	scaled := S.Scaled(exponent)
	pts := make(plotter.XYs, S.Len())
	for i := range pts {
		pts[i].X = S.Distances[i]
		pts[i].Y = scaled[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errDecorate(err, "PotentialPlot")
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)
	p.Legend.Add("scan", s)

	if m.Distance != 0 {
		mark, err := plotter.NewScatter(plotter.XYs{{X: m.Distance, Y: m.Energy * math.Pow10(-exponent)}})
		if err != nil {
			return errDecorate(err, "PotentialPlot")
		}
		mark.GlyphStyle.Shape = draw.PyramidGlyph{}
		mark.GlyphStyle.Radius = vg.Points(5)
		mark.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
		p.Add(mark)
		p.Legend.Add(lj.FormatScaled(m.Energy, exponent, lj.DefaultPlaces), mark)
	}
	//The repulsive wall would flatten the well otherwise.
	well := S.Pair.Epsilon * math.Pow10(-exponent)
	p.Y.Min = -1.5 * well
	p.Y.Max = math.Max(floats.Max(scaled), well) * 1.1
	p.Legend.Top = true
	// Save the plot to a file.
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errDecorate(err, "PotentialPlot")
	}
	return nil
}

//errDecorate adds the caller's name to err if it is an lj.Error. Errors from
//the plotting library are turned into lj errors first.
func errDecorate(err error, caller string) error {
	if e, ok := err.(lj.Error); ok {
		e.Decorate(caller)
		return e
	}
	return lj.NewError(err.Error(), caller, true)
}
