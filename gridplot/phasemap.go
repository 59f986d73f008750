/*
 * phasemap.go, part of goEBSD.
 *
 * Copyright 2025 The goEBSD authors
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

package gridplot

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"sort"

	ebsd "github.com/rmera/goebsd"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Size is the side of the saved phase maps.
const Size = 6 * vg.Inch

//PhaseMap builds a scatter plot of the points in rows, one color per phase.
//names, which can be nil, holds the legend name of each phase: names[i] is
//the name of phase i+1. Non-indexed points (phase 0) are drawn in gray.
func PhaseMap(rows []ebsd.OutputRow, names []string, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	byphase := make(map[int]plotter.XYs)
	for _, r := range rows {
		byphase[r.Phase] = append(byphase[r.Phase], plotter.XY{X: r.X, Y: r.Y})
	}
	phases := make([]int, 0, len(byphase))
	maxphase := 0
	for k := range byphase {
		phases = append(phases, k)
		maxphase = max(maxphase, k)
	}
	sort.Ints(phases)
	for _, phase := range phases {
		s, err := plotter.NewScatter(byphase[phase])
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Color = phaseColor(phase, maxphase)
		p.Add(s)
		p.Legend.Add(legendName(phase, names), s)
	}
	return p, nil
}

//SavePhaseMap plots rows with PhaseMap and saves the result to the file name.
//The format is given by the extension of name (png, svg, pdf...).
func SavePhaseMap(name string, rows []ebsd.OutputRow, names []string) error {
	p, err := PhaseMap(rows, names, filepath.Base(name))
	if err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "can't build the phase map", err, "SavePhaseMap")
	}
	if err := p.Save(Size, Size, name); err != nil {
		return ebsd.NewError(ebsd.ErrWrite, name, "", err, "SavePhaseMap")
	}
	return nil
}

func legendName(phase int, names []string) string {
	if phase == 0 {
		return "non-indexed"
	}
	if phase <= len(names) && names[phase-1] != "" {
		return names[phase-1]
	}
	return fmt.Sprintf("phase %d", phase)
}

func phaseColor(phase, phases int) color.RGBA {
	if phase <= 0 || phases <= 0 {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	r, g, b := colors(phase-1, phases)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//colors spreads steps hues over the visible spectrum, skipping the
//yellows, which are hard to see on a white background.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return hsv2rgb(h, 1, 1)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func hsv2rgb(h, v, s float64) (uint8, uint8, uint8) {
	if s == 0.0 {
		return uint8(255 * v), uint8(255 * v), uint8(255 * v)
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(255 * r), uint8(255 * g), uint8(255 * b)
}
