// seehuhn.de/go/sketchpad - a digit drawing pad
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketchpad

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketchpad/raster"
)

// surface is the pixel grid strokes are drawn on. Pixels are stored
// premultiplied and converted on readback.
type surface struct {
	img  *image.RGBA
	mask *image.Alpha
	ink  *image.Uniform
	r    *raster.Rasteriser

	dirty image.Rectangle // part of mask written by the current segment
	seg   [2]vec.Vec2
}

func newSurface(width, height int, ink color.Color, strokeWidth float64) *surface {
	bounds := image.Rect(0, 0, width, height)
	r := raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	setStyle(r, strokeWidth)
	return &surface{
		img:  image.NewRGBA(bounds),
		mask: image.NewAlpha(bounds),
		ink:  image.NewUniform(ink),
		r:    r,
	}
}

func setStyle(r *raster.Rasteriser, strokeWidth float64) {
	r.Width = strokeWidth
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
}

// DrawSegment paints the line from a to b with round caps, blending the
// ink over what is already there. If a equals b, a dot is drawn.
func (s *surface) DrawSegment(a, b vec.Vec2) {
	s.dirty = image.Rectangle{}
	s.seg = [2]vec.Vec2{a, b}
	s.r.Stroke(s.seg[:], s.emit)
	if s.dirty.Empty() {
		return
	}

	draw.DrawMask(s.img, s.dirty, s.ink, image.Point{}, s.mask, s.dirty.Min, draw.Over)

	for y := s.dirty.Min.Y; y < s.dirty.Max.Y; y++ {
		row := s.mask.Pix[y*s.mask.Stride:]
		clear(row[s.dirty.Min.X:s.dirty.Max.X])
	}
}

func (s *surface) emit(y, xMin int, coverage []float32) {
	row := s.mask.Pix[y*s.mask.Stride+xMin:]
	for i, c := range coverage {
		row[i] = uint8(min(c, 1)*255 + 0.5)
	}
	s.dirty = s.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// Clear makes every pixel transparent black.
func (s *surface) Clear() {
	clear(s.img.Pix)
}

// Pixels returns a non-premultiplied copy of the surface.
func (s *surface) Pixels() *image.NRGBA {
	out := image.NewNRGBA(s.img.Bounds())
	draw.Draw(out, out.Bounds(), s.img, image.Point{}, draw.Src)
	return out
}

// Bounds returns the pixel rectangle of the surface.
func (s *surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}
