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

// Package raster converts polygons and stroked polylines into anti-aliased
// pixel coverage.
//
// Coverage is the fraction of each pixel's area inside the shape, from 0
// to 1. It is delivered row by row through an emit callback, so that the
// caller decides how to composite it.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. The slice covers the
// pixels xMin, xMin+1, ... of row y and is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser turns shapes into coverage values. One instance is meant to be
// reused; its buffers grow as needed and are never released.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, allowed when
	// arcs are approximated by polygons.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the style used at both ends of a stroke.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins. Must be at least 1.
	MiterLimit float64

	// smallPathThreshold is the largest bounding box area, in pixels, which
	// is rasterised with full 2D accumulation buffers. Larger shapes use
	// an active edge list and one scanline of buffers.
	smallPathThreshold int

	cover     []float32 // cover change per pixel, reused as the output row
	area      []float32 // area contribution per pixel
	rowUsed   []bool    // rows touched by an edge (2D approach)
	edges     []edge
	active    []int
	crossings []float64

	// stroke pieces: all polygons contiguous, starts holds their offsets
	pieces []vec.Vec2
	starts []int
	pts    []vec.Vec2 // de-duplicated stroke vertices

	bboxEmpty                  bool
	bxMin, bxMax, byMin, byMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle. Stroke
// parameters start at the PDF defaults: width 1, butt caps, miter joins.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.smallPathThreshold = smallPathThreshold

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
	r.pieces = r.pieces[:0]
	r.starts = r.starts[:0]
	r.pts = r.pts[:0]
}

// FillNonZero fills the closed polygon with the given vertices, using the
// nonzero winding rule. The closing edge is implied.
func (r *Rasteriser) FillNonZero(poly []vec.Vec2, emit EmitFunc) {
	r.beginEdges()
	r.addPolygon(poly)
	r.fill(emit)
}

// transformLinear applies the linear part of the CTM. Used to measure
// lengths in device space.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of a closed polygon, given in user space.
func (r *Rasteriser) addPolygon(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

// addEdge transforms an edge to device space and records it, unless it is
// horizontal.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// pixelBounds returns the integer bounding box of the collected edges,
// clamped to the clip rectangle.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// fill rasterises the collected edges with the nonzero winding rule.
func (r *Rasteriser) fill(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillBuffered(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, emit)
	}
}

// Each pixel keeps two accumulators:
//
//	cover: signed vertical extent of all edge pieces inside the pixel
//	area:  the same, weighted by the fraction of the pixel right of the edge
//
// Walking a row from left to right, the coverage of pixel i is
// sum(cover[0:i]) + area[i]. Pieces left of the row's first pixel are
// folded into pixel 0 with full weight.

// accumulate adds the part of e inside scanline y to the row buffers, which
// are indexed by x-xLo for xLo <= x < xHi.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xLo, xHi int) {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return
	}
	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	pixA := int(math.Floor(min(xa, xb)))
	pixB := int(math.Floor(max(xa, xb)))
	if pixA == pixB || pixB < xLo {
		deposit(e, top, bot, dir, cover, area, xLo, xHi)
		return
	}
	if pixA >= xHi {
		return
	}

	// Split the piece where it crosses vertical pixel boundaries. Outside
	// [xLo, xHi] the split points make no difference.
	ys := append(r.crossings[:0], top, bot)
	for x := max(pixA+1, xLo); x <= min(pixB, xHi); x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > top && yx < bot {
			ys = append(ys, yx)
		}
	}
	slices.Sort(ys)
	for i := 1; i < len(ys); i++ {
		if ys[i] > ys[i-1] {
			deposit(e, ys[i-1], ys[i], dir, cover, area, xLo, xHi)
		}
	}
	r.crossings = ys
}

// deposit adds the piece of e between top and bot, which lies within a
// single pixel column.
func deposit(e *edge, top, bot float64, dir float32, cover, area []float32, xLo, xHi int) {
	c := dir * float32(bot-top)
	xm := e.xAt((top + bot) / 2)
	pix := int(math.Floor(xm))
	switch {
	case pix < xLo:
		cover[0] += c
		area[0] += c
	case pix < xHi:
		i := pix - xLo
		cover[i] += c
		area[i] += c * float32(1-(xm-float64(pix)))
	}
}

// integrateNonZero turns the accumulators of one row into coverage,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillBuffered accumulates all edges into buffers covering the whole
// bounding box, then integrates row by row.
func (r *Rasteriser) fillBuffered(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	w, h := xMax-xMin, yMax-yMin
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrateNonZero(line, r.area[off:off+w])
		if trimmed, skip := trimZeros(line); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// fillScanlines walks the scanlines with an active edge list and a single
// row of buffers. Used for shapes with a large bounding box.
func (r *Rasteriser) fillScanlines(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which ended above this scanline
		kept := r.active[:0]
		for _, idx := range r.active {
			if max(r.edges[idx].y0, r.edges[idx].y1) > yTop {
				kept = append(kept, idx)
			}
		}
		r.active = kept
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.accumulate(&r.edges[idx], y, r.cover, r.area, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)
		if trimmed, skip := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+skip, trimmed)
		}
	}
}

// Default values for the rasteriser parameters.
const (
	// defaultFlatness is the arc approximation tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF/PostScript default.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not change coverage and are dropped.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold separates the buffered and the scanline approach.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin| between two segments
	// which are still joined without join geometry.
	collinearityThreshold = 1e-6

	// minCirclePoints is the smallest vertex count used for round caps
	// and joins.
	minCirclePoints = 8
)
