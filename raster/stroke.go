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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the open polyline through pts using Width, Cap, Join and
// MiterLimit.
//
// The outline is assembled from pieces: one rectangle per segment, plus
// polygons for caps and joins. All pieces are oriented the same way, so
// that the nonzero rule paints their union exactly once.
//
// A polyline which does not move (a single point, or repeated copies of
// one point) is drawn as a dot if Cap is round, and not at all otherwise.
func (r *Rasteriser) Stroke(pts []vec.Vec2, emit EmitFunc) {
	r.pts = r.pts[:0]
	for _, p := range pts {
		if n := len(r.pts); n > 0 && p.Sub(r.pts[n-1]).Length() < zeroLengthThreshold {
			continue
		}
		r.pts = append(r.pts, p)
	}
	if len(r.pts) == 0 {
		return
	}

	r.pieces = r.pieces[:0]
	r.starts = r.starts[:0]
	d := r.Width / 2

	if len(r.pts) == 1 {
		if r.Cap == graphics.LineCapRound {
			r.addCircle(r.pts[0], d)
		}
	} else if len(r.pts) == 2 && r.Cap == graphics.LineCapRound {
		r.addCapsule(r.pts[0], r.pts[1], d)
	} else {
		r.addSegments(r.pts, d)
	}

	r.beginEdges()
	for i, start := range r.starts {
		end := len(r.pieces)
		if i+1 < len(r.starts) {
			end = r.starts[i+1]
		}
		r.addPolygon(r.pieces[start:end])
	}
	r.fill(emit)
}

// addSegments adds the pieces for a polyline with at least two distinct
// consecutive vertices.
func (r *Rasteriser) addSegments(pts []vec.Vec2, d float64) {
	var prevT vec.Vec2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		t := b.Sub(a)
		t = t.Mul(1 / t.Length())
		n := vec.Vec2{X: -t.Y, Y: t.X}

		r.addPiece(a.Add(n.Mul(d)), b.Add(n.Mul(d)), b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))

		if i == 1 {
			r.addCap(a, t.Mul(-1), d)
		} else {
			r.addJoin(a, prevT, t, d)
		}
		if i == len(pts)-1 {
			r.addCap(b, t, d)
		}
		prevT = t
	}
}

// addCap adds the cap at p. The unit vector out points away from the line.
func (r *Rasteriser) addCap(p, out vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -out.Y, Y: out.X}
		ext := p.Add(out.Mul(d))
		r.addPiece(p.Add(n.Mul(d)), ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)), p.Sub(n.Mul(d)))
	}
}

// addJoin adds the join at p, where the direction changes from t1 to t2.
// The segment rectangles already cover the inner side of the corner, so
// only the outer wedge is needed.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, d float64) {
	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(sin) < collinearityThreshold {
		return // straight on, or a cusp which bevel and miter leave open
	}

	// the outer side is opposite to the turning direction
	side := 1.0
	if sin > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -side * t1.Y, Y: side * t1.X}
	n2 := vec.Vec2{X: -side * t2.Y, Y: side * t2.X}
	o1 := p.Add(n1.Mul(d))
	o2 := p.Add(n2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		// 1/cos(θ/2) is the ratio of miter length to line width
		cosHalf := math.Sqrt((1 + cos) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bis := n1.Add(n2)
			if l := bis.Length(); l > zeroLengthThreshold {
				tip := p.Add(bis.Mul(d / (cosHalf * l)))
				r.addPiece(p, o1, tip, o2)
				return
			}
		}
	}

	r.addPiece(p, o1, o2)
}

// addCircle adds a polygon approximating the circle of radius rad around c.
func (r *Rasteriser) addCircle(c vec.Vec2, rad float64) {
	n := r.arcSteps(rad, 2*math.Pi)
	start := len(r.pieces)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.pieces = append(r.pieces, vec.Vec2{
			X: c.X + rad*math.Cos(phi),
			Y: c.Y + rad*math.Sin(phi),
		})
	}
	r.finishPiece(start)
}

// addCapsule adds the outline of a single segment with round caps, as one
// polygon. Building it from a rectangle and two circles would count the
// anti-aliased rim twice where the pieces overlap.
func (r *Rasteriser) addCapsule(a, b vec.Vec2, d float64) {
	t := b.Sub(a)
	t = t.Mul(1 / t.Length())
	n := vec.Vec2{X: -t.Y, Y: t.X}

	k := r.arcSteps(d, math.Pi)
	start := len(r.pieces)
	// half circle around b from +n over t to -n, then around a back to +n
	for i := 0; i <= k; i++ {
		phi := math.Pi * float64(i) / float64(k)
		dir := n.Mul(math.Cos(phi)).Add(t.Mul(math.Sin(phi)))
		r.pieces = append(r.pieces, b.Add(dir.Mul(d)))
	}
	for i := 0; i <= k; i++ {
		phi := math.Pi * float64(i) / float64(k)
		dir := n.Mul(math.Cos(phi)).Add(t.Mul(math.Sin(phi)))
		r.pieces = append(r.pieces, a.Sub(dir.Mul(d)))
	}
	r.finishPiece(start)
}

// arcSteps returns the number of chords needed to approximate an arc of
// the given radius and sweep within the flatness tolerance.
func (r *Rasteriser) arcSteps(rad, sweep float64) int {
	devRad := max(
		r.transformLinear(vec.Vec2{X: rad}).Length(),
		r.transformLinear(vec.Vec2{Y: rad}).Length(),
	)
	full := minCirclePoints

	// A chord spanning angle θ deviates from the arc by rad*(1-cos(θ/2)).
	if devRad > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRad)
		if step > 0 && !math.IsNaN(step) {
			full = max(full, int(math.Ceil(2*math.Pi/step)))
		}
	}
	return max(int(math.Ceil(float64(full)*sweep/(2*math.Pi))), 2)
}

// addPiece adds a polygon with the given vertices.
func (r *Rasteriser) addPiece(vertices ...vec.Vec2) {
	start := len(r.pieces)
	r.pieces = append(r.pieces, vertices...)
	r.finishPiece(start)
}

// finishPiece records the polygon which starts at pieces[start] and
// reverses it if needed, so that all pieces have positive signed area.
func (r *Rasteriser) finishPiece(start int) {
	poly := r.pieces[start:]
	if len(poly) < 3 {
		r.pieces = r.pieces[:start]
		return
	}
	var a2 float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a2 += p.X*q.Y - q.X*p.Y
	}
	if a2 == 0 {
		r.pieces = r.pieces[:start]
		return
	}
	if a2 < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.starts = append(r.starts, start)
}
