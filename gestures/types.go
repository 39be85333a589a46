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

// Package gestures contains recorded pen gestures for testing and
// demonstrating the drawing pad.
//
// A gesture is stored as a path. Every subpath is one stroke: the pen goes
// down at the MoveTo and is lifted at the end of the subpath. [Gesture.Strokes]
// turns the path into the pointer positions a host would report.
package gestures

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Gesture is a named drawing.
type Gesture struct {
	Name   string     // lowercase a-z and _ only
	Width  int        // surface width in pixels
	Height int        // surface height in pixels
	Path   *path.Data // one subpath per stroke, in surface coordinates
}

// Strokes samples the gesture into pointer positions, one slice per
// stroke. Consecutive samples are at most step pixels apart. A subpath
// consisting of a single MoveTo yields a stroke with one point, a tap.
func (g Gesture) Strokes(step float64) [][]vec.Vec2 {
	var strokes [][]vec.Vec2
	var cur []vec.Vec2
	var start, last vec.Vec2

	flush := func() {
		if cur != nil {
			strokes = append(strokes, cur)
		}
		cur = nil
	}

	k := 0
	for _, cmd := range g.Path.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			start = g.Path.Coords[k]
			last = start
			cur = []vec.Vec2{start}
			k++

		case path.CmdLineTo:
			p := g.Path.Coords[k]
			cur = sampleLine(cur, last, p, step)
			last = p
			k++

		case path.CmdQuadTo:
			c, p := g.Path.Coords[k], g.Path.Coords[k+1]
			n := segmentsFor(last.Sub(c).Length()+c.Sub(p).Length(), step)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				s := 1 - t
				cur = append(cur, last.Mul(s*s).Add(c.Mul(2*s*t)).Add(p.Mul(t*t)))
			}
			last = p
			k += 2

		case path.CmdCubeTo:
			c1, c2, p := g.Path.Coords[k], g.Path.Coords[k+1], g.Path.Coords[k+2]
			n := segmentsFor(last.Sub(c1).Length()+c1.Sub(c2).Length()+c2.Sub(p).Length(), step)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				s := 1 - t
				cur = append(cur, last.Mul(s*s*s).
					Add(c1.Mul(3*s*s*t)).
					Add(c2.Mul(3*s*t*t)).
					Add(p.Mul(t*t*t)))
			}
			last = p
			k += 3

		case path.CmdClose:
			cur = sampleLine(cur, last, start, step)
			last = start
		}
	}
	flush()
	return strokes
}

// Scaled returns a copy of the gesture, stretched to a surface of the
// given size.
func (g Gesture) Scaled(width, height int) Gesture {
	sx := float64(width) / float64(g.Width)
	sy := float64(height) / float64(g.Height)
	p := &path.Data{
		Cmds:   append([]path.Command(nil), g.Path.Cmds...),
		Coords: make([]vec.Vec2, len(g.Path.Coords)),
	}
	for i, c := range g.Path.Coords {
		p.Coords[i] = vec.Vec2{X: c.X * sx, Y: c.Y * sy}
	}
	return Gesture{Name: g.Name, Width: width, Height: height, Path: p}
}

func sampleLine(pts []vec.Vec2, a, b vec.Vec2, step float64) []vec.Vec2 {
	n := segmentsFor(b.Sub(a).Length(), step)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, a.Mul(1-t).Add(b.Mul(t)))
	}
	return pts
}

// segmentsFor returns how many pieces a curve of the given (estimated)
// length is cut into.
func segmentsFor(length, step float64) int {
	if step <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(length/step)))
}

// builder appends path commands in surface coordinates.
type builder struct {
	p *path.Data
}

func newBuilder() *builder {
	return &builder{p: &path.Data{}}
}

func (b *builder) moveTo(x, y float64) *builder {
	b.p.Cmds = append(b.p.Cmds, path.CmdMoveTo)
	b.p.Coords = append(b.p.Coords, pt(x, y))
	return b
}

func (b *builder) lineTo(x, y float64) *builder {
	b.p.Cmds = append(b.p.Cmds, path.CmdLineTo)
	b.p.Coords = append(b.p.Coords, pt(x, y))
	return b
}

func (b *builder) quadTo(cx, cy, x, y float64) *builder {
	b.p.Cmds = append(b.p.Cmds, path.CmdQuadTo)
	b.p.Coords = append(b.p.Coords, pt(cx, cy), pt(x, y))
	return b
}

func (b *builder) cubeTo(c1x, c1y, c2x, c2y, x, y float64) *builder {
	b.p.Cmds = append(b.p.Cmds, path.CmdCubeTo)
	b.p.Coords = append(b.p.Coords, pt(c1x, c1y), pt(c2x, c2y), pt(x, y))
	return b
}

func (b *builder) close() *builder {
	b.p.Cmds = append(b.p.Cmds, path.CmdClose)
	return b
}

// ellipse adds a closed ellipse made of four cubic arcs, starting at the top.
func (b *builder) ellipse(cx, cy, rx, ry float64) *builder {
	kx, ky := kappa*rx, kappa*ry
	return b.moveTo(cx, cy-ry).
		cubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy).
		cubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry).
		cubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy).
		cubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry).
		close()
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
