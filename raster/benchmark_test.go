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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var benchSizes = []int{28, 280, 2800}

// BenchmarkStrokeSegment measures one pad segment: a diagonal line with
// round caps, composited into an alpha mask.
func BenchmarkStrokeSegment(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			a, c := segmentEnds(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.Width = float64(size) / 50
				r.Cap = graphics.LineCapRound
				r.Stroke([]vec.Vec2{a, c}, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorSegment fills the same capsule with x/image/vector.
func BenchmarkVectorSegment(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			a, c := segmentEnds(size)
			outline := capsule(a, c, float64(size)/100, 16)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(outline[0].X), float32(outline[0].Y))
				for _, p := range outline[1:] {
					r.LineTo(float32(p.X), float32(p.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func segmentEnds(size int) (vec.Vec2, vec.Vec2) {
	s := float64(size)
	return vec.Vec2{X: 0.1 * s, Y: 0.2 * s}, vec.Vec2{X: 0.9 * s, Y: 0.7 * s}
}

// capsule returns the outline of a round-capped segment, with k chords
// per half circle.
func capsule(a, b vec.Vec2, d float64, k int) []vec.Vec2 {
	t := b.Sub(a)
	t = t.Mul(1 / t.Length())
	n := vec.Vec2{X: -t.Y, Y: t.X}
	out := make([]vec.Vec2, 0, 2*k+2)
	for i := 0; i <= k; i++ {
		phi := math.Pi * float64(i) / float64(k)
		out = append(out, b.Add(n.Mul(d*math.Cos(phi))).Add(t.Mul(d*math.Sin(phi))))
	}
	for i := 0; i <= k; i++ {
		phi := math.Pi * float64(i) / float64(k)
		out = append(out, a.Sub(n.Mul(d*math.Cos(phi))).Sub(t.Mul(d*math.Sin(phi))))
	}
	return out
}
