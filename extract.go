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
	"fmt"
	"image"
	"maps"
	"slices"

	"golang.org/x/image/draw"
)

// Extractor turns the pixels of a surface into the output buffer which is
// delivered to the sink.
type Extractor interface {
	// Extract computes the output for the given surface pixels. The
	// returned slice has length Len and belongs to the caller.
	Extract(src *image.NRGBA) []byte

	// Len is the length of every buffer returned by Extract and Blank.
	Len() int

	// Blank returns the output for an empty surface.
	Blank() []byte

	// Name identifies the strategy in log messages.
	Name() string
}

// AlphaExtractor copies the alpha channel of the surface, one byte per
// pixel in row-major order. An empty surface gives all zeros.
type AlphaExtractor struct {
	Width, Height int
}

// Extract implements the [Extractor] interface.
func (e *AlphaExtractor) Extract(src *image.NRGBA) []byte {
	out := make([]byte, e.Len())
	b := src.Bounds()
	w := min(e.Width, b.Dx())
	h := min(e.Height, b.Dy())
	for y := range h {
		row := src.Pix[y*src.Stride:]
		for x := range w {
			out[y*e.Width+x] = row[4*x+3]
		}
	}
	return out
}

// Len implements the [Extractor] interface.
func (e *AlphaExtractor) Len() int {
	return e.Width * e.Height
}

// Blank implements the [Extractor] interface.
func (e *AlphaExtractor) Blank() []byte {
	return make([]byte, e.Len())
}

// Name implements the [Extractor] interface.
func (e *AlphaExtractor) Name() string {
	return fmt.Sprintf("alpha %dx%d", e.Width, e.Height)
}

// InvertedDownsampler scales the surface to Width×Height and stores
// 255-alpha per pixel, so that ink is dark on a white background. An empty
// surface gives all 255.
type InvertedDownsampler struct {
	Width, Height int

	// Scaler resamples the surface. If nil, [draw.ApproxBiLinear] is
	// used, which samples the surface like a browser's drawImage: every
	// output pixel interpolates the four source pixels nearest to its
	// centre. Thin lines which pass between the sample points disappear;
	// [BoxFilter] keeps them, but as grey.
	Scaler draw.Scaler
}

// Extract implements the [Extractor] interface.
func (e *InvertedDownsampler) Extract(src *image.NRGBA) []byte {
	s := e.Scaler
	if s == nil {
		s = draw.ApproxBiLinear
	}
	small := image.NewRGBA(image.Rect(0, 0, e.Width, e.Height))
	s.Scale(small, small.Bounds(), src, src.Bounds(), draw.Src, nil)

	// premultiplication leaves the alpha channel unchanged
	out := make([]byte, e.Len())
	for y := range e.Height {
		row := small.Pix[y*small.Stride:]
		for x := range e.Width {
			out[y*e.Width+x] = 255 - row[4*x+3]
		}
	}
	return out
}

// Len implements the [Extractor] interface.
func (e *InvertedDownsampler) Len() int {
	return e.Width * e.Height
}

// Blank implements the [Extractor] interface.
func (e *InvertedDownsampler) Blank() []byte {
	out := make([]byte, e.Len())
	for i := range out {
		out[i] = 255
	}
	return out
}

// Name implements the [Extractor] interface.
func (e *InvertedDownsampler) Name() string {
	return fmt.Sprintf("inverted %dx%d", e.Width, e.Height)
}

// BoxFilter averages all source pixels which fall into a destination pixel.
var BoxFilter = &draw.Kernel{Support: 0.5, At: func(float64) float64 { return 1 }}

var resamplers = map[string]draw.Scaler{
	"box":             BoxFilter,
	"nearest":         draw.NearestNeighbor,
	"approx-bilinear": draw.ApproxBiLinear,
	"bilinear":        draw.BiLinear,
	"catmull-rom":     draw.CatmullRom,
}

// Resamplers lists the kernel names accepted in [Config.Resample].
func Resamplers() []string {
	return slices.Sorted(maps.Keys(resamplers))
}

func resampler(name string) (draw.Scaler, error) {
	if name == "" {
		return draw.ApproxBiLinear, nil
	}
	s, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown resampling kernel %q", ErrInvalidConfig, name)
	}
	return s, nil
}
