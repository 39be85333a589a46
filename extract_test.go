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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func TestAlphaExtractor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	src.SetNRGBA(3, 2, color.NRGBA{A: 255})

	e := &AlphaExtractor{Width: 4, Height: 3}
	out := e.Extract(src)
	require.Len(t, out, e.Len())

	want := make([]byte, 12)
	want[1] = 40
	want[2*4+3] = 255
	assert.Equal(t, want, out)
	assert.Equal(t, make([]byte, 12), e.Blank())
}

func TestInvertedDownsampler(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	// fill the top-left 10×10 block
	draw.Draw(src, image.Rect(0, 0, 10, 10), image.NewUniform(color.Black), image.Point{}, draw.Src)

	e := &InvertedDownsampler{Width: 2, Height: 2}
	out := e.Extract(src)
	assert.Equal(t, []byte{0, 255, 255, 255}, out)

	blank := e.Blank()
	assert.Len(t, blank, 4)
	assert.Equal(t, []byte{255, 255, 255, 255}, blank)
}

func TestInvertedDownsamplerAverages(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	// the left half of the only block is ink
	draw.Draw(src, image.Rect(0, 0, 5, 10), image.NewUniform(color.Black), image.Point{}, draw.Src)

	e := &InvertedDownsampler{Width: 1, Height: 1, Scaler: BoxFilter}
	out := e.Extract(src)
	require.Len(t, out, 1)
	assert.InDelta(t, 127, int(out[0]), 1)
}

func TestResamplers(t *testing.T) {
	names := Resamplers()
	assert.Contains(t, names, "box")
	assert.Contains(t, names, "nearest")

	for _, name := range names {
		s, err := resampler(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s, name)
	}
	s, err := resampler("")
	require.NoError(t, err)
	assert.Equal(t, draw.Scaler(draw.ApproxBiLinear), s)

	_, err = resampler("lanczos")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestExtractorNames(t *testing.T) {
	e, err := Downsampled().Extractor()
	require.NoError(t, err)
	assert.Equal(t, "inverted 28x28", e.Name())

	e, err = FullResolution().Extractor()
	require.NoError(t, err)
	assert.Equal(t, "alpha 300x300", e.Name())
}
