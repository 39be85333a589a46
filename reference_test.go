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
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketchpad/gestures"
)

// TestAgainstReference compares the surface after replaying each gesture
// with the images written by gestures/genpdf. Gestures without a reference
// image are skipped.
func TestAgainstReference(t *testing.T) {
	// mean absolute difference per pixel, on a 0-255 scale
	const maxMeanDiff = 4.0

	for _, category := range slices.Sorted(maps.Keys(gestures.All)) {
		for _, g := range gestures.All[category] {
			name := category + "_" + g.Name
			t.Run(name, func(t *testing.T) {
				ref, err := loadGray(filepath.Join("testdata", "reference", name+".png"))
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run gestures/genpdf")
				}
				require.NoError(t, err)
				require.Equal(t, image.Rect(0, 0, g.Width, g.Height), ref.Bounds())

				cfg := Config{
					SurfaceWidth:  g.Width,
					SurfaceHeight: g.Height,
					StrokeColor:   color.Black,
					StrokeWidth:   5,
					Variant:       AlphaPassthrough,
				}
				p, rec := newPad(t, cfg)
				Replay(p, Events(g.Strokes(1), false, rect.Rect{}))
				if len(rec.calls) == 0 {
					t.Skip("gesture delivers no output")
				}
				alpha := rec.last()

				// the reference shows black ink on white
				var sum float64
				for y := range g.Height {
					for x := range g.Width {
						want := 255 - int(ref.GrayAt(x, y).Y)
						got := int(alpha[y*g.Width+x])
						sum += float64(max(got-want, want-got))
					}
				}
				mean := sum / float64(g.Width*g.Height)
				if mean > maxMeanDiff {
					t.Errorf("mean difference %.2f exceeds %.2f", mean, maxMeanDiff)
				}
			})
		}
	}
}

func loadGray(fname string) (*image.Gray, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g, nil
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			g.Set(x, y, color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return g, nil
}
