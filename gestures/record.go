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

package gestures

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"
)

// Recording is a gesture as a host reports it: the sampled pointer
// positions of every stroke. This is the JSON form used for gesture files.
type Recording struct {
	Name    string         `json:"name"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Strokes [][][2]float64 `json:"strokes"`
}

// Record samples the gesture with the given step, see [Gesture.Strokes].
func Record(label string, g Gesture, step float64) Recording {
	rec := Recording{Name: label, Width: g.Width, Height: g.Height}
	for _, s := range g.Strokes(step) {
		pts := make([][2]float64, len(s))
		for i, p := range s {
			pts[i] = [2]float64{p.X, p.Y}
		}
		rec.Strokes = append(rec.Strokes, pts)
	}
	return rec
}

// Points returns the strokes of the recording.
func (rec Recording) Points() [][]vec.Vec2 {
	out := make([][]vec.Vec2, len(rec.Strokes))
	for i, s := range rec.Strokes {
		out[i] = make([]vec.Vec2, len(s))
		for j, p := range s {
			out[i][j] = vec.Vec2{X: p[0], Y: p[1]}
		}
	}
	return out
}

// File is the top-level object of a gesture file.
type File struct {
	Gestures []Recording `json:"gestures"`
}

// ReadFile decodes a gesture file.
func ReadFile(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode gestures: %w", err)
	}
	for _, rec := range f.Gestures {
		if rec.Width <= 0 || rec.Height <= 0 {
			return nil, fmt.Errorf("gesture %q: invalid size %dx%d", rec.Name, rec.Width, rec.Height)
		}
	}
	return &f, nil
}

// Write encodes a gesture file.
func (f *File) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
