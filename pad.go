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
	"fmt"
	"image"
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// Sink receives the output buffer after every completed stroke and after
// every clear. The buffer belongs to the sink.
type Sink func(buf []byte)

// Pad is a drawing surface for a single handwritten digit.
//
// Strokes are drawn with [Pad.BeginStroke], [Pad.ExtendStroke] and
// [Pad.EndStroke], or by passing host input events to [Pad.Handle]. When a
// stroke ends, the surface is converted into a buffer of fixed length by
// the pad's [Extractor] and passed to the sink.
//
// A Pad is not safe for concurrent use. Calling any input method after
// [Pad.Close] panics.
type Pad struct {
	surf    *surface
	extract Extractor
	sink    Sink

	drawing bool
	last    vec.Vec2
	output  []byte
}

// New allocates a pad with the given configuration. The sink is called
// synchronously from EndStroke and Clear.
func New(cfg Config, sink Sink) (*Pad, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: missing sink", ErrInvalidConfig)
	}
	ex, err := cfg.Extractor()
	if err != nil {
		return nil, err
	}

	p := &Pad{
		surf:    newSurface(cfg.SurfaceWidth, cfg.SurfaceHeight, cfg.StrokeColor, cfg.StrokeWidth),
		extract: ex,
		sink:    sink,
	}
	Logger().Debug("pad created",
		slog.Int("width", cfg.SurfaceWidth),
		slog.Int("height", cfg.SurfaceHeight),
		slog.String("extractor", ex.Name()))
	return p, nil
}

// errClosed is the panic value for input after Close.
var errClosed = errors.New("sketchpad: pad used after Close")

func (p *Pad) mustBeOpen() {
	if p.surf == nil {
		panic(errClosed)
	}
}

// BeginStroke puts the pen down at the surface position pos. Nothing is
// drawn until the pen moves.
func (p *Pad) BeginStroke(pos vec.Vec2) {
	p.mustBeOpen()
	p.drawing = true
	p.last = pos
}

// ExtendStroke draws a line from the previous pen position to pos. If no
// stroke is in progress, the call is ignored.
func (p *Pad) ExtendStroke(pos vec.Vec2) {
	p.mustBeOpen()
	if !p.drawing {
		return
	}
	p.surf.DrawSegment(p.last, pos)
	p.last = pos
}

// EndStroke lifts the pen and delivers the output for the current surface
// to the sink. If no stroke is in progress, the call is ignored.
func (p *Pad) EndStroke() {
	p.mustBeOpen()
	if !p.drawing {
		return
	}
	p.drawing = false

	buf := p.extract.Extract(p.surf.Pixels())
	Logger().Debug("stroke complete", slog.String("extractor", p.extract.Name()), slog.Int("len", len(buf)))
	p.deliver(buf)
}

// Clear erases the surface and delivers the blank output to the sink. A
// stroke in progress stays in progress.
func (p *Pad) Clear() {
	p.mustBeOpen()
	p.surf.Clear()
	Logger().Debug("surface cleared", slog.String("extractor", p.extract.Name()))
	p.deliver(p.extract.Blank())
}

func (p *Pad) deliver(buf []byte) {
	p.output = append(p.output[:0], buf...)
	p.sink(buf)
}

// Close releases the surface. After Close, all input methods panic.
// Calling Close more than once has no effect.
func (p *Pad) Close() {
	if p.surf == nil {
		return
	}
	p.surf = nil
	p.drawing = false
	Logger().Debug("pad closed")
}

// Drawing reports whether a stroke is in progress.
func (p *Pad) Drawing() bool {
	return p.drawing
}

// Output returns a copy of the most recently delivered buffer, or nil if
// nothing has been delivered yet.
func (p *Pad) Output() []byte {
	if p.output == nil {
		return nil
	}
	return append([]byte(nil), p.output...)
}

// OutputLen returns the length of every buffer the pad delivers.
func (p *Pad) OutputLen() int {
	return p.extract.Len()
}

// Snapshot returns a copy of the surface pixels.
func (p *Pad) Snapshot() *image.NRGBA {
	p.mustBeOpen()
	return p.surf.Pixels()
}

// Bounds returns the pixel rectangle of the surface.
func (p *Pad) Bounds() image.Rectangle {
	p.mustBeOpen()
	return p.surf.Bounds()
}
