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

// Package pointer converts polled pointer state, as reported once per frame
// by game loops, into the input events of a drawing pad.
package pointer

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketchpad"
)

// Tracker remembers the pointer state of the previous frame.
type Tracker struct {
	// Touch selects touch events instead of mouse events.
	Touch bool

	// Target is the surface rectangle in screen coordinates. Mouse
	// positions are made relative to its top-left corner, touch events
	// carry it along.
	Target rect.Rect

	down bool
	last vec.Vec2
}

// Update appends the events for the current frame to dst. The pointer is
// at pos and pressed tells whether the button is held or the finger is on
// the screen. Positions are in screen coordinates.
func (t *Tracker) Update(dst []sketchpad.Event, pressed bool, pos vec.Vec2) []sketchpad.Event {
	down, move, up := sketchpad.MouseDown, sketchpad.MouseMove, sketchpad.MouseUp
	if t.Touch {
		down, move, up = sketchpad.TouchStart, sketchpad.TouchMove, sketchpad.TouchEnd
	}

	switch {
	case pressed && !t.down:
		dst = append(dst, t.event(down, pos))
	case pressed && pos != t.last:
		dst = append(dst, t.event(move, pos))
	case !pressed && t.down:
		dst = append(dst, t.event(up, t.last))
	}
	t.down = pressed
	if pressed {
		t.last = pos
	}
	return dst
}

// Cancel ends a stroke in progress, for example when the window loses
// focus.
func (t *Tracker) Cancel(dst []sketchpad.Event) []sketchpad.Event {
	if !t.down {
		return dst
	}
	t.down = false
	kind := sketchpad.MouseUp
	if t.Touch {
		kind = sketchpad.TouchCancel
	}
	return append(dst, t.event(kind, t.last))
}

// Down reports whether the pointer is currently pressed.
func (t *Tracker) Down() bool {
	return t.down
}

func (t *Tracker) event(kind sketchpad.EventKind, pos vec.Vec2) sketchpad.Event {
	if !t.Touch {
		pos = vec.Vec2{X: pos.X - t.Target.LLx, Y: pos.Y - t.Target.LLy}
	}
	return sketchpad.Event{Kind: kind, Pos: pos, Target: t.Target}
}
