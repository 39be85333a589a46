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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EventKind is the type of a host input event.
type EventKind int

// These are the input events a pad reacts to.
const (
	MouseDown EventKind = iota
	MouseMove
	MouseUp
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

func (k EventKind) String() string {
	switch k {
	case MouseDown:
		return "mousedown"
	case MouseMove:
		return "mousemove"
	case MouseUp:
		return "mouseup"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case TouchCancel:
		return "touchcancel"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// IsTouch reports whether k is one of the touch events.
func (k EventKind) IsTouch() bool {
	return k >= TouchStart && k <= TouchCancel
}

// Event is an input event reported by a host.
//
// For mouse events, Pos is the offset of the pointer from the top-left
// corner of the surface. For touch events, Pos is the touch point in
// viewport coordinates and Target is the bounding rectangle of the surface
// in the same coordinates, with LLx and LLy holding its left and top edge.
type Event struct {
	Kind   EventKind
	Pos    vec.Vec2
	Target rect.Rect
}

// Local returns the event position relative to the top-left corner of the
// surface.
func (ev Event) Local() vec.Vec2 {
	if !ev.Kind.IsTouch() {
		return ev.Pos
	}
	return vec.Vec2{X: ev.Pos.X - ev.Target.LLx, Y: ev.Pos.Y - ev.Target.LLy}
}

// Handle applies a host input event to the pad. Pressing the pointer begins
// a stroke, moving it extends the stroke, and releasing or cancelling it
// ends the stroke.
func (p *Pad) Handle(ev Event) {
	switch ev.Kind {
	case MouseDown, TouchStart:
		p.BeginStroke(ev.Local())
	case MouseMove, TouchMove:
		p.ExtendStroke(ev.Local())
	case MouseUp, TouchEnd, TouchCancel:
		p.EndStroke()
	default:
		p.mustBeOpen()
	}
}
