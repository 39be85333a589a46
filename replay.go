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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Events converts strokes, given in surface coordinates, into the input
// events a host would report for them. If touch is false, mouse events are
// generated. Otherwise touch events are generated for a surface whose
// bounding rectangle in the viewport is target.
func Events(strokes [][]vec.Vec2, touch bool, target rect.Rect) []Event {
	down, move, up := MouseDown, MouseMove, MouseUp
	var offset vec.Vec2
	if touch {
		down, move, up = TouchStart, TouchMove, TouchEnd
		offset = vec.Vec2{X: target.LLx, Y: target.LLy}
	}

	var events []Event
	for _, s := range strokes {
		if len(s) == 0 {
			continue
		}
		events = append(events, Event{Kind: down, Pos: s[0].Add(offset), Target: target})
		for _, q := range s[1:] {
			events = append(events, Event{Kind: move, Pos: q.Add(offset), Target: target})
		}
		events = append(events, Event{Kind: up, Target: target})
	}
	return events
}

// Replay feeds a sequence of events into the pad.
func Replay(p *Pad, events []Event) {
	for _, ev := range events {
		p.Handle(ev)
	}
}
