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

// Gestures which exercise unusual input.
var edgeGestures = []Gesture{
	{
		// pen down and up without moving
		Name:   "tap",
		Width:  280,
		Height: 280,
		Path:   newBuilder().moveTo(140, 140).p,
	},
	{
		// a stroke which leaves the surface on both sides
		Name:   "overshoot",
		Width:  280,
		Height: 280,
		Path:   newBuilder().moveTo(-40, 100).lineTo(320, 180).p,
	},
	{
		// many samples within a few pixels
		Name:   "scribble",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(140, 140).lineTo(141, 141).lineTo(140, 142).lineTo(139, 141).
			lineTo(140, 140).lineTo(141, 141).lineTo(142, 140).
			p,
	},
	{
		// a closed loop, ending where it started
		Name:   "loop",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(60, 60).lineTo(220, 60).lineTo(220, 220).lineTo(60, 220).close().
			p,
	},
}
