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

var lineGestures = []Gesture{
	{
		Name:   "horizontal",
		Width:  280,
		Height: 280,
		Path:   newBuilder().moveTo(0, 140).lineTo(280, 140).p,
	},
	{
		Name:   "vertical",
		Width:  280,
		Height: 280,
		Path:   newBuilder().moveTo(140, 0).lineTo(140, 280).p,
	},
	{
		Name:   "diagonal",
		Width:  280,
		Height: 280,
		Path:   newBuilder().moveTo(20, 20).lineTo(260, 260).p,
	},
	{
		Name:   "zigzag",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(30, 60).lineTo(250, 100).lineTo(30, 140).lineTo(250, 180).lineTo(30, 220).
			p,
	},
}
