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

// Digits as a person would draw them on the 280×280 pad.
var digitGestures = []Gesture{
	{
		Name:   "zero",
		Width:  280,
		Height: 280,
		Path:   newBuilder().ellipse(140, 140, 70, 100).p,
	},
	{
		Name:   "one",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(105, 80).lineTo(145, 40).lineTo(145, 240).
			p,
	},
	{
		Name:   "two",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(80, 90).
			cubeTo(90, 30, 200, 30, 200, 95).
			quadTo(200, 140, 80, 235).
			lineTo(210, 235).
			p,
	},
	{
		Name:   "three",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(80, 60).
			cubeTo(130, 20, 220, 50, 190, 110).
			quadTo(175, 135, 125, 138).
			cubeTo(230, 140, 220, 260, 80, 225).
			p,
	},
	{
		Name:   "four",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(160, 40).lineTo(60, 175).lineTo(215, 175).
			moveTo(175, 100).lineTo(175, 250).
			p,
	},
	{
		Name:   "seven",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			moveTo(70, 50).lineTo(210, 50).lineTo(120, 240).
			moveTo(110, 145).lineTo(190, 145).
			p,
	},
	{
		Name:   "eight",
		Width:  280,
		Height: 280,
		Path: newBuilder().
			ellipse(140, 90, 50, 50).
			ellipse(140, 190, 60, 55).
			p,
	},
}
