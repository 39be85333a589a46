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

// All contains all gestures, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]Gesture{
	"digit": digitGestures,
	"line":  lineGestures,
	"edge":  edgeGestures,
}

// Find returns the gesture with the given "category_name" label.
func Find(label string) (Gesture, bool) {
	for category, list := range All {
		for _, g := range list {
			if category+"_"+g.Name == label {
				return g, true
			}
		}
	}
	return Gesture{}, false
}
