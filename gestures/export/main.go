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

// Command export writes the sampled pointer positions of all gestures to
// testdata/gestures.json, for replay with the sketchpad command.
// Run from the module root directory.
package main

import (
	"flag"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketchpad/gestures"
)

func main() {
	step := flag.Float64("step", 4, "maximal distance between samples, in pixels")
	out := flag.String("o", "testdata/gestures.json", "output file")
	flag.Parse()

	var file gestures.File
	for _, category := range slices.Sorted(maps.Keys(gestures.All)) {
		for _, g := range gestures.All[category] {
			label := category + "_" + g.Name
			file.Gestures = append(file.Gestures, gestures.Record(label, g, *step))
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := file.Write(f); err != nil {
		panic(err)
	}
}
