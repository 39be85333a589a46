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

// Package sketchpad implements a drawing pad for handwritten digits.
//
// A [Pad] owns a fixed-size pixel surface. The user draws strokes on it,
// either through [Pad.BeginStroke], [Pad.ExtendStroke] and [Pad.EndStroke]
// or by passing mouse and touch events to [Pad.Handle]. Strokes are drawn
// with round caps and joins using the renderer in the raster sub-package.
//
// Whenever a stroke is completed, the surface is turned into a byte buffer
// of fixed length and passed to the caller's [Sink]. Two strategies are
// provided:
//
//   - [InvertedDownsampler] scales the surface down, typically from 280×280
//     to 28×28, and stores 255 minus the alpha value of each pixel. This
//     matches the MNIST convention of 784 values per digit.
//   - [AlphaExtractor] stores the alpha value of every surface pixel.
//
// Note that the two strategies use opposite polarity: an empty surface
// gives all 255 with the first and all 0 with the second.
//
// The configurations [Downsampled] and [FullResolution] describe the two
// usual setups.
package sketchpad
