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

package main

import (
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// maxPreview is the largest preview width, in pixels.
const maxPreview = 28

const ramp = " .:-=+*#%@"

// preview prints the ink levels of a width×height image, two terminal
// cells per pixel. Larger images are scaled down first.
func preview(w io.Writer, ink []byte, width, height int, plain bool) error {
	img := &image.Gray{Pix: ink, Stride: width, Rect: image.Rect(0, 0, width, height)}
	if width > maxPreview {
		h := max(height*maxPreview/width, 1)
		small := image.NewGray(image.Rect(0, 0, maxPreview, h))
		draw.BiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = small
	}

	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := int(img.GrayAt(x, y).Y)
			if plain {
				c := ramp[v*(len(ramp)-1)/255]
				sb.WriteByte(c)
				sb.WriteByte(c)
				continue
			}
			// xterm grey ramp: 232 is near black, 255 near white
			cell := lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(232 + v*23/255)))
			sb.WriteString(cell.Render("  "))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
