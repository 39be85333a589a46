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

// Command genpdf draws every gesture as a vector PDF, with the pen used by
// the drawing pad, and renders it to PNG using Ghostscript.
//
// Run from the module root directory. The PNG files in testdata/reference
// are compared with the pad surface by TestAgainstReference in the
// sketchpad package, which skips gestures without a reference image.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketchpad/gestures"
)

func main() {
	refDir := flag.String("d", "testdata/reference", "output directory")
	width := flag.Float64("w", 5, "stroke width in pixels")
	noPNG := flag.Bool("no-png", false, "skip rendering with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(gestures.All)) {
		for _, g := range gestures.All[category] {
			name := category + "_" + g.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(g, *width, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(g gestures.Gesture, width float64, pdfPath string) error {
	// one point per pixel
	paper := &pdf.Rectangle{
		URx: float64(g.Width),
		URy: float64(g.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// gestures use a top-left origin
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(g.Height)})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetFillColor(color.DeviceGray(0))
	page.SetLineWidth(width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// PDF has no quadratic segments
	for cmd, pts := range g.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, black ink on white
	// -r72: 1 point = 1 pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
