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

// Command sketchpad replays recorded gestures on a drawing pad and shows
// the resulting output buffers.
//
// Gestures are either taken from the built-in collection (--gesture) or
// read from a JSON file as written by gestures/export (--input). For every
// gesture the command prints a preview of the output buffer and, if --out
// is given, writes the surface and the output as PNG images.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketchpad"
	"seehuhn.de/go/sketchpad/gestures"
	"seehuhn.de/go/sketchpad/internal/config"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketchpad:", err)
		os.Exit(1)
	}
}

type options struct {
	gestures []string
	input    string
	touch    bool
	step     float64
	outDir   string
	list     bool
	plain    bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("sketchpad", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)

	var opt options
	fs.StringSliceVarP(&opt.gestures, "gesture", "g", []string{"digit_two"}, "built-in gestures to replay")
	fs.StringVarP(&opt.input, "input", "i", "", "gesture file (JSON) to replay instead of built-in gestures")
	fs.BoolVar(&opt.touch, "touch", false, "replay as touch events instead of mouse events")
	fs.Float64Var(&opt.step, "step", 4, "pointer sampling distance for built-in gestures, in pixels")
	fs.StringVarP(&opt.outDir, "out", "o", "", "directory for PNG output")
	fs.BoolVar(&opt.list, "list", false, "list the built-in gestures and exit")
	fs.BoolVar(&opt.plain, "plain", false, "preview with ASCII characters instead of colours")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(fs)
	if err != nil {
		return err
	}
	level, err := settings.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	sketchpad.SetLogger(logger)
	defer sketchpad.SetLogger(nil)

	if opt.list {
		for _, category := range slices.Sorted(maps.Keys(gestures.All)) {
			for _, g := range gestures.All[category] {
				fmt.Fprintln(stdout, category+"_"+g.Name)
			}
		}
		return nil
	}

	cfg, err := settings.PadConfig()
	if err != nil {
		return err
	}

	recs, err := loadRecordings(&opt, cfg)
	if err != nil {
		return err
	}

	if opt.outDir != "" {
		if err := os.MkdirAll(opt.outDir, 0o755); err != nil {
			return err
		}
	}
	for _, rec := range recs {
		if err := replay(stdout, logger, rec, cfg, &opt); err != nil {
			return fmt.Errorf("%s: %w", rec.Name, err)
		}
	}
	return nil
}

func loadRecordings(opt *options, cfg sketchpad.Config) ([]gestures.Recording, error) {
	if opt.input != "" {
		f, err := os.Open(opt.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		file, err := gestures.ReadFile(f)
		if err != nil {
			return nil, err
		}
		return file.Gestures, nil
	}

	var recs []gestures.Recording
	for _, label := range opt.gestures {
		g, ok := gestures.Find(label)
		if !ok {
			return nil, fmt.Errorf("unknown gesture %q, see --list", label)
		}
		g = g.Scaled(cfg.SurfaceWidth, cfg.SurfaceHeight)
		recs = append(recs, gestures.Record(label, g, opt.step))
	}
	return recs, nil
}

func replay(w io.Writer, logger *slog.Logger, rec gestures.Recording, cfg sketchpad.Config, opt *options) error {
	calls := 0
	p, err := sketchpad.New(cfg, func([]byte) { calls++ })
	if err != nil {
		return err
	}
	defer p.Close()

	strokes := fitStrokes(rec, cfg.SurfaceWidth, cfg.SurfaceHeight)
	var target rect.Rect
	if opt.touch {
		// where the surface might sit in a browser window
		target = rect.Rect{
			LLx: 16,
			LLy: 64,
			URx: 16 + float64(cfg.SurfaceWidth),
			URy: 64 + float64(cfg.SurfaceHeight),
		}
	}
	sketchpad.Replay(p, sketchpad.Events(strokes, opt.touch, target))

	out := p.Output()
	if out == nil {
		out = blankOutput(cfg)
	}
	logger.Info("replayed",
		slog.String("gesture", rec.Name),
		slog.Int("strokes", len(strokes)),
		slog.Int("callbacks", calls))

	ow, oh := outputSize(cfg)
	ink := inkLevels(out, cfg.Variant)
	fmt.Fprintf(w, "%s (%d strokes, %dx%d output)\n", rec.Name, len(strokes), ow, oh)
	if err := preview(w, ink, ow, oh, opt.plain); err != nil {
		return err
	}

	if opt.outDir == "" {
		return nil
	}
	base := filepath.Join(opt.outDir, rec.Name)
	if err := writePNG(base+"-surface.png", p.Snapshot()); err != nil {
		return err
	}
	gray := image.NewGray(image.Rect(0, 0, ow, oh))
	copy(gray.Pix, out)
	return writePNG(base+"-output.png", gray)
}

// fitStrokes maps the recorded positions onto a surface of the given size.
func fitStrokes(rec gestures.Recording, width, height int) [][]vec.Vec2 {
	strokes := rec.Points()
	if rec.Width == width && rec.Height == height {
		return strokes
	}
	sx := float64(width) / float64(rec.Width)
	sy := float64(height) / float64(rec.Height)
	for _, s := range strokes {
		for i, q := range s {
			s[i] = vec.Vec2{X: q.X * sx, Y: q.Y * sy}
		}
	}
	return strokes
}

func outputSize(cfg sketchpad.Config) (int, int) {
	if cfg.Variant == sketchpad.AlphaPassthrough {
		return cfg.SurfaceWidth, cfg.SurfaceHeight
	}
	return cfg.TargetWidth, cfg.TargetHeight
}

func blankOutput(cfg sketchpad.Config) []byte {
	ex, err := cfg.Extractor()
	if err != nil {
		panic(err)
	}
	return ex.Blank()
}

// inkLevels converts an output buffer into ink intensities, where 0 is
// the background and 255 is full ink.
func inkLevels(out []byte, v sketchpad.Variant) []byte {
	ink := make([]byte, len(out))
	for i, b := range out {
		if v == sketchpad.Downsample {
			b = 255 - b
		}
		ink[i] = b
	}
	return ink
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
