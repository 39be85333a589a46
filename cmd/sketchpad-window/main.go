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

// Command sketchpad-window opens a desktop window with a drawing pad.
//
// Draw with the mouse or, on touch screens, with a finger. The surface is
// shown on the left and the current output buffer on the right. Press C
// to clear the pad and Escape to quit.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/pflag"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketchpad"
	"seehuhn.de/go/sketchpad/internal/config"
	"seehuhn.de/go/sketchpad/internal/pointer"
)

var errQuit = errors.New("quit")

func main() {
	if err := run(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "sketchpad-window:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet("sketchpad-window", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	scale := fs.Int("scale", 2, "window scale factor")
	if err := fs.Parse(os.Args[1:]); err != nil {
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
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketchpad.SetLogger(logger)

	cfg, err := settings.PadConfig()
	if err != nil {
		return err
	}

	g := newGame(cfg, logger)
	p, err := sketchpad.New(cfg, g.receive)
	if err != nil {
		return err
	}
	defer p.Close()
	g.pad = p

	ebiten.SetWindowTitle("Sketchpad")
	ebiten.SetWindowSize(2*cfg.SurfaceWidth*(*scale), cfg.SurfaceHeight*(*scale))
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	pad    *sketchpad.Pad
	logger *slog.Logger

	width, height int // surface size
	outW, outH    int // output size
	variant       sketchpad.Variant

	mouse   pointer.Tracker
	touch   pointer.Tracker
	touchID ebiten.TouchID
	events  []sketchpad.Event

	surfImg *ebiten.Image
	surfPix *image.RGBA // premultiplied copy of the surface
	outImg  *ebiten.Image
	outPix  []byte // RGBA pixels for outImg
	dirty   bool
}

func newGame(cfg sketchpad.Config, logger *slog.Logger) *game {
	g := &game{
		logger:  logger,
		width:   cfg.SurfaceWidth,
		height:  cfg.SurfaceHeight,
		outW:    cfg.TargetWidth,
		outH:    cfg.TargetHeight,
		variant: cfg.Variant,
		touchID: -1,
	}
	if cfg.Variant == sketchpad.AlphaPassthrough {
		g.outW, g.outH = cfg.SurfaceWidth, cfg.SurfaceHeight
	}
	// the surface sits in the top-left corner of the screen
	target := rect.Rect{URx: float64(g.width), URy: float64(g.height)}
	g.mouse.Target = target
	g.touch = pointer.Tracker{Touch: true, Target: target}
	g.surfPix = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	g.outPix = make([]byte, 4*g.outW*g.outH)
	for i := range g.outPix {
		g.outPix[i] = 255
	}
	g.dirty = true
	return g
}

// receive is the sink of the pad. It is called from Update.
func (g *game) receive(buf []byte) {
	ink := 0
	for i, v := range buf {
		if g.variant == sketchpad.Downsample {
			v = 255 - v
		}
		if v > 0 {
			ink++
		}
		// show ink dark on white, like the surface
		c := 255 - v
		g.outPix[4*i], g.outPix[4*i+1], g.outPix[4*i+2], g.outPix[4*i+3] = c, c, c, 255
	}
	g.dirty = true
	g.logger.Info("output", slog.Int("len", len(buf)), slog.Int("ink", ink))
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.pad.Clear()
	}

	g.events = g.events[:0]

	if !ebiten.IsFocused() {
		g.events = g.mouse.Cancel(g.events)
		g.events = g.touch.Cancel(g.events)
	} else {
		x, y := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		g.events = g.mouse.Update(g.events, pressed, vec.Vec2{X: float64(x), Y: float64(y)})
		g.events = g.updateTouch(g.events)
	}

	if len(g.events) > 0 {
		sketchpad.Replay(g.pad, g.events)
		g.dirty = true
	}
	return nil
}

// updateTouch follows the first finger which touches the screen and
// ignores all others until it is lifted.
func (g *game) updateTouch(dst []sketchpad.Event) []sketchpad.Event {
	if g.touchID < 0 {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return dst
		}
		g.touchID = ids[0]
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touchID = -1
		return g.touch.Update(dst, false, vec.Vec2{})
	}
	x, y := ebiten.TouchPosition(g.touchID)
	return g.touch.Update(dst, true, vec.Vec2{X: float64(x), Y: float64(y)})
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.surfImg == nil {
		g.surfImg = ebiten.NewImage(g.width, g.height)
		g.outImg = ebiten.NewImage(g.outW, g.outH)
	}
	if g.dirty {
		draw.Draw(g.surfPix, g.surfPix.Bounds(), g.pad.Snapshot(), image.Point{}, draw.Src)
		g.surfImg.WritePixels(g.surfPix.Pix)
		g.outImg.WritePixels(g.outPix)
		g.dirty = false
	}

	screen.Fill(color.White)
	screen.DrawImage(g.surfImg, nil)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.width)/float64(g.outW), float64(g.height)/float64(g.outH))
	op.GeoM.Translate(float64(g.width), 0)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.outImg, op)

	sep := image.Rect(g.width, 0, g.width+1, g.height)
	screen.SubImage(sep).(*ebiten.Image).Fill(color.Gray{Y: 128})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 2 * g.width, g.height
}
