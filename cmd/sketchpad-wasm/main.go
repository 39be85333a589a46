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

//go:build js && wasm

// Command sketchpad-wasm runs a drawing pad in a web browser.
//
// It attaches to the <canvas id="sketchpad"> element of the page. The data
// attributes of the canvas select the configuration:
//
//	<canvas id="sketchpad" width="280" height="280"
//	        data-variant="downsample" data-stroke-color="black"></canvas>
//
// Whenever a stroke ends or the pad is cleared, the output buffer is passed
// as a Uint8Array to the global JavaScript function sketchpadOutput, if the
// page defines one. A global function sketchpadClear clears the pad.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"syscall/js"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketchpad"
	"seehuhn.de/go/sketchpad/internal/config"
)

type host struct {
	pad    *sketchpad.Pad
	canvas js.Value
	ctx    js.Value
	pixels js.Value // Uint8ClampedArray backing the ImageData
	image  js.Value
	funcs  []js.Func
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sketchpad.SetLogger(logger)

	h, err := attach(js.Global().Get("document").Call("getElementById", "sketchpad"))
	if err != nil {
		logger.Error("cannot start sketchpad", slog.Any("error", err))
		return
	}
	defer h.release()

	select {}
}

func attach(canvas js.Value) (*host, error) {
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("no canvas with id \"sketchpad\"")
	}

	cfg, err := canvasConfig(canvas)
	if err != nil {
		return nil, err
	}

	h := &host{canvas: canvas, ctx: canvas.Call("getContext", "2d")}
	h.pad, err = sketchpad.New(cfg, h.deliver)
	if err != nil {
		return nil, err
	}

	n := 4 * cfg.SurfaceWidth * cfg.SurfaceHeight
	h.pixels = js.Global().Get("Uint8ClampedArray").New(n)
	h.image = js.Global().Get("ImageData").New(h.pixels, cfg.SurfaceWidth, cfg.SurfaceHeight)

	h.listen("mousedown", h.mouse(sketchpad.MouseDown))
	h.listen("mousemove", h.mouse(sketchpad.MouseMove))
	h.listen("mouseup", h.mouse(sketchpad.MouseUp))
	h.listen("touchstart", h.touch(sketchpad.TouchStart))
	h.listen("touchmove", h.touch(sketchpad.TouchMove))
	h.listen("touchend", h.touch(sketchpad.TouchEnd))
	h.listen("touchcancel", h.touch(sketchpad.TouchCancel))

	clearFn := js.FuncOf(func(js.Value, []js.Value) any {
		h.pad.Clear()
		h.paint()
		return nil
	})
	h.funcs = append(h.funcs, clearFn)
	js.Global().Set("sketchpadClear", clearFn)

	h.paint()
	return h, nil
}

// canvasConfig reads the pad configuration from the canvas element.
func canvasConfig(canvas js.Value) (sketchpad.Config, error) {
	data := canvas.Get("dataset")
	attr := func(name, def string) string {
		v := data.Get(name)
		if v.IsUndefined() {
			return def
		}
		return v.String()
	}

	s := &config.Settings{Pad: config.PadSettings{
		Variant:       attr("variant", "downsample"),
		SurfaceWidth:  canvas.Get("width").Int(),
		SurfaceHeight: canvas.Get("height").Int(),
		StrokeColor:   attr("strokeColor", "black"),
		Resample:      attr("resample", "approx-bilinear"),
	}}
	if w := attr("strokeWidth", ""); w != "" {
		f, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return sketchpad.Config{}, fmt.Errorf("stroke width: %w", err)
		}
		s.Pad.StrokeWidth = f
	}
	return s.PadConfig()
}

func (h *host) listen(event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	h.funcs = append(h.funcs, f)
	opts := map[string]any{"passive": false}
	h.canvas.Call("addEventListener", event, f, opts)
}

func (h *host) mouse(kind sketchpad.EventKind) func(js.Value) {
	return func(ev js.Value) {
		pos := vec.Vec2{X: ev.Get("offsetX").Float(), Y: ev.Get("offsetY").Float()}
		h.handle(sketchpad.Event{Kind: kind, Pos: pos})
	}
}

func (h *host) touch(kind sketchpad.EventKind) func(js.Value) {
	return func(ev js.Value) {
		ev.Call("preventDefault") // no scrolling while drawing

		var pos vec.Vec2
		if kind == sketchpad.TouchStart || kind == sketchpad.TouchMove {
			touches := ev.Get("touches")
			if touches.Length() == 0 {
				return
			}
			t := touches.Index(0)
			pos = vec.Vec2{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()}
		}
		r := h.canvas.Call("getBoundingClientRect")
		target := rect.Rect{
			LLx: r.Get("left").Float(),
			LLy: r.Get("top").Float(),
			URx: r.Get("right").Float(),
			URy: r.Get("bottom").Float(),
		}
		h.handle(sketchpad.Event{Kind: kind, Pos: pos, Target: target})
	}
}

func (h *host) handle(ev sketchpad.Event) {
	h.pad.Handle(ev)
	if ev.Kind != sketchpad.MouseMove || h.pad.Drawing() {
		h.paint()
	}
}

// paint copies the surface to the canvas.
func (h *host) paint() {
	js.CopyBytesToJS(h.pixels, h.pad.Snapshot().Pix)
	h.ctx.Call("putImageData", h.image, 0, 0)
}

func (h *host) deliver(buf []byte) {
	fn := js.Global().Get("sketchpadOutput")
	if fn.Type() != js.TypeFunction {
		return
	}
	arr := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(arr, buf)
	fn.Invoke(arr)
}

func (h *host) release() {
	h.pad.Close()
	for _, f := range h.funcs {
		f.Release()
	}
}
