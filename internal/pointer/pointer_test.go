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

package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketchpad"
)

func kinds(events []sketchpad.Event) []sketchpad.EventKind {
	out := make([]sketchpad.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestMouseSequence(t *testing.T) {
	tr := &Tracker{Target: rect.Rect{LLx: 10, LLy: 20, URx: 290, URy: 300}}

	var events []sketchpad.Event
	events = tr.Update(events, false, vec.Vec2{X: 50, Y: 50})
	events = tr.Update(events, true, vec.Vec2{X: 50, Y: 50})
	events = tr.Update(events, true, vec.Vec2{X: 50, Y: 50}) // no movement
	events = tr.Update(events, true, vec.Vec2{X: 60, Y: 70})
	events = tr.Update(events, false, vec.Vec2{X: 80, Y: 90})

	assert.Equal(t, []sketchpad.EventKind{sketchpad.MouseDown, sketchpad.MouseMove, sketchpad.MouseUp}, kinds(events))
	assert.Equal(t, vec.Vec2{X: 40, Y: 30}, events[0].Local())
	assert.Equal(t, vec.Vec2{X: 50, Y: 50}, events[1].Local())
	assert.False(t, tr.Down())
}

func TestTouchSequence(t *testing.T) {
	target := rect.Rect{LLx: 20, LLy: 20, URx: 320, URy: 320}
	tr := &Tracker{Touch: true, Target: target}

	events := tr.Update(nil, true, vec.Vec2{X: 150, Y: 80})
	require.Len(t, events, 1)
	assert.Equal(t, sketchpad.TouchStart, events[0].Kind)
	assert.Equal(t, vec.Vec2{X: 130, Y: 60}, events[0].Local())

	events = tr.Cancel(events)
	assert.Equal(t, []sketchpad.EventKind{sketchpad.TouchStart, sketchpad.TouchCancel}, kinds(events))
	assert.Len(t, tr.Cancel(nil), 0)
}

func TestDrivesPad(t *testing.T) {
	calls := 0
	p, err := sketchpad.New(sketchpad.Downsampled(), func([]byte) { calls++ })
	require.NoError(t, err)
	defer p.Close()

	tr := &Tracker{}
	var events []sketchpad.Event
	for i := range 10 {
		events = tr.Update(events[:0], true, vec.Vec2{X: float64(20 + 20*i), Y: 140})
		sketchpad.Replay(p, events)
	}
	assert.True(t, p.Drawing())
	sketchpad.Replay(p, tr.Update(nil, false, vec.Vec2{}))
	assert.Equal(t, 1, calls)
	assert.False(t, p.Drawing())
}
