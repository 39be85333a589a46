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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketchpad/gestures"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SKETCHPAD_CONFIG", "")
}

func TestList(t *testing.T) {
	isolate(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run([]string{"--list"}, stdout, stderr))

	lines := strings.Fields(stdout.String())
	assert.Contains(t, lines, "digit_two")
	assert.Contains(t, lines, "edge_tap")
}

func TestReplayGesture(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run([]string{"-g", "digit_seven", "--plain", "-o", dir}, stdout, stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "digit_seven (2 strokes, 28x28 output)\n"), out)
	_, body, _ := strings.Cut(out, "\n")
	assert.NotEmpty(t, strings.TrimSpace(body), "preview shows no ink")
	assert.Equal(t, 1+28, strings.Count(out, "\n"))
	assert.Contains(t, stderr.String(), "callbacks=2")

	assert.FileExists(t, filepath.Join(dir, "digit_seven-surface.png"))
	assert.FileExists(t, filepath.Join(dir, "digit_seven-output.png"))
}

func TestReplayFileFullResolution(t *testing.T) {
	isolate(t)
	g, ok := gestures.Find("line_diagonal")
	require.True(t, ok)
	file := &gestures.File{Gestures: []gestures.Recording{gestures.Record("diag", g, 4)}}
	buf := &bytes.Buffer{}
	require.NoError(t, file.Write(buf))
	input := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, os.WriteFile(input, buf.Bytes(), 0o644))

	stdout := &bytes.Buffer{}
	err := run([]string{"-i", input, "--variant", "alpha", "--touch", "--plain"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "diag (1 strokes, 300x300 output)\n"))
}

func TestUnknownGesture(t *testing.T) {
	isolate(t)
	err := run([]string{"-g", "digit_nine"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown gesture")
}

func TestPreviewPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, preview(buf, []byte{0, 255, 255, 0}, 2, 2, true))
	assert.Equal(t, "  @@\n@@  \n", buf.String())
}
