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

package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketchpad"
)

// isolate makes sure that no configuration of the user is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SKETCHPAD_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketchpad.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	isolate(t)

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "downsample", s.Pad.Variant)
	assert.Equal(t, 5.0, s.Pad.StrokeWidth)

	cfg, err := s.PadConfig()
	require.NoError(t, err)
	assert.Equal(t, sketchpad.Downsampled().SurfaceWidth, cfg.SurfaceWidth)
	assert.Equal(t, 28, cfg.TargetWidth)
	assert.Equal(t, "approx-bilinear", cfg.Resample)

	level, err := s.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestPrecedence(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[pad]
variant = "downsample"
stroke_width = 8
stroke_color = "navy"
resample = "bilinear"

[log]
level = "debug"
`)
	t.Setenv("SKETCHPAD_CONFIG", path)

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.Pad.StrokeWidth)
	assert.Equal(t, "bilinear", s.Pad.Resample)
	assert.Equal(t, "debug", s.Log.Level)

	// environment beats the file
	t.Setenv("SKETCHPAD_PAD_STROKE_WIDTH", "9")
	s, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.Pad.StrokeWidth)

	// flags beat the environment, but only if given
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--stroke-width=3"}))
	s, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Pad.StrokeWidth)
	assert.Equal(t, "bilinear", s.Pad.Resample)
	assert.Equal(t, "navy", s.Pad.StrokeColor)
}

func TestConfigFlag(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[pad]\nvariant = \"alpha\"\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path}))

	s, err := Load(fs)
	require.NoError(t, err)
	cfg, err := s.PadConfig()
	require.NoError(t, err)
	assert.Equal(t, sketchpad.AlphaPassthrough, cfg.Variant)
	assert.Equal(t, 300, cfg.SurfaceWidth)
	assert.Equal(t, 300, cfg.TargetWidth)
}

func TestMissingConfigFile(t *testing.T) {
	isolate(t)
	t.Setenv("SKETCHPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load(nil)
	assert.Error(t, err)
}

func TestPadConfigErrors(t *testing.T) {
	s := &Settings{Pad: PadSettings{Variant: "sepia"}}
	_, err := s.PadConfig()
	assert.ErrorIs(t, err, sketchpad.ErrInvalidConfig)

	s = &Settings{Pad: PadSettings{Variant: "downsample", StrokeColor: "not a colour"}}
	_, err = s.PadConfig()
	assert.ErrorIs(t, err, sketchpad.ErrInvalidConfig)

	s = &Settings{Pad: PadSettings{Variant: "downsample", Resample: "sinc"}}
	_, err = s.PadConfig()
	assert.ErrorIs(t, err, sketchpad.ErrInvalidConfig)

	s = &Settings{Pad: PadSettings{Variant: "downsample", SurfaceWidth: -5}}
	_, err = s.PadConfig()
	assert.ErrorIs(t, err, sketchpad.ErrInvalidConfig)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"black", color.RGBA{A: 255}},
		{" Navy ", color.RGBA{B: 0x80, A: 255}},
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"00ff00", color.NRGBA{G: 255, A: 255}},
		{"#00f", color.NRGBA{B: 255, A: 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParseColor("#xyz")
	assert.ErrorIs(t, err, sketchpad.ErrInvalidConfig)
}
