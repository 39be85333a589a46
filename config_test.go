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

package sketchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	require.NoError(t, Downsampled().Validate())
	require.NoError(t, FullResolution().Validate())

	d := Downsampled()
	assert.Equal(t, 280, d.SurfaceWidth)
	assert.Equal(t, 28, d.TargetWidth)
	assert.Equal(t, Downsample, d.Variant)
	assert.Equal(t, 5.0, d.StrokeWidth)

	f := FullResolution()
	assert.Equal(t, 300, f.SurfaceHeight)
	assert.Equal(t, AlphaPassthrough, f.Variant)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero surface":    func(c *Config) { c.SurfaceWidth = 0 },
		"negative width":  func(c *Config) { c.StrokeWidth = -1 },
		"no color":        func(c *Config) { c.StrokeColor = nil },
		"zero target":     func(c *Config) { c.TargetHeight = 0 },
		"unknown kernel":  func(c *Config) { c.Resample = "sinc" },
		"unknown variant": func(c *Config) { c.Variant = Variant(7) },
		"alpha resized": func(c *Config) {
			c.Variant = AlphaPassthrough
		},
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Downsampled()
			modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := FullResolution()
	cfg.TargetWidth, cfg.TargetHeight = 0, 0
	assert.NoError(t, cfg.Validate())
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{Downsample, AlphaPassthrough} {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseVariant("sepia")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
