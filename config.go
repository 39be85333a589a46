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
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidConfig is returned by [New] and [Config.Validate] when a
// configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid sketchpad configuration")

// Variant selects how the surface is turned into the output buffer.
type Variant int

const (
	// Downsample resamples the surface to the target size and stores
	// 255-alpha per pixel: ink is dark, the background is 255.
	Downsample Variant = iota

	// AlphaPassthrough keeps the full resolution and stores the alpha
	// value per pixel: ink is bright, the background is 0.
	AlphaPassthrough
)

func (v Variant) String() string {
	switch v {
	case Downsample:
		return "downsample"
	case AlphaPassthrough:
		return "alpha"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts the name used in configuration files back into a
// Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "downsample", "inverted", "b":
		return Downsample, nil
	case "alpha", "full", "a":
		return AlphaPassthrough, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Config describes a pad. It is fixed when the pad is created.
type Config struct {
	SurfaceWidth  int // drawing surface, in pixels
	SurfaceHeight int

	// TargetWidth and TargetHeight give the size of the output image.
	// For AlphaPassthrough they must equal the surface size, or be zero.
	TargetWidth  int
	TargetHeight int

	StrokeColor color.Color
	StrokeWidth float64

	Variant Variant

	// Resample names the kernel used by the Downsample variant, see
	// [Resamplers]. The empty string selects "approx-bilinear".
	Resample string
}

// Downsampled returns the configuration of the 280×280 pad whose output
// is a 28×28 image with dark ink on a light background.
func Downsampled() Config {
	return Config{
		SurfaceWidth:  280,
		SurfaceHeight: 280,
		TargetWidth:   28,
		TargetHeight:  28,
		StrokeColor:   color.Black,
		StrokeWidth:   5,
		Variant:       Downsample,
		Resample:      "approx-bilinear",
	}
}

// FullResolution returns the configuration of the 300×300 pad whose output
// is the alpha channel of the whole surface.
func FullResolution() Config {
	return Config{
		SurfaceWidth:  300,
		SurfaceHeight: 300,
		TargetWidth:   300,
		TargetHeight:  300,
		StrokeColor:   color.Black,
		StrokeWidth:   5,
		Variant:       AlphaPassthrough,
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalidConfig, c.SurfaceWidth, c.SurfaceHeight)
	}
	if c.StrokeColor == nil {
		return fmt.Errorf("%w: missing stroke color", ErrInvalidConfig)
	}
	if !(c.StrokeWidth > 0) {
		return fmt.Errorf("%w: stroke width %g", ErrInvalidConfig, c.StrokeWidth)
	}

	switch c.Variant {
	case Downsample:
		if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
			return fmt.Errorf("%w: target size %dx%d", ErrInvalidConfig, c.TargetWidth, c.TargetHeight)
		}
		if _, err := resampler(c.Resample); err != nil {
			return err
		}
	case AlphaPassthrough:
		if (c.TargetWidth != 0 || c.TargetHeight != 0) &&
			(c.TargetWidth != c.SurfaceWidth || c.TargetHeight != c.SurfaceHeight) {
			return fmt.Errorf("%w: %s output must match the surface size, got %dx%d",
				ErrInvalidConfig, c.Variant, c.TargetWidth, c.TargetHeight)
		}
	default:
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, int(c.Variant))
	}
	return nil
}

// Extractor returns the extraction strategy described by the configuration.
func (c Config) Extractor() (Extractor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Variant == AlphaPassthrough {
		return &AlphaExtractor{Width: c.SurfaceWidth, Height: c.SurfaceHeight}, nil
	}
	s, _ := resampler(c.Resample)
	return &InvertedDownsampler{Width: c.TargetWidth, Height: c.TargetHeight, Scaler: s}, nil
}
