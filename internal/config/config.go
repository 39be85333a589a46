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

// Package config loads the settings shared by the sketchpad commands.
//
// Values are taken from, in increasing order of precedence: built-in
// defaults, a TOML file, SKETCHPAD_* environment variables, and command
// line flags.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/sketchpad"
)

// Settings holds the configuration of a command.
type Settings struct {
	Pad PadSettings
	Log LogSettings
}

// PadSettings describes the pad. Zero sizes are replaced by the defaults of
// the chosen variant.
type PadSettings struct {
	Variant       string
	SurfaceWidth  int     `mapstructure:"surface_width"`
	SurfaceHeight int     `mapstructure:"surface_height"`
	TargetWidth   int     `mapstructure:"target_width"`
	TargetHeight  int     `mapstructure:"target_height"`
	StrokeColor   string  `mapstructure:"stroke_color"`
	StrokeWidth   float64 `mapstructure:"stroke_width"`
	Resample      string
}

// LogSettings controls the log output of the commands.
type LogSettings struct {
	Level string
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"variant":        "pad.variant",
	"surface-width":  "pad.surface_width",
	"surface-height": "pad.surface_height",
	"target-width":   "pad.target_width",
	"target-height":  "pad.target_height",
	"stroke-color":   "pad.stroke_color",
	"stroke-width":   "pad.stroke_width",
	"resample":       "pad.resample",
	"log-level":      "log.level",
}

// RegisterFlags adds the configuration flags to fs. Flags which are not
// given on the command line do not override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "configuration file (TOML)")
	fs.String("variant", "", "output variant: downsample or alpha")
	fs.Int("surface-width", 0, "surface width in pixels")
	fs.Int("surface-height", 0, "surface height in pixels")
	fs.Int("target-width", 0, "output width in pixels (downsample only)")
	fs.Int("target-height", 0, "output height in pixels (downsample only)")
	fs.String("stroke-color", "", "ink colour, a CSS name or #rrggbb")
	fs.Float64("stroke-width", 0, "stroke width in pixels")
	fs.String("resample", "", "resampling kernel: "+strings.Join(sketchpad.Resamplers(), ", "))
	fs.String("log-level", "", "log level: debug, info, warn or error")
}

// Load reads the configuration. If fs is not nil, it must have been set up
// with RegisterFlags and parsed.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("pad.variant", "downsample")
	v.SetDefault("pad.surface_width", 0)
	v.SetDefault("pad.surface_height", 0)
	v.SetDefault("pad.target_width", 0)
	v.SetDefault("pad.target_height", 0)
	v.SetDefault("pad.stroke_color", "black")
	v.SetDefault("pad.stroke_width", 5.0)
	v.SetDefault("pad.resample", "approx-bilinear")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SKETCHPAD_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sketchpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SKETCHPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}

// PadConfig converts the settings into a pad configuration.
func (s *Settings) PadConfig() (sketchpad.Config, error) {
	variant, err := sketchpad.ParseVariant(s.Pad.Variant)
	if err != nil {
		return sketchpad.Config{}, err
	}

	var cfg sketchpad.Config
	switch variant {
	case sketchpad.AlphaPassthrough:
		cfg = sketchpad.FullResolution()
	default:
		cfg = sketchpad.Downsampled()
	}

	if s.Pad.SurfaceWidth != 0 {
		cfg.SurfaceWidth = s.Pad.SurfaceWidth
	}
	if s.Pad.SurfaceHeight != 0 {
		cfg.SurfaceHeight = s.Pad.SurfaceHeight
	}
	if variant == sketchpad.AlphaPassthrough {
		cfg.TargetWidth, cfg.TargetHeight = cfg.SurfaceWidth, cfg.SurfaceHeight
	} else {
		if s.Pad.TargetWidth != 0 {
			cfg.TargetWidth = s.Pad.TargetWidth
		}
		if s.Pad.TargetHeight != 0 {
			cfg.TargetHeight = s.Pad.TargetHeight
		}
		cfg.Resample = s.Pad.Resample
	}
	if s.Pad.StrokeWidth != 0 {
		cfg.StrokeWidth = s.Pad.StrokeWidth
	}
	if s.Pad.StrokeColor != "" {
		col, err := ParseColor(s.Pad.StrokeColor)
		if err != nil {
			return sketchpad.Config{}, err
		}
		cfg.StrokeColor = col
	}

	if err := cfg.Validate(); err != nil {
		return sketchpad.Config{}, err
	}
	return cfg, nil
}

// LogLevel returns the configured log level.
func (s *Settings) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// ParseColor accepts a CSS colour name, like "black" or "navy", or a hex
// colour of the form "#rgb" or "#rrggbb".
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: colour %q", sketchpad.ErrInvalidConfig, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
