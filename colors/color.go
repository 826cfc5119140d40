// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors converts the textual color notations found in
// documents (hexadecimal and HSL/HSLA) into normalized RGBA colors.
package colors

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized RGBA color. Each channel is in the range [0, 1]
// for any color parsed from validly ranged input. Colors are plain values
// and are never mutated by this package.
type Color struct {
	Red   float64 `json:"red" yaml:"red" toml:"red"`
	Green float64 `json:"green" yaml:"green" toml:"green"`
	Blue  float64 `json:"blue" yaml:"blue" toml:"blue"`
	Alpha float64 `json:"alpha" yaml:"alpha" toml:"alpha"`
}

// From256RGB returns the color with the given red, green, and blue
// components on a 0-255 scale, and the given optional alpha in the
// range [0, 1] (default 1). The alpha is used as is, and no component
// is clamped.
func From256RGB(red, green, blue int, alpha ...float64) Color {
	a := 1.0
	if len(alpha) > 0 {
		a = alpha[0]
	}
	return Color{
		Red:   float64(red) / 255,
		Green: float64(green) / 255,
		Blue:  float64(blue) / 255,
		Alpha: a,
	}
}

// RGBA implements [color.Color]. The channels are clamped
// to [0, 1] and the result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	al := clamp01(c.Alpha)
	r = uint32(clamp01(c.Red)*al*0xffff + 0.5)
	g = uint32(clamp01(c.Green)*al*0xffff + 0.5)
	b = uint32(clamp01(c.Blue)*al*0xffff + 0.5)
	a = uint32(al*0xffff + 0.5)
	return
}

// AsRGBA returns the color as a [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Colorful returns the red, green, and blue channels of the color
// as a [colorful.Color], for use with its color space conversions.
// The alpha channel is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.Red, G: c.Green, B: c.Blue}
}

// Hex returns the color as a lowercase #rrggbb string, or as a
// #rrggbbaa string if it is not fully opaque. Channels are clamped.
func (c Color) Hex() string {
	hex := c.Colorful().Clamped().Hex()
	if a := clamp01(c.Alpha); a < 1 {
		hex += fmt.Sprintf("%02x", uint8(a*255+0.5))
	}
	return hex
}

// String returns the color in the form rgba(r, g, b, a),
// with each normalized channel in its shortest representation.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.Red, c.Green, c.Blue, c.Alpha)
}

// jsonColor is the JSON form of a [Color], in which
// non-finite channels are null.
type jsonColor struct {
	Red   *float64 `json:"red"`
	Green *float64 `json:"green"`
	Blue  *float64 `json:"blue"`
	Alpha *float64 `json:"alpha"`
}

// MarshalJSON implements [json.Marshaler]. NaN and infinite
// channels, such as the alpha of "hsla(0, 100%, 50%, .)",
// are encoded as null.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonColor{finite(c.Red), finite(c.Green), finite(c.Blue), finite(c.Alpha)})
}

// UnmarshalJSON implements [json.Unmarshaler].
// Null or missing channels are decoded as NaN.
func (c *Color) UnmarshalJSON(b []byte) error {
	var jc jsonColor
	if err := json.Unmarshal(b, &jc); err != nil {
		return err
	}
	*c = Color{orNaN(jc.Red), orNaN(jc.Green), orNaN(jc.Blue), orNaN(jc.Alpha)}
	return nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// clamp01 clamps v to [0, 1], treating NaN as 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
