// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl converts colors in the Hue-Saturation-Lightness
// color model to sRGB.
package hsl

import "math"

// HSL represents a color in the Hue-Saturation-Lightness model.
type HSL struct {

	// H is the hue in degrees. Values outside of [0, 360)
	// wrap around with the period of the conversion.
	H float64

	// S is the saturation as a percentage (0-100).
	S float64

	// L is the lightness as a percentage (0-100).
	L float64
}

// New returns a new [HSL] from the given hue in degrees
// and saturation and lightness percentages.
func New(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l}
}

// RGB returns the red, green, and blue components of the color
// on a 0-255 scale, using the closed form HSL to RGB conversion.
// Out-of-range saturation or lightness is not clamped.
func (c HSL) RGB() (r, g, b float64) {
	s := c.S / 100
	l := c.L / 100
	a := s * math.Min(l, 1-l)
	f := func(n float64) float64 {
		k := math.Mod(n+c.H/30, 12)
		return l - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
	}
	return 255 * f(0), 255 * f(8), 255 * f(4)
}
