// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf16"

	"cogentcore.org/doccolor/colors/hsl"
	"cogentcore.org/doccolor/grr"
	"github.com/dlclark/regexp2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrNotRecognized is the error wrapped by [Parse] when
// a string is not in a supported color notation.
var ErrNotRecognized = errors.New("not a recognized color")

// HexDigit returns the value (0-15) of the given character as a
// hexadecimal digit. Letters are case-insensitive. It is total:
// any character that is not a hexadecimal digit yields 0.
func HexDigit(code rune) int {
	if code < '0' {
		return 0
	}
	if code <= '9' {
		return int(code - '0')
	}
	if code < 'a' {
		code += 'a' - 'A'
	}
	if code >= 'a' && code <= 'f' {
		return int(code-'a') + 10
	}
	return 0
}

// FromHex parses the given #RGB, #RGBA, #RRGGBB, or #RRGGBBAA
// string, returning false if it does not start with # or has any
// other length. Lengths are counted in UTF-16 code units. Characters
// that are not hexadecimal digits are decoded as 0 by [HexDigit].
func FromHex(text string) (Color, bool) {
	if len(text) == 0 || text[0] != '#' {
		return Color{}, false
	}
	u := utf16.Encode([]rune(text))
	short := func(i int) float64 {
		return float64(HexDigit(rune(u[i]))*0x11) / 255
	}
	long := func(i int) float64 {
		return float64(HexDigit(rune(u[i]))*0x10+HexDigit(rune(u[i+1]))) / 255
	}
	switch len(u) {
	case 4:
		return Color{short(1), short(2), short(3), 1}, true
	case 5:
		return Color{short(1), short(2), short(3), short(4)}, true
	case 7:
		return Color{long(1), long(3), long(5), 1}, true
	case 9:
		return Color{long(1), long(3), long(5), long(7)}, true
	}
	return Color{}, false
}

// hslPattern matches hsl(H, S%, L%) and hsla(H, S%, L%, A) anywhere in
// a string, with ECMAScript character classes.
var hslPattern = regexp2.MustCompile(`hsl(a?)\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*(?:,\s*([\d.]+))?\)`, regexp2.ECMAScript|regexp2.IgnoreCase)

// FromHSL parses the given hsl(H, S%, L%) or hsla(H, S%, L%, A) string,
// where the hue is in degrees and the saturation and lightness are
// integer percentages. The string must start with a lowercase "hsl";
// the rest of the keyword is case-insensitive. It returns false if the
// string does not match, or if the alpha argument is present without
// the "a" suffix or missing with it. The alpha is not range-checked.
func FromHSL(text string) (Color, bool) {
	if !strings.HasPrefix(text, "hsl") {
		return Color{}, false
	}
	m, err := hslPattern.FindStringMatch(text)
	if err != nil || m == nil {
		return Color{}, false
	}
	hasAlpha := m.GroupByNumber(1).Length > 0
	alpha := m.GroupByNumber(5)
	if hasAlpha != (len(alpha.Captures) > 0) {
		return Color{}, false
	}
	r, g, b := hsl.New(number(m.GroupByNumber(2).String()), number(m.GroupByNumber(3).String()), number(m.GroupByNumber(4).String())).RGB()
	c := Color{Red: r / 255, Green: g / 255, Blue: b / 255, Alpha: 1}
	if hasAlpha {
		c.Alpha = number(alpha.String())
	}
	return c, true
}

// number returns the leading decimal number in s,
// or NaN if s does not start with one.
func number(s string) float64 {
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return math.NaN()
	}
	return f
}

// FromString parses the given string as a hex color and then as an
// HSL color, returning false if it is neither.
func FromString(text string) (Color, bool) {
	if c, ok := FromHex(text); ok {
		return c, true
	}
	return FromHSL(text)
}

// Parse parses the given string as a hex or HSL color. It returns an
// error wrapping [ErrNotRecognized] if it is neither; see [MustParse]
// and [LogParse] for versions that do not return an error.
func Parse(text string) (Color, error) {
	if c, ok := FromString(text); ok {
		return c, nil
	}
	return Color{}, grr.Wrap(fmt.Errorf("%w: %q", ErrNotRecognized, text), "colors.Parse")
}

// MustParse parses the given string as a hex or HSL color.
// It panics if it is neither; see [Parse].
func MustParse(text string) Color {
	return grr.Must1(Parse(text))
}

// LogParse parses the given string as a hex or HSL color.
// It logs an error and returns the zero Color if it is
// neither; see [Parse].
func LogParse(text string) Color {
	return grr.Log1(Parse(text))
}
