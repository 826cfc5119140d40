// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"encoding/json"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Color must be usable wherever a standard color is.
var _ color.Color = Color{}

func TestAsRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"opaque red", Color{1, 0, 0, 1}, color.RGBA{255, 0, 0, 255}},
		{"transparent", Color{1, 1, 1, 0}, color.RGBA{}},
		{"half white", Color{1, 1, 1, 0.5}, color.RGBA{128, 128, 128, 128}},
		{"clamped", Color{2, -1, 0.5, 3}, color.RGBA{255, 0, 128, 255}},
		{"nan alpha", Color{1, 1, 1, math.NaN()}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.AsRGBA())
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Color{1, 0, 0, 1}.Hex())
	assert.Equal(t, "#0000ffcc", MustParse("#0000ffcc").Hex())
	assert.Equal(t, "#ffffff", Color{2, 2, 2, 2}.Hex())
	assert.Equal(t, "#11223344", MustParse("#1234").Hex())
}

func TestColorful(t *testing.T) {
	c := MustParse("hsl(210, 50%, 40%)")
	cf := c.Colorful()
	h, s, l := cf.Hsl()
	assert.InDelta(t, 210, h, 1e-6)
	assert.InDelta(t, 0.5, s, 1e-6)
	assert.InDelta(t, 0.4, l, 1e-6)
	assert.Equal(t, c.Hex(), cf.Hex())
}

func TestString(t *testing.T) {
	assert.Equal(t, "rgba(1, 0, 0, 1)", Color{1, 0, 0, 1}.String())
	assert.Equal(t, "rgba(0, 0, 1, 0.5)", From256RGB(0, 0, 255, 0.5).String())
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(Color{1, 0, 0.5, 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"red":1,"green":0,"blue":0.5,"alpha":1}`, string(b))

	var c Color
	require.NoError(t, json.Unmarshal(b, &c))
	assert.Equal(t, Color{1, 0, 0.5, 1}, c)

	nan, ok := FromHSL("hsla(0, 100%, 50%, .)")
	require.True(t, ok)
	b, err = json.Marshal(nan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"red":1,"green":0,"blue":0,"alpha":null}`, string(b))

	require.NoError(t, json.Unmarshal(b, &c))
	assert.Equal(t, 1.0, c.Red)
	assert.True(t, math.IsNaN(c.Alpha))

	b, err = json.Marshal(Color{math.Inf(1), 0, 0, 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"red":null,"green":0,"blue":0,"alpha":1}`, string(b))
}
