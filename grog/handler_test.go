// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandlerPlain(t *testing.T) {
	prev := UserLevel
	t.Cleanup(func() { UserLevel = prev })
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	l := slog.New(newHandler(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))))
	l.Debug("hidden")
	l.Info("parsed", "input", "#fff")
	l.Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "time=")
	assert.Contains(t, out, `level=INFO msg=parsed input=#fff`)
	assert.Contains(t, out, `level=ERROR msg=failed`)
}

func TestHandlerColored(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))
	s := levelString(out, slog.LevelWarn)
	assert.Contains(t, s, "WARN")
	assert.NotEqual(t, "WARN", s)
}

func TestDefaultLogger(t *testing.T) {
	prev, prevLevel := slog.Default(), UserLevel
	t.Cleanup(func() {
		slog.SetDefault(prev)
		UserLevel = prevLevel
	})
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
