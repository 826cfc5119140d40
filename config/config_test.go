// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/doccolor/base/iox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "colorconv.toml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, iox.Text, cfg.Format)
	assert.Equal(t, -1, cfg.Precision)
	assert.NoError(t, cfg.Validate())
}

func TestOpen(t *testing.T) {
	cfg, err := Open(writeFile(t, "format = \"YAML\"\nstrict = true\n"))
	require.NoError(t, err)
	assert.Equal(t, iox.YAML, cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, -1, cfg.Precision)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Open(writeFile(t, "colour = \"red\"\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "format = \"xml\"\n"))
	assert.ErrorContains(t, err, "unknown format")

	_, err = Open(writeFile(t, "precision = -2\n"))
	assert.ErrorContains(t, err, "precision must be -1 or more")
}

func TestValidatePrecision(t *testing.T) {
	cfg := Default()
	cfg.Precision = 0
	assert.NoError(t, cfg.Validate())
	cfg.Precision = -5
	assert.Error(t, cfg.Validate())
}
