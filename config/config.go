// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the colorconv tool.
package config

import (
	"os"

	"cogentcore.org/doccolor/base/iox"
	"cogentcore.org/doccolor/grr"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct that contains all
// of the configuration options for the colorconv tool.
type Config struct {

	// Format is the output format: text, json, yaml, or toml.
	Format iox.Format `toml:"format"`

	// Precision is the number of significant digits used for
	// channels in text output, or -1 for the shortest exact form.
	Precision int `toml:"precision"`

	// Strict makes the tool fail when any input is not recognized.
	Strict bool `toml:"strict"`

	// Verbose shows info-level log messages.
	Verbose bool `toml:"verbose"`

	// Quiet only shows error-level log messages.
	Quiet bool `toml:"quiet"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:    iox.Text,
		Precision: -1,
	}
}

// Open returns the default configuration overridden by the
// values in the given TOML file. Unknown keys are an error.
func Open(filename string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(filename)
	if err != nil {
		return nil, grr.Wrap(err, "config.Open")
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, grr.Wrap(err, "config.Open", filename)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the config has an unknown format or a
// precision below -1, normalizing the format name otherwise.
func (c *Config) Validate() error {
	if c.Precision < -1 {
		return grr.Errorf("config: precision must be -1 or more, got %d", c.Precision)
	}
	f, err := iox.ParseFormat(string(c.Format))
	if err != nil {
		return grr.Wrap(err, "config")
	}
	c.Format = f
	return nil
}
