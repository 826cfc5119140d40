// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox encodes values in the structured output
// formats supported by the doccolor commands.
package iox

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/doccolor/grr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	// Text is plain, line-oriented text, which callers render themselves.
	Text Format = "text"

	// JSON is indented JSON.
	JSON Format = "json"

	// YAML is YAML.
	YAML Format = "yaml"

	// TOML is TOML. The encoded value must be a struct or map.
	TOML Format = "toml"
)

// Formats are all of the supported formats.
var Formats = []Format{Text, JSON, YAML, TOML}

// ParseFormat returns the [Format] with the given case-insensitive name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, ff := range Formats {
		if f == ff {
			return f, nil
		}
	}
	return "", grr.Errorf("iox.ParseFormat: unknown format %q (must be one of %v)", name, Formats)
}

// Write encodes the given value to the given writer in the given
// structured format. [Text] is not a structured format and results
// in an error.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return grr.Wrap(enc.Encode(v), "iox.Write", "json")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return grr.Wrap(err, "iox.Write", "yaml")
		}
		return grr.Wrap(enc.Close(), "iox.Write", "yaml")
	case TOML:
		return grr.Wrap(toml.NewEncoder(w).Encode(v), "iox.Write", "toml")
	}
	return grr.Wrap(fmt.Errorf("format %q is not a structured format", f), "iox.Write")
}
