// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grr provides easy, context-wrapped error handling in Go.
package grr

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents an error with a base error and the
// context in which it occurred, outermost first.
type Error struct {
	Base    error
	Context []string
}

// Wrap wraps the given error into an [*Error] with the given
// context. It returns nil if the given error is nil.
func Wrap(err error, context ...string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Base:    err,
		Context: context,
	}
}

// New returns a new error with the given text, wrapped via [Wrap].
// It is the grr equivalent of [errors.New].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped via [Wrap]. It is the grr equivalent of [fmt.Errorf],
// so %w verbs are preserved for [errors.Is] and [errors.As].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the error as a string, prefixing the string of
// the base error with its context.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Base.Error()
	}
	return strings.Join(e.Context, ": ") + ": " + e.Base.Error()
}

// String returns the error as a string; see [Error.Error].
func (e *Error) String() string {
	return e.Error()
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}
