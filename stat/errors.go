// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooManyPoints is wrapped by the error returned when a
	// stat is configured with more evaluation points than it
	// supports.
	ErrTooManyPoints = errors.New("too many evaluation points")

	// ErrGridShape is wrapped by errors about contour input that
	// does not form a regular grid.
	ErrGridShape = errors.New("data is not a regular grid")
)

// A ConfigError reports an invalid stat configuration.
type ConfigError struct {
	Stat  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("stat %s: %s: %v", e.Stat, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func tooMany(stat, field string, n, max int) error {
	return &ConfigError{stat, field, fmt.Errorf("%w (%d > %d)", ErrTooManyPoints, n, max)}
}

func checkN(stat, field string, n, max int) error {
	if n > max {
		return tooMany(stat, field, n, max)
	}
	if n < 2 {
		return &ConfigError{stat, field, fmt.Errorf("need at least 2 points, got %d", n)}
	}
	return nil
}

// An UnknownOptionError reports an option string that names none of
// the supported values.
type UnknownOptionError struct {
	Kind    string
	Value   string
	Options []string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unsupported %s %q; use one of: %s", e.Kind, e.Value, strings.Join(e.Options, ", "))
}

// parseOption looks up s, case-insensitively, in names. Each entry
// of names is a list of aliases; the first alias is the canonical
// name listed in errors.
func parseOption(kind, s string, names [][]string) (int, error) {
	ls := strings.ToLower(s)
	for i, aliases := range names {
		for _, a := range aliases {
			if ls == a {
				return i, nil
			}
		}
	}
	opts := make([]string, len(names))
	for i, aliases := range names {
		opts[i] = aliases[0]
	}
	return 0, &UnknownOptionError{kind, s, opts}
}
