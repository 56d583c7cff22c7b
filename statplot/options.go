// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// options are the key=value settings given with -opt.
type options struct {
	vals map[string]string
	used map[string]bool
	err  error
}

// parseOptions splits s into words with shell quoting rules. Each word
// must have the form key=value.
func parseOptions(s string) (*options, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("parsing -opt: %v", err)
	}
	o := &options{vals: map[string]string{}, used: map[string]bool{}}
	for _, w := range words {
		i := strings.Index(w, "=")
		if i <= 0 {
			return nil, fmt.Errorf("option %q is not key=value", w)
		}
		k := strings.ToLower(w[:i])
		if _, ok := o.vals[k]; ok {
			return nil, fmt.Errorf("option %q given more than once", k)
		}
		o.vals[k] = w[i+1:]
	}
	return o, nil
}

func (o *options) lookup(key string) (string, bool) {
	v, ok := o.vals[key]
	if ok {
		o.used[key] = true
	}
	return v, ok
}

// fail records the first error in parsing an option.
func (o *options) fail(key string, err error) {
	if o.err == nil {
		o.err = fmt.Errorf("option %s: %v", key, err)
	}
}

func (o *options) Int(key string, def int) int {
	s, ok := o.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		o.fail(key, err)
		return def
	}
	return v
}

func (o *options) Float(key string, def float64) float64 {
	s, ok := o.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		o.fail(key, err)
		return def
	}
	return v
}

// Floats parses a comma-separated list of numbers.
func (o *options) Floats(key string) []float64 {
	s, ok := o.lookup(key)
	if !ok {
		return nil
	}
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			o.fail(key, err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

func (o *options) Bool(key string, def bool) bool {
	s, ok := o.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		o.fail(key, err)
		return def
	}
	return v
}

func (o *options) String(key, def string) string {
	s, ok := o.lookup(key)
	if !ok {
		return def
	}
	return s
}

// Enum parses option key with parse, if it is set.
func (o *options) Enum(key string, parse func(string) error) {
	s, ok := o.lookup(key)
	if !ok {
		return
	}
	if err := parse(s); err != nil {
		o.fail(key, err)
	}
}

// Err returns the first parse error, or an error naming any options
// that were never read.
func (o *options) Err() error {
	if o.err != nil {
		return o.err
	}
	var unused []string
	for k := range o.vals {
		if !o.used[k] {
			unused = append(unused, k)
		}
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		return fmt.Errorf("unknown options: %s", strings.Join(unused, ", "))
	}
	return nil
}
