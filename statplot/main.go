// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command statplot applies a statistical transform to CSV data and
// writes the result as a table or a plot.
//
// The input is a CSV file with a header row. Flags -x, -y, -z, -weight
// and -group name the columns the stat reads. Non-numeric columns are
// treated as discrete and mapped to 0, 1, 2, ... in sorted order.
// Stat settings are given with -opt as a shell-quoted list of
// key=value pairs, for example
//
//	statplot -stat density -x latency -opt 'bw=0.5 kernel=epanechnikov' data.csv
//
// The -format flag selects a go-gg table (table), a go-gg SVG plot
// (svg), a rasterized preview (png) or a gonum/plot rendering (gonum).
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/stat"
)

func main() {
	log.SetPrefix("statplot: ")
	log.SetFlags(0)

	var (
		flagStat   = flag.String("stat", "density", "apply stat `name`")
		flagX      = flag.String("x", "", "read x from `column` (default: first unused column)")
		flagY      = flag.String("y", "", "read y from `column` (default: next unused column)")
		flagZ      = flag.String("z", "", "read z from `column` (default: next unused column)")
		flagWeight = flag.String("weight", "", "read weights from `column`")
		flagGroup  = flag.String("group", "", "group rows by `column`")
		flagOpt    = flag.String("opt", "", "stat `options` as key=value pairs")
		flagFormat = flag.String("format", "table", "output `format`: table, svg, png or gonum")
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagWidth  = flag.Int("width", 640, "plot width in pixels")
		flagHeight = flag.Int("height", 480, "plot height in pixels")
		flagLogX   = flag.Bool("logx", false, "log-scale the x axis of png output")
		flagLogY   = flag.Bool("logy", false, "log-scale the y axis of png output")
		flagFlip   = flag.Bool("flip", false, "exchange the axes of png output")
		flagJitter = flag.Float64("jitter", 0, "jitter png points by up to `amount` in data units")
		flagHit    = flag.String("hit", "", "report the output rows under client `x,y` of png output")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nStats: %s\n", strings.Join(statNames(), ", "))
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts, err := parseOptions(*flagOpt)
	if err != nil {
		log.Fatal(err)
	}
	s, def, err := buildStat(*flagStat, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Read input.
	in := os.Stdin
	if flag.NArg() == 1 && flag.Arg(0) != "-" {
		in, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	src, err := readCSV(in)
	if err != nil {
		log.Fatal(err)
	}
	cols := roles{x: *flagX, y: *flagY, z: *flagZ, weight: *flagWeight, group: *flagGroup}
	data, err := cols.input(src, def.needs)
	if err != nil {
		log.Fatal(err)
	}

	// Apply the stat.
	var mapped []frame.Variable
	for _, v := range s.DefaultMapping() {
		mapped = append(mapped, v)
	}
	res := stat.Apply(s, data, frame.NewContext(data, mapped...), frame.TGroup)

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	r := newRenderer(*flagStat, s, def.shape, res, *flagWidth, *flagHeight)
	switch *flagFormat {
	case "table":
		tab, _ := labeled(res)
		err = table.Fprint(f, tab)
	case "svg":
		err = r.svg(f)
	case "png":
		if *flagOut == "" && isTerminal(f) {
			log.Fatal("refusing to write PNG to a terminal; use -o")
		}
		png := pngOptions{logX: *flagLogX, logY: *flagLogY, flip: *flagFlip, jitter: *flagJitter}
		if *flagHit != "" {
			if png.hit, err = parseVec(*flagHit); err != nil {
				log.Fatal(err)
			}
			png.report = func(rows []int) {
				log.Printf("hit rows %v", rows)
			}
		}
		err = r.png(f, png)
	case "gonum":
		err = r.gonum(f, gonumFormat(*flagOut))
	default:
		log.Fatalf("unknown format %q", *flagFormat)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// readCSV reads a CSV table with a header row. Columns whose values
// all parse as numbers are numeric.
func readCSV(r io.Reader) (*frame.Frame, error) {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}
	return frame.FromTable(table.TableFromStrings(rows[0], rows[1:], true)), nil
}

// roles names the input columns bound to each transform variable.
type roles struct {
	x, y, z, weight, group string
}

// input builds the stat input from src. Columns for x and for each
// role in needs default to the first columns of src not named by
// another role and not already bound.
func (c roles) input(src *frame.Frame, needs []string) (*frame.Frame, error) {
	vars := src.Variables()
	used := map[string]bool{}
	for _, name := range []string{c.x, c.y, c.z, c.weight, c.group} {
		if name != "" {
			used[name] = true
		}
	}
	pick := func(name string) (frame.Variable, error) {
		if name != "" {
			v, ok := src.Variable(name)
			if !ok {
				return v, fmt.Errorf("input has no column %q", name)
			}
			return v, nil
		}
		for _, v := range vars {
			if !used[v.Name] {
				used[v.Name] = true
				return v, nil
			}
		}
		return frame.Variable{}, fmt.Errorf("input has only %d columns", len(vars))
	}

	b := frame.NewBuilder()
	bind := func(tv frame.Variable, name string) error {
		v, err := pick(name)
		if err != nil {
			return err
		}
		b.PutNumeric(tv, numeric(src, v))
		return nil
	}
	if err := bind(frame.TX, c.x); err != nil {
		return nil, err
	}
	for _, role := range needs {
		var err error
		switch role {
		case "y":
			err = bind(frame.TY, c.y)
		case "z":
			err = bind(frame.TZ, c.z)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, opt := range []struct {
		tv   frame.Variable
		name string
	}{{frame.TWeight, c.weight}, {frame.TGroup, c.group}} {
		if opt.name == "" {
			continue
		}
		if err := bind(opt.tv, opt.name); err != nil {
			return nil, err
		}
	}
	return b.Done(), nil
}

// numeric returns column v of f as numbers. A discrete column is
// replaced by the index of each value in the sorted set of values.
func numeric(f *frame.Frame, v frame.Variable) []float64 {
	ss, ok := f.Column(v).([]string)
	if !ok {
		return f.Numeric(v)
	}
	levels := map[string]float64{}
	for _, s := range ss {
		levels[s] = 0
	}
	keys := make([]string, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		levels[k] = float64(i)
	}
	xs := make([]float64, len(ss))
	for i, s := range ss {
		xs[i] = levels[s]
	}
	return xs
}

// labeled returns the table of f with columns named by their labels,
// and the column name of each variable name.
func labeled(f *frame.Frame) (*table.Table, map[string]string) {
	b := table.NewBuilder(nil)
	names := map[string]string{}
	seen := map[string]bool{}
	for _, v := range f.Variables() {
		name := v.Label
		if name == "" || seen[name] {
			name = v.Name
		}
		seen[name] = true
		names[v.Name] = name
		b.Add(name, f.Column(v))
	}
	return b.Done(), names
}
