// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogama/overlap"
)

type genOptions struct {
	N       int    // Number of boxes to generate
	Seed    int64  // Random seed
	Extent  int64  // Minimum corners are drawn from [-Extent/2, Extent/2)
	MaxSize int64  // Maximum width and height
	Hilbert bool   // Sort boxes along a Hilbert curve before writing
	Output  string // Output boxbuf file
}

type pairsOptions struct {
	Input   string // Input boxbuf file
	Against string // Optional second boxbuf file to test Input against
	Method  Method
	IoU     bool // Print the IoU of every pair instead of adjacency lists
	Watch   bool // Recompute whenever an input file is written
}

type queryOptions struct {
	Input string
	Box   overlap.Box
}

type statsOptions struct {
	Input string
}

func parseGenFlags(args []string) (opts genOptions, err error) {
	fs := flag.NewFlagSet(commandGen, flag.ContinueOnError)
	fs.IntVar(&opts.N, "n", 1000, "Number of boxes to generate.")
	fs.Int64Var(&opts.Seed, "seed", 1, "Random seed.")
	fs.Int64Var(&opts.Extent, "extent", 100000, "Side of the square, centered on the origin, from which minimum corners are drawn.")
	fs.Int64Var(&opts.MaxSize, "max-size", 100, "Maximum box width and height.")
	fs.BoolVar(&opts.Hilbert, "hilbert", false, "Sort the boxes along a Hilbert curve, so that nearby boxes are stored near each other.")
	fs.StringVar(&opts.Output, "o", "", "Output boxbuf file.")

	if err = fs.Parse(args); err != nil {
		return
	}

	if opts.Output == "" {
		err = fmt.Errorf("%s: missing output file (-o)", commandGen)
	} else if opts.N < 0 {
		err = fmt.Errorf("%s: box count must not be negative (-n %d)", commandGen, opts.N)
	} else if opts.Extent < 1 || opts.Extent > 1<<32 {
		err = fmt.Errorf("%s: extent must be in [1, %d] (-extent %d)", commandGen, int64(1)<<32, opts.Extent)
	} else if opts.MaxSize < 1 || opts.MaxSize > math.MaxUint32 {
		err = fmt.Errorf("%s: max size must be in [1, %d] (-max-size %d)", commandGen, uint32(math.MaxUint32), opts.MaxSize)
	}
	return
}

func parsePairsFlags(args []string) (opts pairsOptions, err error) {
	var method string
	fs := flag.NewFlagSet(commandPairs, flag.ContinueOnError)
	fs.StringVar(&opts.Input, "i", "", "Input boxbuf file.")
	fs.StringVar(&opts.Against, "against", "", "Find overlaps between the input boxes and the boxes in this boxbuf file instead of among the input boxes.")
	fs.StringVar(&method, "method", "rts", "Batch algorithm, one of 'rts', 'sweep' or 'brute'.")
	fs.BoolVar(&opts.IoU, "iou", false, "Print the intersection over union of every overlapping pair.")
	fs.BoolVar(&opts.Watch, "watch", false, "Recompute whenever an input file is written.")

	if err = fs.Parse(args); err != nil {
		return
	}

	opts.Method = ParseMethod(method)
	if opts.Input == "" {
		err = fmt.Errorf("%s: missing input file (-i)", commandPairs)
	} else if opts.Method == "" {
		err = fmt.Errorf("%s: unknown method %q", commandPairs, method)
	} else if opts.Against != "" && opts.Method != MethodRTS {
		err = fmt.Errorf("%s: -against requires method %s, not %s", commandPairs, MethodRTS, opts.Method)
	}
	return
}

func parseQueryFlags(args []string) (opts queryOptions, err error) {
	var box string
	fs := flag.NewFlagSet(commandQuery, flag.ContinueOnError)
	fs.StringVar(&opts.Input, "i", "", "Input boxbuf file.")
	fs.StringVar(&box, "box", "", "Query box as x,y,width,height.")

	if err = fs.Parse(args); err != nil {
		return
	}

	if opts.Input == "" {
		err = fmt.Errorf("%s: missing input file (-i)", commandQuery)
	} else if opts.Box, err = parseBox(box); err != nil {
		err = fmt.Errorf("%s: %w", commandQuery, err)
	}
	return
}

func parseStatsFlags(args []string) (opts statsOptions, err error) {
	fs := flag.NewFlagSet(commandStats, flag.ContinueOnError)
	fs.StringVar(&opts.Input, "i", "", "Input boxbuf file.")

	if err = fs.Parse(args); err != nil {
		return
	}

	if opts.Input == "" {
		err = fmt.Errorf("%s: missing input file (-i)", commandStats)
	}
	return
}

// parseBox parses a box in the form x,y,width,height.
func parseBox(value string) (b overlap.Box, err error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		err = fmt.Errorf("invalid box %q (want x,y,width,height)", value)
		return
	}

	var x, y int64
	var w, h uint64
	if x, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32); err != nil {
		err = fmt.Errorf("invalid box x: %w", err)
	} else if y, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32); err != nil {
		err = fmt.Errorf("invalid box y: %w", err)
	} else if w, err = strconv.ParseUint(strings.TrimSpace(parts[2]), 10, 32); err != nil {
		err = fmt.Errorf("invalid box width: %w", err)
	} else if h, err = strconv.ParseUint(strings.TrimSpace(parts[3]), 10, 32); err != nil {
		err = fmt.Errorf("invalid box height: %w", err)
	} else if w == 0 || h == 0 {
		err = fmt.Errorf("invalid box %q (width and height must be positive)", value)
	} else {
		b = overlap.Box{X: int32(x), Y: int32(y), Width: uint32(w), Height: uint32(h)}
	}
	return
}
