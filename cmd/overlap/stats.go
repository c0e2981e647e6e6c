// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/gogama/overlap"
	"github.com/gogama/overlap/boxbuf"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func mainStats(args []string) error {
	opts, err := parseStatsFlags(args)
	if err != nil {
		return err
	}
	return runStats(opts, os.Stdout)
}

// runStats writes a summary of the input batch and of the shape of the
// index built over it.
func runStats(opts statsOptions, w io.Writer) error {
	boxes, err := boxbuf.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Boxes: %d\n", len(boxes))
	if len(boxes) == 0 {
		return nil
	}

	areas := make([]float64, len(boxes))
	for i := range boxes {
		areas[i] = float64(overlap.Area(boxes[i]))
	}
	fmt.Fprintf(w, "Area: min=%.0f max=%.0f mean=%.2f\n", floats.Min(areas), floats.Max(areas), stat.Mean(areas, nil))

	start := time.Now()
	index := overlap.NewIndex(boxes)
	glog.V(1).Infof("Built %s in %s.", index, time.Since(start))

	s := index.Stats()
	fmt.Fprintf(w, "Depth: %d\nInternal: %d\nLeaves: %d\n", s.Depth, s.Internal, s.Leaves())

	sizes := make([]float64, len(s.LeafSizes))
	for i, size := range s.LeafSizes {
		sizes[i] = float64(size)
	}
	mean, stddev := stat.Mean(sizes, nil), 0.0
	if len(sizes) > 1 {
		stddev = stat.StdDev(sizes, nil)
	}
	sort.Float64s(sizes)
	median := stat.Quantile(0.5, stat.Empirical, sizes, nil)
	fmt.Fprintf(w, "LeafSize: min=%.0f max=%.0f median=%.0f mean=%.2f stddev=%.2f\n", floats.Min(sizes), floats.Max(sizes), median, mean, stddev)

	return nil
}
