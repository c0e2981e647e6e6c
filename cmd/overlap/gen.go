// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/gogama/overlap"
	"github.com/gogama/overlap/boxbuf"
	"github.com/gogama/overlap/hilbert"
	"github.com/golang/glog"
)

func mainGen(args []string) error {
	opts, err := parseGenFlags(args)
	if err != nil {
		return err
	}

	boxes := generateBoxes(opts)
	if err = boxbuf.WriteFile(opts.Output, boxes); err != nil {
		return err
	}

	glog.Infof("Wrote %d boxes to %s (seed=%d).", len(boxes), opts.Output, opts.Seed)
	return nil
}

// generateBoxes returns opts.N random boxes, optionally in Hilbert
// order. The same options always produce the same boxes.
func generateBoxes(opts genOptions) []overlap.Box {
	r := rand.New(rand.NewSource(opts.Seed))
	boxes := make([]overlap.Box, opts.N)
	for i := range boxes {
		boxes[i] = overlap.Box{
			X:      int32(r.Int63n(opts.Extent) - opts.Extent/2),
			Y:      int32(r.Int63n(opts.Extent) - opts.Extent/2),
			Width:  uint32(1 + r.Int63n(opts.MaxSize)),
			Height: uint32(1 + r.Int63n(opts.MaxSize)),
		}
	}
	if opts.Hilbert {
		hilbert.Sort(boxes)
	}
	return boxes
}
