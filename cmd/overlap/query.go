// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gogama/overlap"
	"github.com/gogama/overlap/boxbuf"
	"github.com/golang/glog"
)

func mainQuery(args []string) error {
	opts, err := parseQueryFlags(args)
	if err != nil {
		return err
	}
	return runQuery(opts, os.Stdout)
}

// runQuery writes one line for every input box overlapping the query
// box, giving the box's index and the box itself, in index order.
func runQuery(opts queryOptions, w io.Writer) error {
	boxes, err := boxbuf.ReadFile(opts.Input)
	if err != nil {
		return err
	}
	if len(boxes) == 0 {
		glog.Warningf("%s: %s contains no boxes.", commandQuery, opts.Input)
		return nil
	}

	index := overlap.NewIndex(boxes)
	found := index.FindIntersections(opts.Box)
	slices.Sort(found)
	glog.V(1).Infof("%s overlaps %d of %d boxes.", opts.Box, len(found), index.Len())

	bw := bufio.NewWriter(w)
	for _, i := range found {
		fmt.Fprintf(bw, "%d %s\n", i, boxes[i])
	}
	return bw.Flush()
}
