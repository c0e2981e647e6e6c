// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogama/overlap"
	"github.com/gogama/overlap/boxbuf"
	"github.com/golang/glog"
)

func mainPairs(args []string) error {
	opts, err := parsePairsFlags(args)
	if err != nil {
		return err
	}

	if !opts.Watch {
		return runPairs(opts, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchPairs(ctx, opts, os.Stdout)
}

// runPairs reads the input files and writes the overlapping pairs to w.
//
// Without IoU, one line is written per input box, listing the indices
// of the boxes it overlaps in ascending order. With IoU, one line is
// written per overlapping pair, giving both indices and the pair's
// intersection over union.
func runPairs(opts pairsOptions, w io.Writer) error {
	src, err := boxbuf.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	dst := src
	start := time.Now()
	var adj [][]uint32
	if opts.Against != "" {
		if dst, err = boxbuf.ReadFile(opts.Against); err != nil {
			return err
		}
		adj = overlap.FindAllBetween(src, dst)
	} else {
		adj = opts.Method.findAll()(src)
	}
	glog.V(1).Infof("Found overlaps of %d boxes against %d boxes with method %s in %s.", len(src), len(dst), opts.Method, time.Since(start))

	bw := bufio.NewWriter(w)
	for i, list := range adj {
		slices.Sort(list)
		if opts.IoU {
			for _, j := range list {
				if opts.Against == "" && j < uint32(i) {
					continue // Symmetric pair already written.
				}
				fmt.Fprintf(bw, "%d %d %s\n", i, j, overlap.IoU(src[i], dst[j]).StringFixed(overlap.IoUPrecision))
			}
		} else {
			fmt.Fprintf(bw, "%d:", i)
			for _, j := range list {
				fmt.Fprintf(bw, " %d", j)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// watchPairs runs runPairs once, then again every time one of the input
// files is written or re-created, until ctx is done. Failed runs are
// logged and do not stop the watch.
func watchPairs(ctx context.Context, opts pairsOptions, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: failed to create file watcher: %w", commandPairs, err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	for _, name := range []string{opts.Input, opts.Against} {
		if name == "" {
			continue
		}
		name = filepath.Clean(name)
		watched[name] = true
		if err = watcher.Add(filepath.Dir(name)); err != nil {
			return fmt.Errorf("%s: failed to watch %s: %w", commandPairs, name, err)
		}
	}

	rerun := func() {
		if err := runPairs(opts, w); err != nil {
			glog.Warningf("%s: %v", commandPairs, err)
		}
	}

	rerun()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if watched[filepath.Clean(event.Name)] && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				glog.Infof("%s changed, recomputing overlaps.", event.Name)
				rerun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("%s: file watcher: %w", commandPairs, err)
		}
	}
}
