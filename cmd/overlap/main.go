// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command overlap generates batches of boxes and finds the overlapping
// pairs among them.
//
// Usage:
//
//	overlap [glog flags] <command> [command flags]
//
// The commands are:
//
//	gen     write a random batch of boxes to a boxbuf file
//	pairs   print, for every box, the boxes it overlaps
//	query   print the boxes overlapping one query box
//	stats   print the shape of the index built over a batch
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
)

const (
	commandGen   = "gen"
	commandPairs = "pairs"
	commandQuery = "query"
	commandStats = "stats"
)

var commands = []string{commandGen, commandPairs, commandQuery, commandStats}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <%s> [command flags]\n", os.Args[0], strings.Join(commands, "|"))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		glog.Exitf("Please specify a command [%s].", strings.Join(commands, "|"))
	}
	cmd, args := args[0], args[1:]

	var err error
	switch cmd {
	case commandGen:
		err = mainGen(args)
	case commandPairs:
		err = mainPairs(args)
	case commandQuery:
		err = mainQuery(args)
	case commandStats:
		err = mainStats(args)
	default:
		glog.Exitf("Unrecognized command %q. Command must be one of [%s].", cmd, strings.Join(commands, "|"))
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		glog.Exit(err)
	}
}
