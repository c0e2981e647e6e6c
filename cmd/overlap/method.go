// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/gogama/overlap"
)

// Method selects the batch algorithm used by the pairs command.
type Method string

const (
	// MethodRTS builds one index over the batch and queries it once per
	// box.
	MethodRTS Method = "RTS"
	// MethodSweep sweeps a line across the batch.
	MethodSweep Method = "SWEEP"
	// MethodBrute compares every pair of boxes.
	MethodBrute Method = "BRUTE"
)

// ParseMethod parses a method name, ignoring case and surrounding
// space. It returns the empty Method if the name is not recognized.
func ParseMethod(value string) Method {
	switch Method(strings.TrimSpace(strings.ToUpper(value))) {
	case MethodRTS:
		return MethodRTS
	case MethodSweep:
		return MethodSweep
	case MethodBrute:
		return MethodBrute
	}
	return ""
}

func (m Method) String() string {
	return strings.ToLower(string(m))
}

func (m Method) findAll() func([]overlap.Box) [][]uint32 {
	switch m {
	case MethodSweep:
		return overlap.LineSweep
	case MethodBrute:
		return overlap.BruteForce
	default:
		return overlap.FindAll
	}
}
