// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package boxbuf

import (
	"io"

	"github.com/gogama/overlap"
	"github.com/gogama/overlap/boxbuf/flat"
	flatbuffers "github.com/google/flatbuffers/go"
)

// maxBoxes is the largest batch that fits in a table of maxTableLen
// bytes, leaving room for the vector length and the table itself.
const maxBoxes = maxTableLen/flat.BoxSize - 4

// Write writes a batch of boxes to w in the boxbuf format, returning
// the number of bytes written.
//
// Every box must have positive width and height. If any box is
// invalid, or the batch is too large, nothing is written.
func Write(w io.Writer, boxes []overlap.Box) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}

	// Validate before writing anything.
	if len(boxes) > maxBoxes {
		err = fmtErr("too many boxes (%d > %d)", len(boxes), maxBoxes)
		return
	}
	for i := range boxes {
		if boxes[i].Width == 0 || boxes[i].Height == 0 {
			err = fmtErr("box %d has zero width or height (%s)", i, boxes[i])
			return
		}
	}

	// Build the table.
	b := flatbuffers.NewBuilder(flat.BoxSize*len(boxes) + 64)
	flat.BoxBatchStartBoxesVector(b, len(boxes))
	for i := len(boxes) - 1; i >= 0; i-- {
		flat.CreateBox(b, boxes[i].X, boxes[i].Y, boxes[i].Width, boxes[i].Height)
	}
	vec := b.EndVector(len(boxes))
	flat.BoxBatchStart(b)
	flat.BoxBatchAddBoxes(b, vec)
	b.FinishSizePrefixed(flat.BoxBatchEnd(b))

	// Write the magic number.
	m, err := w.Write(magic[:])
	n += m
	if err != nil {
		err = wrapErr("failed to write magic number", err)
		return
	}

	// Write the table.
	m, err = writeSizePrefixedTable(w, b.FinishedBytes())
	n += m
	if err != nil {
		err = wrapErr("failed to write box batch", err)
	}
	return
}

// Read reads a batch of boxes in the boxbuf format from r.
//
// Read returns an error if the stream does not start with a supported
// magic number, if the table is truncated, corrupt, or larger than this
// package allows, or if any box has zero width or height.
func Read(r io.Reader) ([]overlap.Box, error) {
	v, err := Magic(r)
	if err != nil {
		return nil, err
	}
	if v.Major < MinMajorVersion || v.Major > MaxMajorVersion {
		return nil, fmtErr("unsupported major version %d (supported: %d to %d)", v.Major, MinMajorVersion, MaxMajorVersion)
	}

	buf, err := readSizePrefixedTable(r)
	if err != nil {
		return nil, err
	}

	var boxes []overlap.Box
	err = safeFlatBuffersInteraction(func() error {
		batch := flat.GetSizePrefixedRootAsBoxBatch(buf, 0)
		n := batch.BoxesLength()
		if n < 0 || uint64(n)*flat.BoxSize > uint64(len(buf)) {
			return fmtErr("box count %d exceeds table size %d", n, len(buf)-flatbuffers.SizeUint32)
		}
		boxes = make([]overlap.Box, n)
		var fb flat.Box
		for i := range boxes {
			batch.Boxes(&fb, i)
			if fb.Width() == 0 || fb.Height() == 0 {
				return fmtErr("box %d has zero width or height (%s)", i, fb.String())
			}
			boxes[i] = overlap.Box{X: fb.X(), Y: fb.Y(), Width: fb.Width(), Height: fb.Height()}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr("failed to read box batch", err)
	}

	return boxes, nil
}
