// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package boxbuf

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// FlatBuffers' Go code doesn't use Go error handling, so any attempt to
// read corrupt FlatBuffers data may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixedTable writes a finished, size-prefixed FlatBuffers
// buffer to an output stream. The buffer must consist of exactly the
// size prefix followed by the number of bytes it announces.
func writeSizePrefixedTable(w io.Writer, buf []byte) (n int, err error) {
	var size uint32
	if size, err = tableSize(buf); err != nil {
		return
	} else if uint64(flatbuffers.SizeUint32)+uint64(size) != uint64(len(buf)) {
		err = fmtErr("FlatBuffers buffer length does not match the size prefix (Len=%d, size=%d)", len(buf), size)
		return
	} else if size > maxTableLen {
		err = fmtErr("table size %d exceeds limit %d", size, maxTableLen)
		return
	}
	return w.Write(buf)
}

// readSizePrefixedTable reads one size-prefixed FlatBuffers table from
// a stream. The returned buffer includes the size prefix, so it may be
// passed to a GetSizePrefixedRootAs function at offset zero.
func readSizePrefixedTable(r io.Reader) ([]byte, error) {
	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, wrapErr("failed to read table size", err)
	}
	size, _ := tableSize(prefix)
	if size > maxTableLen {
		return nil, fmtErr("table size %d exceeds limit %d", size, maxTableLen)
	} else if size < flatbuffers.SizeUOffsetT {
		return nil, fmtErr("table size %d too small for root offset", size)
	}
	buf := make([]byte, flatbuffers.SizeUint32+int(size))
	copy(buf, prefix)
	if _, err := io.ReadFull(r, buf[flatbuffers.SizeUint32:]); err != nil {
		return nil, wrapErr("failed to read table (size=%d)", err, size)
	}
	return buf, nil
}

func tableSize(buf []byte) (uint32, error) {
	if len(buf) < flatbuffers.SizeUint32 {
		return 0, fmtErr("buffer too small for size prefix (Len=%d)", len(buf))
	}
	return flatbuffers.GetUint32(buf), nil
}
