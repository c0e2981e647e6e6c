// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// BoxSize is the encoded size of a Box struct in bytes.
const BoxSize = 16

// Box is a fixed-size FlatBuffers struct holding one box.
type Box struct {
	_tab flatbuffers.Struct
}

func (rcv *Box) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Box) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *Box) X() int32 {
	return rcv._tab.GetInt32(rcv._tab.Pos + flatbuffers.UOffsetT(0))
}

func (rcv *Box) Y() int32 {
	return rcv._tab.GetInt32(rcv._tab.Pos + flatbuffers.UOffsetT(4))
}

func (rcv *Box) Width() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + flatbuffers.UOffsetT(8))
}

func (rcv *Box) Height() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + flatbuffers.UOffsetT(12))
}

// CreateBox prepends a Box struct to the builder. Within a vector,
// boxes must be created in reverse order.
func CreateBox(builder *flatbuffers.Builder, x int32, y int32, width uint32, height uint32) flatbuffers.UOffsetT {
	builder.Prep(4, BoxSize)
	builder.PrependUint32(height)
	builder.PrependUint32(width)
	builder.PrependInt32(y)
	builder.PrependInt32(x)
	return builder.Offset()
}
