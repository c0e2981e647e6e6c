// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// BoxBatch is the root table of a boxbuf file.
type BoxBatch struct {
	_tab flatbuffers.Table
}

func GetRootAsBoxBatch(buf []byte, offset flatbuffers.UOffsetT) *BoxBatch {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &BoxBatch{}
	x.Init(buf, n+offset)
	return x
}

func GetSizePrefixedRootAsBoxBatch(buf []byte, offset flatbuffers.UOffsetT) *BoxBatch {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &BoxBatch{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *BoxBatch) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BoxBatch) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BoxBatch) Boxes(obj *Box, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * BoxSize
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *BoxBatch) BoxesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func BoxBatchStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func BoxBatchAddBoxes(builder *flatbuffers.Builder, boxes flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(boxes), 0)
}

func BoxBatchStartBoxesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(BoxSize, numElems, 4)
}

func BoxBatchEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
