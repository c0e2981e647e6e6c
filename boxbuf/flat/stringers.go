// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	"fmt"
	"strings"
)

// String returns a string summarizing the BoxBatch. The returned value
// is a summary and not meant to be exhaustive.
func (rcv *BoxBatch) String() string {
	var b strings.Builder
	b.WriteString("BoxBatch{")
	if err := safeFlatBuffersInteraction(func() error {
		n := rcv.BoxesLength()
		stringInt64(&b, "NumBoxes", int64(n))
		stringKey(&b, ",Bounds")
		if n == 0 {
			b.WriteString("<nil>")
			return nil
		}
		var box Box
		rcv.Boxes(&box, 0)
		x1, y1, x2, y2 := box.corners()
		for i := 1; i < n; i++ {
			rcv.Boxes(&box, i)
			bx1, by1, bx2, by2 := box.corners()
			x1, y1 = min(x1, bx1), min(y1, by1)
			x2, y2 = max(x2, bx2), max(y2, by2)
		}
		fmt.Fprintf(&b, "[%d,%d,%d,%d]", x1, y1, x2, y2)
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	b.WriteByte('}')
	return b.String()
}

// String returns a string representation of the box in the form
// [X,Y,Width,Height].
func (rcv *Box) String() string {
	var s string
	if err := safeFlatBuffersInteraction(func() error {
		s = fmt.Sprintf("[%d,%d,%d,%d]", rcv.X(), rcv.Y(), rcv.Width(), rcv.Height())
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	return s
}

func (rcv *Box) corners() (x1, y1, x2, y2 int64) {
	x1, y1 = int64(rcv.X()), int64(rcv.Y())
	x2, y2 = x1+int64(rcv.Width()), y1+int64(rcv.Height())
	return
}

func stringKey(b *strings.Builder, key string) {
	b.WriteString(key)
	b.WriteByte(':')
}

func stringInt64(b *strings.Builder, key string, value int64) {
	stringKey(b, key)
	fmt.Fprintf(b, "%d", value)
}

func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}
