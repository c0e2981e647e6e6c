// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	_ "embed"
)

// Schema contains the FlatBuffers schema package flat implements.
//
//go:embed "box_batch.fbs"
var Schema string
