// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package overlap

const packageName = "overlap: "

func textPanic(text string) {
	panic(packageName + text)
}
