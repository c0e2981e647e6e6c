// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package boxbuf

import (
	"bufio"
	"os"

	"github.com/gogama/overlap"
)

// ReadFile reads a batch of boxes from the named boxbuf file.
func ReadFile(name string) ([]overlap.Box, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

// WriteFile writes a batch of boxes to the named file, creating it if
// necessary and truncating it otherwise.
func WriteFile(name string, boxes []overlap.Box) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err = Write(w, boxes); err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
