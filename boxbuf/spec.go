// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package boxbuf

import (
	"fmt"
	"io"
)

const (
	// magicLen is the length of the boxbuf magic number in bytes.
	magicLen = 8
	// MinMajorVersion is the minimum major version of the boxbuf
	// format that this package can read.
	MinMajorVersion = 0x01
	// MaxMajorVersion is the maximum major version of the boxbuf
	// format that this package can read.
	MaxMajorVersion = 0x01
	// maxTableLen is the largest size-prefixed table this package will
	// read or write. It exists so that a corrupted or malicious size
	// prefix cannot cause a huge allocation.
	maxTableLen = 1 << 30
)

// magic contains the boxbuf magic number.
//
// The fifth byte is the major version of data written by this package,
// and the last byte is the patch version.
var magic = [magicLen]byte{0x6f, 0x76, 0x6c, 0x62, 0x01, 0x6f, 0x76, 0x01}

// Version is a version of the boxbuf format.
type Version struct {
	// Major is the major version of the boxbuf format.
	Major uint8
	// Patch is the patch version of the boxbuf format.
	Patch uint8
}

// String returns the version in the form Major.Patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Patch)
}

// Magic reads the boxbuf magic number from a stream and, if it is
// valid, returns the format version. It does not read beyond the magic
// number.
//
// Calling this function will result in 8 bytes being read from the
// stream reader (unless there were fewer than 8 bytes available, in
// which case all available bytes in the stream are consumed).
func Magic(r io.Reader) (Version, error) {
	m := make([]byte, magicLen)
	if _, err := io.ReadFull(r, m); err != nil {
		return Version{}, wrapErr("failed to read magic number", err)
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[3] == magic[3] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return Version{m[4], m[7]}, nil
	}
	return Version{}, ErrInvalidMagic
}
