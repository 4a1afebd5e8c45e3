// SPDX-License-Identifier: Apache-2.0

// Package wire implements the byte-level primitives of the AMF3 wire format:
// the U29 variable-length integer, the big-endian IEEE-754 double, the fixed
// 32-bit big-endian integer, and the growable write buffer / bounded read
// cursor those primitives are layered on.
package wire

import "fmt"

// ErrShortBuffer is returned by Cursor read methods when fewer bytes remain
// than the primitive being decoded requires. Callers at the package boundary
// translate this into a position-tagged amf3.DecodeError.
var ErrShortBuffer = fmt.Errorf("wire: short buffer")
