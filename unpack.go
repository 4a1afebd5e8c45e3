// SPDX-License-Identifier: Apache-2.0

package amf3

import (
	"fmt"

	"github.com/flashkit/amf3/internal/wire"
)

// unpack is the Codec.Unpack implementation: the inverse
// of pack, reading one value per format code starting at the given
// 1-based position and returning the decoded values plus the 1-based
// position immediately after the last one consumed.
func unpack(format string, data []byte, startPosition int) ([]any, int, error) {
	if startPosition < 1 {
		startPosition = 1
	}
	cur := wire.NewCursor(data, startPosition-1)
	out := make([]any, 0, len(format))

	for _, code := range format {
		switch code {
		case 'b':
			v, err := cur.ReadByte()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, int(v))
		case 'i':
			u29, err := cur.ReadU29()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, int(wire.SignExtendU29(u29)))
		case 'I':
			u32, err := cur.ReadU32()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, int(int32(u32)))
		case 'u':
			u29, err := cur.ReadU29()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, int(u29))
		case 'U':
			u32, err := cur.ReadU32()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, uint(u32))
		case 'd':
			d, err := cur.ReadDouble()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, d)
		case 's':
			u29, err := cur.ReadU29()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			b, err := cur.ReadBytes(int(u29))
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, string(b))
		case 'S':
			u32, err := cur.ReadU32()
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			b, err := cur.ReadBytes(int(u32))
			if err != nil {
				return nil, 0, newDecodeError(cur.Pos(), mapWireErr(err))
			}
			out = append(out, string(b))
		default:
			return nil, 0, fmt.Errorf("amf3: unpack: unknown format code %q", code)
		}
	}

	return out, cur.Pos() + 1, nil
}
