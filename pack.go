// SPDX-License-Identifier: Apache-2.0

package amf3

import (
	"fmt"

	"github.com/flashkit/amf3/internal/wire"
)

// pack is the Codec.Pack implementation: a primitive
// framing helper layered directly on [WIRE], independent of the
// reference-table machinery encode/decode use — each format code consumes
// exactly one argument and appends its fixed- or length-prefixed
// encoding. Unlike Encode, pack never classifies a value; the caller
// names the wire shape explicitly via the format code.
func pack(format string, args ...any) ([]byte, error) {
	if len(format) != len(args) {
		return nil, fmt.Errorf("amf3: pack: %d format codes, %d arguments", len(format), len(args))
	}
	buf := wire.NewBuffer(len(format) * 4)
	for i, code := range format {
		arg := args[i]
		switch code {
		case 'b':
			v, ok := argToInt64(arg)
			if !ok || v < 0 || v > 0xFF {
				return nil, ErrValueOutOfRange
			}
			buf.WriteByte(byte(v))
		case 'i':
			v, ok := argToInt64(arg)
			if !ok || v < minEncodableInt || v > maxEncodableInt {
				return nil, ErrValueOutOfRange
			}
			buf.WriteU29(uint32(int32(v)))
		case 'I':
			v, ok := argToInt64(arg)
			if !ok || v < -(1<<31) || v > 1<<31-1 {
				return nil, ErrValueOutOfRange
			}
			buf.WriteU32(uint32(int32(v)))
		case 'u':
			v, ok := argToInt64(arg)
			if !ok || v < 0 || v > wire.U29Max {
				return nil, ErrValueOutOfRange
			}
			buf.WriteU29(uint32(v))
		case 'U':
			v, ok := argToInt64(arg)
			if !ok || v < 0 || v > 1<<32-1 {
				return nil, ErrValueOutOfRange
			}
			buf.WriteU32(uint32(v))
		case 'd':
			f, ok := argToFloat64(arg)
			if !ok {
				return nil, ErrValueOutOfRange
			}
			buf.WriteDouble(f)
		case 's':
			b, ok := argToBytes(arg)
			if !ok {
				return nil, ErrValueOutOfRange
			}
			buf.WriteU29(uint32(len(b)))
			buf.WriteBytes(b)
		case 'S':
			b, ok := argToBytes(arg)
			if !ok {
				return nil, ErrValueOutOfRange
			}
			buf.WriteU32(uint32(len(b)))
			buf.WriteBytes(b)
		default:
			return nil, fmt.Errorf("amf3: pack: unknown format code %q", code)
		}
	}
	return buf.Bytes(), nil
}

func argToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func argToFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		if iv, ok := argToInt64(v); ok {
			return float64(iv), true
		}
		return 0, false
	}
}

func argToBytes(v any) ([]byte, bool) {
	switch b := v.(type) {
	case string:
		return []byte(b), true
	case []byte:
		return b, true
	default:
		return nil, false
	}
}
