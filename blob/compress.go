// SPDX-License-Identifier: Apache-2.0

// Package blob provides an optional deflate compressor for AMF3
// BYTEARRAY/XML/XMLDOC payloads. It is not part of the core wire format
// — a host that wants to shrink a blob before
// wrapping it in a ByteArray, or expand one after decoding, can call
// Deflate/Inflate itself; Encode/Decode never invoke this package.
//
// Wraps github.com/klauspost/compress behind a small Deflate/Inflate
// pair, the same shape as a one-algorithm compressor/decompressor pair.
package blob

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate compresses data with DEFLATE at the default compression level.
// An empty input returns nil, matching the pack's compressor convention
// that there is nothing useful to compress.
func Deflate(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("amf3/blob: deflate: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("amf3/blob: deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("amf3/blob: deflate: %w", err)
	}
	return buf.Bytes(), nil
}

// Inflate reverses Deflate.
func Inflate(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("amf3/blob: inflate: %w", err)
	}
	return out, nil
}
