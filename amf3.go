// SPDX-License-Identifier: Apache-2.0

// Package amf3 implements a bidirectional codec for Action Message Format
// version 3 (AMF3), the compact binary serialization format used by Adobe
// Flash/Flex RPC. It converts between AMF3 byte streams and the dynamic
// value model defined in value.go.
//
// It exposes a reusable Codec holding Options, plus package-level
// Encode/Decode helpers backed by a lazily-constructed global Codec, for
// callers that don't need per-instance configuration.
package amf3

// Codec encodes and decodes AMF3 values under a fixed set of Options. It
// holds no per-call state — the three reference tables live on the
// encode/decode context built fresh for each call — so a single Codec may be
// reused across sequential calls, but must not be invoked concurrently
// for the same call sequence without external synchronization if LogCb
// or hooks touch shared state.
type Codec struct {
	opts *Options
}

// NewCodec constructs a Codec, applying opts over the package defaults.
func NewCodec(opts ...Option) *Codec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Codec{opts: o}
}

// Encode serializes value to AMF3 bytes.
func (c *Codec) Encode(value any) ([]byte, error) {
	return encode(value, c.opts)
}

// Decode deserializes an AMF3 value starting at the given 1-based byte
// position, returning the decoded value and the 1-based position
// immediately after it.
func (c *Codec) Decode(data []byte, startPosition int) (any, int, error) {
	return decode(data, startPosition, c.opts)
}

// Pack frames primitive values per a pack/unpack format string.
func (c *Codec) Pack(format string, args ...any) ([]byte, error) {
	return pack(format, args...)
}

// Unpack reads primitive values per a pack/unpack format string, starting
// at the given 1-based byte position.
func (c *Codec) Unpack(format string, data []byte, startPosition int) ([]any, int, error) {
	return unpack(format, data, startPosition)
}
