// SPDX-License-Identifier: Apache-2.0

package amf3

// Module constants.
const (
	// Version is the codec version string.
	Version = "1.0.0"
	// Name is the codec's module name.
	Name = "amf3"
)

// globalCodec backs the package-level Encode/Decode helpers, built lazily
// on first use.
var globalCodec *Codec

// GetGlobalCodec returns the shared default-configured Codec, creating it
// on first use.
func GetGlobalCodec() *Codec {
	if globalCodec == nil {
		globalCodec = NewCodec()
	}
	return globalCodec
}

// SetGlobalOptions replaces the shared Codec with one built from opts.
func SetGlobalOptions(opts ...Option) {
	globalCodec = NewCodec(opts...)
}

// Encode serializes value to AMF3 bytes using the shared global Codec.
func Encode(value any) ([]byte, error) {
	return GetGlobalCodec().Encode(value)
}

// Decode deserializes an AMF3 value using the shared global Codec.
func Decode(data []byte, startPosition int) (any, int, error) {
	return GetGlobalCodec().Decode(data, startPosition)
}

// Pack frames primitive values using the shared global Codec.
func Pack(format string, args ...any) ([]byte, error) {
	return GetGlobalCodec().Pack(format, args...)
}

// Unpack reads primitive values using the shared global Codec.
func Unpack(format string, data []byte, startPosition int) ([]any, int, error) {
	return GetGlobalCodec().Unpack(format, data, startPosition)
}
