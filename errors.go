// SPDX-License-Identifier: Apache-2.0

package amf3

import "fmt"

// Sentinel error kinds. Encode/decode failures wrap one of
// these with positional (decode) or structural (encode) context; callers
// that only care about the kind use errors.Is against these values.
var (
	ErrInsufficientData       = fmt.Errorf("amf3: insufficient data")
	ErrInvalidTypeMarker      = fmt.Errorf("amf3: invalid type marker")
	ErrInvalidReference       = fmt.Errorf("amf3: invalid reference")
	ErrReferenceTableOverflow = fmt.Errorf("amf3: reference table overflow")
	ErrRecursionDetected      = fmt.Errorf("amf3: recursion detected")
	ErrUnsupportedValueKind   = fmt.Errorf("amf3: unsupported value kind")
	ErrValueOutOfRange        = fmt.Errorf("amf3: value out of range")
	ErrMalformedTraits        = fmt.Errorf("amf3: malformed traits")
)

// DecodeError wraps a sentinel error with the 1-based byte position at
// which the fault was detected.
type DecodeError struct {
	Pos int
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("amf3: decode: %s at position %d", e.Err, e.Pos)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// newDecodeError builds a DecodeError reporting a 1-based position from a
// 0-based internal cursor position.
func newDecodeError(pos0 int, err error) *DecodeError {
	return &DecodeError{Pos: pos0 + 1, Err: err}
}

// EncodeError wraps a sentinel error with a structural breadcrumb path
// describing where in the value graph the failure occurred, e.g. `[3] => ["name"] => amf3: unsupported value kind`.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("amf3: encode: %s", e.Err)
	}
	return fmt.Sprintf("amf3: encode: %s%s", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// prependBreadcrumb annotates err with an outer-to-inner path segment. If
// err is already an *EncodeError, the segment is prepended to its path;
// otherwise a fresh EncodeError is created.
func prependBreadcrumb(segment string, err error) error {
	if ee, ok := err.(*EncodeError); ok {
		return &EncodeError{Path: segment + ee.Path, Err: ee.Err}
	}
	return &EncodeError{Path: segment, Err: err}
}

// indexBreadcrumb formats the `[3] => ` style segment for a dense array
// index.
func indexBreadcrumb(i int) string {
	return fmt.Sprintf("[%d] => ", i)
}

// keyBreadcrumb formats the `["name"] => ` style segment for a string key.
func keyBreadcrumb(key string) string {
	return fmt.Sprintf("[%q] => ", key)
}
