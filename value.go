// SPDX-License-Identifier: Apache-2.0

package amf3

// This file defines the host value model bridge: the
// canonical in-memory representation the encoder classifies and the
// decoder produces. A single concrete representation is used throughout
// rather than an abstract interface keyed off reflect.Type — AMF3 values
// are already dynamically typed, so there is no Go type to reflect over
// on the encode side.

// undefinedType is the singleton type of Undefined.
type undefinedType struct{}

// Undefined is the sentinel AMF3 UNDEFINED value — distinct from Null.
var Undefined = undefinedType{}

// nullType is the singleton type of Null.
type nullType struct{}

// Null is the sentinel AMF3 typed-NULL value,
// distinct from Undefined and from the Go zero value `nil`. Encode also
// accepts a bare Go `nil` as shorthand for Null.
var Null = nullType{}

// Object is the canonical compound value for the AMF3 OBJECT marker, and
// is what the decoder produces for OBJECT payloads. On encode, a host
// value only needs to populate DynKeys/DynFields — the encoder always
// emits the anonymous dynamic shape regardless of what Class, Dynamic or
// StaticNames carry, since named, non-dynamic traits are a decode-only
// concern (AMF3 input may have come from a classed source; this codec
// never originates one).
type Object struct {
	// Class is the traits class name; empty means anonymous.
	Class string
	// Dynamic marks an open-ended (dynamic) traits record.
	Dynamic bool
	// Externalizable marks an object whose single opaque payload is Data.
	Externalizable bool

	// StaticNames/StaticValues are the traits' static member list, in
	// declaration order, filled by the decoder. The encoder never emits
	// non-dynamic statics: it writes these pairs as dynamic fields ahead
	// of DynKeys (see type doc above).
	StaticNames  []string
	StaticValues []any

	// DynKeys preserves encounter order for DynFields; DynFields holds
	// the dynamic (open-ended) key/value tail.
	DynKeys   []string
	DynFields map[string]any

	// Data carries an externalizable object's opaque payload; HasData
	// distinguishes "no payload" from "payload is a typed Null".
	Data    any
	HasData bool
}

// NewObject returns an empty anonymous dynamic Object, the shape the
// encoder always emits for a Go-originated associative value.
func NewObject() *Object {
	return &Object{Dynamic: true, DynFields: map[string]any{}}
}

// Set appends (or overwrites in place, preserving original position) a
// dynamic field.
func (o *Object) Set(key string, val any) {
	if o.DynFields == nil {
		o.DynFields = map[string]any{}
	}
	if _, exists := o.DynFields[key]; !exists {
		o.DynKeys = append(o.DynKeys, key)
	}
	o.DynFields[key] = val
}

// Array is the canonical compound value for the AMF3 ARRAY marker: a
// dense (positionally indexed) portion plus an optional legacy
// associative portion. The encoder writes the associative portion from
// AssocKeys/AssocFields, so an Array built with NewArray gets an empty
// one; the decoder fills AssocKeys when a wire array carried one.
type Array struct {
	Dense       []any
	AssocKeys   []string
	AssocFields map[string]any
}

// NewArray wraps a slice of dense elements as an Array.
func NewArray(dense ...any) *Array {
	return &Array{Dense: dense}
}

// Dictionary is the canonical compound value for the AMF3 DICTIONARY
// marker: ordered key/value pairs where keys may be of any AMF3-encodable
// type.
type Dictionary struct {
	Weak   bool
	Keys   []any
	Values []any
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Set appends a key/value pair.
func (d *Dictionary) Set(key, val any) {
	d.Keys = append(d.Keys, key)
	d.Values = append(d.Values, val)
}

// Date wraps the single double-precision millisecond timestamp an AMF3
// DATE carries.
type Date struct {
	Value float64
}

// ByteArray, XML and XMLDoc are opaque byte blobs. They are distinct Go
// types — rather than a shared struct with a kind tag — because they
// occupy the same complex-value reference table but are never
// interchangeable on the wire.
type ByteArray struct{ Data []byte }
type XML struct{ Data []byte }
type XMLDoc struct{ Data []byte }

// VectorInt, VectorUint and VectorDouble are AMF3's fixed-element-type
// numeric vectors. Fixed marks the wire's "fixed length" flag, which this
// codec treats as informational only.
type VectorInt struct {
	Fixed  bool
	Values []int32
}

type VectorUint struct {
	Fixed  bool
	Values []uint32
}

type VectorDouble struct {
	Fixed  bool
	Values []float64
}

// VectorObject is AMF3's heterogeneous object vector. TypeName is the
// (commonly empty, and not otherwise interpreted) object-type-name string
// every VECTOR_OBJECT payload carries.
type VectorObject struct {
	Fixed    bool
	TypeName string
	Values   []any
}
