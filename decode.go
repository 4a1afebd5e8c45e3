// SPDX-License-Identifier: Apache-2.0

package amf3

import (
	"github.com/flashkit/amf3/internal/reftable"
	"github.com/flashkit/amf3/internal/wire"
)

// decodeCtx carries the per-call state of a single Decode invocation,
// mirroring encodeCtx's per-call reference tables.
type decodeCtx struct {
	opts    *Options
	cur     *wire.Cursor
	strings *reftable.Strings
	values  *reftable.Values
	traits  *reftable.Traits
}

// decode is the Codec.Decode implementation.
// startPosition is 1-based; the returned position is the 1-based offset
// of the first unread byte after the decoded value.
func decode(data []byte, startPosition int, opts *Options) (any, int, error) {
	if startPosition < 1 {
		startPosition = 1
	}
	ctx := &decodeCtx{
		opts:    opts,
		cur:     wire.NewCursor(data, startPosition-1),
		strings: reftable.NewStrings(),
		values:  reftable.NewValues(),
		traits:  reftable.NewTraits(),
	}
	v, err := ctx.decodeValue(0)
	if err != nil {
		return nil, 0, err
	}
	return v, ctx.cur.Pos() + 1, nil
}

// fail wraps err with the 1-based position at which it was detected
//: the cursor position at the moment of failure, since a
// failed read never advances it.
func (ctx *decodeCtx) fail(err error) error {
	return newDecodeError(ctx.cur.Pos(), mapWireErr(err))
}

// mapWireErr translates a low-level wire.ErrShortBuffer into the codec's
// own ErrInsufficientData sentinel, so callers matching on
// amf3 error kinds never need to know about the internal/wire package.
func mapWireErr(err error) error {
	if err == wire.ErrShortBuffer {
		return ErrInsufficientData
	}
	return err
}

// decodeValue reads one marker byte and dispatches to its payload reader
//, enforcing the recursion-depth guard and applying the
// post-decode compound transform hook.
func (ctx *decodeCtx) decodeValue(depth int) (any, error) {
	if depth > ctx.opts.MaxDepth {
		return nil, ctx.fail(ErrRecursionDetected)
	}
	marker, err := ctx.cur.ReadByte()
	if err != nil {
		return nil, ctx.fail(err)
	}

	var result any
	switch marker {
	case markerUndefined:
		result = Undefined
	case markerNull:
		result = Null
	case markerFalse:
		result = false
	case markerTrue:
		result = true
	case markerInteger:
		u29, err := ctx.cur.ReadU29()
		if err != nil {
			return nil, ctx.fail(err)
		}
		result = int(wire.SignExtendU29(u29))
	case markerDouble:
		d, err := ctx.cur.ReadDouble()
		if err != nil {
			return nil, ctx.fail(err)
		}
		result = d
	case markerString:
		s, err := ctx.readStringPayload()
		if err != nil {
			return nil, err
		}
		result = s
	case markerXMLDoc:
		v, err := ctx.readBlob(func(b []byte) any { return &XMLDoc{Data: b} })
		if err != nil {
			return nil, err
		}
		result = v
	case markerDate:
		v, err := ctx.decodeDate()
		if err != nil {
			return nil, err
		}
		result = v
	case markerArray:
		v, err := ctx.decodeArray(depth)
		if err != nil {
			return nil, err
		}
		result = v
	case markerObject:
		v, err := ctx.decodeObject(depth)
		if err != nil {
			return nil, err
		}
		result = v
	case markerXML:
		v, err := ctx.readBlob(func(b []byte) any { return &XML{Data: b} })
		if err != nil {
			return nil, err
		}
		result = v
	case markerByteArray:
		v, err := ctx.readBlob(func(b []byte) any { return &ByteArray{Data: b} })
		if err != nil {
			return nil, err
		}
		result = v
	case markerVectorInt:
		v, err := ctx.decodeVectorInt()
		if err != nil {
			return nil, err
		}
		result = v
	case markerVectorUint:
		v, err := ctx.decodeVectorUint()
		if err != nil {
			return nil, err
		}
		result = v
	case markerVectorFloat:
		v, err := ctx.decodeVectorDouble()
		if err != nil {
			return nil, err
		}
		result = v
	case markerVectorObj:
		v, err := ctx.decodeVectorObject(depth)
		if err != nil {
			return nil, err
		}
		result = v
	case markerDictionary:
		v, err := ctx.decodeDictionary(depth)
		if err != nil {
			return nil, err
		}
		result = v
	default:
		// Report the position of the marker byte itself, which ReadByte
		// has already consumed.
		return nil, newDecodeError(ctx.cur.Pos()-1, ErrInvalidTypeMarker)
	}

	if ctx.opts.DecodeHook != nil && isCompound(result) {
		result = ctx.opts.DecodeHook(result)
	}
	return result, nil
}

func isCompound(v any) bool {
	switch v.(type) {
	case *Object, *Array, *Dictionary, *Date, *ByteArray, *XML, *XMLDoc,
		*VectorInt, *VectorUint, *VectorDouble, *VectorObject:
		return true
	default:
		return false
	}
}

// readStringPayload reads a bare ref-or-inline string: used
// both for STRING values and for object/array key strings.
func (ctx *decodeCtx) readStringPayload() (string, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return "", ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		s, ok := ctx.strings.Get(idx)
		if !ok {
			return "", ctx.fail(ErrInvalidReference)
		}
		return s, nil
	}
	length := int(u29 >> 1)
	b, err := ctx.cur.ReadBytes(length)
	if err != nil {
		return "", ctx.fail(err)
	}
	s := string(b)
	if length > 0 {
		ctx.strings.Register(s)
	}
	return s, nil
}

// readBlob reads a ref-or-inline byte run and wraps it with construct.
func (ctx *decodeCtx) readBlob(construct func([]byte) any) (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	length := int(u29 >> 1)
	raw, err := ctx.cur.ReadBytes(length)
	if err != nil {
		return nil, ctx.fail(err)
	}
	data := append([]byte(nil), raw...)
	v := construct(data)
	ctx.values.Register(v)
	return v, nil
}

func (ctx *decodeCtx) decodeDate() (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	d, err := ctx.cur.ReadDouble()
	if err != nil {
		return nil, ctx.fail(err)
	}
	v := &Date{Value: d}
	ctx.values.Register(v)
	return v, nil
}

func (ctx *decodeCtx) decodeArray(depth int) (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	denseLen := int(u29 >> 1)
	arr := &Array{}
	ctx.values.Register(arr)

	for {
		key, err := ctx.readStringPayload()
		if err != nil {
			return nil, err
		}
		if key == "" {
			break
		}
		val, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if arr.AssocFields == nil {
			arr.AssocFields = map[string]any{}
		}
		arr.AssocKeys = append(arr.AssocKeys, key)
		arr.AssocFields[key] = val
	}

	arr.Dense = make([]any, denseLen)
	for i := 0; i < denseLen; i++ {
		v, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Dense[i] = v
	}
	return arr, nil
}

func (ctx *decodeCtx) decodeDictionary(depth int) (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	n := int(u29 >> 1)
	weakByte, err := ctx.cur.ReadByte()
	if err != nil {
		return nil, ctx.fail(err)
	}
	d := &Dictionary{Weak: weakByte != 0}
	ctx.values.Register(d)
	for i := 0; i < n; i++ {
		k, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		v, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if k == Undefined {
			continue
		}
		d.Keys = append(d.Keys, k)
		d.Values = append(d.Values, v)
	}
	return d, nil
}

func (ctx *decodeCtx) decodeVectorInt() (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	n := int(u29 >> 1)
	fixedByte, err := ctx.cur.ReadByte()
	if err != nil {
		return nil, ctx.fail(err)
	}
	vec := &VectorInt{Fixed: fixedByte != 0, Values: make([]int32, n)}
	ctx.values.Register(vec)
	for i := 0; i < n; i++ {
		u, err := ctx.cur.ReadU32()
		if err != nil {
			return nil, ctx.fail(err)
		}
		vec.Values[i] = int32(u)
	}
	return vec, nil
}

func (ctx *decodeCtx) decodeVectorUint() (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	n := int(u29 >> 1)
	fixedByte, err := ctx.cur.ReadByte()
	if err != nil {
		return nil, ctx.fail(err)
	}
	vec := &VectorUint{Fixed: fixedByte != 0, Values: make([]uint32, n)}
	ctx.values.Register(vec)
	for i := 0; i < n; i++ {
		u, err := ctx.cur.ReadU32()
		if err != nil {
			return nil, ctx.fail(err)
		}
		vec.Values[i] = u
	}
	return vec, nil
}

func (ctx *decodeCtx) decodeVectorDouble() (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	n := int(u29 >> 1)
	fixedByte, err := ctx.cur.ReadByte()
	if err != nil {
		return nil, ctx.fail(err)
	}
	vec := &VectorDouble{Fixed: fixedByte != 0, Values: make([]float64, n)}
	ctx.values.Register(vec)
	for i := 0; i < n; i++ {
		d, err := ctx.cur.ReadDouble()
		if err != nil {
			return nil, ctx.fail(err)
		}
		vec.Values[i] = d
	}
	return vec, nil
}

func (ctx *decodeCtx) decodeVectorObject(depth int) (any, error) {
	u29, err := ctx.cur.ReadU29()
	if err != nil {
		return nil, ctx.fail(err)
	}
	if u29&1 == 0 {
		idx := int(u29 >> 1)
		v, ok := ctx.values.Get(idx)
		if !ok {
			return nil, ctx.fail(ErrInvalidReference)
		}
		return v, nil
	}
	n := int(u29 >> 1)
	fixedByte, err := ctx.cur.ReadByte()
	if err != nil {
		return nil, ctx.fail(err)
	}
	typeName, err := ctx.readStringPayload()
	if err != nil {
		return nil, err
	}
	vec := &VectorObject{Fixed: fixedByte != 0, TypeName: typeName, Values: make([]any, n)}
	ctx.values.Register(vec)
	for i := 0; i < n; i++ {
		v, err := ctx.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		vec.Values[i] = v
	}
	return vec, nil
}
