// SPDX-License-Identifier: Apache-2.0

package amf3

import (
	"math"

	"github.com/flashkit/amf3/internal/reftable"
	"github.com/flashkit/amf3/internal/wire"
)

// anonTraitsSingleton is the identity every anonymous-dynamic Object
// shares in the traits table: the encoder only ever
// originates this one traits shape, so a single package-level sentinel
// pointer is enough to make "have we emitted it yet" a reftable lookup.
var anonTraitsSingleton = &struct{ anonymous bool }{}

// encodeCtx carries the per-call state of a single Encode invocation: the
// three reference tables and the output buffer (the recursion depth is
// passed down the walk as an argument) — all per-call, never shared across invocations, so a single Codec can
// safely be reused for repeated, independent encode calls.
type encodeCtx struct {
	opts    *Options
	buf     *wire.Buffer
	strings *reftable.Strings
	values  *reftable.Values
	traits  *reftable.Traits
}

// encode is the Codec.Encode implementation. The
// scratch buffer comes from wire's shared pool and is released once its
// bytes have been copied into the result, amortizing allocations across
// repeated calls.
func encode(value any, opts *Options) ([]byte, error) {
	buf := wire.NewPooledBuffer()
	defer buf.Release()
	ctx := &encodeCtx{
		opts:    opts,
		buf:     buf,
		strings: reftable.NewStrings(),
		values:  reftable.NewValues(),
		traits:  reftable.NewTraits(),
	}
	if err := ctx.encodeValue(value, 0); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (ctx *encodeCtx) logf(depth int, format string, args ...any) {
	if ctx.opts.Verbose && ctx.opts.LogCb != nil {
		indent := make([]byte, depth*2)
		for i := range indent {
			indent[i] = ' '
		}
		ctx.opts.LogCb(string(indent)+format+"\n", args...)
	}
}

// encodeValue classifies v and emits its marker and
// payload, applying the transform hook first (§4.4.1) and enforcing the
// recursion-depth guard (§4.4.3, §7 RecursionDetected).
func (ctx *encodeCtx) encodeValue(v any, depth int) error {
	if depth > ctx.opts.MaxDepth {
		return ErrRecursionDetected
	}

	if ctx.opts.EncodeHook != nil {
		if nv, ok := ctx.opts.EncodeHook(v); ok {
			v = nv
		}
	}
	if tr, ok := v.(interface{ TransformAMF3() any }); ok {
		v = tr.TransformAMF3()
	} else if obj, ok := v.(*Object); ok && obj.DynFields != nil {
		if fn, ok := obj.DynFields[ctx.opts.TransformEventName].(func() any); ok {
			v = fn()
		}
	}

	ctx.logf(depth, "encode %T", v)

	switch val := v.(type) {
	case nil:
		ctx.buf.WriteByte(markerNull)
		return nil
	case undefinedType:
		ctx.buf.WriteByte(markerUndefined)
		return nil
	case nullType:
		ctx.buf.WriteByte(markerNull)
		return nil
	case bool:
		if val {
			ctx.buf.WriteByte(markerTrue)
		} else {
			ctx.buf.WriteByte(markerFalse)
		}
		return nil
	case string:
		ctx.buf.WriteByte(markerString)
		return ctx.writeStringPayload(val)
	case []byte:
		return ctx.encodeBlob(markerByteArray, val, &ByteArray{Data: val})

	case int:
		return ctx.encodeNumber(float64(val))
	case int8:
		return ctx.encodeNumber(float64(val))
	case int16:
		return ctx.encodeNumber(float64(val))
	case int32:
		return ctx.encodeNumber(float64(val))
	case int64:
		return ctx.encodeNumber(float64(val))
	case uint:
		return ctx.encodeNumber(float64(val))
	case uint8:
		return ctx.encodeNumber(float64(val))
	case uint16:
		return ctx.encodeNumber(float64(val))
	case uint32:
		return ctx.encodeNumber(float64(val))
	case uint64:
		return ctx.encodeNumber(float64(val))
	case float32:
		return ctx.encodeNumber(float64(val))
	case float64:
		return ctx.encodeNumber(val)

	case *Array:
		return ctx.encodeArray(val, depth)
	case []any:
		return ctx.encodeArray(&Array{Dense: val}, depth)

	case *Object:
		return ctx.encodeObject(val, depth)
	case map[string]any:
		return ctx.encodeObject(objectFromMap(val), depth)

	case *Dictionary:
		return ctx.encodeDictionary(val, depth)
	case map[any]any:
		return ctx.encodeDictionary(dictionaryFromMap(val), depth)

	case *Date:
		ctx.buf.WriteByte(markerDate)
		writePayload, err := ctx.encodeComplexRef(val)
		if err != nil || !writePayload {
			return err
		}
		ctx.buf.WriteU29(1)
		ctx.buf.WriteDouble(val.Value)
		return nil

	case *ByteArray:
		return ctx.encodeBlob(markerByteArray, val.Data, val)
	case *XML:
		return ctx.encodeBlob(markerXML, val.Data, val)
	case *XMLDoc:
		return ctx.encodeBlob(markerXMLDoc, val.Data, val)

	case *VectorInt:
		return ctx.encodeVectorInt(val)
	case *VectorUint:
		return ctx.encodeVectorUint(val)
	case *VectorDouble:
		return ctx.encodeVectorDouble(val)
	case *VectorObject:
		return ctx.encodeVectorObject(val, depth)

	default:
		return ErrUnsupportedValueKind
	}
}

// encodeNumber classifies a numeric value: it
// is INTEGER iff it is exactly integral and fits [-2^28, 2^28-1];
// otherwise it is DOUBLE. This holds regardless of whether the Go value
// came in as an integer- or float-kinded type.
func (ctx *encodeCtx) encodeNumber(f float64) error {
	if f == math.Trunc(f) && f >= minEncodableInt && f <= maxEncodableInt {
		ctx.buf.WriteByte(markerInteger)
		ctx.buf.WriteU29(uint32(int32(f)))
		return nil
	}
	ctx.buf.WriteByte(markerDouble)
	ctx.buf.WriteDouble(f)
	return nil
}

// writeStringPayload writes a bare (markerless) ref-or-inline string, used
// both for STRING values and for object/array key strings. The empty
// string is always inline, never referenced.
func (ctx *encodeCtx) writeStringPayload(s string) error {
	if s == "" {
		ctx.buf.WriteU29(1)
		return nil
	}
	idx, isNew, err := ctx.strings.Intern(s)
	if err != nil {
		if err == reftable.ErrOverflow {
			return ErrReferenceTableOverflow
		}
		return err
	}
	if !isNew {
		ctx.buf.WriteU29(uint32(idx) << 1)
		return nil
	}
	ctx.buf.WriteU29(uint32(len(s))<<1 | 1)
	ctx.buf.WriteBytes([]byte(s))
	return nil
}

// encodeComplexRef interns v (by identity) in the complex-value table. If
// v was already interned, it writes the reference U29 and returns
// writePayload=false; otherwise it returns true, leaving it to the caller
// to write its own inline header (whose shape differs per AMF3 type) and
// payload. Interning happens before the caller recurses into v's
// contents, so a value that (directly or transitively) contains itself
// naturally becomes a back-reference on second sight rather than looping
// forever. Cycles are permitted rather than rejected outright, since
// MaxDepth already bounds non-cyclic runaway nesting.
func (ctx *encodeCtx) encodeComplexRef(v any) (writePayload bool, err error) {
	idx, isNew, err := ctx.values.Intern(v)
	if err != nil {
		if err == reftable.ErrOverflow {
			return false, ErrReferenceTableOverflow
		}
		return false, err
	}
	if !isNew {
		ctx.buf.WriteU29(uint32(idx) << 1)
		return false, nil
	}
	return true, nil
}

func (ctx *encodeCtx) encodeArray(a *Array, depth int) error {
	ctx.buf.WriteByte(markerArray)
	writePayload, err := ctx.encodeComplexRef(a)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(a.Dense))<<1 | 1)
	for _, k := range a.AssocKeys {
		if err := ctx.writeStringPayload(k); err != nil {
			return err
		}
		if err := ctx.encodeValue(a.AssocFields[k], depth+1); err != nil {
			return prependBreadcrumb(keyBreadcrumb(k), err)
		}
	}
	ctx.buf.WriteU29(1) // empty-key terminator
	for i, elem := range a.Dense {
		if err := ctx.encodeValue(elem, depth+1); err != nil {
			return prependBreadcrumb(indexBreadcrumb(i), err)
		}
	}
	return nil
}

// objectTraitsHeader returns the single merged U29 the OBJECT wire format
// folds the "new complex value" bit, the "new vs referenced traits" bit,
// and (when new) the traits descriptor into. The encoder only ever originates the anonymous dynamic shape, so
// the descriptor is always N=0, dynamic=1, externalizable=0.
func (ctx *encodeCtx) objectTraitsHeader() (header uint32, isNewTraits bool, err error) {
	idx, isNew, err := ctx.traits.Intern(anonTraitsSingleton)
	if err != nil {
		if err == reftable.ErrOverflow {
			return 0, false, ErrReferenceTableOverflow
		}
		return 0, false, err
	}
	if !isNew {
		inner := uint32(idx) << 1 // bit0=0: existing traits, value=index
		return (inner << 1) | 1, false, nil
	}
	const n, dyn, ext = 0, 1, 0
	descriptor := uint32(n<<2 | dyn<<1 | ext)
	inner := (descriptor << 1) | 1 // bit0=1: new traits definition follows
	return (inner << 1) | 1, true, nil
}

func (ctx *encodeCtx) encodeObject(o *Object, depth int) error {
	ctx.buf.WriteByte(markerObject)
	writePayload, err := ctx.encodeComplexRef(o)
	if err != nil || !writePayload {
		return err
	}
	header, isNewTraits, err := ctx.objectTraitsHeader()
	if err != nil {
		return err
	}
	ctx.buf.WriteU29(header)
	if isNewTraits {
		if err := ctx.writeStringPayload(""); err != nil { // anonymous: empty class name, N=0 statics
			return err
		}
	}
	// A decoded classed object fed back through Encode has its static
	// members folded into the dynamic tail, since the encoder never
	// re-emits non-dynamic traits — this keeps data instead of
	// silently discarding it on re-encode.
	for i, name := range o.StaticNames {
		if err := ctx.writeStringPayload(name); err != nil {
			return err
		}
		var v any
		if i < len(o.StaticValues) {
			v = o.StaticValues[i]
		}
		if err := ctx.encodeValue(v, depth+1); err != nil {
			return prependBreadcrumb(keyBreadcrumb(name), err)
		}
	}
	for _, k := range o.DynKeys {
		if err := ctx.writeStringPayload(k); err != nil {
			return err
		}
		if err := ctx.encodeValue(o.DynFields[k], depth+1); err != nil {
			return prependBreadcrumb(keyBreadcrumb(k), err)
		}
	}
	ctx.buf.WriteU29(1) // empty-key terminator
	return nil
}

func (ctx *encodeCtx) encodeDictionary(d *Dictionary, depth int) error {
	ctx.buf.WriteByte(markerDictionary)
	writePayload, err := ctx.encodeComplexRef(d)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(d.Keys))<<1 | 1)
	if d.Weak {
		ctx.buf.WriteByte(1)
	} else {
		ctx.buf.WriteByte(0)
	}
	for i := range d.Keys {
		if err := ctx.encodeValue(d.Keys[i], depth+1); err != nil {
			return prependBreadcrumb(indexBreadcrumb(i), err)
		}
		if err := ctx.encodeValue(d.Values[i], depth+1); err != nil {
			return prependBreadcrumb(indexBreadcrumb(i), err)
		}
	}
	return nil
}

func (ctx *encodeCtx) encodeBlob(marker byte, data []byte, identity any) error {
	ctx.buf.WriteByte(marker)
	writePayload, err := ctx.encodeComplexRef(identity)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(data))<<1 | 1)
	ctx.buf.WriteBytes(data)
	return nil
}

func (ctx *encodeCtx) encodeVectorInt(v *VectorInt) error {
	ctx.buf.WriteByte(markerVectorInt)
	writePayload, err := ctx.encodeComplexRef(v)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(v.Values))<<1 | 1)
	ctx.buf.WriteByte(boolByte(v.Fixed))
	for _, e := range v.Values {
		ctx.buf.WriteU32(uint32(e))
	}
	return nil
}

func (ctx *encodeCtx) encodeVectorUint(v *VectorUint) error {
	ctx.buf.WriteByte(markerVectorUint)
	writePayload, err := ctx.encodeComplexRef(v)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(v.Values))<<1 | 1)
	ctx.buf.WriteByte(boolByte(v.Fixed))
	for _, e := range v.Values {
		ctx.buf.WriteU32(e)
	}
	return nil
}

func (ctx *encodeCtx) encodeVectorDouble(v *VectorDouble) error {
	ctx.buf.WriteByte(markerVectorFloat)
	writePayload, err := ctx.encodeComplexRef(v)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(v.Values))<<1 | 1)
	ctx.buf.WriteByte(boolByte(v.Fixed))
	for _, e := range v.Values {
		ctx.buf.WriteDouble(e)
	}
	return nil
}

func (ctx *encodeCtx) encodeVectorObject(v *VectorObject, depth int) error {
	ctx.buf.WriteByte(markerVectorObj)
	writePayload, err := ctx.encodeComplexRef(v)
	if err != nil || !writePayload {
		return err
	}
	ctx.buf.WriteU29(uint32(len(v.Values))<<1 | 1)
	ctx.buf.WriteByte(boolByte(v.Fixed))
	if err := ctx.writeStringPayload(v.TypeName); err != nil {
		return err
	}
	for i, elem := range v.Values {
		if err := ctx.encodeValue(elem, depth+1); err != nil {
			return prependBreadcrumb(indexBreadcrumb(i), err)
		}
	}
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// objectFromMap classifies a plain Go map as an anonymous dynamic Object
//. Keys are sorted
// for deterministic output, since Go map iteration order is not stable —
// an implementation choice the format itself is silent on.
func objectFromMap(m map[string]any) *Object {
	o := NewObject()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// dictionaryFromMap classifies a plain Go map with non-string-only keys
// as a DICTIONARY.
func dictionaryFromMap(m map[any]any) *Dictionary {
	d := NewDictionary()
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortAnyKeys(keys)
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}
