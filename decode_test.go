// SPDX-License-Identifier: Apache-2.0

package amf3_test

import (
	"testing"

	. "github.com/flashkit/amf3"
)

func TestDecodeMatrix(t *testing.T) {
	for _, tt := range encodeTestMatrix {
		t.Run(tt.name, func(t *testing.T) {
			got, next, err := Decode(tt.want, 1)
			if err != nil {
				t.Fatalf("Decode(% x): %v", tt.want, err)
			}
			if next != len(tt.want)+1 {
				t.Errorf("next position = %d, want %d", next, len(tt.want)+1)
			}
			_ = got
		})
	}
}

func TestDecodeEmptyArrayAttributes(t *testing.T) {
	v, _, err := Decode(fromHex("090101"), 1)
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := v.(*Array)
	if !ok {
		t.Fatalf("decoded value is %T, want *Array", v)
	}
	if len(arr.Dense) != 0 || len(arr.AssocKeys) != 0 {
		t.Errorf("expected an empty array, got %#v", arr)
	}
}

func TestDecodeObjectWithOneDynamicField(t *testing.T) {
	v, next, err := Decode(fromHex("0A0B01036B06037601"), 1)
	if err != nil {
		t.Fatal(err)
	}
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("decoded value is %T, want *Object", v)
	}
	if obj.Class != "" || !obj.Dynamic || obj.Externalizable {
		t.Errorf("unexpected traits: %#v", obj)
	}
	if len(obj.DynKeys) != 1 || obj.DynKeys[0] != "k" || obj.DynFields["k"] != "v" {
		t.Errorf("unexpected dynamic fields: %#v", obj.DynFields)
	}
	if next != 10 {
		t.Errorf("next position = %d, want 10", next)
	}
}

func TestDecodeDictionary(t *testing.T) {
	v, _, err := Decode(fromHex("1103000401060379"), 1)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := v.(*Dictionary)
	if !ok {
		t.Fatalf("decoded value is %T, want *Dictionary", v)
	}
	if len(d.Keys) != 1 || d.Keys[0] != 1 || d.Values[0] != "y" {
		t.Errorf("unexpected dictionary contents: %#v", d)
	}
}

func TestDecodeDictionaryDropsUndefinedKey(t *testing.T) {
	// DICTIONARY with two pairs: (Undefined, 1) and (1, "y"). The first
	// pair's key decodes to Undefined and must be silently dropped.
	v, _, err := Decode(fromHex("1105000004010401060379"), 1)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := v.(*Dictionary)
	if !ok {
		t.Fatalf("decoded value is %T, want *Dictionary", v)
	}
	if len(d.Keys) != 1 || d.Keys[0] != 1 || d.Values[0] != "y" {
		t.Errorf("expected the Undefined-keyed pair to be dropped, got %#v", d)
	}
}

func TestDecodeInvalidMarker(t *testing.T) {
	_, _, err := Decode([]byte{0xFF}, 1)
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("err is %T, want *DecodeError", err)
	}
	if de.Pos != 1 {
		t.Errorf("Pos = %d, want 1", de.Pos)
	}
	if de.Err != ErrInvalidTypeMarker {
		t.Errorf("Err = %v, want ErrInvalidTypeMarker", de.Err)
	}
}

func TestDecodeTruncatedBuffer(t *testing.T) {
	_, _, err := Decode([]byte{0x04}, 1) // INTEGER marker with no payload
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("err is %T, want *DecodeError", err)
	}
	if de.Err != ErrInsufficientData {
		t.Errorf("Err = %v, want ErrInsufficientData", de.Err)
	}
}

func TestDecodeInvalidReference(t *testing.T) {
	// ARRAY marker referencing complex-value index 5, which doesn't exist
	// yet: U29(5<<1) = 10 = 0x0A.
	_, _, err := Decode([]byte{0x09, 0x0A}, 1)
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("err is %T, want *DecodeError", err)
	}
	if de.Err != ErrInvalidReference {
		t.Errorf("Err = %v, want ErrInvalidReference", de.Err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	o := NewObject()
	o.Set("name", "ada")
	o.Set("age", 36)

	arr := NewArray("x", "y", o)

	data, err := Encode(arr)
	if err != nil {
		t.Fatal(err)
	}
	decoded, _, err := Decode(data, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := decoded.(*Array)
	if !ok || len(got.Dense) != 3 {
		t.Fatalf("decoded value is %#v", decoded)
	}
	if got.Dense[0] != "x" || got.Dense[1] != "y" {
		t.Errorf("unexpected dense elements: %#v", got.Dense)
	}
	gotObj, ok := got.Dense[2].(*Object)
	if !ok || gotObj.DynFields["name"] != "ada" || gotObj.DynFields["age"] != 36 {
		t.Errorf("unexpected nested object: %#v", got.Dense[2])
	}
}

func TestDecodeRecursionDepthGuard(t *testing.T) {
	codec := NewCodec(WithMaxDepth(2))
	// Three nested arrays, each with one element: [[[1]]] — depth 3 exceeds
	// the configured guard of 2.
	inner := NewArray(1)
	middle := NewArray(inner)
	outer := NewArray(middle)

	data, err := Encode(outer)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = codec.Decode(data, 1)
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("err is %T, want *DecodeError", err)
	}
	if de.Err != ErrRecursionDetected {
		t.Errorf("Err = %v, want ErrRecursionDetected", de.Err)
	}
}
