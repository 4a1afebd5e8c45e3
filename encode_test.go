// SPDX-License-Identifier: Apache-2.0

package amf3_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	. "github.com/flashkit/amf3"
)

func fromHex(s string) []byte {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var encodeTestMatrix = []struct {
	name    string
	payload any
	want    []byte
}{
	{"undefined", Undefined, fromHex("00")},
	{"null_sentinel", Null, fromHex("01")},
	{"nil_is_null", nil, fromHex("01")},
	{"false", false, fromHex("02")},
	{"true", true, fromHex("03")},
	{"small_int_zero", 0, fromHex("0400")},
	{"small_int_one", 1, fromHex("0401")},
	{"negative_one", -1, fromHex("04FFFFFFFF")},
	{"empty_string", "", fromHex("0601")},
	{"short_string", "v", fromHex("060376")},
	{"empty_array", NewArray(), fromHex("090101")},
	{"empty_object", NewObject(), fromHex("0A0B0101")},
}

func TestEncodeMatrix(t *testing.T) {
	for _, tt := range encodeTestMatrix {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.payload)
			if err != nil {
				t.Fatalf("Encode(%v): %v", tt.payload, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = % x, want % x", tt.payload, got, tt.want)
			}
		})
	}
}

func TestEncodeObjectWithOneDynamicField(t *testing.T) {
	o := NewObject()
	o.Set("k", "v")
	got, err := Encode(o)
	if err != nil {
		t.Fatal(err)
	}
	want := fromHex("0A0B01036B06037601")
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeDictionarySingleIntKey(t *testing.T) {
	d := NewDictionary()
	d.Set(1, "y")
	got, err := Encode(d)
	if err != nil {
		t.Fatal(err)
	}
	want := fromHex("1103000401060379")
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeFloatFallsBackToDouble(t *testing.T) {
	got, err := Encode(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0x05 {
		t.Errorf("expected DOUBLE marker 0x05, got %#x", got[0])
	}
}

func TestEncodeIntegerOutOfRangeFallsBackToDouble(t *testing.T) {
	got, err := Encode(1 << 30)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0x05 {
		t.Errorf("expected DOUBLE marker 0x05 for out-of-range int, got %#x", got[0])
	}
}

func TestEncodeStringInterning(t *testing.T) {
	// A repeated nonempty string appears in the output bytes exactly once.
	arr := NewArray("same", "same")
	got, err := Encode(arr)
	if err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(got, []byte("same")); n != 1 {
		t.Errorf("expected \"same\" to appear once in the wire bytes, appeared %d times (% x)", n, got)
	}
}

func TestEncodeReferenceIdentityOnRepeatedArray(t *testing.T) {
	// w = [v, v]: both elements must be the same back-reference on decode.
	v := NewArray(1, 2)
	w := NewArray(v, v)
	data, err := Encode(w)
	if err != nil {
		t.Fatal(err)
	}
	decoded, _, err := Decode(data, 1)
	if err != nil {
		t.Fatal(err)
	}
	outer, ok := decoded.(*Array)
	if !ok || len(outer.Dense) != 2 {
		t.Fatalf("decoded value is not a two-element array: %#v", decoded)
	}
	if outer.Dense[0] != outer.Dense[1] {
		t.Errorf("expected identity-equal elements, got distinct values")
	}
}

func TestEncodeUnsupportedKind(t *testing.T) {
	ch := make(chan int)
	if _, err := Encode(ch); err != ErrUnsupportedValueKind {
		t.Errorf("got %v, want ErrUnsupportedValueKind", err)
	}
}
