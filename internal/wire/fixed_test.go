// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"math"
	"testing"
)

func TestPutDecodeU32(t *testing.T) {
	vals := []uint32{0, 1, 0xFFFFFFFF, 0x12345678}
	for _, v := range vals {
		buf := PutU32(nil, v)
		if len(buf) != 4 {
			t.Fatalf("PutU32(%#x) produced %d bytes, want 4", v, len(buf))
		}
		got, err := DecodeU32(buf, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("DecodeU32(%#x) = %#x", v, got)
		}
	}
}

func TestPutU32BigEndian(t *testing.T) {
	got := PutU32(nil, 0x01020304)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestPutDecodeDouble(t *testing.T) {
	vals := []float64{0, 1, -1, 3.14159, math.Inf(1), math.Inf(-1)}
	for _, v := range vals {
		buf := PutDouble(nil, v)
		if len(buf) != 8 {
			t.Fatalf("PutDouble(%v) produced %d bytes, want 8", v, len(buf))
		}
		got, err := DecodeDouble(buf, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("DecodeDouble(%v) = %v", v, got)
		}
	}
}

func TestDecodeU32ShortBuffer(t *testing.T) {
	if _, err := DecodeU32([]byte{1, 2}, 0); err != ErrShortBuffer {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
}

func TestDecodeDoubleShortBuffer(t *testing.T) {
	if _, err := DecodeDouble([]byte{1, 2, 3}, 0); err != ErrShortBuffer {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
}
