// SPDX-License-Identifier: Apache-2.0

package wire

import "testing"

func TestCursorReadSequence(t *testing.T) {
	buf := NewBuffer(0)
	buf.WriteByte(0x42)
	buf.WriteU29(300)
	buf.WriteU32(0xCAFEBABE)
	buf.WriteDouble(2.5)
	buf.WriteBytes([]byte("hi"))

	c := NewCursor(buf.Bytes(), 0)

	b, err := c.ReadByte()
	if err != nil || b != 0x42 {
		t.Fatalf("ReadByte: %v, %#x", err, b)
	}
	u29, err := c.ReadU29()
	if err != nil || u29 != 300 {
		t.Fatalf("ReadU29: %v, %d", err, u29)
	}
	u32, err := c.ReadU32()
	if err != nil || u32 != 0xCAFEBABE {
		t.Fatalf("ReadU32: %v, %#x", err, u32)
	}
	d, err := c.ReadDouble()
	if err != nil || d != 2.5 {
		t.Fatalf("ReadDouble: %v, %v", err, d)
	}
	raw, err := c.ReadBytes(2)
	if err != nil || string(raw) != "hi" {
		t.Fatalf("ReadBytes: %v, %q", err, raw)
	}
	if c.Len() != 0 {
		t.Errorf("expected cursor exhausted, %d bytes remain", c.Len())
	}
}

func TestCursorBoundsChecked(t *testing.T) {
	c := NewCursor([]byte{0x01}, 0)
	if _, err := c.ReadByte(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ReadByte(); err != ErrShortBuffer {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
}

func TestCursorReadBytesNegativeLength(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02}, 0)
	if _, err := c.ReadBytes(-1); err != ErrShortBuffer {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
}
