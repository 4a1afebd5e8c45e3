// SPDX-License-Identifier: Apache-2.0

package blob_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/flashkit/amf3/blob"
)

func TestDeflateInflateRoundTrip(t *testing.T) {
	original := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 20))

	compressed, err := blob.Deflate(original)
	if err != nil {
		t.Fatal(err)
	}
	if len(compressed) == 0 {
		t.Fatal("expected non-empty compressed output")
	}

	restored, err := blob.Inflate(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(restored, original) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(restored), len(original))
	}
}

func TestDeflateEmptyInput(t *testing.T) {
	out, err := blob.Deflate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Errorf("Deflate(nil) = %v, want nil", out)
	}
}

func TestInflateEmptyInput(t *testing.T) {
	out, err := blob.Inflate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Errorf("Inflate(nil) = %v, want nil", out)
	}
}
