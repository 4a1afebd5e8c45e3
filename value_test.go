// SPDX-License-Identifier: Apache-2.0

package amf3_test

import (
	"reflect"
	"testing"

	. "github.com/flashkit/amf3"
)

func TestObjectSetPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", 2)
	o.Set("a", 1)
	o.Set("c", 3)

	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(o.DynKeys, want) {
		t.Errorf("DynKeys = %v, want %v", o.DynKeys, want)
	}
}

func TestObjectSetOverwriteKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("a", 99)

	want := []string{"a", "b"}
	if !reflect.DeepEqual(o.DynKeys, want) {
		t.Errorf("DynKeys = %v, want %v", o.DynKeys, want)
	}
	if o.DynFields["a"] != 99 {
		t.Errorf("DynFields[a] = %v, want 99", o.DynFields["a"])
	}
}

func TestNewArrayWrapsDenseElements(t *testing.T) {
	arr := NewArray(1, "two", 3.0)
	if len(arr.Dense) != 3 || len(arr.AssocKeys) != 0 {
		t.Errorf("unexpected array shape: %#v", arr)
	}
}

func TestDictionarySetAppendsPairs(t *testing.T) {
	d := NewDictionary()
	d.Set("x", 1)
	d.Set(2, "y")

	if len(d.Keys) != 2 || len(d.Values) != 2 {
		t.Fatalf("unexpected dictionary shape: %#v", d)
	}
	if d.Keys[0] != "x" || d.Values[0] != 1 {
		t.Errorf("unexpected first pair: %v=%v", d.Keys[0], d.Values[0])
	}
	if d.Keys[1] != 2 || d.Values[1] != "y" {
		t.Errorf("unexpected second pair: %v=%v", d.Keys[1], d.Values[1])
	}
}
