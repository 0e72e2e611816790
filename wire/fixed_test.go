// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
	"testing/quick"
)

func TestFixed32RoundTrip(t *testing.T) {
	f := func(v uint32) bool {
		w := NewWriter(0)
		w.AppendFixed32(v)
		if len(w.Bytes()) != 4 {
			return false
		}
		r := NewReader(w.Bytes())
		got, err := r.Fixed32()
		return err == nil && got == v && r.Done()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	f := func(v uint64) bool {
		w := NewWriter(0)
		w.AppendFixed64(v)
		if len(w.Bytes()) != 8 {
			return false
		}
		r := NewReader(w.Bytes())
		got, err := r.Fixed64()
		return err == nil && got == v && r.Done()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFixed32IsLittleEndian(t *testing.T) {
	w := NewWriter(0)
	w.AppendFixed32(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i, b := range want {
		if w.Bytes()[i] != b {
			t.Errorf("byte %d = %#x, want %#x", i, w.Bytes()[i], b)
		}
	}
}

func TestFixed32DecodeFailsOnTruncatedInput(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.Fixed32(); err == nil {
		t.Error("expected error")
	}
}

func TestFixed64DecodeFailsOnTruncatedInput(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6, 7})
	if _, err := r.Fixed64(); err == nil {
		t.Error("expected error")
	}
}
