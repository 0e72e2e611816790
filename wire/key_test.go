// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "testing"

func TestKeyRoundTrip(t *testing.T) {
	cases := []struct {
		tag uint32
		t   Type
	}{
		{1, Varint},
		{1, Fixed64},
		{1, LengthDelimited},
		{1, Fixed32},
		{MaxTag, Varint},
		{127, LengthDelimited},
	}
	for _, c := range cases {
		w := NewWriter(0)
		w.AppendKey(c.tag, c.t)
		if len(w.Bytes()) != SizeKey(c.tag) {
			t.Errorf("tag=%d: len=%d, SizeKey=%d", c.tag, len(w.Bytes()), SizeKey(c.tag))
		}
		r := NewReader(w.Bytes())
		tag, typ, err := r.Key()
		if err != nil {
			t.Fatalf("tag=%d: %v", c.tag, err)
		}
		if tag != c.tag || typ != c.t {
			t.Errorf("tag=%d type=%d: decoded tag=%d type=%d", c.tag, c.t, tag, typ)
		}
	}
}

func TestKeyRejectsZeroTag(t *testing.T) {
	w := NewWriter(0)
	w.AppendVarint(uint64(0<<3) | uint64(Varint))
	r := NewReader(w.Bytes())
	if _, _, err := r.Key(); err == nil {
		t.Error("expected error decoding zero tag")
	}
}

func TestKeyRejectsInvalidWireType(t *testing.T) {
	for _, wt := range []uint64{3, 4, 6, 7} {
		w := NewWriter(0)
		w.AppendVarint(uint64(1<<3) | wt)
		r := NewReader(w.Bytes())
		if _, _, err := r.Key(); err == nil {
			t.Errorf("wire type %d: expected error", wt)
		}
	}
}
