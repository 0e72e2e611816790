// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiremap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wirepb/protobuf3/scalar"
	"github.com/wirepb/protobuf3/wire"
)

func TestEncodeMergeRoundTrip(t *testing.T) {
	values := map[string]int32{
		"":    0,
		"a":   1,
		"bcd": -7,
	}

	w := wire.NewWriter(0)
	Encode(scalar.EncodeString, scalar.EncodedLenString, scalar.EncodeInt32, scalar.EncodedLenInt32, 5, values, w)

	wantLen := EncodedLen(scalar.EncodedLenString, scalar.EncodedLenInt32, 5, values)
	if got := len(w.Bytes()); got != wantLen {
		t.Fatalf("encoded length mismatch: got %d, want %d", got, wantLen)
	}

	r := wire.NewReader(w.Bytes())
	got := map[string]int32{}
	for !r.Done() {
		tag, typ, err := r.Key()
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
		if tag != 5 {
			t.Fatalf("unexpected tag %d", tag)
		}
		if err := Merge(scalar.MergeString, scalar.MergeInt32, got, r); err != nil {
			t.Fatalf("Merge: %v", err)
		}
		_ = typ
	}

	if diff := cmp.Diff(values, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeSortedIsDeterministic(t *testing.T) {
	values := map[string]int32{"z": 1, "a": 2, "m": 3}
	less := func(a, b string) bool { return a < b }

	w1 := wire.NewWriter(0)
	EncodeSorted(scalar.EncodeString, scalar.EncodedLenString, scalar.EncodeInt32, scalar.EncodedLenInt32, less, 1, values, w1)

	w2 := wire.NewWriter(0)
	EncodeSorted(scalar.EncodeString, scalar.EncodedLenString, scalar.EncodeInt32, scalar.EncodedLenInt32, less, 1, values, w2)

	if diff := cmp.Diff(w1.Bytes(), w2.Bytes()); diff != "" {
		t.Errorf("EncodeSorted produced different bytes across calls (-first +second):\n%s", diff)
	}
}

func TestMergeWithDefaultSkipsZeroValueKey(t *testing.T) {
	// A key equal to its zero value is omitted from the wire; decoding an
	// entry with no key field present must still populate the zero key.
	w := wire.NewWriter(0)
	w.AppendKey(1, wire.LengthDelimited)
	inner := wire.NewWriter(0)
	scalar.EncodeInt32(inner, 2, 42)
	w.AppendVarint(uint64(inner.Len()))
	w.Write(inner.Bytes())

	r := wire.NewReader(w.Bytes())
	if _, _, err := r.Key(); err != nil {
		t.Fatalf("Key: %v", err)
	}

	got := map[string]int32{}
	if err := Merge(scalar.MergeString, scalar.MergeInt32, got, r); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if v, ok := got[""]; !ok || v != 42 {
		t.Errorf("got %v, want {\"\": 42}", got)
	}
}
