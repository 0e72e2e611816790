// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testpb

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wirepb/protobuf3/proto"
)

func optInt32(v int32) *int32 { return &v }

func TestTestAllTypesRoundTrip(t *testing.T) {
	want := &TestAllTypes{
		SingularInt32:    -1,
		SingularInt64:    1<<40 + 3,
		SingularUint32:   4242,
		SingularUint64:   1 << 50,
		SingularSint32:   -7,
		SingularSint64:   -(1 << 40),
		SingularFixed32:  0xdeadbeef,
		SingularFixed64:  0x0102030405060708,
		SingularSfixed32: -123456,
		SingularSfixed64: -123456789012,
		SingularFloat:    float32(math.NaN()),
		SingularDouble:   math.Copysign(0, -1),
		SingularBool:     true,
		SingularString:   "hello, world",
		SingularBytes:    []byte{1, 2, 3, 4},
		RepeatedInt32:    []int32{1, -2, 3, -4},
		RepeatedString:   []string{"a", "bb", "ccc"},
		MapStringInt32:   map[string]int32{"x": 1, "y": -2, "": 0},
		NestedMessage:    &NestedMessage{A: 9, B: "nested"},
		OptionalInt32:    optInt32(0),
		OneofField:       &TestAllTypes_OneofUint32{OneofUint32: 77},
	}

	b := proto.Marshal(want)
	if len(b) != want.EncodedLen() {
		t.Fatalf("len(Marshal) = %d, want EncodedLen() = %d", len(b), want.EncodedLen())
	}

	got := &TestAllTypes{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	opts := cmp.Options{
		cmp.Comparer(func(a, b float32) bool {
			return (math.IsNaN(float64(a)) && math.IsNaN(float64(b))) || a == b
		}),
	}
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTestAllTypesOneofNestedMessageVariant(t *testing.T) {
	want := &TestAllTypes{
		OneofField: &TestAllTypes_OneofNestedMessage{
			OneofNestedMessage: &NestedMessage{A: 5, B: "x"},
		},
	}

	b := proto.Marshal(want)
	got := &TestAllTypes{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTestAllTypesLaterOneofOccurrenceWins(t *testing.T) {
	first := &TestAllTypes{OneofField: &TestAllTypes_OneofUint32{OneofUint32: 1}}
	second := &TestAllTypes{OneofField: &TestAllTypes_OneofNestedMessage{OneofNestedMessage: &NestedMessage{A: 2}}}

	b := append(proto.Marshal(first), proto.Marshal(second)...)

	got := &TestAllTypes{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("got %+v, want the second occurrence to win (-want +got):\n%s", diff)
	}
}

func TestTestAllTypesNestedMessageMergesAdditively(t *testing.T) {
	// Two occurrences of an embedded message merge field-by-field rather
	// than overwriting: the first sets B, the second overwrites A, and the
	// result carries both.
	first := &TestAllTypes{NestedMessage: &NestedMessage{A: 11, B: "kept"}}
	second := &TestAllTypes{NestedMessage: &NestedMessage{A: 2}}

	b := append(proto.Marshal(first), proto.Marshal(second)...)

	got := &TestAllTypes{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := &NestedMessage{A: 2, B: "kept"}
	if diff := cmp.Diff(want, got.NestedMessage); diff != "" {
		t.Errorf("nested message merge mismatch (-want +got):\n%s", diff)
	}
}

func TestTestAllTypesEmptyRoundTrip(t *testing.T) {
	want := &TestAllTypes{}
	b := proto.Marshal(want)
	if len(b) != 0 {
		t.Errorf("Marshal of zero-value message produced %d bytes, want 0", len(b))
	}
	got := &TestAllTypes{}
	if err := proto.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
