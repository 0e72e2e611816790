// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"bytes"
	"testing"

	"github.com/wirepb/protobuf3/scalar"
	"github.com/wirepb/protobuf3/wire"
)

// fakeMessage is a minimal hand-written Message used to exercise the
// contract without depending on the testpb package.
type fakeMessage struct {
	Name string
	ID   int32
}

func (m *fakeMessage) Encode(w *wire.Writer) {
	if m.Name != "" {
		scalar.EncodeString(w, 1, m.Name)
	}
	if m.ID != 0 {
		scalar.EncodeInt32(w, 2, m.ID)
	}
}

func (m *fakeMessage) Merge(r *wire.Reader) error {
	for !r.Done() {
		tag, t, err := r.Key()
		if err != nil {
			return err
		}
		switch tag {
		case 1:
			if err := scalar.MergeString(r, t, &m.Name); err != nil {
				return err
			}
		case 2:
			if err := scalar.MergeInt32(r, t, &m.ID); err != nil {
				return err
			}
		default:
			if err := r.Skip(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *fakeMessage) EncodedLen() int {
	n := 0
	if m.Name != "" {
		n += scalar.EncodedLenString(1, m.Name)
	}
	if m.ID != 0 {
		n += scalar.EncodedLenInt32(2, m.ID)
	}
	return n
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	want := &fakeMessage{Name: "widget", ID: 42}
	b := Marshal(want)

	got := &fakeMessage{}
	if err := Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLengthDelimitedRoundTrip(t *testing.T) {
	want := &fakeMessage{Name: "nested", ID: -1}
	b := MarshalLengthDelimited(want)

	got := &fakeMessage{}
	n, err := UnmarshalLengthDelimited(b, got)
	if err != nil {
		t.Fatalf("UnmarshalLengthDelimited: %v", err)
	}
	if n != len(b) {
		t.Errorf("consumed %d bytes, want %d", n, len(b))
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNestedMessageField(t *testing.T) {
	inner := &fakeMessage{Name: "inner", ID: 7}
	w := wire.NewWriter(0)
	EncodeMessageField(w, 9, inner)

	wantLen := EncodedLenMessageField(9, inner)
	if got := len(w.Bytes()); got != wantLen {
		t.Fatalf("encoded length mismatch: got %d, want %d", got, wantLen)
	}

	r := wire.NewReader(w.Bytes())
	tag, typ, err := r.Key()
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if tag != 9 {
		t.Fatalf("tag = %d, want 9", tag)
	}

	got := &fakeMessage{}
	if err := MergeMessageField(r, typ, got); err != nil {
		t.Fatalf("MergeMessageField: %v", err)
	}
	if *got != *inner {
		t.Errorf("got %+v, want %+v", got, inner)
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	m := &fakeMessage{Name: "x"}
	b := append(Marshal(m), 0xff)

	got := &fakeMessage{}
	err := Unmarshal(b, got)
	werr, ok := err.(*wire.Error)
	if !ok || werr.Kind != wire.Malformed && werr.Kind != wire.TrailingBytes {
		t.Fatalf("Unmarshal error = %v, want a wire.Error", err)
	}
}

func TestDebugPrintDoesNotPanicOnTruncatedInput(t *testing.T) {
	var buf bytes.Buffer
	DebugPrint(&buf, "truncated", []byte{0x08})
	if buf.Len() == 0 {
		t.Error("DebugPrint wrote nothing")
	}
}
