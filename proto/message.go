// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto defines the Message contract every generated protocol
// buffer message implements, plus the encode/decode entry points built on
// top of it.
package proto

import "github.com/wirepb/protobuf3/wire"

// Message is implemented by every generated protocol buffer message. A
// zero-value Message must be a valid, empty instance: Unmarshal merges
// into the value the caller passes rather than constructing one itself.
type Message interface {
	// Encode appends the message's wire-format encoding to w.
	Encode(w *wire.Writer)

	// Merge decodes fields from r, overwriting or appending to the
	// message's own fields as each field's merge semantics dictate. The
	// entire reader is consumed; unrecognized field tags are skipped.
	Merge(r *wire.Reader) error

	// EncodedLen returns the exact byte count Encode would write.
	EncodedLen() int
}

// Marshal returns the wire-format encoding of m.
func Marshal(m Message) []byte {
	w := wire.NewWriter(m.EncodedLen())
	m.Encode(w)
	return w.Bytes()
}

// Unmarshal decodes the wire-format encoding in b into m, which must
// already hold a valid zero value.
func Unmarshal(b []byte, m Message) error {
	r := wire.NewReader(b)
	if err := m.Merge(r); err != nil {
		return err
	}
	if !r.Done() {
		return wire.NewTrailingBytesError()
	}
	return nil
}

// MarshalLengthDelimited returns m's wire-format encoding prefixed with a
// varint byte length, the framing used for a message embedded inside
// another message's length-delimited field.
func MarshalLengthDelimited(m Message) []byte {
	n := m.EncodedLen()
	w := wire.NewWriter(wire.SizeVarint(uint64(n)) + n)
	w.AppendVarint(uint64(n))
	m.Encode(w)
	return w.Bytes()
}

// UnmarshalLengthDelimited decodes a length-prefixed message occurrence
// from the front of b into m, returning the number of bytes consumed.
func UnmarshalLengthDelimited(b []byte, m Message) (int, error) {
	r := wire.NewReader(b)
	sub, err := r.SubMessage()
	if err != nil {
		return 0, err
	}
	if err := m.Merge(sub); err != nil {
		return 0, err
	}
	if !sub.Done() {
		return 0, wire.NewTrailingBytesError()
	}
	return len(b) - r.Remaining(), nil
}

// EncodeMessageField writes a nested-message field occurrence: a key, a
// varint length prefix, and m's own encoding.
func EncodeMessageField(w *wire.Writer, tag uint32, m Message) {
	w.AppendKey(tag, wire.LengthDelimited)
	n := m.EncodedLen()
	w.AppendVarint(uint64(n))
	m.Encode(w)
}

// MergeMessageField decodes a nested-message field occurrence into dst,
// merging onto whatever dst already holds.
func MergeMessageField(r *wire.Reader, t wire.Type, dst Message) error {
	if err := wire.CheckType(wire.LengthDelimited, t); err != nil {
		return err
	}
	sub, err := r.SubMessage()
	if err != nil {
		return err
	}
	if err := dst.Merge(sub); err != nil {
		return err
	}
	if !sub.Done() {
		return wire.NewTrailingBytesError()
	}
	return nil
}

// EncodedLenMessageField returns the exact byte count EncodeMessageField
// would write.
func EncodedLenMessageField(tag uint32, m Message) int {
	n := m.EncodedLen()
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
