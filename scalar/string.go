// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"unicode/utf8"

	"github.com/wirepb/protobuf3/wire"
)

// EncodeString writes one string field occurrence.
func EncodeString(w *wire.Writer, tag uint32, v string) {
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendLengthDelimited([]byte(v))
}

// MergeString decodes one string value, overwriting dst. The bytes must be
// well-formed UTF-8; malformed input is rejected rather than silently
// replaced with U+FFFD, matching the strict proto3 string contract.
func MergeString(r *wire.Reader, t wire.Type, dst *string) error {
	if err := wire.CheckType(wire.LengthDelimited, t); err != nil {
		return err
	}
	b, err := r.RawBytes()
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return wire.NewInvalidUTF8Error()
	}
	*dst = string(b)
	return nil
}

// EncodeStringRepeated emits one field occurrence per element.
func EncodeStringRepeated(w *wire.Writer, tag uint32, vs []string) {
	for _, v := range vs {
		EncodeString(w, tag, v)
	}
}

// MergeStringRepeated appends one decoded value. Like bytes, string has no
// packed form.
func MergeStringRepeated(r *wire.Reader, t wire.Type, dst *[]string) error {
	if err := wire.CheckType(wire.LengthDelimited, t); err != nil {
		return err
	}
	b, err := r.RawBytes()
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return wire.NewInvalidUTF8Error()
	}
	*dst = append(*dst, string(b))
	return nil
}

// EncodedLenString returns the exact byte count EncodeString would write.
func EncodedLenString(tag uint32, v string) int {
	return wire.SizeKey(tag) + wire.SizeLengthDelimited(len(v))
}

// EncodedLenStringRepeated returns the exact byte count
// EncodeStringRepeated would write.
func EncodedLenStringRepeated(tag uint32, vs []string) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeLengthDelimited(len(v))
	}
	return n
}
