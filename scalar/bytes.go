// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeBytes writes one bytes field occurrence.
func EncodeBytes(w *wire.Writer, tag uint32, v []byte) {
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendLengthDelimited(v)
}

// MergeBytes decodes one bytes value, overwriting dst with a copy that
// does not alias the source buffer.
func MergeBytes(r *wire.Reader, t wire.Type, dst *[]byte) error {
	if err := wire.CheckType(wire.LengthDelimited, t); err != nil {
		return err
	}
	b, err := r.RawBytes()
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// EncodeBytesRepeated emits one field occurrence per element.
func EncodeBytesRepeated(w *wire.Writer, tag uint32, vs [][]byte) {
	for _, v := range vs {
		EncodeBytes(w, tag, v)
	}
}

// MergeBytesRepeated appends one decoded value. Unlike the numeric kinds,
// bytes has no packed form: every occurrence is its own length-delimited
// element.
func MergeBytesRepeated(r *wire.Reader, t wire.Type, dst *[][]byte) error {
	if err := wire.CheckType(wire.LengthDelimited, t); err != nil {
		return err
	}
	b, err := r.RawBytes()
	if err != nil {
		return err
	}
	*dst = append(*dst, b)
	return nil
}

// EncodedLenBytes returns the exact byte count EncodeBytes would write.
func EncodedLenBytes(tag uint32, v []byte) int {
	return wire.SizeKey(tag) + wire.SizeLengthDelimited(len(v))
}

// EncodedLenBytesRepeated returns the exact byte count EncodeBytesRepeated
// would write.
func EncodedLenBytesRepeated(tag uint32, vs [][]byte) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeLengthDelimited(len(v))
	}
	return n
}
