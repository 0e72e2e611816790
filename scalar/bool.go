// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

func boolToUint64(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// EncodeBool writes one bool field occurrence.
func EncodeBool(w *wire.Writer, tag uint32, v bool) {
	encodeVarintField(w, tag, boolToUint64(v))
}

// MergeBool decodes one bool value, overwriting dst.
func MergeBool(r *wire.Reader, t wire.Type, dst *bool) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = u != 0
	return nil
}

// EncodeBoolRepeated emits one field occurrence per element.
func EncodeBoolRepeated(w *wire.Writer, tag uint32, vs []bool) {
	for _, v := range vs {
		EncodeBool(w, tag, v)
	}
}

// MergeBoolRepeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeBoolRepeated(r *wire.Reader, t wire.Type, dst *[]bool) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, u != 0)
	})
}

// EncodeBoolPacked emits vs as a single length-delimited packed run, or
// nothing at all if vs is empty.
func EncodeBoolPacked(w *wire.Writer, tag uint32, vs []bool) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(len(vs))) // each bool is exactly one byte
	for _, v := range vs {
		w.AppendVarint(boolToUint64(v))
	}
}

// EncodedLenBool returns the exact byte count EncodeBool would write.
func EncodedLenBool(tag uint32, v bool) int {
	return wire.SizeKey(tag) + wire.SizeVarint(boolToUint64(v))
}

// EncodedLenBoolRepeated returns the exact byte count EncodeBoolRepeated
// would write.
func EncodedLenBoolRepeated(tag uint32, vs []bool) int {
	return (wire.SizeKey(tag) + 1) * len(vs) // every bool varint is 1 byte
}

// EncodedLenBoolPacked returns the exact byte count EncodeBoolPacked would
// write.
func EncodedLenBoolPacked(tag uint32, vs []bool) int {
	if len(vs) == 0 {
		return 0
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(len(vs))) + len(vs)
}
