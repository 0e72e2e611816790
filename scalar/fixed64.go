// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeFixed64 writes one fixed64 field occurrence.
func EncodeFixed64(w *wire.Writer, tag uint32, v uint64) {
	encodeFixed64Field(w, tag, v)
}

// MergeFixed64 decodes one fixed64 value, overwriting dst.
func MergeFixed64(r *wire.Reader, t wire.Type, dst *uint64) error {
	if err := wire.CheckType(wire.Fixed64, t); err != nil {
		return err
	}
	v, err := r.Fixed64()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// EncodeFixed64Repeated emits one field occurrence per element.
func EncodeFixed64Repeated(w *wire.Writer, tag uint32, vs []uint64) {
	for _, v := range vs {
		EncodeFixed64(w, tag, v)
	}
}

// MergeFixed64Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeFixed64Repeated(r *wire.Reader, t wire.Type, dst *[]uint64) error {
	return mergeRepeatedFixed64(r, t, func(v uint64) {
		*dst = append(*dst, v)
	})
}

// EncodeFixed64Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeFixed64Packed(w *wire.Writer, tag uint32, vs []uint64) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(8 * len(vs)))
	for _, v := range vs {
		w.AppendFixed64(v)
	}
}

// EncodedLenFixed64 returns the exact byte count EncodeFixed64 would write.
func EncodedLenFixed64(tag uint32, v uint64) int {
	return wire.SizeKey(tag) + 8
}

// EncodedLenFixed64Repeated returns the exact byte count
// EncodeFixed64Repeated would write.
func EncodedLenFixed64Repeated(tag uint32, vs []uint64) int {
	return (wire.SizeKey(tag) + 8) * len(vs)
}

// EncodedLenFixed64Packed returns the exact byte count EncodeFixed64Packed
// would write.
func EncodedLenFixed64Packed(tag uint32, vs []uint64) int {
	if len(vs) == 0 {
		return 0
	}
	n := 8 * len(vs)
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
