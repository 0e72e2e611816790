// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeFixed32 writes one fixed32 field occurrence.
func EncodeFixed32(w *wire.Writer, tag uint32, v uint32) {
	encodeFixed32Field(w, tag, v)
}

// MergeFixed32 decodes one fixed32 value, overwriting dst.
func MergeFixed32(r *wire.Reader, t wire.Type, dst *uint32) error {
	if err := wire.CheckType(wire.Fixed32, t); err != nil {
		return err
	}
	v, err := r.Fixed32()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// EncodeFixed32Repeated emits one field occurrence per element.
func EncodeFixed32Repeated(w *wire.Writer, tag uint32, vs []uint32) {
	for _, v := range vs {
		EncodeFixed32(w, tag, v)
	}
}

// MergeFixed32Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeFixed32Repeated(r *wire.Reader, t wire.Type, dst *[]uint32) error {
	return mergeRepeatedFixed32(r, t, func(v uint32) {
		*dst = append(*dst, v)
	})
}

// EncodeFixed32Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeFixed32Packed(w *wire.Writer, tag uint32, vs []uint32) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(4 * len(vs)))
	for _, v := range vs {
		w.AppendFixed32(v)
	}
}

// EncodedLenFixed32 returns the exact byte count EncodeFixed32 would write.
func EncodedLenFixed32(tag uint32, v uint32) int {
	return wire.SizeKey(tag) + 4
}

// EncodedLenFixed32Repeated returns the exact byte count
// EncodeFixed32Repeated would write.
func EncodedLenFixed32Repeated(tag uint32, vs []uint32) int {
	return (wire.SizeKey(tag) + 4) * len(vs)
}

// EncodedLenFixed32Packed returns the exact byte count EncodeFixed32Packed
// would write.
func EncodedLenFixed32Packed(tag uint32, vs []uint32) int {
	if len(vs) == 0 {
		return 0
	}
	n := 4 * len(vs)
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
