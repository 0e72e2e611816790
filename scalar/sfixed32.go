// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeSfixed32 writes one sfixed32 field occurrence.
func EncodeSfixed32(w *wire.Writer, tag uint32, v int32) {
	encodeFixed32Field(w, tag, uint32(v))
}

// MergeSfixed32 decodes one sfixed32 value, overwriting dst.
func MergeSfixed32(r *wire.Reader, t wire.Type, dst *int32) error {
	if err := wire.CheckType(wire.Fixed32, t); err != nil {
		return err
	}
	v, err := r.Fixed32()
	if err != nil {
		return err
	}
	*dst = int32(v)
	return nil
}

// EncodeSfixed32Repeated emits one field occurrence per element.
func EncodeSfixed32Repeated(w *wire.Writer, tag uint32, vs []int32) {
	for _, v := range vs {
		EncodeSfixed32(w, tag, v)
	}
}

// MergeSfixed32Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeSfixed32Repeated(r *wire.Reader, t wire.Type, dst *[]int32) error {
	return mergeRepeatedFixed32(r, t, func(v uint32) {
		*dst = append(*dst, int32(v))
	})
}

// EncodeSfixed32Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeSfixed32Packed(w *wire.Writer, tag uint32, vs []int32) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(4 * len(vs)))
	for _, v := range vs {
		w.AppendFixed32(uint32(v))
	}
}

// EncodedLenSfixed32 returns the exact byte count EncodeSfixed32 would
// write.
func EncodedLenSfixed32(tag uint32, v int32) int {
	return wire.SizeKey(tag) + 4
}

// EncodedLenSfixed32Repeated returns the exact byte count
// EncodeSfixed32Repeated would write.
func EncodedLenSfixed32Repeated(tag uint32, vs []int32) int {
	return (wire.SizeKey(tag) + 4) * len(vs)
}

// EncodedLenSfixed32Packed returns the exact byte count
// EncodeSfixed32Packed would write.
func EncodedLenSfixed32Packed(tag uint32, vs []int32) int {
	if len(vs) == 0 {
		return 0
	}
	n := 4 * len(vs)
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
