// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeSfixed64 writes one sfixed64 field occurrence.
func EncodeSfixed64(w *wire.Writer, tag uint32, v int64) {
	encodeFixed64Field(w, tag, uint64(v))
}

// MergeSfixed64 decodes one sfixed64 value, overwriting dst.
func MergeSfixed64(r *wire.Reader, t wire.Type, dst *int64) error {
	if err := wire.CheckType(wire.Fixed64, t); err != nil {
		return err
	}
	v, err := r.Fixed64()
	if err != nil {
		return err
	}
	*dst = int64(v)
	return nil
}

// EncodeSfixed64Repeated emits one field occurrence per element.
func EncodeSfixed64Repeated(w *wire.Writer, tag uint32, vs []int64) {
	for _, v := range vs {
		EncodeSfixed64(w, tag, v)
	}
}

// MergeSfixed64Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeSfixed64Repeated(r *wire.Reader, t wire.Type, dst *[]int64) error {
	return mergeRepeatedFixed64(r, t, func(v uint64) {
		*dst = append(*dst, int64(v))
	})
}

// EncodeSfixed64Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeSfixed64Packed(w *wire.Writer, tag uint32, vs []int64) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(8 * len(vs)))
	for _, v := range vs {
		w.AppendFixed64(uint64(v))
	}
}

// EncodedLenSfixed64 returns the exact byte count EncodeSfixed64 would
// write.
func EncodedLenSfixed64(tag uint32, v int64) int {
	return wire.SizeKey(tag) + 8
}

// EncodedLenSfixed64Repeated returns the exact byte count
// EncodeSfixed64Repeated would write.
func EncodedLenSfixed64Repeated(tag uint32, vs []int64) int {
	return (wire.SizeKey(tag) + 8) * len(vs)
}

// EncodedLenSfixed64Packed returns the exact byte count
// EncodeSfixed64Packed would write.
func EncodedLenSfixed64Packed(tag uint32, vs []int64) int {
	if len(vs) == 0 {
		return 0
	}
	n := 8 * len(vs)
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
