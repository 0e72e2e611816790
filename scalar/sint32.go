// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeSint32 writes one sint32 field occurrence, zig-zag encoded so
// small-magnitude negatives stay short on the wire.
func EncodeSint32(w *wire.Writer, tag uint32, v int32) {
	encodeVarintField(w, tag, uint64(wire.ZigZag32(v)))
}

// MergeSint32 decodes one zig-zag-encoded sint32 value.
func MergeSint32(r *wire.Reader, t wire.Type, dst *int32) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = wire.UnZigZag32(u)
	return nil
}

// EncodeSint32Repeated emits one field occurrence per element.
func EncodeSint32Repeated(w *wire.Writer, tag uint32, vs []int32) {
	for _, v := range vs {
		EncodeSint32(w, tag, v)
	}
}

// MergeSint32Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeSint32Repeated(r *wire.Reader, t wire.Type, dst *[]int32) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, wire.UnZigZag32(u))
	})
}

// EncodeSint32Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeSint32Packed(w *wire.Writer, tag uint32, vs []int32) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(wire.ZigZag32(v)))
	}
	w.AppendVarint(uint64(n))
	for _, v := range vs {
		w.AppendVarint(uint64(wire.ZigZag32(v)))
	}
}

// EncodedLenSint32 returns the exact byte count EncodeSint32 would write.
func EncodedLenSint32(tag uint32, v int32) int {
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(wire.ZigZag32(v)))
}

// EncodedLenSint32Repeated returns the exact byte count
// EncodeSint32Repeated would write.
func EncodedLenSint32Repeated(tag uint32, vs []int32) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeVarint(uint64(wire.ZigZag32(v)))
	}
	return n
}

// EncodedLenSint32Packed returns the exact byte count EncodeSint32Packed
// would write.
func EncodedLenSint32Packed(tag uint32, vs []int32) int {
	if len(vs) == 0 {
		return 0
	}
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(wire.ZigZag32(v)))
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
