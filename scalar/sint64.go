// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeSint64 writes one sint64 field occurrence, zig-zag encoded so
// small-magnitude negatives stay short on the wire.
func EncodeSint64(w *wire.Writer, tag uint32, v int64) {
	encodeVarintField(w, tag, wire.ZigZag64(v))
}

// MergeSint64 decodes one zig-zag-encoded sint64 value.
func MergeSint64(r *wire.Reader, t wire.Type, dst *int64) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = wire.UnZigZag64(u)
	return nil
}

// EncodeSint64Repeated emits one field occurrence per element.
func EncodeSint64Repeated(w *wire.Writer, tag uint32, vs []int64) {
	for _, v := range vs {
		EncodeSint64(w, tag, v)
	}
}

// MergeSint64Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeSint64Repeated(r *wire.Reader, t wire.Type, dst *[]int64) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, wire.UnZigZag64(u))
	})
}

// EncodeSint64Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeSint64Packed(w *wire.Writer, tag uint32, vs []int64) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(wire.ZigZag64(v))
	}
	w.AppendVarint(uint64(n))
	for _, v := range vs {
		w.AppendVarint(wire.ZigZag64(v))
	}
}

// EncodedLenSint64 returns the exact byte count EncodeSint64 would write.
func EncodedLenSint64(tag uint32, v int64) int {
	return wire.SizeKey(tag) + wire.SizeVarint(wire.ZigZag64(v))
}

// EncodedLenSint64Repeated returns the exact byte count
// EncodeSint64Repeated would write.
func EncodedLenSint64Repeated(tag uint32, vs []int64) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeVarint(wire.ZigZag64(v))
	}
	return n
}

// EncodedLenSint64Packed returns the exact byte count EncodeSint64Packed
// would write.
func EncodedLenSint64Packed(tag uint32, vs []int64) int {
	if len(vs) == 0 {
		return 0
	}
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(wire.ZigZag64(v))
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
