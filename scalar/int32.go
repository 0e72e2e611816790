// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeInt32 writes one int32 field occurrence. Negative values are
// encoded as their 64-bit sign-extended varint, per the protobuf wire
// contract — Go's int32-to-uint64 conversion sign-extends automatically,
// so -1 becomes the 10-byte all-ones varint the wire format expects.
func EncodeInt32(w *wire.Writer, tag uint32, v int32) {
	encodeVarintField(w, tag, uint64(int64(v)))
}

// MergeInt32 decodes one int32 value, truncating the 64-bit varint to 32
// bits. encoded_len for a negative int32 is therefore not bounded by the
// length of the input that produced it (see spec §9's open question).
func MergeInt32(r *wire.Reader, t wire.Type, dst *int32) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = int32(u)
	return nil
}

// EncodeInt32Repeated emits one field occurrence per element.
func EncodeInt32Repeated(w *wire.Writer, tag uint32, vs []int32) {
	for _, v := range vs {
		EncodeInt32(w, tag, v)
	}
}

// MergeInt32Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeInt32Repeated(r *wire.Reader, t wire.Type, dst *[]int32) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, int32(u))
	})
}

// EncodeInt32Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeInt32Packed(w *wire.Writer, tag uint32, vs []int32) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(int64(v)))
	}
	w.AppendVarint(uint64(n))
	for _, v := range vs {
		w.AppendVarint(uint64(int64(v)))
	}
}

// EncodedLenInt32 returns the exact byte count EncodeInt32 would write.
func EncodedLenInt32(tag uint32, v int32) int {
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(int64(v)))
}

// EncodedLenInt32Repeated returns the exact byte count EncodeInt32Repeated
// would write.
func EncodedLenInt32Repeated(tag uint32, vs []int32) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeVarint(uint64(int64(v)))
	}
	return n
}

// EncodedLenInt32Packed returns the exact byte count EncodeInt32Packed
// would write.
func EncodedLenInt32Packed(tag uint32, vs []int32) int {
	if len(vs) == 0 {
		return 0
	}
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(int64(v)))
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
