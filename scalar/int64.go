// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeInt64 writes one int64 field occurrence.
func EncodeInt64(w *wire.Writer, tag uint32, v int64) {
	encodeVarintField(w, tag, uint64(v))
}

// MergeInt64 decodes one int64 value, overwriting dst.
func MergeInt64(r *wire.Reader, t wire.Type, dst *int64) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = int64(u)
	return nil
}

// EncodeInt64Repeated emits one field occurrence per element.
func EncodeInt64Repeated(w *wire.Writer, tag uint32, vs []int64) {
	for _, v := range vs {
		EncodeInt64(w, tag, v)
	}
}

// MergeInt64Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeInt64Repeated(r *wire.Reader, t wire.Type, dst *[]int64) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, int64(u))
	})
}

// EncodeInt64Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeInt64Packed(w *wire.Writer, tag uint32, vs []int64) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(v))
	}
	w.AppendVarint(uint64(n))
	for _, v := range vs {
		w.AppendVarint(uint64(v))
	}
}

// EncodedLenInt64 returns the exact byte count EncodeInt64 would write.
func EncodedLenInt64(tag uint32, v int64) int {
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(v))
}

// EncodedLenInt64Repeated returns the exact byte count EncodeInt64Repeated
// would write.
func EncodedLenInt64Repeated(tag uint32, vs []int64) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeVarint(uint64(v))
	}
	return n
}

// EncodedLenInt64Packed returns the exact byte count EncodeInt64Packed
// would write.
func EncodedLenInt64Packed(tag uint32, vs []int64) int {
	if len(vs) == 0 {
		return 0
	}
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(v))
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
