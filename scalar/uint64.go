// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeUint64 writes one uint64 field occurrence.
func EncodeUint64(w *wire.Writer, tag uint32, v uint64) {
	encodeVarintField(w, tag, v)
}

// MergeUint64 decodes one uint64 value, overwriting dst.
func MergeUint64(r *wire.Reader, t wire.Type, dst *uint64) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = u
	return nil
}

// EncodeUint64Repeated emits one field occurrence per element.
func EncodeUint64Repeated(w *wire.Writer, tag uint32, vs []uint64) {
	for _, v := range vs {
		EncodeUint64(w, tag, v)
	}
}

// MergeUint64Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeUint64Repeated(r *wire.Reader, t wire.Type, dst *[]uint64) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, u)
	})
}

// EncodeUint64Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeUint64Packed(w *wire.Writer, tag uint32, vs []uint64) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(v)
	}
	w.AppendVarint(uint64(n))
	for _, v := range vs {
		w.AppendVarint(v)
	}
}

// EncodedLenUint64 returns the exact byte count EncodeUint64 would write.
func EncodedLenUint64(tag uint32, v uint64) int {
	return wire.SizeKey(tag) + wire.SizeVarint(v)
}

// EncodedLenUint64Repeated returns the exact byte count
// EncodeUint64Repeated would write.
func EncodedLenUint64Repeated(tag uint32, vs []uint64) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeVarint(v)
	}
	return n
}

// EncodedLenUint64Packed returns the exact byte count EncodeUint64Packed
// would write.
func EncodedLenUint64Packed(tag uint32, vs []uint64) int {
	if len(vs) == 0 {
		return 0
	}
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(v)
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
