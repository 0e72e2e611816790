// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "github.com/wirepb/protobuf3/wire"

// EncodeUint32 writes one uint32 field occurrence.
func EncodeUint32(w *wire.Writer, tag uint32, v uint32) {
	encodeVarintField(w, tag, uint64(v))
}

// MergeUint32 decodes one uint32 value, overwriting dst.
func MergeUint32(r *wire.Reader, t wire.Type, dst *uint32) error {
	u, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	*dst = uint32(u)
	return nil
}

// EncodeUint32Repeated emits one field occurrence per element.
func EncodeUint32Repeated(w *wire.Writer, tag uint32, vs []uint32) {
	for _, v := range vs {
		EncodeUint32(w, tag, v)
	}
}

// MergeUint32Repeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeUint32Repeated(r *wire.Reader, t wire.Type, dst *[]uint32) error {
	return mergeRepeatedVarint(r, t, func(u uint64) {
		*dst = append(*dst, uint32(u))
	})
}

// EncodeUint32Packed emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeUint32Packed(w *wire.Writer, tag uint32, vs []uint32) {
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

// EncodedLenUint32 returns the exact byte count EncodeUint32 would write.
func EncodedLenUint32(tag uint32, v uint32) int {
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(v))
}

// EncodedLenUint32Repeated returns the exact byte count
// EncodeUint32Repeated would write.
func EncodedLenUint32Repeated(tag uint32, vs []uint32) int {
	n := wire.SizeKey(tag) * len(vs)
	for _, v := range vs {
		n += wire.SizeVarint(uint64(v))
	}
	return n
}

// EncodedLenUint32Packed returns the exact byte count EncodeUint32Packed
// would write.
func EncodedLenUint32Packed(tag uint32, vs []uint32) int {
	if len(vs) == 0 {
		return 0
	}
	var n int
	for _, v := range vs {
		n += wire.SizeVarint(uint64(v))
	}
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
