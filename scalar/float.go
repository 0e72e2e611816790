// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"math"

	"github.com/wirepb/protobuf3/wire"
)

// EncodeFloat writes one float field occurrence. The value is carried as
// its raw IEEE 754 bit pattern so NaN payloads and signed zero survive the
// round trip exactly, not just numerically.
func EncodeFloat(w *wire.Writer, tag uint32, v float32) {
	encodeFixed32Field(w, tag, math.Float32bits(v))
}

// MergeFloat decodes one float value, overwriting dst.
func MergeFloat(r *wire.Reader, t wire.Type, dst *float32) error {
	if err := wire.CheckType(wire.Fixed32, t); err != nil {
		return err
	}
	u, err := r.Fixed32()
	if err != nil {
		return err
	}
	*dst = math.Float32frombits(u)
	return nil
}

// EncodeFloatRepeated emits one field occurrence per element.
func EncodeFloatRepeated(w *wire.Writer, tag uint32, vs []float32) {
	for _, v := range vs {
		EncodeFloat(w, tag, v)
	}
}

// MergeFloatRepeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeFloatRepeated(r *wire.Reader, t wire.Type, dst *[]float32) error {
	return mergeRepeatedFixed32(r, t, func(u uint32) {
		*dst = append(*dst, math.Float32frombits(u))
	})
}

// EncodeFloatPacked emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeFloatPacked(w *wire.Writer, tag uint32, vs []float32) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(4 * len(vs)))
	for _, v := range vs {
		w.AppendFixed32(math.Float32bits(v))
	}
}

// EncodedLenFloat returns the exact byte count EncodeFloat would write.
func EncodedLenFloat(tag uint32, v float32) int {
	return wire.SizeKey(tag) + 4
}

// EncodedLenFloatRepeated returns the exact byte count EncodeFloatRepeated
// would write.
func EncodedLenFloatRepeated(tag uint32, vs []float32) int {
	return (wire.SizeKey(tag) + 4) * len(vs)
}

// EncodedLenFloatPacked returns the exact byte count EncodeFloatPacked
// would write.
func EncodedLenFloatPacked(tag uint32, vs []float32) int {
	if len(vs) == 0 {
		return 0
	}
	n := 4 * len(vs)
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
