// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"math"

	"github.com/wirepb/protobuf3/wire"
)

// EncodeDouble writes one double field occurrence. The value is carried as
// its raw IEEE 754 bit pattern so NaN payloads and signed zero survive the
// round trip exactly, not just numerically.
func EncodeDouble(w *wire.Writer, tag uint32, v float64) {
	encodeFixed64Field(w, tag, math.Float64bits(v))
}

// MergeDouble decodes one double value, overwriting dst.
func MergeDouble(r *wire.Reader, t wire.Type, dst *float64) error {
	if err := wire.CheckType(wire.Fixed64, t); err != nil {
		return err
	}
	u, err := r.Fixed64()
	if err != nil {
		return err
	}
	*dst = math.Float64frombits(u)
	return nil
}

// EncodeDoubleRepeated emits one field occurrence per element.
func EncodeDoubleRepeated(w *wire.Writer, tag uint32, vs []float64) {
	for _, v := range vs {
		EncodeDouble(w, tag, v)
	}
}

// MergeDoubleRepeated appends one decoded value, honoring the
// packed/unpacked tolerance rule.
func MergeDoubleRepeated(r *wire.Reader, t wire.Type, dst *[]float64) error {
	return mergeRepeatedFixed64(r, t, func(u uint64) {
		*dst = append(*dst, math.Float64frombits(u))
	})
}

// EncodeDoublePacked emits vs as a single length-delimited packed run, or
// nothing if vs is empty.
func EncodeDoublePacked(w *wire.Writer, tag uint32, vs []float64) {
	if len(vs) == 0 {
		return
	}
	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(8 * len(vs)))
	for _, v := range vs {
		w.AppendFixed64(math.Float64bits(v))
	}
}

// EncodedLenDouble returns the exact byte count EncodeDouble would write.
func EncodedLenDouble(tag uint32, v float64) int {
	return wire.SizeKey(tag) + 8
}

// EncodedLenDoubleRepeated returns the exact byte count
// EncodeDoubleRepeated would write.
func EncodedLenDoubleRepeated(tag uint32, vs []float64) int {
	return (wire.SizeKey(tag) + 8) * len(vs)
}

// EncodedLenDoublePacked returns the exact byte count EncodeDoublePacked
// would write.
func EncodedLenDoublePacked(tag uint32, vs []float64) int {
	if len(vs) == 0 {
		return 0
	}
	n := 8 * len(vs)
	return wire.SizeKey(tag) + wire.SizeVarint(uint64(n)) + n
}
