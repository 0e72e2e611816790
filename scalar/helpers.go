// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements the per-scalar-kind wire codecs for all 15
// Protocol Buffers scalar types. Each kind gets its own file exposing the
// same six-operation vocabulary (Encode, Merge, EncodeRepeated,
// MergeRepeated, EncodePacked where applicable, and the three
// EncodedLen* sizers), following the original Rust source's
// macro-expanded per-kind modules by hand since Go has no item-producing
// macros.
package scalar

import "github.com/wirepb/protobuf3/wire"

// encodeVarintField writes a single (key, varint) field occurrence. It is
// shared plumbing behind the public per-kind Encode functions, which each
// do their own to-uint64 conversion before calling this.
func encodeVarintField(w *wire.Writer, tag uint32, u uint64) {
	w.AppendKey(tag, wire.Varint)
	w.AppendVarint(u)
}

// mergeVarintField validates the wire type and decodes one varint value.
func mergeVarintField(r *wire.Reader, t wire.Type) (uint64, error) {
	if err := wire.CheckType(wire.Varint, t); err != nil {
		return 0, err
	}
	return r.Varint()
}

// mergeRepeatedVarint implements the packed/unpacked tolerance rule
// (spec §4.3) shared by every numeric varint kind: a LengthDelimited wire
// type means a packed run to drain; the kind's own natural wire type
// means a single tolerant occurrence.
func mergeRepeatedVarint(r *wire.Reader, t wire.Type, emit func(uint64)) error {
	if t == wire.LengthDelimited {
		sub, err := r.SubMessage()
		if err != nil {
			return err
		}
		for !sub.Done() {
			v, err := sub.Varint()
			if err != nil {
				return err
			}
			emit(v)
		}
		return nil
	}
	v, err := mergeVarintField(r, t)
	if err != nil {
		return err
	}
	emit(v)
	return nil
}

func encodeFixed32Field(w *wire.Writer, tag uint32, u uint32) {
	w.AppendKey(tag, wire.Fixed32)
	w.AppendFixed32(u)
}

func encodeFixed64Field(w *wire.Writer, tag uint32, u uint64) {
	w.AppendKey(tag, wire.Fixed64)
	w.AppendFixed64(u)
}

func mergeRepeatedFixed32(r *wire.Reader, t wire.Type, emit func(uint32)) error {
	if t == wire.LengthDelimited {
		sub, err := r.SubMessage()
		if err != nil {
			return err
		}
		for !sub.Done() {
			v, err := sub.Fixed32()
			if err != nil {
				return err
			}
			emit(v)
		}
		return nil
	}
	if err := wire.CheckType(wire.Fixed32, t); err != nil {
		return err
	}
	v, err := r.Fixed32()
	if err != nil {
		return err
	}
	emit(v)
	return nil
}

func mergeRepeatedFixed64(r *wire.Reader, t wire.Type, emit func(uint64)) error {
	if t == wire.LengthDelimited {
		sub, err := r.SubMessage()
		if err != nil {
			return err
		}
		for !sub.Done() {
			v, err := sub.Fixed64()
			if err != nil {
				return err
			}
			emit(v)
		}
		return nil
	}
	if err := wire.CheckType(wire.Fixed64, t); err != nil {
		return err
	}
	v, err := r.Fixed64()
	if err != nil {
		return err
	}
	emit(v)
	return nil
}
