// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testpb

import (
	"github.com/wirepb/protobuf3/proto"
	"github.com/wirepb/protobuf3/scalar"
	"github.com/wirepb/protobuf3/wire"
	"github.com/wirepb/protobuf3/wiremap"
)

// TestAllTypes stands in for what the code generator would emit from a
// message declaring one field of every scalar kind plus repeated, packed,
// map, nested-message, optional, and oneof fields. It exists to exercise
// every codec in this module against a single message value.
type TestAllTypes struct {
	SingularInt32    int32
	SingularInt64    int64
	SingularUint32   uint32
	SingularUint64   uint64
	SingularSint32   int32
	SingularSint64   int64
	SingularFixed32  uint32
	SingularFixed64  uint64
	SingularSfixed32 int32
	SingularSfixed64 int64
	SingularFloat    float32
	SingularDouble   float64
	SingularBool     bool
	SingularString   string
	SingularBytes    []byte

	RepeatedInt32  []int32
	RepeatedString []string

	MapStringInt32 map[string]int32

	NestedMessage *NestedMessage

	// OptionalInt32 distinguishes "absent" from "present with the zero
	// value", unlike SingularInt32 which always elides the zero value.
	OptionalInt32 *int32

	// OneofField holds exactly one of *TestAllTypes_OneofUint32 or
	// *TestAllTypes_OneofNestedMessage, or nil if unset.
	OneofField TestAllTypesOneof
}

// TestAllTypesOneof is implemented by the wrapper types valid for
// TestAllTypes.OneofField.
type TestAllTypesOneof interface {
	isTestAllTypesOneof()
}

type TestAllTypes_OneofUint32 struct {
	OneofUint32 uint32
}

type TestAllTypes_OneofNestedMessage struct {
	OneofNestedMessage *NestedMessage
}

func (*TestAllTypes_OneofUint32) isTestAllTypesOneof()        {}
func (*TestAllTypes_OneofNestedMessage) isTestAllTypesOneof() {}

const (
	tagSingularInt32    = 1
	tagSingularInt64    = 2
	tagSingularUint32   = 3
	tagSingularUint64   = 4
	tagSingularSint32   = 5
	tagSingularSint64   = 6
	tagSingularFixed32  = 7
	tagSingularFixed64  = 8
	tagSingularSfixed32 = 9
	tagSingularSfixed64 = 10
	tagSingularFloat    = 11
	tagSingularDouble   = 12
	tagSingularBool     = 13
	tagSingularString   = 14
	tagSingularBytes    = 15
	tagRepeatedInt32    = 16
	tagRepeatedString   = 17
	tagMapStringInt32   = 18
	tagNestedMessage    = 19
	tagOptionalInt32    = 20
	tagOneofUint32      = 21
	tagOneofNested      = 22
)

func (m *TestAllTypes) Encode(w *wire.Writer) {
	if m.SingularInt32 != 0 {
		scalar.EncodeInt32(w, tagSingularInt32, m.SingularInt32)
	}
	if m.SingularInt64 != 0 {
		scalar.EncodeInt64(w, tagSingularInt64, m.SingularInt64)
	}
	if m.SingularUint32 != 0 {
		scalar.EncodeUint32(w, tagSingularUint32, m.SingularUint32)
	}
	if m.SingularUint64 != 0 {
		scalar.EncodeUint64(w, tagSingularUint64, m.SingularUint64)
	}
	if m.SingularSint32 != 0 {
		scalar.EncodeSint32(w, tagSingularSint32, m.SingularSint32)
	}
	if m.SingularSint64 != 0 {
		scalar.EncodeSint64(w, tagSingularSint64, m.SingularSint64)
	}
	if m.SingularFixed32 != 0 {
		scalar.EncodeFixed32(w, tagSingularFixed32, m.SingularFixed32)
	}
	if m.SingularFixed64 != 0 {
		scalar.EncodeFixed64(w, tagSingularFixed64, m.SingularFixed64)
	}
	if m.SingularSfixed32 != 0 {
		scalar.EncodeSfixed32(w, tagSingularSfixed32, m.SingularSfixed32)
	}
	if m.SingularSfixed64 != 0 {
		scalar.EncodeSfixed64(w, tagSingularSfixed64, m.SingularSfixed64)
	}
	if m.SingularFloat != 0 {
		scalar.EncodeFloat(w, tagSingularFloat, m.SingularFloat)
	}
	if m.SingularDouble != 0 {
		scalar.EncodeDouble(w, tagSingularDouble, m.SingularDouble)
	}
	if m.SingularBool {
		scalar.EncodeBool(w, tagSingularBool, m.SingularBool)
	}
	if m.SingularString != "" {
		scalar.EncodeString(w, tagSingularString, m.SingularString)
	}
	if len(m.SingularBytes) != 0 {
		scalar.EncodeBytes(w, tagSingularBytes, m.SingularBytes)
	}

	scalar.EncodeInt32Packed(w, tagRepeatedInt32, m.RepeatedInt32)
	scalar.EncodeStringRepeated(w, tagRepeatedString, m.RepeatedString)

	wiremap.EncodeSorted(scalar.EncodeString, scalar.EncodedLenString, scalar.EncodeInt32, scalar.EncodedLenInt32,
		func(a, b string) bool { return a < b }, tagMapStringInt32, m.MapStringInt32, w)

	if m.NestedMessage != nil {
		proto.EncodeMessageField(w, tagNestedMessage, m.NestedMessage)
	}

	if m.OptionalInt32 != nil {
		scalar.EncodeInt32(w, tagOptionalInt32, *m.OptionalInt32)
	}

	switch o := m.OneofField.(type) {
	case *TestAllTypes_OneofUint32:
		scalar.EncodeUint32(w, tagOneofUint32, o.OneofUint32)
	case *TestAllTypes_OneofNestedMessage:
		proto.EncodeMessageField(w, tagOneofNested, o.OneofNestedMessage)
	}
}

func (m *TestAllTypes) Merge(r *wire.Reader) error {
	for !r.Done() {
		tag, t, err := r.Key()
		if err != nil {
			return err
		}
		switch tag {
		case tagSingularInt32:
			err = scalar.MergeInt32(r, t, &m.SingularInt32)
		case tagSingularInt64:
			err = scalar.MergeInt64(r, t, &m.SingularInt64)
		case tagSingularUint32:
			err = scalar.MergeUint32(r, t, &m.SingularUint32)
		case tagSingularUint64:
			err = scalar.MergeUint64(r, t, &m.SingularUint64)
		case tagSingularSint32:
			err = scalar.MergeSint32(r, t, &m.SingularSint32)
		case tagSingularSint64:
			err = scalar.MergeSint64(r, t, &m.SingularSint64)
		case tagSingularFixed32:
			err = scalar.MergeFixed32(r, t, &m.SingularFixed32)
		case tagSingularFixed64:
			err = scalar.MergeFixed64(r, t, &m.SingularFixed64)
		case tagSingularSfixed32:
			err = scalar.MergeSfixed32(r, t, &m.SingularSfixed32)
		case tagSingularSfixed64:
			err = scalar.MergeSfixed64(r, t, &m.SingularSfixed64)
		case tagSingularFloat:
			err = scalar.MergeFloat(r, t, &m.SingularFloat)
		case tagSingularDouble:
			err = scalar.MergeDouble(r, t, &m.SingularDouble)
		case tagSingularBool:
			err = scalar.MergeBool(r, t, &m.SingularBool)
		case tagSingularString:
			err = scalar.MergeString(r, t, &m.SingularString)
		case tagSingularBytes:
			err = scalar.MergeBytes(r, t, &m.SingularBytes)
		case tagRepeatedInt32:
			err = scalar.MergeInt32Repeated(r, t, &m.RepeatedInt32)
		case tagRepeatedString:
			err = scalar.MergeStringRepeated(r, t, &m.RepeatedString)
		case tagMapStringInt32:
			if m.MapStringInt32 == nil {
				m.MapStringInt32 = make(map[string]int32)
			}
			err = wiremap.Merge(scalar.MergeString, scalar.MergeInt32, m.MapStringInt32, r)
		case tagNestedMessage:
			if m.NestedMessage == nil {
				m.NestedMessage = &NestedMessage{}
			}
			err = proto.MergeMessageField(r, t, m.NestedMessage)
		case tagOptionalInt32:
			var v int32
			if err = scalar.MergeInt32(r, t, &v); err == nil {
				m.OptionalInt32 = &v
			}
		case tagOneofUint32:
			var v uint32
			if err = scalar.MergeUint32(r, t, &v); err == nil {
				m.OneofField = &TestAllTypes_OneofUint32{OneofUint32: v}
			}
		case tagOneofNested:
			nested := &NestedMessage{}
			if err = proto.MergeMessageField(r, t, nested); err == nil {
				m.OneofField = &TestAllTypes_OneofNestedMessage{OneofNestedMessage: nested}
			}
		default:
			err = r.Skip(t)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *TestAllTypes) EncodedLen() int {
	n := 0
	if m.SingularInt32 != 0 {
		n += scalar.EncodedLenInt32(tagSingularInt32, m.SingularInt32)
	}
	if m.SingularInt64 != 0 {
		n += scalar.EncodedLenInt64(tagSingularInt64, m.SingularInt64)
	}
	if m.SingularUint32 != 0 {
		n += scalar.EncodedLenUint32(tagSingularUint32, m.SingularUint32)
	}
	if m.SingularUint64 != 0 {
		n += scalar.EncodedLenUint64(tagSingularUint64, m.SingularUint64)
	}
	if m.SingularSint32 != 0 {
		n += scalar.EncodedLenSint32(tagSingularSint32, m.SingularSint32)
	}
	if m.SingularSint64 != 0 {
		n += scalar.EncodedLenSint64(tagSingularSint64, m.SingularSint64)
	}
	if m.SingularFixed32 != 0 {
		n += scalar.EncodedLenFixed32(tagSingularFixed32, m.SingularFixed32)
	}
	if m.SingularFixed64 != 0 {
		n += scalar.EncodedLenFixed64(tagSingularFixed64, m.SingularFixed64)
	}
	if m.SingularSfixed32 != 0 {
		n += scalar.EncodedLenSfixed32(tagSingularSfixed32, m.SingularSfixed32)
	}
	if m.SingularSfixed64 != 0 {
		n += scalar.EncodedLenSfixed64(tagSingularSfixed64, m.SingularSfixed64)
	}
	if m.SingularFloat != 0 {
		n += scalar.EncodedLenFloat(tagSingularFloat, m.SingularFloat)
	}
	if m.SingularDouble != 0 {
		n += scalar.EncodedLenDouble(tagSingularDouble, m.SingularDouble)
	}
	if m.SingularBool {
		n += scalar.EncodedLenBool(tagSingularBool, m.SingularBool)
	}
	if m.SingularString != "" {
		n += scalar.EncodedLenString(tagSingularString, m.SingularString)
	}
	if len(m.SingularBytes) != 0 {
		n += scalar.EncodedLenBytes(tagSingularBytes, m.SingularBytes)
	}

	n += scalar.EncodedLenInt32Packed(tagRepeatedInt32, m.RepeatedInt32)
	n += scalar.EncodedLenStringRepeated(tagRepeatedString, m.RepeatedString)

	n += wiremap.EncodedLen(scalar.EncodedLenString, scalar.EncodedLenInt32, tagMapStringInt32, m.MapStringInt32)

	if m.NestedMessage != nil {
		n += proto.EncodedLenMessageField(tagNestedMessage, m.NestedMessage)
	}

	if m.OptionalInt32 != nil {
		n += scalar.EncodedLenInt32(tagOptionalInt32, *m.OptionalInt32)
	}

	switch o := m.OneofField.(type) {
	case *TestAllTypes_OneofUint32:
		n += scalar.EncodedLenUint32(tagOneofUint32, o.OneofUint32)
	case *TestAllTypes_OneofNestedMessage:
		n += proto.EncodedLenMessageField(tagOneofNested, o.OneofNestedMessage)
	}

	return n
}
