// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testpb

import (
	"github.com/wirepb/protobuf3/scalar"
	"github.com/wirepb/protobuf3/wire"
)

// NestedMessage is a small message embedded by TestAllTypes, both as a
// plain nested-message field and as a oneof variant.
type NestedMessage struct {
	A int32
	B string
}

func (m *NestedMessage) Encode(w *wire.Writer) {
	if m.A != 0 {
		scalar.EncodeInt32(w, 1, m.A)
	}
	if m.B != "" {
		scalar.EncodeString(w, 2, m.B)
	}
}

func (m *NestedMessage) Merge(r *wire.Reader) error {
	for !r.Done() {
		tag, t, err := r.Key()
		if err != nil {
			return err
		}
		switch tag {
		case 1:
			if err := scalar.MergeInt32(r, t, &m.A); err != nil {
				return err
			}
		case 2:
			if err := scalar.MergeString(r, t, &m.B); err != nil {
				return err
			}
		default:
			if err := r.Skip(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *NestedMessage) EncodedLen() int {
	n := 0
	if m.A != 0 {
		n += scalar.EncodedLenInt32(1, m.A)
	}
	if m.B != "" {
		n += scalar.EncodedLenString(2, m.B)
	}
	return n
}
