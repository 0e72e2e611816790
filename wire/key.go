// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// AppendKey appends the varint-encoded field key ((tag<<3)|wireType) for
// tag and t. The caller is responsible for tag being in [MinTag, MaxTag];
// neither this method nor the scalar and wiremap encoders check it.
func (w *Writer) AppendKey(tag uint32, t Type) {
	w.AppendVarint(uint64(tag)<<3 | uint64(t))
}

// SizeKey returns the byte width (1 through 5) of the encoded key for tag.
func SizeKey(tag uint32) int {
	return SizeVarint(uint64(tag) << 3)
}

// Key decodes a field key, validating that the wire type is one of the
// four supported kinds (0, 1, 2, 5 — never a deprecated group type) and
// that the tag is nonzero and fits in 32 bits.
func (r *Reader) Key() (tag uint32, t Type, err error) {
	k, err := r.Varint()
	if err != nil {
		return 0, 0, err
	}
	if k > 1<<32-1 {
		return 0, 0, newError(Malformed, "field key overflows uint32")
	}
	t = Type(k & 7)
	tag = uint32(k >> 3)
	if !t.valid() {
		return 0, 0, newError(Malformed, "invalid wire type %d", k&7)
	}
	if tag < MinTag {
		return 0, 0, newError(Malformed, "zero field tag")
	}
	return tag, t, nil
}
