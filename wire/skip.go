// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// CheckType fails with WireMismatch if actual does not equal want.
func CheckType(want, actual Type) error {
	if want != actual {
		return newError(WireMismatch, "wire type %d, want %d", actual, want)
	}
	return nil
}

// Skip drains one field's worth of payload for the given wire type
// without interpreting it. It is how a Message.Merge loop discards a tag
// it doesn't recognize. Group wire types never reach here: Key already
// rejects them during decode.
func (r *Reader) Skip(t Type) error {
	switch t {
	case Varint:
		_, err := r.Varint()
		return err
	case Fixed64:
		return r.Advance(8)
	case Fixed32:
		return r.Advance(4)
	case LengthDelimited:
		n, err := r.Varint()
		if err != nil {
			return err
		}
		return r.Advance(int(n))
	default:
		return newError(Malformed, "cannot skip wire type %d", t)
	}
}
