// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// AppendLengthDelimited appends a varint length prefix followed by b. This
// is the framing shared by string, bytes, and nested-message fields.
func (w *Writer) AppendLengthDelimited(b []byte) {
	w.AppendVarint(uint64(len(b)))
	w.Write(b)
}

// SizeLengthDelimited returns the total encoded size (length prefix plus
// payload) of an n-byte length-delimited value.
func SizeLengthDelimited(n int) int {
	return SizeVarint(uint64(n)) + n
}

// RawBytes reads a varint length prefix followed by that many bytes,
// returning a copy so the result stays valid after the source buffer is
// reclaimed (per the ownership rule in spec §5: decode must not alias the
// caller's backing store for string/bytes destinations).
func (r *Reader) RawBytes() ([]byte, error) {
	n, err := r.Varint()
	if err != nil {
		return nil, err
	}
	if uint64(r.Remaining()) < n {
		return nil, newError(Truncated, "length-delimited value declares %d bytes, %d remain", n, r.Remaining())
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+int(n)])
	r.off += int(n)
	return out, nil
}

// SubMessage reads a varint length prefix and returns the bounded,
// zero-copy sub-reader for a nested message's payload.
func (r *Reader) SubMessage() (*Reader, error) {
	n, err := r.Varint()
	if err != nil {
		return nil, err
	}
	if uint64(r.Remaining()) < n {
		return nil, newError(Truncated, "nested message declares %d bytes, %d remain", n, r.Remaining())
	}
	return r.Sub(int(n))
}
