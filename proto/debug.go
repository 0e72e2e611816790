// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"fmt"
	"io"

	"github.com/wirepb/protobuf3/wire"
)

// DebugPrint dumps the wire-format encoding in b to w in a human-readable
// format headed by s, for use in diagnosing conformance-test mismatches.
// It tolerates malformed input, printing as much as it can decode before
// reporting the error that stopped it.
func DebugPrint(w io.Writer, s string, b []byte) {
	fmt.Fprintf(w, "\n--- %s ---\n", s)

	r := wire.NewReader(b)
	for !r.Done() {
		start := len(b) - r.Remaining()
		tag, t, err := r.Key()
		if err != nil {
			fmt.Fprintf(w, "%3d: fetching key err %v\n", start, err)
			break
		}

		switch t {
		case wire.Varint:
			v, err := r.Varint()
			if err != nil {
				fmt.Fprintf(w, "%3d: t=%3d varint err %v\n", start, tag, err)
				return
			}
			fmt.Fprintf(w, "%3d: t=%3d varint %d\n", start, tag, v)

		case wire.Fixed32:
			v, err := r.Fixed32()
			if err != nil {
				fmt.Fprintf(w, "%3d: t=%3d fix32 err %v\n", start, tag, err)
				return
			}
			fmt.Fprintf(w, "%3d: t=%3d fix32 %d\n", start, tag, v)

		case wire.Fixed64:
			v, err := r.Fixed64()
			if err != nil {
				fmt.Fprintf(w, "%3d: t=%3d fix64 err %v\n", start, tag, err)
				return
			}
			fmt.Fprintf(w, "%3d: t=%3d fix64 %d\n", start, tag, v)

		case wire.LengthDelimited:
			raw, err := r.RawBytes()
			if err != nil {
				fmt.Fprintf(w, "%3d: t=%3d bytes err %v\n", start, tag, err)
				return
			}
			fmt.Fprintf(w, "%3d: t=%3d bytes [%d]", start, tag, len(raw))
			printHexSample(w, raw)

		default:
			fmt.Fprintf(w, "%3d: t=%3d unknown wire=%d\n", start, tag, t)
			return
		}
	}
	fmt.Fprintf(w, "\n")
}

func printHexSample(w io.Writer, b []byte) {
	if len(b) <= 6 {
		for _, c := range b {
			fmt.Fprintf(w, " %.2x", c)
		}
	} else {
		for _, c := range b[:3] {
			fmt.Fprintf(w, " %.2x", c)
		}
		fmt.Fprint(w, " ..")
		for _, c := range b[len(b)-3:] {
			fmt.Fprintf(w, " %.2x", c)
		}
	}
	fmt.Fprintf(w, "\n")
}
