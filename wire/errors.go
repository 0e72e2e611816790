// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "fmt"

// Kind classifies the reason a wire-format decode or encode operation
// failed. It is exposed so callers can use errors.As to distinguish
// malformed input from an internal encode-side capacity problem.
type Kind int

const (
	// Malformed covers varint overrun, an invalid wire type, a zero tag,
	// or a field key that overflows uint32.
	Malformed Kind = iota + 1
	// WireMismatch means the wire type on the stream does not match the
	// wire type a scalar kind requires.
	WireMismatch
	// Truncated means a declared length-delimited payload is longer than
	// the bytes remaining in the input.
	Truncated
	// TrailingBytes means a message's merge (top-level or a
	// length-delimited sub-message) left bytes in its reader unconsumed.
	TrailingBytes
	// InvalidUTF8 means a string field's payload is not valid UTF-8.
	InvalidUTF8
	// Capacity means an encode-side fixed-capacity destination could not
	// be grown to hold the output.
	Capacity
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case WireMismatch:
		return "wire type mismatch"
	case Truncated:
		return "truncated"
	case TrailingBytes:
		return "trailing bytes"
	case InvalidUTF8:
		return "invalid UTF-8"
	case Capacity:
		return "capacity"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every decode operation in this
// module. No encode operation here returns an error, so the Capacity kind
// is never produced by this module.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "protobuf3: " + e.Kind.String()
	}
	return "protobuf3: " + e.Kind.String() + ": " + e.Msg
}

// newError builds an *Error with a formatted message, the same calling
// convention as the teacher's errors.New.
func newError(k Kind, f string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(f, args...)}
}

// NewInvalidUTF8Error builds the error a string field's Merge returns when
// its payload is not well-formed UTF-8. Exported because the check itself
// lives in the scalar package, not here.
func NewInvalidUTF8Error() *Error {
	return newError(InvalidUTF8, "string field is not valid UTF-8")
}

// NewTrailingBytesError builds the error returned when a message's Merge
// leaves bytes in its reader unconsumed. Exported for callers outside this
// package that frame and verify a sub-message's boundaries themselves.
func NewTrailingBytesError() *Error {
	return newError(TrailingBytes, "message left unconsumed bytes")
}
