// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conformance implements the stdio conformance test harness: a
// length-prefixed request/response loop that decodes a protobuf payload,
// re-encodes it, and reports whether the codec round-tripped it cleanly.
package conformance

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/wirepb/protobuf3/proto"
	"github.com/wirepb/protobuf3/testpb"
)

// maxMessageSize bounds a single request so a corrupt or adversarial
// length prefix cannot force an unbounded allocation.
const maxMessageSize = 64 << 20

// ReadRequest reads one length-prefixed ConformanceRequest from r. It
// returns io.EOF, unwrapped, when r is exhausted cleanly between
// messages.
func ReadRequest(r io.Reader) (*testpb.ConformanceRequest, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("conformance: partial length prefix: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	if n > maxMessageSize {
		return nil, fmt.Errorf("conformance: request of %d bytes exceeds %d byte limit", n, maxMessageSize)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("conformance: reading %d byte request: %w", n, err)
	}

	req := &testpb.ConformanceRequest{}
	if err := proto.Unmarshal(payload, req); err != nil {
		return nil, fmt.Errorf("conformance: decoding ConformanceRequest: %w", err)
	}
	return req, nil
}

// WriteResponse writes resp to w with the same 4-byte little-endian
// length-prefix framing as ReadRequest.
func WriteResponse(w io.Writer, resp *testpb.ConformanceResponse) error {
	payload := proto.Marshal(resp)

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// Handle implements the dispatch rules of the conformance protocol for a
// single request: output format validation, payload-kind rejection for
// JSON, and the decode/re-encode/compare cycle for a protobuf payload.
// Internal invariant violations (a RuntimeError result) are additionally
// dumped to diag, the human-readable diagnostics stream spec §6 requires
// of the CLI; diag may be nil to discard them.
func Handle(req *testpb.ConformanceRequest, diag io.Writer) *testpb.ConformanceResponse {
	switch req.RequestedOutputFormat {
	case testpb.WireFormatProtobuf:
		// proceed
	case testpb.WireFormatJSON:
		return skipped("JSON output is not supported")
	default:
		return parseError("unrecognized requested output format")
	}

	switch p := req.Payload.(type) {
	case nil:
		return parseError("no payload")
	case *testpb.ConformanceRequest_JsonPayload:
		return skipped("JSON input is not supported")
	case *testpb.ConformanceRequest_ProtobufPayload:
		return handleProtobufPayload(p.ProtobufPayload, diag)
	default:
		return parseError("no payload")
	}
}

func handleProtobufPayload(payload []byte, diag io.Writer) *testpb.ConformanceResponse {
	msg := &testpb.TestAllTypes{}
	if err := proto.Unmarshal(payload, msg); err != nil {
		return parseError(err.Error())
	}

	wantLen := msg.EncodedLen()
	reencoded := proto.Marshal(msg)
	if len(reencoded) != wantLen {
		if diag != nil {
			proto.DebugPrint(diag, "decoded payload", payload)
			proto.DebugPrint(diag, "re-encoded (length mismatch)", reencoded)
		}
		return runtimeError(fmt.Sprintf("encoded_len mismatch: EncodedLen()=%d, len(Marshal())=%d", wantLen, len(reencoded)))
	}

	again := &testpb.TestAllTypes{}
	if err := proto.Unmarshal(reencoded, again); err != nil {
		if diag != nil {
			proto.DebugPrint(diag, "re-encoded bytes that failed to decode", reencoded)
		}
		return runtimeError(fmt.Sprintf("decoding our own re-encoded bytes failed: %v", err))
	}
	reencodedAgain := proto.Marshal(again)
	if !bytes.Equal(reencoded, reencodedAgain) {
		if diag != nil {
			proto.DebugPrint(diag, "first re-encode", reencoded)
			proto.DebugPrint(diag, "second re-encode", reencodedAgain)
		}
		return runtimeError("re-encoding a decoded message twice produced different bytes")
	}

	return &testpb.ConformanceResponse{
		Result: &testpb.ConformanceResponse_ProtobufPayload{ProtobufPayload: reencoded},
	}
}

func parseError(msg string) *testpb.ConformanceResponse {
	return &testpb.ConformanceResponse{Result: &testpb.ConformanceResponse_ParseError{ParseError: msg}}
}

func runtimeError(msg string) *testpb.ConformanceResponse {
	return &testpb.ConformanceResponse{Result: &testpb.ConformanceResponse_RuntimeError{RuntimeError: msg}}
}

func skipped(msg string) *testpb.ConformanceResponse {
	return &testpb.ConformanceResponse{Result: &testpb.ConformanceResponse_Skipped{Skipped: msg}}
}

// Run drives the read-handle-write loop until r reaches a clean EOF
// between messages, at which point it returns nil. Any other error from
// reading, decoding framing, or writing is returned to the caller. diag
// receives DebugPrint dumps of any payload that triggers a RuntimeError;
// diag may be nil to discard them.
func Run(r io.Reader, w io.Writer, diag io.Writer) error {
	for {
		req, err := ReadRequest(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		resp := Handle(req, diag)

		if err := WriteResponse(w, resp); err != nil {
			return err
		}
	}
}
