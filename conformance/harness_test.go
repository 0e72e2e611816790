// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conformance

import (
	"bytes"
	"testing"

	"github.com/wirepb/protobuf3/proto"
	"github.com/wirepb/protobuf3/testpb"
)

func TestHandleUnrecognizedOutputFormat(t *testing.T) {
	resp := Handle(&testpb.ConformanceRequest{}, nil)
	if _, ok := resp.Result.(*testpb.ConformanceResponse_ParseError); !ok {
		t.Fatalf("Result = %#v, want ParseError", resp.Result)
	}
}

func TestHandleJSONOutputFormatIsSkipped(t *testing.T) {
	resp := Handle(&testpb.ConformanceRequest{RequestedOutputFormat: testpb.WireFormatJSON}, nil)
	if _, ok := resp.Result.(*testpb.ConformanceResponse_Skipped); !ok {
		t.Fatalf("Result = %#v, want Skipped", resp.Result)
	}
}

func TestHandleNoPayload(t *testing.T) {
	resp := Handle(&testpb.ConformanceRequest{RequestedOutputFormat: testpb.WireFormatProtobuf}, nil)
	if _, ok := resp.Result.(*testpb.ConformanceResponse_ParseError); !ok {
		t.Fatalf("Result = %#v, want ParseError", resp.Result)
	}
}

func TestHandleJSONPayloadIsSkipped(t *testing.T) {
	req := &testpb.ConformanceRequest{
		RequestedOutputFormat: testpb.WireFormatProtobuf,
		Payload:               &testpb.ConformanceRequest_JsonPayload{JsonPayload: "{}"},
	}
	resp := Handle(req, nil)
	if _, ok := resp.Result.(*testpb.ConformanceResponse_Skipped); !ok {
		t.Fatalf("Result = %#v, want Skipped", resp.Result)
	}
}

func TestHandleProtobufPayloadRoundTrips(t *testing.T) {
	msg := &testpb.TestAllTypes{SingularInt32: 42, SingularString: "conformance"}
	req := &testpb.ConformanceRequest{
		RequestedOutputFormat: testpb.WireFormatProtobuf,
		Payload:               &testpb.ConformanceRequest_ProtobufPayload{ProtobufPayload: proto.Marshal(msg)},
	}
	resp := Handle(req, nil)
	payload, ok := resp.Result.(*testpb.ConformanceResponse_ProtobufPayload)
	if !ok {
		t.Fatalf("Result = %#v, want ProtobufPayload", resp.Result)
	}

	got := &testpb.TestAllTypes{}
	if err := proto.Unmarshal(payload.ProtobufPayload, got); err != nil {
		t.Fatalf("Unmarshal response payload: %v", err)
	}
	if got.SingularInt32 != 42 || got.SingularString != "conformance" {
		t.Errorf("got %+v", got)
	}
}

func TestHandleMalformedPayloadIsParseError(t *testing.T) {
	req := &testpb.ConformanceRequest{
		RequestedOutputFormat: testpb.WireFormatProtobuf,
		Payload:               &testpb.ConformanceRequest_ProtobufPayload{ProtobufPayload: []byte{0x00, 0xff}},
	}
	resp := Handle(req, nil)
	if _, ok := resp.Result.(*testpb.ConformanceResponse_ParseError); !ok {
		t.Fatalf("Result = %#v, want ParseError", resp.Result)
	}
}

func TestHandleLeavesDiagUntouchedOnCleanRoundTrip(t *testing.T) {
	// diag only receives DebugPrint dumps when handleProtobufPayload's own
	// internal consistency checks trip, which a correct round trip never
	// does; a non-nil diag is otherwise silent plumbing through to Run.
	msg := &testpb.TestAllTypes{SingularInt32: 42, MapStringInt32: map[string]int32{"x": 1, "y": -2}}
	req := &testpb.ConformanceRequest{
		RequestedOutputFormat: testpb.WireFormatProtobuf,
		Payload:               &testpb.ConformanceRequest_ProtobufPayload{ProtobufPayload: proto.Marshal(msg)},
	}

	var diag bytes.Buffer
	resp := Handle(req, &diag)
	if _, ok := resp.Result.(*testpb.ConformanceResponse_ProtobufPayload); !ok {
		t.Fatalf("Result = %#v, want ProtobufPayload", resp.Result)
	}
	if diag.Len() != 0 {
		t.Errorf("diag got %d bytes for a clean round trip, want 0", diag.Len())
	}
}

func TestRunProcessesStreamUntilEOF(t *testing.T) {
	req := &testpb.ConformanceRequest{
		RequestedOutputFormat: testpb.WireFormatProtobuf,
		Payload:               &testpb.ConformanceRequest_ProtobufPayload{ProtobufPayload: proto.Marshal(&testpb.TestAllTypes{SingularInt32: 7})},
	}

	var stream bytes.Buffer
	if err := WriteResponse(&stream, &testpb.ConformanceResponse{}); err != nil {
		t.Fatal(err)
	}
	stream.Reset()
	reqPayload := proto.Marshal(req)
	lenBuf := make([]byte, 4)
	lenBuf[0] = byte(len(reqPayload))
	lenBuf[1] = byte(len(reqPayload) >> 8)
	lenBuf[2] = byte(len(reqPayload) >> 16)
	lenBuf[3] = byte(len(reqPayload) >> 24)
	stream.Write(lenBuf)
	stream.Write(reqPayload)

	var out bytes.Buffer
	if err := Run(&stream, &out, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() == 0 {
		t.Error("Run wrote no response")
	}
}

func TestRunReturnsNilOnCleanEOF(t *testing.T) {
	var empty bytes.Buffer
	var out bytes.Buffer
	if err := Run(&empty, &out, nil); err != nil {
		t.Errorf("Run on empty stream: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Run wrote %d bytes on empty input, want 0", out.Len())
	}
}
