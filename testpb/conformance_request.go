// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testpb

import (
	"github.com/wirepb/protobuf3/scalar"
	"github.com/wirepb/protobuf3/wire"
)

// ConformanceRequest is one test case sent by the conformance test runner:
// a payload to decode, and the wire format the response should be encoded
// in.
type ConformanceRequest struct {
	// Payload holds exactly one of *ConformanceRequest_ProtobufPayload or
	// *ConformanceRequest_JsonPayload, or is nil if the request carried no
	// payload at all.
	Payload               ConformanceRequestPayload
	RequestedOutputFormat WireFormat
}

// ConformanceRequestPayload is implemented by the wrapper types valid for
// ConformanceRequest.Payload, the same marker-interface shape the code
// generator produces for a oneof.
type ConformanceRequestPayload interface {
	isConformanceRequestPayload()
}

type ConformanceRequest_ProtobufPayload struct {
	ProtobufPayload []byte
}

type ConformanceRequest_JsonPayload struct {
	JsonPayload string
}

func (*ConformanceRequest_ProtobufPayload) isConformanceRequestPayload() {}
func (*ConformanceRequest_JsonPayload) isConformanceRequestPayload()     {}

func (m *ConformanceRequest) Encode(w *wire.Writer) {
	switch p := m.Payload.(type) {
	case *ConformanceRequest_ProtobufPayload:
		scalar.EncodeBytes(w, 1, p.ProtobufPayload)
	case *ConformanceRequest_JsonPayload:
		scalar.EncodeString(w, 2, p.JsonPayload)
	}
	if m.RequestedOutputFormat != WireFormatUnspecified {
		scalar.EncodeInt32(w, 3, int32(m.RequestedOutputFormat))
	}
}

func (m *ConformanceRequest) Merge(r *wire.Reader) error {
	for !r.Done() {
		tag, t, err := r.Key()
		if err != nil {
			return err
		}
		switch tag {
		case 1:
			var b []byte
			if err := scalar.MergeBytes(r, t, &b); err != nil {
				return err
			}
			m.Payload = &ConformanceRequest_ProtobufPayload{ProtobufPayload: b}
		case 2:
			var s string
			if err := scalar.MergeString(r, t, &s); err != nil {
				return err
			}
			m.Payload = &ConformanceRequest_JsonPayload{JsonPayload: s}
		case 3:
			var v int32
			if err := scalar.MergeInt32(r, t, &v); err != nil {
				return err
			}
			m.RequestedOutputFormat = WireFormat(v)
		default:
			if err := r.Skip(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *ConformanceRequest) EncodedLen() int {
	n := 0
	switch p := m.Payload.(type) {
	case *ConformanceRequest_ProtobufPayload:
		n += scalar.EncodedLenBytes(1, p.ProtobufPayload)
	case *ConformanceRequest_JsonPayload:
		n += scalar.EncodedLenString(2, p.JsonPayload)
	}
	if m.RequestedOutputFormat != WireFormatUnspecified {
		n += scalar.EncodedLenInt32(3, int32(m.RequestedOutputFormat))
	}
	return n
}
