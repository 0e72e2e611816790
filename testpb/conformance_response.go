// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testpb

import (
	"github.com/wirepb/protobuf3/scalar"
	"github.com/wirepb/protobuf3/wire"
)

// ConformanceResponse is the harness's answer to one ConformanceRequest.
// Exactly one of the wrapper types below should be assigned to Result.
type ConformanceResponse struct {
	Result ConformanceResponseResult
}

// ConformanceResponseResult is implemented by the wrapper types valid for
// ConformanceResponse.Result.
type ConformanceResponseResult interface {
	isConformanceResponseResult()
}

type ConformanceResponse_ParseError struct {
	ParseError string
}

type ConformanceResponse_RuntimeError struct {
	RuntimeError string
}

type ConformanceResponse_ProtobufPayload struct {
	ProtobufPayload []byte
}

type ConformanceResponse_Skipped struct {
	Skipped string
}

func (*ConformanceResponse_ParseError) isConformanceResponseResult()      {}
func (*ConformanceResponse_RuntimeError) isConformanceResponseResult()    {}
func (*ConformanceResponse_ProtobufPayload) isConformanceResponseResult() {}
func (*ConformanceResponse_Skipped) isConformanceResponseResult()         {}

func (m *ConformanceResponse) Encode(w *wire.Writer) {
	switch r := m.Result.(type) {
	case *ConformanceResponse_ParseError:
		scalar.EncodeString(w, 1, r.ParseError)
	case *ConformanceResponse_RuntimeError:
		scalar.EncodeString(w, 3, r.RuntimeError)
	case *ConformanceResponse_ProtobufPayload:
		scalar.EncodeBytes(w, 4, r.ProtobufPayload)
	case *ConformanceResponse_Skipped:
		scalar.EncodeString(w, 6, r.Skipped)
	}
}

func (m *ConformanceResponse) Merge(r *wire.Reader) error {
	for !r.Done() {
		tag, t, err := r.Key()
		if err != nil {
			return err
		}
		switch tag {
		case 1:
			var s string
			if err := scalar.MergeString(r, t, &s); err != nil {
				return err
			}
			m.Result = &ConformanceResponse_ParseError{ParseError: s}
		case 3:
			var s string
			if err := scalar.MergeString(r, t, &s); err != nil {
				return err
			}
			m.Result = &ConformanceResponse_RuntimeError{RuntimeError: s}
		case 4:
			var b []byte
			if err := scalar.MergeBytes(r, t, &b); err != nil {
				return err
			}
			m.Result = &ConformanceResponse_ProtobufPayload{ProtobufPayload: b}
		case 6:
			var s string
			if err := scalar.MergeString(r, t, &s); err != nil {
				return err
			}
			m.Result = &ConformanceResponse_Skipped{Skipped: s}
		default:
			if err := r.Skip(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *ConformanceResponse) EncodedLen() int {
	switch r := m.Result.(type) {
	case *ConformanceResponse_ParseError:
		return scalar.EncodedLenString(1, r.ParseError)
	case *ConformanceResponse_RuntimeError:
		return scalar.EncodedLenString(3, r.RuntimeError)
	case *ConformanceResponse_ProtobufPayload:
		return scalar.EncodedLenBytes(4, r.ProtobufPayload)
	case *ConformanceResponse_Skipped:
		return scalar.EncodedLenString(6, r.Skipped)
	}
	return 0
}
