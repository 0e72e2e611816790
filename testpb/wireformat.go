// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testpb contains hand-written message types shaped the way the
// code generator (an external collaborator per the wire-format contract)
// would emit them: plain structs implementing proto.Message by calling
// straight into the scalar, wiremap, and proto packages.
package testpb

// WireFormat names the serialization the conformance harness is asked to
// use for a test's output, or the format a payload is carried in.
type WireFormat int32

const (
	WireFormatUnspecified WireFormat = 0
	WireFormatProtobuf    WireFormat = 1
	WireFormatJSON        WireFormat = 2
)

func (f WireFormat) String() string {
	switch f {
	case WireFormatUnspecified:
		return "UNSPECIFIED"
	case WireFormatProtobuf:
		return "PROTOBUF"
	case WireFormatJSON:
		return "JSON"
	default:
		return "UNKNOWN"
	}
}
