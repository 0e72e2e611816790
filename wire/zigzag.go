// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// ZigZag32 maps a signed 32-bit value into unsigned space so small
// magnitudes (positive or negative) get short varints. This is the
// encoding used for sint32.
func ZigZag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// UnZigZag32 is the inverse of ZigZag32, truncating to 32 bits first so a
// 10-byte varint whose high bits are all ones decodes to -1, per the
// sint32 contract.
func UnZigZag32(u uint64) int32 {
	v := uint32(u)
	return int32(v>>1) ^ -int32(v&1)
}

// ZigZag64 maps a signed 64-bit value into unsigned space. This is the
// encoding used for sint64.
func ZigZag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// UnZigZag64 is the inverse of ZigZag64.
func UnZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
