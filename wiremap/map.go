// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wiremap implements the generic protobuf map codec. A proto3 map
// field is wire-compatible with a repeated synthetic message carrying a
// key field (tag 1) and a value field (tag 2); this package supplies that
// framing once, generic over the key and value scalar codecs supplied as
// function values, mirroring the original Rust source's map! macro
// parameterized over a KE/KL/VE/VL/KM/VM closure set.
package wiremap

import (
	"sort"

	"github.com/wirepb/protobuf3/wire"
)

// Encode writes values as repeated tag occurrences of the key/value
// synthetic message, in the iteration order Go gives map ranges (which is
// randomized per run).
func Encode[K comparable, V comparable](
	keyEncode func(w *wire.Writer, tag uint32, k K),
	keyEncodedLen func(tag uint32, k K) int,
	valEncode func(w *wire.Writer, tag uint32, v V),
	valEncodedLen func(tag uint32, v V) int,
	tag uint32,
	values map[K]V,
	w *wire.Writer,
) {
	var zero V
	EncodeWithDefault(keyEncode, keyEncodedLen, valEncode, valEncodedLen, zero, tag, values, w)
}

// EncodeSorted is Encode with keys visited in ascending order, giving a
// deterministic byte-for-byte output across runs. keyLess must impose a
// strict weak ordering on K.
func EncodeSorted[K comparable, V comparable](
	keyEncode func(w *wire.Writer, tag uint32, k K),
	keyEncodedLen func(tag uint32, k K) int,
	valEncode func(w *wire.Writer, tag uint32, v V),
	valEncodedLen func(tag uint32, v V) int,
	keyLess func(a, b K) bool,
	tag uint32,
	values map[K]V,
	w *wire.Writer,
) {
	var zero V
	EncodeSortedWithDefault(keyEncode, keyEncodedLen, valEncode, valEncodedLen, zero, keyLess, tag, values, w)
}

// EncodeWithDefault is Encode with an overridden value default: a value
// equal to valDefault, not just the zero value, is skipped on the wire.
// This exists because proto2 enum fields can declare a non-zero default;
// proto3 always passes the zero value through the Encode wrapper above.
func EncodeWithDefault[K comparable, V comparable](
	keyEncode func(w *wire.Writer, tag uint32, k K),
	keyEncodedLen func(tag uint32, k K) int,
	valEncode func(w *wire.Writer, tag uint32, v V),
	valEncodedLen func(tag uint32, v V) int,
	valDefault V,
	tag uint32,
	values map[K]V,
	w *wire.Writer,
) {
	var zeroKey K
	for k, v := range values {
		encodeEntry(keyEncode, keyEncodedLen, valEncode, valEncodedLen, zeroKey, valDefault, tag, k, v, w)
	}
}

// EncodeSortedWithDefault combines EncodeWithDefault's default override
// with EncodeSorted's deterministic key order.
func EncodeSortedWithDefault[K comparable, V comparable](
	keyEncode func(w *wire.Writer, tag uint32, k K),
	keyEncodedLen func(tag uint32, k K) int,
	valEncode func(w *wire.Writer, tag uint32, v V),
	valEncodedLen func(tag uint32, v V) int,
	valDefault V,
	keyLess func(a, b K) bool,
	tag uint32,
	values map[K]V,
	w *wire.Writer,
) {
	var zeroKey K
	keys := sortedKeys(values, keyLess)
	for _, k := range keys {
		encodeEntry(keyEncode, keyEncodedLen, valEncode, valEncodedLen, zeroKey, valDefault, tag, k, values[k], w)
	}
}

func encodeEntry[K comparable, V comparable](
	keyEncode func(w *wire.Writer, tag uint32, k K),
	keyEncodedLen func(tag uint32, k K) int,
	valEncode func(w *wire.Writer, tag uint32, v V),
	valEncodedLen func(tag uint32, v V) int,
	zeroKey K,
	valDefault V,
	tag uint32,
	k K,
	v V,
	w *wire.Writer,
) {
	skipKey := k == zeroKey
	skipVal := v == valDefault

	n := 0
	if !skipKey {
		n += keyEncodedLen(1, k)
	}
	if !skipVal {
		n += valEncodedLen(2, v)
	}

	w.AppendKey(tag, wire.LengthDelimited)
	w.AppendVarint(uint64(n))
	if !skipKey {
		keyEncode(w, 1, k)
	}
	if !skipVal {
		valEncode(w, 2, v)
	}
}

// Merge decodes one map entry occurrence and inserts it into values.
func Merge[K comparable, V comparable](
	keyMerge func(r *wire.Reader, t wire.Type, dst *K) error,
	valMerge func(r *wire.Reader, t wire.Type, dst *V) error,
	values map[K]V,
	r *wire.Reader,
) error {
	var zero V
	return MergeWithDefault(keyMerge, valMerge, zero, values, r)
}

// MergeWithDefault is Merge with an overridden value default used when the
// entry's value field is absent from the wire.
func MergeWithDefault[K comparable, V comparable](
	keyMerge func(r *wire.Reader, t wire.Type, dst *K) error,
	valMerge func(r *wire.Reader, t wire.Type, dst *V) error,
	valDefault V,
	values map[K]V,
	r *wire.Reader,
) error {
	sub, err := r.SubMessage()
	if err != nil {
		return err
	}

	var key K
	val := valDefault

	for !sub.Done() {
		fieldTag, t, err := sub.Key()
		if err != nil {
			return err
		}
		switch fieldTag {
		case 1:
			if err := keyMerge(sub, t, &key); err != nil {
				return err
			}
		case 2:
			if err := valMerge(sub, t, &val); err != nil {
				return err
			}
		default:
			if err := sub.Skip(t); err != nil {
				return err
			}
		}
	}

	values[key] = val
	return nil
}

// EncodedLen returns the exact byte count Encode (or EncodeSorted, which
// writes the same bytes in a different order) would write.
func EncodedLen[K comparable, V comparable](
	keyEncodedLen func(tag uint32, k K) int,
	valEncodedLen func(tag uint32, v V) int,
	tag uint32,
	values map[K]V,
) int {
	var zero V
	return EncodedLenWithDefault(keyEncodedLen, valEncodedLen, zero, tag, values)
}

// EncodedLenWithDefault is EncodedLen with an overridden value default.
func EncodedLenWithDefault[K comparable, V comparable](
	keyEncodedLen func(tag uint32, k K) int,
	valEncodedLen func(tag uint32, v V) int,
	valDefault V,
	tag uint32,
	values map[K]V,
) int {
	var zeroKey K
	total := wire.SizeKey(tag) * len(values)
	for k, v := range values {
		n := 0
		if k != zeroKey {
			n += keyEncodedLen(1, k)
		}
		if v != valDefault {
			n += valEncodedLen(2, v)
		}
		total += wire.SizeVarint(uint64(n)) + n
	}
	return total
}

func sortedKeys[K comparable, V any](values map[K]V, less func(a, b K) bool) []K {
	keys := make([]K, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return less(keys[i], keys[j])
	})
	return keys
}
