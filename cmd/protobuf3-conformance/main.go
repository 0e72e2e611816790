// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This binary implements the conformance test subprocess protocol: it
// reads length-prefixed ConformanceRequest messages from stdin and writes
// length-prefixed ConformanceResponse messages to stdout until EOF.
package main

import (
	"log"
	"os"

	"github.com/wirepb/protobuf3/conformance"
)

func main() {
	if err := conformance.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("conformance: %v", err)
	}
}
