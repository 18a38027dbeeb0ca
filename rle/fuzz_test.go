// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{0xFF, 0xFF})
	f.Add(bytes.Repeat([]byte{0xAA}, 16))
	f.Fuzz(func(t *testing.T, data []byte) {
		enc := Encode(data)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if !bytes.Equal(dec, data) {
			t.Fatalf("round-trip mismatch:\ngot  %x\nwant %x", dec, data)
		}
	})
}
