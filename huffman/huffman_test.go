// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"testing"

	"github.com/dsnet/fcodec/internal/errors"
	"github.com/dsnet/fcodec/internal/testutil"
)

func TestEncodeEmpty(t *testing.T) {
	got := Encode(nil)
	if !bytes.Equal(got, emptySentinel) {
		t.Errorf("Encode(nil) = %x, want %x", got, emptySentinel)
	}
	dec, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(dec) != 0 {
		t.Errorf("Decode(Encode(nil)) = %x, want empty", dec)
	}
}

func TestSingleSymbol(t *testing.T) {
	// A run of one repeated byte builds a single-leaf tree; every symbol
	// must decode back to the same byte regardless of the (discarded)
	// code bit actually written.
	input := bytes.Repeat([]byte{'A'}, 4)
	enc := Encode(input)
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, input) {
		t.Errorf("round-trip mismatch: got %q, want %q", dec, input)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := testutil.NewRand(7)
	inputs := [][]byte{
		nil,
		[]byte("A"),
		[]byte("AAAA"),
		[]byte("Hello, world!"),
		[]byte("banana"),
		bytes.Repeat([]byte{0x00}, 500),
		rnd.Bytes(4096),
		testutil.GenRepeats(11, 4096),
	}
	for i := 0; i < 256; i++ {
		inputs = append(inputs, []byte{byte(i)})
	}

	for i, input := range inputs {
		enc := Encode(input)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("test %d: Decode error: %v", i, err)
		}
		if !bytes.Equal(dec, input) {
			t.Errorf("test %d: round-trip mismatch:\ngot  %x\nwant %x", i, dec, input)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	if _, err := Decode([]byte{0x00}); !errors.Is(err, errors.Truncated) {
		t.Errorf("expected Truncated error, got %v", err)
	}
	// A valid header for a two-leaf tree with no tree bits following.
	if _, err := Decode([]byte{0x00, 0x01}); !errors.Is(err, errors.Truncated) {
		t.Errorf("expected Truncated error, got %v", err)
	}
}

func TestDecodeCorruptPad(t *testing.T) {
	if _, err := Decode([]byte{0x08, 0x00, 0x00, 0x00}); !errors.Is(err, errors.Corrupted) {
		t.Errorf("expected Corrupted error for invalid pad_bits, got %v", err)
	}
}

func TestDecodeCorruptTree(t *testing.T) {
	// Declares two leaves but encodes a leaf record (no children) as the
	// entire tree, so the second leaf is never found.
	enc := Encode([]byte("AAAA"))
	enc[1] = 1 // overstate leaf_count - 1
	if _, err := Decode(enc); !errors.Is(err, errors.Corrupted) && !errors.Is(err, errors.Truncated) {
		t.Errorf("expected Corrupted or Truncated error for mismatched leaf count, got %v", err)
	}
}
