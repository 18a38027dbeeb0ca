// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/fcodec/internal/errors"
	"github.com/dsnet/fcodec/internal/testutil"
)

func TestClassicVector(t *testing.T) {
	input := []byte("TOBEORNOTTOBEORTOBEORNOT")
	opts := DefaultOptions()
	enc, err := Encode(input, opts)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	dec, err := Decode(enc, opts)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, input) {
		t.Errorf("round-trip mismatch:\ngot  %q\nwant %q", dec, input)
	}
}

func TestOverflowAbort(t *testing.T) {
	rnd := testutil.NewRand(9)
	// A long run of distinct-looking bytes with little repetition drives
	// the natural dictionary size well past a small MaxEntries.
	input := rnd.Bytes(10_000)
	opts := Options{MaxEntries: 1000, Overflow: Abort}

	_, err := Encode(input, opts)
	if !errors.Is(err, errors.OutOfMemory) {
		t.Errorf("expected OutOfMemory error, got %v", err)
	}
}

func TestOverflowStopStore(t *testing.T) {
	rnd := testutil.NewRand(13)
	input := rnd.Bytes(10_000)
	opts := Options{MaxEntries: 1000, Overflow: StopStore}

	enc, err := Encode(input, opts)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	dec, err := Decode(enc, opts)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, input) {
		t.Errorf("round-trip mismatch with StopStore policy")
	}
}

func TestOverflowUnlimited(t *testing.T) {
	rnd := testutil.NewRand(17)
	input := rnd.Bytes(10_000)
	opts := Options{MaxEntries: 1000, Overflow: Unlimited}

	enc, err := Encode(input, opts)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	dec, err := Decode(enc, opts)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, input) {
		t.Errorf("round-trip mismatch with Unlimited policy")
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := testutil.NewRand(23)
	inputs := [][]byte{
		nil,
		[]byte("A"),
		[]byte("AAAA"),
		[]byte("Hello, world!"),
		bytes.Repeat([]byte{0x00}, 500),
		rnd.Bytes(4096),
		testutil.GenRepeats(29, 4096),
	}
	opts := DefaultOptions()
	for i, input := range inputs {
		enc, err := Encode(input, opts)
		if err != nil {
			t.Fatalf("test %d: Encode error: %v", i, err)
		}
		dec, err := Decode(enc, opts)
		if err != nil {
			t.Fatalf("test %d: Decode error: %v", i, err)
		}
		if diff := cmp.Diff(input, dec); diff != "" {
			t.Errorf("test %d: round-trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestInvalidOption(t *testing.T) {
	_, err := Encode([]byte("x"), Options{MaxEntries: 0, Overflow: Abort})
	if !errors.Is(err, errors.Invalid) {
		t.Errorf("expected Invalid error, got %v", err)
	}
	_, err = Decode([]byte{0x01, 0x00}, Options{MaxEntries: -5, Overflow: Abort})
	if !errors.Is(err, errors.Invalid) {
		t.Errorf("expected Invalid error, got %v", err)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	opts := DefaultOptions()
	if _, err := Decode([]byte{0x00}, opts); !errors.Is(err, errors.Corrupted) {
		t.Errorf("expected Corrupted error for code_len 0, got %v", err)
	}
	// code 256 is invalid as the very first code: the dictionary holds
	// only the 256 single-byte entries and there is no previous_output yet.
	if _, err := Decode([]byte{0x02, 0x01, 0x00}, opts); !errors.Is(err, errors.Corrupted) {
		t.Errorf("expected Corrupted error for premature KwK code, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	opts := DefaultOptions()
	if _, err := Decode([]byte{0x01}, opts); !errors.Is(err, errors.Truncated) {
		t.Errorf("expected Truncated error for missing code bytes, got %v", err)
	}
}
