// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"testing"

	"github.com/dsnet/fcodec/internal/testutil"
)

func TestEncodeDecode(t *testing.T) {
	var vectors = []struct {
		input  string
		output string // Expected T
		ptr    int
	}{{
		input:  "",
		output: "",
		ptr:    0,
	}, {
		input:  "Hello, world!",
		output: ",do!lHrellwo ",
		ptr:    3,
	}, {
		input:  "banana",
		output: "nnbaaa",
		ptr:    3,
	}, {
		input:  "SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		output: "TEXYDST.E.IXIXIXXSSMPPS.B..E.S.EUSFXDIIOIIIT",
		ptr:    29,
	}}

	for i, v := range vectors {
		out, ptr := encode([]byte(v.input))
		if string(out) != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %q\nwant %q", i, out, v.output)
		}
		if ptr != v.ptr {
			t.Errorf("test %d, pointer mismatch: got %d, want %d", i, ptr, v.ptr)
		}
		back := decode(out, ptr)
		if string(back) != v.input {
			t.Errorf("test %d, decode mismatch:\ngot  %q\nwant %q", i, back, v.input)
		}
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	rnd := testutil.NewRand(2)
	inputs := [][]byte{
		nil,
		[]byte("a"),
		bytes.Repeat([]byte{'z'}, 1000),
		[]byte("banana"),
		[]byte("Hello, world!"),
		rnd.Bytes(8192),
		testutil.GenRepeats(3, 8192),
	}

	for i, input := range inputs {
		frame := Forward(input)
		back, err := Inverse(frame)
		if err != nil {
			t.Fatalf("test %d: Inverse error: %v", i, err)
		}
		if !bytes.Equal(back, input) {
			t.Errorf("test %d: round-trip mismatch:\ngot  %q\nwant %q", i, back, input)
		}
	}
}

func TestForwardFrameShape(t *testing.T) {
	frame := Forward([]byte("banana"))
	if len(frame) < 2 {
		t.Fatalf("frame too short: %d", len(frame))
	}
	d := frame[0]
	end := -1
	for i, b := range frame[1:] {
		if b == d {
			end = i
			break
		}
	}
	if end < 0 {
		t.Fatalf("no second delimiter found in frame %x", frame)
	}
	idx := frame[1 : 1+end]
	for _, b := range idx {
		if b == d {
			t.Errorf("delimiter %#x occurs within the index bytes %x", d, idx)
		}
	}
}

func TestInverseEmptyFrame(t *testing.T) {
	frame := Forward(nil)
	back, err := Inverse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != 0 {
		t.Errorf("expected empty output, got %q", back)
	}
}

func TestInverseCorrupt(t *testing.T) {
	if _, err := Inverse([]byte{0x00}); err == nil {
		t.Error("expected error on frame missing second delimiter")
	}
	if _, err := Inverse(nil); err == nil {
		t.Error("expected error on empty frame")
	}
}
