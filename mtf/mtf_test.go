// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mtf

import (
	"bytes"
	"testing"

	"github.com/dsnet/fcodec/internal/testutil"
)

func TestForward(t *testing.T) {
	var vectors = []struct {
		input  []byte
		output []byte
	}{{
		input:  nil,
		output: []byte{},
	}, {
		input:  []byte{0, 0, 0},
		output: []byte{0, 0, 0},
	}, {
		input:  []byte{5, 5, 5, 5},
		output: []byte{5, 0, 0, 0},
	}, {
		input:  []byte{1, 2, 1, 2},
		output: []byte{1, 2, 1, 1},
	}}

	for i, v := range vectors {
		got := Forward(v.input)
		if !bytes.Equal(got, v.output) {
			t.Errorf("test %d, Forward(%v) = %v, want %v", i, v.input, got, v.output)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := testutil.NewRand(0)
	inputs := [][]byte{
		nil,
		{0},
		bytes.Repeat([]byte{'a'}, 100),
		rnd.Bytes(4096),
		testutil.GenRepeats(1, 4096),
	}
	for i := 0; i < 256; i++ {
		inputs = append(inputs, []byte{byte(i)})
	}

	for i, input := range inputs {
		fwd := Forward(input)
		if len(fwd) != len(input) {
			t.Errorf("test %d: length changed: got %d, want %d", i, len(fwd), len(input))
		}
		back := Inverse(fwd)
		if !bytes.Equal(back, input) {
			t.Errorf("test %d: round-trip mismatch:\ngot  %v\nwant %v", i, back, input)
		}
	}
}

func TestRunOfIdenticalBytes(t *testing.T) {
	// 9 first appears at its natural index; every repeat thereafter is a
	// run of 0 since 9 is already at the front of the stack.
	input := append([]byte{5, 9}, bytes.Repeat([]byte{9}, 10)...)
	got := Forward(input)
	if got[0] != 5 || got[1] != 9 {
		t.Fatalf("first-occurrence indices mismatch: got %v, want [5 9 ...]", got[:2])
	}
	for i := 2; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("position %d: got %d, want 0", i, got[i])
		}
	}
}
