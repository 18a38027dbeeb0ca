// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mtf implements the Move-To-Front transform: a reversible
// byte reordering that maps recently seen values towards zero, turning
// localized repetition (as produced by bwt) into long runs of small
// values that downstream codecs compress well.
package mtf

// stack is a permutation of 0..255 treated as a recency-ordered list;
// position 0 is the most recently seen byte.
type stack [256]uint8

func newStack() stack {
	var s stack
	for i := range s {
		s[i] = uint8(i)
	}
	return s
}

// indexOf returns the position of val in s.
func (s *stack) indexOf(val uint8) uint8 {
	for i, v := range s {
		if v == val {
			return uint8(i)
		}
	}
	panic("mtf: value missing from stack") // unreachable: s is always a full permutation
}

// toFront moves the byte at position idx to position 0, shifting the
// intervening entries down by one.
func (s *stack) toFront(idx uint8) {
	val := s[idx]
	copy(s[1:int(idx)+1], s[:idx])
	s[0] = val
}

// Forward applies the Move-To-Front transform. The output has the same
// length as the input; output[i] is the index (0..255) that input[i]
// held in the recency stack at the time it was encountered.
func Forward(input []byte) []byte {
	s := newStack()
	output := make([]byte, len(input))
	for i, b := range input {
		idx := s.indexOf(b)
		output[i] = idx
		s.toFront(idx)
	}
	return output
}

// Inverse reverses Forward: each output byte is the recency-stack entry
// named by the corresponding input index.
func Inverse(input []byte) []byte {
	s := newStack()
	output := make([]byte, len(input))
	for i, idx := range input {
		val := s[idx]
		output[i] = val
		s.toFront(idx)
	}
	return output
}
