// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform, a reversible
// reordering of a byte buffer that groups similar contexts together.
// It rarely shrinks data on its own but turns local structure into long
// runs that mtf and rle exploit downstream.
//
// The suffix array driving the transform is built with the Suffix Array
// by Induced Sorting (SA-IS) algorithm, see bwt/internal/sais.
package bwt

import (
	"github.com/dsnet/fcodec/bwt/internal/sais"
	"github.com/dsnet/fcodec/internal/errors"
)

// delimNotIn returns a byte value that does not occur in buf. Since buf
// holds at most 255 bytes (the big-endian encoding of an EOF index that
// itself is less than len(input) <= 2^31), at least one of the 256
// possible byte values is guaranteed to be free.
func delimNotIn(buf []byte) byte {
	var seen [256]bool
	for _, b := range buf {
		seen[b] = true
	}
	for v := 0; v < 256; v++ {
		if !seen[v] {
			return byte(v)
		}
	}
	panic("bwt: no free delimiter byte") // unreachable: buf has <= 255 bytes
}

// minBigEndian returns the minimal-length big-endian encoding of idx.
// idx == 0 encodes as the empty slice.
func minBigEndian(idx int) []byte {
	if idx == 0 {
		return nil
	}
	var tmp [8]byte
	n := len(tmp)
	for idx > 0 {
		n--
		tmp[n] = byte(idx)
		idx >>= 8
	}
	return tmp[n:]
}

// decodeBigEndian is the inverse of minBigEndian.
func decodeBigEndian(buf []byte) int {
	var idx int
	for _, b := range buf {
		idx = idx<<8 | int(b)
	}
	return idx
}

// encode computes the BWT of buf and returns the output T along with
// the EOF row index. It leaves buf unmodified.
func encode(buf []byte) (t []byte, ptr int) {
	n := len(buf)
	if n == 0 {
		return nil, 0
	}

	// sais.ComputeSA requires the suffix array of the doubled string so
	// that SA[i]-1 can always be indexed without wraparound logic; this
	// mirrors the standard trick for computing a BWT via a suffix array
	// without materializing a sentinel-terminated rotation matrix.
	doubled := make([]byte, 2*n)
	copy(doubled, buf)
	copy(doubled[n:], buf)
	sa := make([]int, 2*n)
	sais.ComputeSA(doubled, sa)

	t = make([]byte, n)
	var j int
	for _, i := range sa {
		if i >= n {
			continue
		}
		if i == 0 {
			ptr = j
			i = n
		}
		t[j] = doubled[i-1]
		j++
	}
	return t, ptr
}

// decode reconstructs the original buffer from a BWT output t and its
// EOF row index ptr.
func decode(t []byte, ptr int) []byte {
	n := len(t)
	if n == 0 {
		return nil
	}

	// C[b] = number of bytes in t strictly less than b.
	var c [256]int
	for _, v := range t {
		c[v]++
	}
	var sum int
	for i, v := range c {
		sum += v
		c[i] = sum - v
	}

	// next[i] gives, for the row whose last column is at position i, the
	// row index of the rotation starting one position earlier in the
	// input; equivalently next[i] = C[t[i]] + rank(i), where rank(i) is
	// the occurrence count of t[i] among t[0:i].
	next := make([]int, n)
	for i, b := range t {
		next[i] = c[b]
		c[b]++
	}

	out := make([]byte, n)
	pos := ptr
	for k := n - 1; k >= 0; k-- {
		out[k] = t[pos]
		pos = next[pos]
	}
	return out
}

// Forward computes the BWT frame for input: a delimiter byte, the
// minimal big-endian encoding of the EOF row index, a repeat of the
// delimiter, then the transformed bytes. The delimiter never occurs in
// the index bytes, so Inverse can unambiguously locate the second
// delimiter while scanning forward.
func Forward(input []byte) []byte {
	t, ptr := encode(input)
	idx := minBigEndian(ptr)
	d := delimNotIn(idx)

	out := make([]byte, 0, len(idx)+2+len(t))
	out = append(out, d)
	out = append(out, idx...)
	out = append(out, d)
	out = append(out, t...)
	return out
}

// Inverse parses a BWT frame produced by Forward and reconstructs the
// original input. It fails with a Corrupted error if no second
// delimiter can be found.
func Inverse(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, errors.E(errors.Corrupted, "bwt: empty frame")
	}
	d := frame[0]
	rest := frame[1:]

	end := -1
	for i, b := range rest {
		if b == d {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, errors.E(errors.Corrupted, "bwt: missing closing delimiter")
	}

	idx := rest[:end]
	t := rest[end+1:]
	ptr := decodeBigEndian(idx)
	if len(t) == 0 {
		if ptr != 0 || len(idx) != 0 {
			return nil, errors.E(errors.Corrupted, "bwt: non-zero index on empty transform")
		}
		return nil, nil
	}
	if ptr < 0 || ptr >= len(t) {
		return nil, errors.Ef(errors.Corrupted, "bwt: EOF index %d out of range [0,%d)", ptr, len(t))
	}
	return decode(t, ptr), nil
}
