// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements bit-level run-length encoding: runs of
// identical bits (not bytes) are packed into 4-bit blocks. This grain
// is deliberately finer than byte-level RLE since the transforms this
// codec is typically paired with (bwt followed by mtf) tend to produce
// long runs of zero bits within otherwise nonzero bytes.
package rle

import "github.com/dsnet/fcodec/bitio"

// maxRun is the longest run a single 4-bit block can represent.
const maxRun = 8

// Encode compresses input using bit-level run-length encoding. The
// output layout is a 1-byte pad-bit count followed by the packed
// 4-bit blocks (1 payload bit, 3 bits of repeat_count-1), MSB-first.
func Encode(input []byte) []byte {
	n := 8 * len(input)
	br := bitio.NewReader(input)
	bits := make([]byte, n)
	for i := range bits {
		v, _ := br.ReadBits(1) // len(input) guarantees n bits are available
		bits[i] = byte(v)
	}

	bw := bitio.NewWriter()
	for i := 0; i < n; {
		b := bits[i]
		j := i
		for j < n && bits[j] == b {
			j++
		}
		run := j - i
		for run > 0 {
			chunk := run
			if chunk > maxRun {
				chunk = maxRun
			}
			bw.WriteBits(uint64(b), 1)
			bw.WriteBits(uint64(chunk-1), 3)
			run -= chunk
		}
		i = j
	}

	payload, pad := bw.Finalize()
	return append([]byte{byte(pad)}, payload...)
}
