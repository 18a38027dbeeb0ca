// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"github.com/dsnet/fcodec/bitio"
	"github.com/dsnet/fcodec/internal/errors"
)

// Decode reverses Encode. It fails with a Truncated error if the input
// is shorter than the declared block stream, or a Corrupted error if
// the block count or reconstructed bit count is inconsistent.
func Decode(input []byte) (output []byte, err error) {
	defer errors.Recover(&err)

	if len(input) == 0 {
		errors.Panic(errors.E(errors.Truncated, "rle: missing pad_bits header"))
	}
	padBits := int(input[0])
	if padBits < 0 || padBits > 7 {
		errors.Panic(errors.Ef(errors.Corrupted, "rle: invalid pad_bits value %d", padBits))
	}

	blocks := input[1:]
	totalBits := 8*len(blocks) - padBits
	if totalBits < 0 {
		errors.Panic(errors.E(errors.Truncated, "rle: pad_bits exceeds block stream length"))
	}
	if totalBits%4 != 0 {
		errors.Panic(errors.E(errors.Corrupted, "rle: block stream is not a whole number of 4-bit blocks"))
	}

	br := bitio.NewReader(blocks)
	bw := bitio.NewWriter()
	for consumed := 0; consumed < totalBits; consumed += 4 {
		v, rerr := br.ReadBits(4)
		if rerr != nil {
			errors.Panic(rerr)
		}
		payload := uint64(v>>3) & 1
		count := int(v&0x7) + 1
		for i := 0; i < count; i++ {
			bw.WriteBits(payload, 1)
		}
	}

	out, pad := bw.Finalize()
	if pad != 0 {
		errors.Panic(errors.E(errors.Corrupted, "rle: reconstructed bit count is not byte-aligned"))
	}
	return out, nil
}
