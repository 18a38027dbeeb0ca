// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "github.com/dsnet/fcodec/internal/errors"

// Reader is a logical cursor over a byte buffer that reads
// most-significant-bit first, the inverse of Writer.
type Reader struct {
	buf []byte
	pos int // Absolute bit position, 0 <= pos <= 8*len(buf)
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// BitsRemaining reports how many unread bits remain in the buffer.
func (r *Reader) BitsRemaining() int {
	return 8*len(r.buf) - r.pos
}

// ReadBits reads the next width bits (1 <= width <= MaxWidth) and
// returns them right-justified in the result. It fails with a Truncated
// error if fewer than width bits remain.
func (r *Reader) ReadBits(width uint) (uint64, error) {
	if int(width) > r.BitsRemaining() {
		return 0, errors.Ef(errors.Truncated, "need %d bits, only %d remain", width, r.BitsRemaining())
	}

	var v uint64
	for width > 0 {
		byteIdx := r.pos >> 3
		bitOff := uint(r.pos & 7) // Bits already consumed from this byte
		free := 8 - bitOff
		take := width
		if take > free {
			take = free
		}

		shift := free - take
		mask := byte(1<<take - 1)
		bits := (r.buf[byteIdx] >> shift) & mask

		v = v<<take | uint64(bits)
		r.pos += int(take)
		width -= take
	}
	return v, nil
}

// Align advances the cursor to the next byte boundary, discarding any
// unread bits in the current byte. It reports the number of bits
// skipped (0..7).
func (r *Reader) Align() int {
	skip := (8 - r.pos&7) & 7
	r.pos += skip
	return skip
}
