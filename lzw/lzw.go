// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements Lempel-Ziv-Welch dictionary coding with a
// configurable dictionary size limit and overflow policy. Unlike the
// standard library's lzw package, codes are emitted as self-describing
// variable-length big-endian integers rather than packed at a fixed bit
// width, so the dictionary may grow without a predetermined code size.
package lzw

import "github.com/dsnet/fcodec/internal/errors"

// Overflow selects what happens when the dictionary reaches its size
// limit during compression.
type Overflow uint8

const (
	// Abort fails compression with an OutOfMemory error once the
	// dictionary would grow past MaxEntries.
	Abort Overflow = iota

	// StopStore keeps compressing but stops inserting new dictionary
	// entries once MaxEntries is reached.
	StopStore

	// Unlimited ignores MaxEntries entirely.
	Unlimited
)

// Size presets for Options.MaxEntries.
const (
	Small  = 1_000
	Medium = 10_000
	Large  = 100_000
	XL     = 1_000_000
)

// Options configures dictionary growth.
type Options struct {
	MaxEntries int
	Overflow   Overflow
}

// DefaultOptions returns the toolkit's default LZW configuration.
func DefaultOptions() Options {
	return Options{MaxEntries: Medium, Overflow: Abort}
}

func (o Options) validate() error {
	if o.MaxEntries <= 0 {
		return errors.Ef(errors.Invalid, "lzw: max_entries must be positive, got %d", o.MaxEntries)
	}
	return nil
}

// codeLen reports the number of big-endian bytes needed to represent
// code, per the format's length-prefixed code emission (length 1 for
// code 0, growing as ⌈log2(code+1)/8⌉ bytes beyond that).
func codeLen(code int) int {
	n := 1
	for v := code >> 8; v > 0; v >>= 8 {
		n++
	}
	return n
}
