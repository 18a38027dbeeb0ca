// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio provides whole-buffer, big-endian bit-level I/O shared by
// every codec and transform in this module. A Writer packs values of
// arbitrary width (1..64 bits) most-significant-bit first into a byte
// buffer; a Reader does the reverse. Both operate entirely in memory:
// there is no streaming, no io.Reader/io.Writer plumbing, and no state
// that outlives a single encode or decode call.
package bitio

// MaxWidth is the largest value width, in bits, that Write and Read
// accept in a single call.
const MaxWidth = 64
