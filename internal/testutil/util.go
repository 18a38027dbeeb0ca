// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods shared by
// every package's test suite in this module.
package testutil

import "encoding/hex"

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// GenRepeats deterministically generates size bytes that heavily favor
// dictionary and run-based compressors: most of the output is a copy
// from some earlier distance, interspersed with runs of fresh random
// bytes. This mirrors the kind of corpus bzip2-style test suites use to
// exercise BWT and LZW on "realistic" repetitive input.
func GenRepeats(seed, size int) []byte {
	r := NewRand(seed)

	randLen := func() int {
		switch p := r.Intn(100); {
		case p < 15:
			return 4 + r.Intn(4)
		case p < 30:
			return 8 + r.Intn(8)
		case p < 45:
			return 16 + r.Intn(16)
		case p < 60:
			return 32 + r.Intn(32)
		case p < 75:
			return 64 + r.Intn(64)
		case p < 90:
			return 128 + r.Intn(128)
		default:
			return 256 + r.Intn(256)
		}
	}

	var b []byte
	randDist := func() int {
		var d int
		for d == 0 || d > len(b) {
			switch p := r.Intn(100); {
			case p < 10:
				d = 1
			case p < 20:
				d = 2 + r.Intn(2)
			case p < 30:
				d = 4 + r.Intn(4)
			case p < 40:
				d = 8 + r.Intn(8)
			case p < 50:
				d = 16 + r.Intn(16)
			case p < 60:
				d = 32 + r.Intn(32)
			case p < 70:
				d = 64 + r.Intn(64)
			case p < 80:
				d = 128 + r.Intn(128)
			case p < 90:
				d = 256 + r.Intn(256)
			default:
				d = 512 + r.Intn(512)
			}
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < size {
		switch p := r.Intn(100); {
		case p < 10:
			writeRand(randLen())
		case p < 90 && len(b) > 4:
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			writeCopy(randDist(), randLen())
		}
	}
	return b[:size]
}
