// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "github.com/dsnet/fcodec/internal/errors"

// Decode reverses Encode. opts must match the options used to compress,
// since the overflow policy governs dictionary growth on both sides; a
// mismatch (most dangerously a StopStore encoder paired with a
// Abort/Unlimited decoder) silently diverges rather than failing
// cleanly, so callers must carry opts alongside the compressed bytes.
func Decode(input []byte, opts Options) (output []byte, err error) {
	if verr := opts.validate(); verr != nil {
		return nil, verr
	}
	defer errors.Recover(&err)

	dict := make([][]byte, 256, 512)
	for i := range dict {
		dict[i] = []byte{byte(i)}
	}

	readCode := func(pos *int) int {
		if *pos >= len(input) {
			errors.Panic(errors.E(errors.Truncated, "lzw: missing code_len"))
		}
		n := int(input[*pos])
		*pos++
		if n == 0 {
			errors.Panic(errors.E(errors.Corrupted, "lzw: code_len is 0"))
		}
		if *pos+n > len(input) {
			errors.Panic(errors.E(errors.Truncated, "lzw: code bytes run past end of input"))
		}
		code := 0
		for i := 0; i < n; i++ {
			code = code<<8 | int(input[*pos+i])
		}
		*pos += n
		return code
	}

	var out []byte
	var prev []byte
	pos := 0
	for pos < len(input) {
		k := readCode(&pos)

		var entry []byte
		switch {
		case k < len(dict):
			entry = dict[k]
		case k == len(dict) && prev != nil:
			entry = append(append([]byte(nil), prev...), prev[0])
		default:
			errors.Panic(errors.Ef(errors.Corrupted, "lzw: code %d exceeds current dictionary size %d", k, len(dict)))
		}
		out = append(out, entry...)

		if prev != nil {
			switch {
			case opts.Overflow == Unlimited || len(dict) < opts.MaxEntries:
				dict = append(dict, append(append([]byte(nil), prev...), entry[0]))
			case opts.Overflow == Abort:
				errors.Panic(errors.Ef(errors.OutOfMemory, "lzw: dictionary exceeds %d entries", opts.MaxEntries))
			default: // StopStore
				// Mirror the compressor: dictionary is frozen.
			}
		}
		prev = entry
	}
	return out, nil
}
