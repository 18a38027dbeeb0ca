// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "github.com/dsnet/fcodec/internal/errors"

// Encode compresses input under opts, emitting a repeated
// [code_len:1][code:code_len] stream. It fails with an Invalid error if
// opts.MaxEntries <= 0, or with an OutOfMemory error if opts.Overflow is
// Abort and the dictionary would need to grow past opts.MaxEntries.
func Encode(input []byte, opts Options) (output []byte, err error) {
	if verr := opts.validate(); verr != nil {
		return nil, verr
	}
	defer errors.Recover(&err)

	dict := make(map[string]int, 512)
	for i := 0; i < 256; i++ {
		dict[string([]byte{byte(i)})] = i
	}
	nextCode := 256

	var out []byte
	emit := func(code int) {
		n := codeLen(code)
		out = append(out, byte(n))
		for i := n - 1; i >= 0; i-- {
			out = append(out, byte(code>>(8*uint(i))))
		}
	}

	var w []byte
	for _, c := range input {
		wc := append(append([]byte(nil), w...), c)
		if _, ok := dict[string(wc)]; ok {
			w = wc
			continue
		}
		emit(dict[string(w)])
		switch {
		case opts.Overflow == Unlimited || nextCode < opts.MaxEntries:
			dict[string(wc)] = nextCode
			nextCode++
		case opts.Overflow == Abort:
			errors.Panic(errors.Ef(errors.OutOfMemory, "lzw: dictionary exceeds %d entries", opts.MaxEntries))
		default: // StopStore
			// Skip insertion; keep compressing with the frozen dictionary.
		}
		w = []byte{c}
	}
	if len(w) > 0 {
		emit(dict[string(w)])
	}
	return out, nil
}
