// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"

	"github.com/dsnet/fcodec/bitio"
	"github.com/dsnet/fcodec/internal/errors"
)

// Decode reverses Encode. It fails with a Truncated error if the input
// ends before the declared tree or payload can be fully read, or a
// Corrupted error if the tree's shape is inconsistent with the format
// (a leaf with children, or an internal node with only one child).
func Decode(input []byte) (output []byte, err error) {
	if bytes.Equal(input, emptySentinel) {
		return nil, nil
	}

	defer errors.Recover(&err)

	if len(input) < 2 {
		errors.Panic(errors.E(errors.Truncated, "huffman: missing header"))
	}
	pad := int(input[0])
	if pad < 0 || pad > 7 {
		errors.Panic(errors.Ef(errors.Corrupted, "huffman: invalid pad_bits value %d", pad))
	}
	leafCount := int(input[1]) + 1

	br := bitio.NewReader(input[2:])
	leavesLeft := leafCount
	root := parseNode(br, &leavesLeft)
	if leavesLeft != 0 {
		errors.Panic(errors.Ef(errors.Corrupted, "huffman: tree declared %d leaves, found %d", leafCount, leafCount-leavesLeft))
	}

	totalBits := br.BitsRemaining() - pad
	if totalBits < 0 {
		errors.Panic(errors.E(errors.Truncated, "huffman: pad_bits exceeds remaining payload"))
	}

	bw := bitio.NewWriter()
	if root.isLeaf() {
		// A single-symbol tree consumes exactly one (discarded) bit per
		// emitted byte, per the fixed 1-bit code assigned by assignCodes.
		for i := 0; i < totalBits; i++ {
			if _, rerr := br.ReadBits(1); rerr != nil {
				errors.Panic(rerr)
			}
			bw.WriteBits(uint64(root.value), 8)
		}
	} else {
		for consumed := 0; consumed < totalBits; {
			n := root
			for !n.isLeaf() {
				v, rerr := br.ReadBits(1)
				if rerr != nil {
					errors.Panic(rerr)
				}
				consumed++
				if v == 0 {
					n = n.left
				} else {
					n = n.right
				}
				if consumed > totalBits {
					errors.Panic(errors.E(errors.Corrupted, "huffman: code walk overruns payload"))
				}
			}
			bw.WriteBits(uint64(n.value), 8)
		}
	}

	out, finalPad := bw.Finalize()
	if finalPad != 0 {
		errors.Panic(errors.E(errors.Corrupted, "huffman: decoded payload is not byte-aligned"))
	}
	return out, nil
}

// parseNode recursively decodes one preorder tree record from br,
// decrementing *leavesLeft for each leaf encountered. It panics with a
// Corrupted error if a leaf carries a child bit, or if an internal node
// has exactly one child bit set.
func parseNode(br *bitio.Reader, leavesLeft *int) *node {
	v, err := br.ReadBits(8)
	if err != nil {
		errors.Panic(err)
	}
	hasLeft, err := br.ReadBits(1)
	if err != nil {
		errors.Panic(err)
	}
	hasRight, err := br.ReadBits(1)
	if err != nil {
		errors.Panic(err)
	}

	n := &node{value: byte(v)}
	switch {
	case hasLeft == 0 && hasRight == 0:
		if *leavesLeft == 0 {
			errors.Panic(errors.E(errors.Corrupted, "huffman: tree has more leaves than declared"))
		}
		*leavesLeft--
	case hasLeft == 1 && hasRight == 1:
		n.left = parseNode(br, leavesLeft)
		n.right = parseNode(br, leavesLeft)
	default:
		errors.Panic(errors.E(errors.Corrupted, "huffman: internal node with exactly one child"))
	}
	return n
}
