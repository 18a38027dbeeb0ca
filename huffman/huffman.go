// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements static Huffman coding over an explicit
// binary tree. Unlike canonical or chunked Huffman schemes, the tree
// itself is serialized alongside the payload, trading a few bytes of
// header for a simpler, self-contained format.
package huffman

import "github.com/dsnet/fcodec/bitio"

// emptySentinel is the exact 2-byte output for zero-length input. No
// genuine tree (which always has at least one leaf and therefore at
// least a 1-byte leaf-count header plus tree bits) can ever produce
// this output, so Decode can distinguish it unambiguously.
var emptySentinel = []byte{0x00, 0x00}

// Encode compresses input using a Huffman tree built from its byte
// frequencies. The output begins with a 1-byte pad-bit count and a
// 1-byte (leaf_count - 1) field, followed by a single bit-packed stream
// holding the preorder-serialized tree immediately followed by the
// coded payload.
func Encode(input []byte) []byte {
	if len(input) == 0 {
		return emptySentinel
	}

	var freq [256]int
	for _, b := range input {
		freq[b]++
	}
	root, leafCount := buildTree(freq)
	table := assignCodes(root, leafCount)

	bw := bitio.NewWriter()
	writeTree(bw, root)
	for _, b := range input {
		c := table[b]
		bw.WriteBits(c.bits, c.len)
	}
	payload, pad := bw.Finalize()

	out := make([]byte, 0, 2+len(payload))
	out = append(out, byte(pad), byte(leafCount-1))
	out = append(out, payload...)
	return out
}

// writeTree emits a preorder traversal of root, one 10-bit record per
// node: an 8-bit value (meaningful only for leaves) followed by a
// has-left and a has-right bit.
func writeTree(bw *bitio.Writer, root *node) {
	var walk func(n *node)
	walk = func(n *node) {
		var hasLeft, hasRight uint64
		if n.left != nil {
			hasLeft = 1
		}
		if n.right != nil {
			hasRight = 1
		}
		bw.WriteBits(uint64(n.value), 8)
		bw.WriteBits(hasLeft, 1)
		bw.WriteBits(hasRight, 1)
		if n.left != nil {
			walk(n.left)
		}
		if n.right != nil {
			walk(n.right)
		}
	}
	walk(root)
}
