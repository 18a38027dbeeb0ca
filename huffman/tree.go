// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "github.com/emirpasic/gods/trees/binaryheap"

// node is either a leaf (holds a byte value) or an internal node (holds
// only children). seq records insertion order into the priority queue
// and is used purely to make frequency ties deterministic within a run.
type node struct {
	freq        int
	seq         int
	value       byte
	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// less orders nodes by (freq, seq) so that the heap always yields the
// two lowest-frequency, earliest-inserted nodes first.
func less(a, b *node) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

// buildTree constructs the Huffman tree for the given byte frequencies.
// freq must have at least one nonzero entry. leafCount reports how many
// distinct byte values had a nonzero frequency.
func buildTree(freq [256]int) (root *node, leafCount int) {
	cmp := func(a, b interface{}) int {
		na, nb := a.(*node), b.(*node)
		switch {
		case less(na, nb):
			return -1
		case less(nb, na):
			return 1
		default:
			return 0
		}
	}
	heap := binaryheap.NewWith(cmp)

	var seq int
	for v := 0; v < 256; v++ {
		if freq[v] == 0 {
			continue
		}
		heap.Push(&node{freq: freq[v], seq: seq, value: byte(v)})
		seq++
		leafCount++
	}
	if leafCount == 0 {
		return nil, 0
	}

	for heap.Size() > 1 {
		lv, _ := heap.Pop()
		rv, _ := heap.Pop()
		l, r := lv.(*node), rv.(*node)
		heap.Push(&node{freq: l.freq + r.freq, seq: seq, left: l, right: r})
		seq++
	}
	top, _ := heap.Pop()
	return top.(*node), leafCount
}

// code is a byte value's Huffman code as recorded by assignCodes, stored
// right-justified in bits with the given length (length <= 64, which
// comfortably covers any alphabet of at most 256 symbols).
type code struct {
	bits uint64
	len  uint
}

// assignCodes walks root and records the code for each leaf. A
// single-leaf tree is special-cased to the 1-bit code "0" per the
// format's fixed convention for degenerate trees.
func assignCodes(root *node, leafCount int) map[byte]code {
	table := make(map[byte]code, leafCount)
	if root.isLeaf() {
		table[root.value] = code{bits: 0, len: 1}
		return table
	}
	var walk func(n *node, bits uint64, depth uint)
	walk = func(n *node, bits uint64, depth uint) {
		if n.isLeaf() {
			table[n.value] = code{bits: bits, len: depth}
			return
		}
		walk(n.left, bits<<1, depth+1)
		walk(n.right, bits<<1|1, depth+1)
	}
	walk(root, 0, 0)
	return table
}
