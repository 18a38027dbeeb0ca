// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package pipeline composes the transforms and codecs in this module
// into the toolkit's end-to-end compress/decompress operations. It owns
// ordering only; every transform and codec it calls remains a pure
// buffer-in/buffer-out function with no state surviving one invocation.
package pipeline

import (
	"github.com/dsnet/fcodec/bwt"
	"github.com/dsnet/fcodec/huffman"
	"github.com/dsnet/fcodec/lzw"
	"github.com/dsnet/fcodec/mtf"
	"github.com/dsnet/fcodec/rle"
)

// Transform names one of the reversible pre-compression reorderings.
type Transform string

const (
	BWT Transform = "bwt"
	MTF Transform = "mtf"
)

// Codec names one of the terminal compressors.
type Codec string

const (
	RLE     Codec = "rle"
	Huffman Codec = "huffman"
	LZW     Codec = "lzw"
)

// Pipeline is an ordered list of transforms applied before compression
// (and inverted, in reverse, after decompression) together with the
// terminal codec that does the actual byte-count reduction.
type Pipeline struct {
	Transforms []Transform
	Codec      Codec

	// LZWOptions configures the LZW codec. Ignored unless Codec is LZW.
	LZWOptions lzw.Options
}

func forward(t Transform, x []byte) ([]byte, error) {
	switch t {
	case BWT:
		return bwt.Forward(x), nil
	case MTF:
		return mtf.Forward(x), nil
	default:
		return nil, unknownTransform(t)
	}
}

func inverse(t Transform, x []byte) ([]byte, error) {
	switch t {
	case BWT:
		return bwt.Inverse(x)
	case MTF:
		return mtf.Inverse(x), nil
	default:
		return nil, unknownTransform(t)
	}
}

// Compress runs input through p.Transforms in order, then encodes the
// result with p.Codec.
func (p Pipeline) Compress(input []byte) ([]byte, error) {
	x := input
	for _, t := range p.Transforms {
		var err error
		x, err = forward(t, x)
		if err != nil {
			return nil, err
		}
	}
	return p.encode(x)
}

// Decompress decodes blob with p.Codec, then inverts p.Transforms in
// reverse order to recover the original input.
func (p Pipeline) Decompress(blob []byte) ([]byte, error) {
	x, err := p.decode(blob)
	if err != nil {
		return nil, err
	}
	for i := len(p.Transforms) - 1; i >= 0; i-- {
		x, err = inverse(p.Transforms[i], x)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (p Pipeline) encode(x []byte) ([]byte, error) {
	switch p.Codec {
	case RLE:
		return rle.Encode(x), nil
	case Huffman:
		return huffman.Encode(x), nil
	case LZW:
		return lzw.Encode(x, p.LZWOptions)
	default:
		return nil, unknownCodec(p.Codec)
	}
}

func (p Pipeline) decode(x []byte) ([]byte, error) {
	switch p.Codec {
	case RLE:
		return rle.Decode(x)
	case Huffman:
		return huffman.Decode(x)
	case LZW:
		return lzw.Decode(x, p.LZWOptions)
	default:
		return nil, unknownCodec(p.Codec)
	}
}
