// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType identifies the codec applied to an index cache
// payload.
type CompressionType uint8

const (
	// CompressionZstd is Zstandard, the default: the best ratio on
	// catalog payloads at still cheap decompression.
	CompressionZstd CompressionType = iota

	// CompressionNone stores the payload uncompressed.
	CompressionNone

	// CompressionS2 is the S2 extension of Snappy: fastest, moderate
	// ratio.
	CompressionS2

	// CompressionLZ4 is LZ4 block compression.
	CompressionLZ4
)

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	}
	return "unknown"
}

// A Codec compresses and decompresses index cache payloads. Returned
// slices are newly allocated and owned by the caller.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// newCodec returns the codec for a compression type.
func newCodec(t CompressionType) (Codec, error) {
	switch t {
	case CompressionNone:
		return noopCodec{}, nil
	case CompressionZstd:
		return newZstdCodec()
	case CompressionS2:
		return s2Codec{}, nil
	case CompressionLZ4:
		return lz4Codec{}, nil
	}
	return nil, inconsistency("unrecognized compression type %d", t)
}

type noopCodec struct{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func newZstdCodec() (Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return zstdCodec{enc: enc, dec: dec}, nil
}

func (c zstdCodec) Compress(data []byte) ([]byte, error) {
	return c.enc.EncodeAll(data, nil), nil
}

func (c zstdCodec) Decompress(data []byte) ([]byte, error) {
	return c.dec.DecodeAll(data, nil)
}

type s2Codec struct{}

func (s2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}

type lz4Codec struct{}

// Block markers: CompressBlock reports incompressible input by writing
// nothing, so such payloads are stored raw behind a marker byte.
const (
	lz4BlockRaw        = 0
	lz4BlockCompressed = 1
)

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	var compressor lz4.Compressor
	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))
	dst[0] = lz4BlockCompressed
	n, err := compressor.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		raw := make([]byte, 1+len(data))
		raw[0] = lz4BlockRaw
		copy(raw[1:], data)
		return raw, nil
	}
	return dst[:1+n], nil
}

// lz4MaxDecompressedSize bounds the adaptive decompression buffer.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, underflow("lz4 block", 1, 0)
	}
	if data[0] == lz4BlockRaw {
		return append([]byte(nil), data[1:]...), nil
	}
	block := data[1:]
	size := 4 * len(block)
	if size == 0 {
		size = 64
	}
	for {
		dst := make([]byte, size)
		n, err := lz4.UncompressBlock(block, dst)
		if err == nil {
			return dst[:n], nil
		}
		if size >= lz4MaxDecompressedSize {
			return nil, err
		}
		size *= 2
	}
}
