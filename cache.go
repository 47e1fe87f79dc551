// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

// The index cache is a sidecar file holding the four trace catalogs so
// reopening a large file skips the scan. Layout, all big-endian:
//
//	magic "SGYX" | version u8 | compression u8 | file size u64
//	| bytes per sample u8 | little-endian flag u8
//	| payload length u32 | compressed payload | xxhash64 footer
//
// The checksum covers everything before the footer. The payload is the
// four catalogs in scan order, each behind a variant tag.
var indexCacheMagic = [4]byte{'S', 'G', 'Y', 'X'}

const indexCacheVersion = 1

// Catalog variant tags used in the cache payload.
const (
	tagNilCatalog = iota
	tagDictionary
	tagRegularConstant
	tagConstant
	tagRegular
	tagLinearRegular
	tagDictionary2D
	tagRowMajor
)

// WriteIndexCache serializes the trace catalogs to a sidecar file using
// the codec configured in Options.CacheCompression.
func (sgy *File) WriteIndexCache(path string) error {
	if sgy.offsets == nil || sgy.lengths == nil {
		return opNotSupported("File", "traces are not indexed")
	}

	var payload bytes.Buffer
	encodeCatalog(&payload, sgy.offsets)
	encodeCatalog(&payload, sgy.lengths)
	encodeCatalog(&payload, sgy.cdps)
	encodeCatalog2D(&payload, sgy.lines)

	codec, err := newCodec(sgy.opts.CacheCompression)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(payload.Bytes())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Write(indexCacheMagic[:])
	buf.WriteByte(indexCacheVersion)
	buf.WriteByte(byte(sgy.opts.CacheCompression))
	writeU64(&buf, uint64(sgy.size))
	buf.WriteByte(byte(sgy.BytesPerSample))
	buf.WriteByte(boolByte(sgy.opts.LittleEndian))
	writeU32(&buf, uint32(len(compressed)))
	buf.Write(compressed)
	writeU64(&buf, xxhash.Sum64(buf.Bytes()))

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// loadIndexCache restores the catalogs from a sidecar file, rejecting a
// cache whose checksum or recorded file facts no longer match.
func (sgy *File) loadIndexCache(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(raw) < 4+1+1+8+1+1+4+8 {
		return inconsistency("index cache %s is truncated", path)
	}

	body, footer := raw[:len(raw)-8], raw[len(raw)-8:]
	if binary.BigEndian.Uint64(footer) != xxhash.Sum64(body) {
		return inconsistency("index cache %s checksum mismatch", path)
	}

	r := bytes.NewReader(body)
	var magic [4]byte
	_, _ = r.Read(magic[:])
	if magic != indexCacheMagic {
		return inconsistency("index cache %s has wrong magic", path)
	}
	version, _ := r.ReadByte()
	if version != indexCacheVersion {
		return inconsistency("index cache %s has unsupported version %d", path, version)
	}
	compression, _ := r.ReadByte()
	fileSize, err := readU64(r)
	if err != nil {
		return err
	}
	bps, _ := r.ReadByte()
	littleEndian, _ := r.ReadByte()

	if int64(fileSize) != sgy.size || int(bps) != sgy.BytesPerSample ||
		littleEndian != boolByte(sgy.opts.LittleEndian) {
		return inconsistency("index cache %s was built for different data", path)
	}

	payloadLen, err := readU32(r)
	if err != nil {
		return err
	}
	compressed := make([]byte, payloadLen)
	if n, _ := r.Read(compressed); n != int(payloadLen) {
		return underflow("index cache payload", int(payloadLen), n)
	}

	codec, err := newCodec(CompressionType(compression))
	if err != nil {
		return err
	}
	payload, err := codec.Decompress(compressed)
	if err != nil {
		return errors.Wrapf(ErrInconsistency, "index cache %s payload: %v", path, err)
	}

	pr := bytes.NewReader(payload)
	offsets, err := decodeCatalog(pr)
	if err != nil {
		return err
	}
	lengths, err := decodeCatalog(pr)
	if err != nil {
		return err
	}
	cdps, err := decodeCatalog(pr)
	if err != nil {
		return err
	}
	lines, err := decodeCatalog2D(pr)
	if err != nil {
		return err
	}
	if offsets == nil || lengths == nil {
		return inconsistency("index cache %s is missing the trace catalogs", path)
	}

	sgy.offsets = offsets
	sgy.lengths = lengths
	sgy.cdps = cdps
	sgy.lines = lines
	return nil
}

func encodeCatalog(buf *bytes.Buffer, c Catalog) {
	switch cat := c.(type) {
	case nil:
		buf.WriteByte(tagNilCatalog)
	case *RegularConstantCatalog:
		buf.WriteByte(tagRegularConstant)
		writeI64(buf, int64(cat.keyMin), int64(cat.keyMax), int64(cat.keyStride), int64(cat.value))
	case *ConstantCatalog:
		buf.WriteByte(tagConstant)
		writeI64(buf, int64(cat.value))
		writeU32(buf, uint32(len(cat.keys)))
		for _, k := range cat.keys {
			writeI64(buf, int64(k))
		}
	case *RegularCatalog:
		buf.WriteByte(tagRegular)
		writeI64(buf, int64(cat.keyMin), int64(cat.keyMax), int64(cat.keyStride))
		writeU32(buf, uint32(len(cat.values)))
		for _, v := range cat.values {
			writeI64(buf, int64(v))
		}
	case *LinearRegularCatalog:
		buf.WriteByte(tagLinearRegular)
		writeI64(buf, int64(cat.keyMin), int64(cat.keyMax), int64(cat.keyStride),
			int64(cat.valueStart), int64(cat.valueStop), int64(cat.valueStride))
	default:
		buf.WriteByte(tagDictionary)
		writeU32(buf, uint32(c.Len()))
		c.EachKey(func(k int) bool {
			v, _ := c.Get(k)
			writeI64(buf, int64(k), int64(v))
			return true
		})
	}
}

func encodeCatalog2D(buf *bytes.Buffer, c Catalog2D) {
	switch cat := c.(type) {
	case nil:
		buf.WriteByte(tagNilCatalog)
	case *RowMajorCatalog:
		buf.WriteByte(tagRowMajor)
		writeI64(buf, int64(cat.iMin), int64(cat.iMax), int64(cat.jMin), int64(cat.jMax), int64(cat.offset))
	default:
		buf.WriteByte(tagDictionary2D)
		writeU32(buf, uint32(c.Len()))
		c.EachKey(func(i, j int) bool {
			v, _ := c.Get(i, j)
			writeI64(buf, int64(i), int64(j), int64(v))
			return true
		})
	}
}

func decodeCatalog(r *bytes.Reader) (Catalog, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, underflow("index cache catalog tag", 1, 0)
	}
	switch tag {
	case tagNilCatalog:
		return nil, nil
	case tagDictionary:
		n, err := readU32(r)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, n)
		for k := uint32(0); k < n; k++ {
			kv, err := readI64s(r, 2)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: int(kv[0]), Value: int(kv[1])})
		}
		return NewDictionaryCatalog(entries), nil
	case tagRegularConstant:
		v, err := readI64s(r, 4)
		if err != nil {
			return nil, err
		}
		return NewRegularConstantCatalog(int(v[0]), int(v[1]), int(v[2]), int(v[3]))
	case tagConstant:
		value, err := readI64s(r, 1)
		if err != nil {
			return nil, err
		}
		n, err := readU32(r)
		if err != nil {
			return nil, err
		}
		keys := make([]int, 0, n)
		for k := uint32(0); k < n; k++ {
			kv, err := readI64s(r, 1)
			if err != nil {
				return nil, err
			}
			keys = append(keys, int(kv[0]))
		}
		return NewConstantCatalog(keys, int(value[0])), nil
	case tagRegular:
		v, err := readI64s(r, 3)
		if err != nil {
			return nil, err
		}
		n, err := readU32(r)
		if err != nil {
			return nil, err
		}
		values := make([]int, 0, n)
		for k := uint32(0); k < n; k++ {
			vv, err := readI64s(r, 1)
			if err != nil {
				return nil, err
			}
			values = append(values, int(vv[0]))
		}
		return NewRegularCatalog(int(v[0]), int(v[1]), int(v[2]), values)
	case tagLinearRegular:
		v, err := readI64s(r, 6)
		if err != nil {
			return nil, err
		}
		return NewLinearRegularCatalog(int(v[0]), int(v[1]), int(v[2]), int(v[3]), int(v[4]), int(v[5]))
	}
	return nil, inconsistency("index cache has unknown catalog tag %d", tag)
}

func decodeCatalog2D(r *bytes.Reader) (Catalog2D, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, underflow("index cache catalog tag", 1, 0)
	}
	switch tag {
	case tagNilCatalog:
		return nil, nil
	case tagDictionary2D:
		n, err := readU32(r)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry2D, 0, n)
		for k := uint32(0); k < n; k++ {
			v, err := readI64s(r, 3)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry2D{I: int(v[0]), J: int(v[1]), Value: int(v[2])})
		}
		return NewDictionaryCatalog2D(entries), nil
	case tagRowMajor:
		v, err := readI64s(r, 5)
		if err != nil {
			return nil, err
		}
		return NewRowMajorCatalog(int(v[0]), int(v[1]), int(v[2]), int(v[3]), int(v[4]))
	}
	return nil, inconsistency("index cache has unknown catalog tag %d", tag)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeI64(buf *bytes.Buffer, values ...int64) {
	for _, v := range values {
		writeU64(buf, uint64(v))
	}
}

func readU32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	n, _ := r.Read(b[:])
	if n != 4 {
		return 0, underflow("index cache", 4, n)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func readU64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	n, _ := r.Read(b[:])
	if n != 8 {
		return 0, underflow("index cache", 8, n)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func readI64s(r *bytes.Reader, count int) ([]int64, error) {
	out := make([]int64, count)
	for i := range out {
		v, err := readU64(r)
		if err != nil {
			return nil, err
		}
		out[i] = int64(v)
	}
	return out, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
