// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
)

// ReadUint16 reads a uint16 at offset using the file's byte order.
func (sgy *File) ReadUint16(offset int64) (uint16, error) {
	if offset < 0 || offset+2 > sgy.size {
		return 0, ErrOutsideBoundary
	}
	return sgy.byteOrder.Uint16(sgy.data[offset:]), nil
}

// ReadUint32 reads a uint32 at offset using the file's byte order.
func (sgy *File) ReadUint32(offset int64) (uint32, error) {
	if offset < 0 || offset+4 > sgy.size {
		return 0, ErrOutsideBoundary
	}
	return sgy.byteOrder.Uint32(sgy.data[offset:]), nil
}

// ReadInt16 reads an int16 at offset using the file's byte order.
func (sgy *File) ReadInt16(offset int64) (int16, error) {
	v, err := sgy.ReadUint16(offset)
	return int16(v), err
}

// ReadInt32 reads an int32 at offset using the file's byte order.
func (sgy *File) ReadInt32(offset int64) (int32, error) {
	v, err := sgy.ReadUint32(offset)
	return int32(v), err
}

// ReadBytesAtOffset returns a slice of the mapped data at offset. The
// slice aliases the mapping and must not be retained past Close.
func (sgy *File) ReadBytesAtOffset(offset, size int64) ([]byte, error) {
	if size < 0 || offset < 0 || offset >= sgy.size || offset+size > sgy.size {
		return nil, ErrOutsideBoundary
	}
	return sgy.data[offset : offset+size], nil
}

// structUnpack decodes a fixed layout structure at offset using the
// file's byte order.
func (sgy *File) structUnpack(iface interface{}, offset, size int64) error {
	if offset < 0 || offset >= sgy.size || offset+size > sgy.size {
		return ErrOutsideBoundary
	}
	return binary.Read(bytes.NewReader(sgy.data[offset:offset+size]), sgy.byteOrder, iface)
}

// readBinaryValues decodes count primitive values of the given type code
// starting at offset.
func (sgy *File) readBinaryValues(offset int64, c CType, count int) ([]float64, error) {
	size, err := SizeInBytes(c)
	if err != nil {
		return nil, err
	}
	need := int64(size) * int64(count)
	if offset < 0 || offset+need > sgy.size {
		available := sgy.size - offset
		if available < 0 {
			available = 0
		}
		return nil, underflow("read binary values", int(need), int(available))
	}
	return UnpackValues(sgy.data[offset:offset+need], c, count, sgy.byteOrder)
}

// ebcdicUppercaseC is the EBCDIC encoding of 'C', the column every
// standard textual header line starts with. Used to distinguish EBCDIC
// from the ASCII textual headers some vendors write.
const ebcdicUppercaseC = 0xc3

// decodeTextualHeader decodes the 3200 byte card image header into 40
// lines of 80 characters. The standard encoding is EBCDIC (code page
// 037); plain ASCII headers are passed through unchanged.
func decodeTextualHeader(raw []byte) ([]string, error) {
	text := raw
	if looksLikeEBCDIC(raw) {
		decoded, err := charmap.CodePage037.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, err
		}
		text = decoded
	}

	lines := make([]string, 0, TextualHeaderNumLines)
	for i := 0; i+TextualHeaderLineLength <= len(text); i += TextualHeaderLineLength {
		lines = append(lines, string(text[i:i+TextualHeaderLineLength]))
	}
	return lines, nil
}

// looksLikeEBCDIC reports whether the header bytes look EBCDIC encoded
// rather than ASCII. EBCDIC text is dominated by bytes above 0x7f.
func looksLikeEBCDIC(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	if raw[0] == ebcdicUppercaseC {
		return true
	}
	high := 0
	for _, b := range raw {
		if b >= 0x80 {
			high++
		}
	}
	return high > len(raw)/2
}
