// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package segy implements reading of SEG-Y seismic data files: reel and
// trace header parsing, compact trace indexing, and volume extraction.
package segy

// SEG-Y file layout constants. A standard file starts with a 3200 byte
// textual header, followed by the 400 byte binary (reel) header. Trace
// records follow from byte 3600, each a 240 byte trace header plus
// ns * bytes-per-sample of sample data.
const (
	// TextualHeaderSize is the size of the EBCDIC textual header.
	TextualHeaderSize = 3200

	// BinaryHeaderSize is the size of the binary (reel) header.
	BinaryHeaderSize = 400

	// TraceDataStart is the file offset of the first trace record.
	TraceDataStart = TextualHeaderSize + BinaryHeaderSize

	// TraceHeaderSize is the size of a trace header.
	TraceHeaderSize = 240

	// TextualHeaderLineLength is the length of one card image line of
	// the textual header.
	TextualHeaderLineLength = 80

	// TextualHeaderNumLines is the number of card image lines in the
	// textual header.
	TextualHeaderNumLines = 40
)

// SampleFormat represents the type of the binary header `DataSampleFormat`
// field, selecting the on-disk encoding of trace samples.
type SampleFormat int16

const (
	// SampleFormatIBMFloat is 4-byte IBM System/360 floating point.
	SampleFormatIBMFloat SampleFormat = 1

	// SampleFormatInt32 is 4-byte two's complement integer.
	SampleFormatInt32 SampleFormat = 2

	// SampleFormatInt16 is 2-byte two's complement integer.
	SampleFormatInt16 SampleFormat = 3

	// SampleFormatFixedGain is 4-byte fixed point with gain. Obsolete;
	// defined for revision 0 only.
	SampleFormatFixedGain SampleFormat = 4

	// SampleFormatIEEEFloat is 4-byte IEEE-754 floating point.
	SampleFormatIEEEFloat SampleFormat = 5

	// SampleFormatInt8 is 1-byte two's complement integer.
	SampleFormatInt8 SampleFormat = 8
)

func (f SampleFormat) String() string {
	switch f {
	case SampleFormatIBMFloat:
		return "ibm float32"
	case SampleFormatInt32:
		return "int32"
	case SampleFormatInt16:
		return "int16"
	case SampleFormatFixedGain:
		return "fixed point with gain"
	case SampleFormatIEEEFloat:
		return "ieee float32"
	case SampleFormatInt8:
		return "int8"
	}
	return "unknown"
}

// CType returns the primitive type code used to decode samples stored in
// this format.
func (f SampleFormat) CType() (CType, error) {
	switch f {
	case SampleFormatIBMFloat:
		return CTypeIBMFloat, nil
	case SampleFormatInt32:
		return CTypeInt32, nil
	case SampleFormatInt16:
		return CTypeInt16, nil
	case SampleFormatIEEEFloat:
		return CTypeIEEEFloat, nil
	case SampleFormatInt8:
		return CTypeInt8, nil
	case SampleFormatFixedGain:
		return 0, opNotSupported("SampleFormat", "decoding fixed point with gain samples")
	}
	return 0, inconsistency("unrecognized data sample format %d", f)
}

// Revision identifies a canonical SEG-Y format revision.
type Revision uint8

const (
	// Revision0 is SEG-Y revision 0 (1975).
	Revision0 Revision = 0

	// Revision1 is SEG-Y revision 1 (2002).
	Revision1 Revision = 1
)

func (r Revision) String() string {
	switch r {
	case Revision0:
		return "SEG-Y revision 0"
	case Revision1:
		return "SEG-Y revision 1"
	}
	return "unknown revision"
}

// rawRevision1 is the on-disk encoding of revision 1: a major/minor byte
// pair 0x0100.
const rawRevision1 = 0x0100

// CanonicalizeRevision maps the raw binary header revision field to one of
// the canonical revisions. Raw values 0 and 1 as well as the standard
// 0x0100 encoding are recognized; anything else reports an inconsistency
// rather than being coerced, since a misread revision silently changes the
// bytes-per-sample table.
func CanonicalizeRevision(raw uint16) (Revision, error) {
	switch raw {
	case 0:
		return Revision0, nil
	case 1, rawRevision1:
		return Revision1, nil
	}
	return 0, inconsistency("unrecognized SEG-Y revision 0x%04x", raw)
}

// BytesPerSample returns the sample width in bytes for a data sample
// format under the given revision.
func BytesPerSample(format SampleFormat, revision Revision) (int, error) {
	switch format {
	case SampleFormatIBMFloat, SampleFormatInt32, SampleFormatIEEEFloat:
		return 4, nil
	case SampleFormatInt16:
		return 2, nil
	case SampleFormatInt8:
		return 1, nil
	case SampleFormatFixedGain:
		if revision == Revision0 {
			return 4, nil
		}
		return 0, inconsistency("data sample format %d is not defined for %s", format, revision)
	}
	return 0, inconsistency("unrecognized data sample format %d", format)
}
