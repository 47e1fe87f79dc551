// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// traceSpec describes one trace of a crafted test file.
type traceSpec struct {
	cdp     int
	inline  int
	xline   int
	cdpX    int32
	cdpY    int32
	scalar  int16
	samples []float64
}

// buildSegY crafts a complete big-endian SEG-Y file in memory: an EBCDIC
// textual header, a revision 1 binary header with the given sample
// format, and the given traces.
func buildSegY(t *testing.T, format SampleFormat, traces []traceSpec) []byte {
	t.Helper()

	data := make([]byte, TraceDataStart)
	for i := 0; i < TextualHeaderSize; i++ {
		data[i] = 0x40 // EBCDIC space
	}
	data[0] = ebcdicUppercaseC

	be := binary.BigEndian
	be.PutUint16(data[3224:], uint16(format))
	be.PutUint16(data[3500:], rawRevision1)
	if len(traces) > 0 {
		be.PutUint16(data[3220:], uint16(len(traces[0].samples)))
	}

	ctype, err := format.CType()
	require.NoError(t, err)

	for _, tr := range traces {
		hdr := make([]byte, TraceHeaderSize)
		be.PutUint32(hdr[cdpFieldPos:], uint32(int32(tr.cdp)))
		be.PutUint16(hdr[70:], uint16(tr.scalar))
		be.PutUint16(hdr[nsFieldPos:], uint16(len(tr.samples)))
		be.PutUint32(hdr[180:], uint32(tr.cdpX))
		be.PutUint32(hdr[184:], uint32(tr.cdpY))
		be.PutUint32(hdr[inlineFieldPos:], uint32(int32(tr.inline)))
		be.PutUint32(hdr[crosslineFieldPos:], uint32(int32(tr.xline)))
		data = append(data, hdr...)

		encoded, err := PackValues(tr.samples, ctype, be)
		require.NoError(t, err)
		data = append(data, encoded...)
	}
	return data
}

// parseSegY builds a file from specs and parses it.
func parseSegY(t *testing.T, format SampleFormat, traces []traceSpec) *File {
	t.Helper()
	sgy, err := NewBytes(buildSegY(t, format, traces), nil)
	require.NoError(t, err)
	require.NoError(t, sgy.Parse())
	return sgy
}

// cubeTraces lays out a small regular 2 x 3 cube: inlines 1..2,
// crosslines 10, 20, 30, four samples per trace. Sample values encode
// their position as trace*10 + sample.
func cubeTraces() []traceSpec {
	var traces []traceSpec
	n := 0
	for inline := 1; inline <= 2; inline++ {
		for xline := 10; xline <= 30; xline += 10 {
			samples := make([]float64, 4)
			for s := range samples {
				samples[s] = float64(n*10 + s)
			}
			traces = append(traces, traceSpec{
				cdp:     100 + n,
				inline:  inline,
				xline:   xline,
				samples: samples,
			})
			n++
		}
	}
	return traces
}

func TestCanonicalizeRevision(t *testing.T) {

	tests := []struct {
		raw     uint16
		want    Revision
		wantErr bool
	}{
		{0, Revision0, false},
		{1, Revision1, false},
		{0x0100, Revision1, false},
		{2, 0, true},
		{0x0200, 0, true},
	}

	for _, tt := range tests {
		rev, err := CanonicalizeRevision(tt.raw)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInconsistency, "raw 0x%04x", tt.raw)
			continue
		}
		require.NoError(t, err, "raw 0x%04x", tt.raw)
		require.Equal(t, tt.want, rev, "raw 0x%04x", tt.raw)
	}
}

func TestBytesPerSample(t *testing.T) {

	tests := []struct {
		format   SampleFormat
		revision Revision
		want     int
		wantErr  bool
	}{
		{SampleFormatIBMFloat, Revision0, 4, false},
		{SampleFormatIBMFloat, Revision1, 4, false},
		{SampleFormatInt32, Revision1, 4, false},
		{SampleFormatInt16, Revision1, 2, false},
		{SampleFormatFixedGain, Revision0, 4, false},
		{SampleFormatFixedGain, Revision1, 0, true},
		{SampleFormatIEEEFloat, Revision1, 4, false},
		{SampleFormatInt8, Revision1, 1, false},
		{SampleFormat(6), Revision1, 0, true},
	}

	for _, tt := range tests {
		bps, err := BytesPerSample(tt.format, tt.revision)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInconsistency, "format %d", tt.format)
			continue
		}
		require.NoError(t, err, "format %d", tt.format)
		require.Equal(t, tt.want, bps, "format %d", tt.format)
	}
}
