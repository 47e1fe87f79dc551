// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTraceHeaderSchemaLayout verifies the schema table tiles the 240
// byte record exactly: fields sorted by position, no overlaps, no gaps,
// and a cumulative width of 240 bytes. The struct layout must agree.
func TestTraceHeaderSchemaLayout(t *testing.T) {
	fields := append([]TraceHeaderField(nil), TraceHeaderFields...)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Pos < fields[j].Pos })

	length := 0
	for _, f := range fields {
		require.Equal(t, length, f.Pos, "field %s does not start where %d bytes end", f.Name, length)
		size, err := SizeInBytes(f.Type)
		require.NoError(t, err, "field %s", f.Name)
		length += size
	}
	require.Equal(t, TraceHeaderSize, length)

	require.Equal(t, TraceHeaderSize, binary.Size(TraceHeader{}))
}

func TestBinaryHeaderLayout(t *testing.T) {
	require.Equal(t, BinaryHeaderSize, binary.Size(BinaryHeader{}))

	// Schema positions are absolute file offsets inside the header.
	for _, f := range BinaryHeaderFields {
		require.GreaterOrEqual(t, f.Pos, TextualHeaderSize, "field %s", f.Name)
		size, err := SizeInBytes(f.Type)
		require.NoError(t, err)
		require.LessOrEqual(t, f.Pos+size, TraceDataStart, "field %s", f.Name)
	}
}

func TestParseTraceHeader(t *testing.T) {
	be := binary.BigEndian
	data := make([]byte, TraceHeaderSize)
	be.PutUint32(data[0:], 12)              // TraceSequenceLine
	be.PutUint32(data[20:], uint32(9001))   // CDP
	be.PutUint16(data[70:], uint16(0xffff)) // SourceGroupScalar = -1
	be.PutUint32(data[72:], 0xfffffffe)     // SourceX = -2
	be.PutUint16(data[114:], 2500)          // NumSamples
	be.PutUint16(data[116:], 4000)          // SampleInterval
	be.PutUint32(data[188:], uint32(215))   // Inline3D
	be.PutUint32(data[192:], uint32(1440))  // Crossline3D

	th, err := ParseTraceHeader(data, be)
	require.NoError(t, err)
	require.Equal(t, int32(12), th.TraceSequenceLine)
	require.Equal(t, int32(9001), th.CDP)
	require.Equal(t, int16(-1), th.SourceGroupScalar)
	require.Equal(t, int32(-2), th.SourceX)
	require.Equal(t, uint16(2500), th.NumSamples)
	require.Equal(t, uint16(4000), th.SampleInterval)
	require.Equal(t, int32(215), th.Inline3D)
	require.Equal(t, int32(1440), th.Crossline3D)
}

func TestParseTraceHeaderUnderflow(t *testing.T) {
	_, err := ParseTraceHeader(make([]byte, 100), binary.BigEndian)
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestTraceHeaderFieldAccessors(t *testing.T) {
	th := &TraceHeader{
		CDP:         321,
		NumSamples:  1500,
		Inline3D:    -7,
		Crossline3D: 99,
	}

	tests := []struct {
		name string
		want int64
	}{
		{"CDP", 321},
		{"NumSamples", 1500},
		{"Inline3D", -7},
		{"Crossline3D", 99},
		{"SourceX", 0},
	}

	for _, tt := range tests {
		field, err := TraceHeaderFieldByName(tt.name)
		require.NoError(t, err, "field %s", tt.name)
		require.Equal(t, tt.want, field.Value(th), "field %s", tt.name)
	}

	_, err := TraceHeaderFieldByName("NoSuchField")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

// TestTraceHeaderFieldsCoverStruct checks every schema accessor reads
// the field at its declared position: a header parsed from bytes where
// each field holds a value derived from its own offset must report that
// value through the accessor.
func TestTraceHeaderFieldsCoverStruct(t *testing.T) {
	be := binary.BigEndian
	data := make([]byte, TraceHeaderSize)
	for _, f := range TraceHeaderFields {
		switch f.Type {
		case CTypeInt16, CTypeUint16:
			be.PutUint16(data[f.Pos:], uint16(f.Pos))
		case CTypeInt32:
			be.PutUint32(data[f.Pos:], uint32(f.Pos))
		}
	}

	th, err := ParseTraceHeader(data, be)
	require.NoError(t, err)
	for _, f := range TraceHeaderFields {
		require.Equal(t, int64(f.Pos), f.Value(th), "field %s", f.Name)
	}
}

func TestTraceHeaderAppendBinaryRoundTrip(t *testing.T) {
	be := binary.BigEndian
	th := &TraceHeader{
		TraceSequenceLine: 3,
		CDP:               1234,
		NumSamples:        50,
		Inline3D:          10,
		Crossline3D:       20,
		SourceGroupScalar: -100,
	}

	encoded, err := th.AppendBinary(nil, be)
	require.NoError(t, err)
	require.Len(t, encoded, TraceHeaderSize)

	back, err := ParseTraceHeader(encoded, be)
	require.NoError(t, err)
	require.Equal(t, th, back)
}
