// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParsesMappedFile(t *testing.T) {
	data := buildSegY(t, SampleFormatIEEEFloat, cubeTraces())
	path := filepath.Join(t.TempDir(), "cube.segy")
	require.NoError(t, os.WriteFile(path, data, 0644))

	sgy, err := New(path, &Options{})
	require.NoError(t, err)
	require.NoError(t, sgy.Parse())

	require.Equal(t, Revision1, sgy.Revision)
	require.Equal(t, SampleFormatIEEEFloat, sgy.DataSampleFormat())
	require.Equal(t, 6, sgy.NumTraces())

	require.NoError(t, sgy.Close())
	// Closing twice is harmless.
	require.NoError(t, sgy.Close())
}

func TestParseRejectsTinyFile(t *testing.T) {
	sgy, err := NewBytes(make([]byte, 100), nil)
	require.NoError(t, err)
	require.ErrorIs(t, sgy.Parse(), ErrInvalidFileSize)
}

func TestParseTextualHeaderEBCDIC(t *testing.T) {
	sgy := parseSegY(t, SampleFormatIEEEFloat, nil)
	require.Len(t, sgy.TextualHeader, TextualHeaderNumLines)
	require.Len(t, sgy.TextualHeader[0], TextualHeaderLineLength)

	// The fixture's first card image byte is EBCDIC 'C'; the rest are
	// EBCDIC spaces.
	require.True(t, strings.HasPrefix(sgy.TextualHeader[0], "C "))
	require.Equal(t, strings.Repeat(" ", TextualHeaderLineLength), sgy.TextualHeader[1])
}

func TestParseTextualHeaderASCII(t *testing.T) {
	data := buildSegY(t, SampleFormatIEEEFloat, nil)
	header := "C 1 CLIENT ASCII HEADER"
	copy(data, header)
	for i := len(header); i < TextualHeaderSize; i++ {
		data[i] = ' '
	}

	sgy, err := NewBytes(data, nil)
	require.NoError(t, err)
	require.NoError(t, sgy.Parse())
	require.True(t, strings.HasPrefix(sgy.TextualHeader[0], header))
}

func TestHeadersOnlySkipsIndexing(t *testing.T) {
	sgy, err := NewBytes(buildSegY(t, SampleFormatIEEEFloat, cubeTraces()),
		&Options{HeadersOnly: true})
	require.NoError(t, err)
	require.NoError(t, sgy.Parse())

	require.Equal(t, 0, sgy.NumTraces())
	require.Nil(t, sgy.OffsetCatalog())
	_, err = sgy.TraceHeaderAt(0)
	require.ErrorIs(t, err, ErrOperationNotSupported)
	_, err = sgy.TraceIndex(1, 10)
	require.ErrorIs(t, err, ErrOperationNotSupported)
}

func TestTraceHeaderAt(t *testing.T) {
	sgy := parseSegY(t, SampleFormatIEEEFloat, cubeTraces())

	th, err := sgy.TraceHeaderAt(4)
	require.NoError(t, err)
	require.Equal(t, int32(104), th.CDP)
	require.Equal(t, int32(2), th.Inline3D)
	require.Equal(t, int32(20), th.Crossline3D)
	require.Equal(t, uint16(4), th.NumSamples)

	_, err = sgy.TraceHeaderAt(6)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestTraceSamples(t *testing.T) {
	sgy := parseSegY(t, SampleFormatIEEEFloat, cubeTraces())

	samples, err := sgy.TraceSamples(2, 0, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{20, 21, 22, 23}, samples)

	samples, err = sgy.TraceSamples(2, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{21, 22}, samples)

	_, err = sgy.TraceSamples(2, 0, 5)
	require.ErrorIs(t, err, ErrInconsistency)
	_, err = sgy.TraceSamples(2, -1, 2)
	require.ErrorIs(t, err, ErrInconsistency)
	_, err = sgy.TraceSamples(99, 0, 1)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestTraceSamplesIBM(t *testing.T) {
	traces := []traceSpec{
		{cdp: 1, inline: 1, xline: 1, samples: []float64{-118.625, 0, 0.15625, 1}},
	}
	sgy := parseSegY(t, SampleFormatIBMFloat, traces)
	require.Equal(t, 4, sgy.BytesPerSample)

	samples, err := sgy.TraceSamples(0, 0, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{-118.625, 0, 0.15625, 1}, samples)
}

func TestTraceSamplesInt8(t *testing.T) {
	traces := []traceSpec{
		{cdp: 1, inline: 1, xline: 1, samples: []float64{-128, -1, 0, 127}},
	}
	sgy := parseSegY(t, SampleFormatInt8, traces)
	require.Equal(t, 1, sgy.BytesPerSample)

	samples, err := sgy.TraceSamples(0, 0, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{-128, -1, 0, 127}, samples)
}

func TestHasTraceIndex(t *testing.T) {
	sgy := parseSegY(t, SampleFormatIEEEFloat, cubeTraces())

	require.True(t, sgy.HasTraceIndex(1, 10))
	require.True(t, sgy.HasTraceIndex(2, 30))
	require.False(t, sgy.HasTraceIndex(3, 10))
	require.False(t, sgy.HasTraceIndex(1, 15))

	_, err := sgy.TraceIndex(3, 10)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestEachInlineXline(t *testing.T) {
	sgy := parseSegY(t, SampleFormatIEEEFloat, cubeTraces())

	var pairs [][2]int
	require.NoError(t, sgy.EachInlineXline(func(inline, xline int) bool {
		pairs = append(pairs, [2]int{inline, xline})
		return true
	}))
	require.Equal(t, [][2]int{
		{1, 10}, {1, 20}, {1, 30},
		{2, 10}, {2, 20}, {2, 30},
	}, pairs)
}
