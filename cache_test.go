// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireSameCatalog(t *testing.T, want, got Catalog) {
	t.Helper()
	if want == nil {
		require.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	require.Equal(t, want.Len(), got.Len())
	want.EachKey(func(k int) bool {
		wantValue, err := want.Get(k)
		require.NoError(t, err)
		gotValue, err := got.Get(k)
		require.NoError(t, err, "key %d", k)
		require.Equal(t, wantValue, gotValue, "key %d", k)
		return true
	})
}

func requireSameCatalog2D(t *testing.T, want, got Catalog2D) {
	t.Helper()
	if want == nil {
		require.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	require.Equal(t, want.Len(), got.Len())
	want.EachKey(func(i, j int) bool {
		wantValue, err := want.Get(i, j)
		require.NoError(t, err)
		gotValue, err := got.Get(i, j)
		require.NoError(t, err, "key (%d, %d)", i, j)
		require.Equal(t, wantValue, gotValue, "key (%d, %d)", i, j)
		return true
	})
}

func testCacheRoundTrip(t *testing.T, compression CompressionType, traces []traceSpec) {
	t.Helper()
	data := buildSegY(t, SampleFormatIEEEFloat, traces)
	cachePath := filepath.Join(t.TempDir(), "cube.segy.idx")

	scanned, err := NewBytes(data, &Options{CacheCompression: compression})
	require.NoError(t, err)
	require.NoError(t, scanned.Parse())
	require.NoError(t, scanned.WriteIndexCache(cachePath))

	cached, err := NewBytes(data, &Options{IndexCachePath: cachePath})
	require.NoError(t, err)
	require.NoError(t, cached.Parse())

	requireSameCatalog(t, scanned.OffsetCatalog(), cached.OffsetCatalog())
	requireSameCatalog(t, scanned.LengthCatalog(), cached.LengthCatalog())
	requireSameCatalog(t, scanned.CDPCatalog(), cached.CDPCatalog())
	requireSameCatalog2D(t, scanned.LineCatalog(), cached.LineCatalog())

	// Derived facts are rebuilt from the cached catalogs.
	require.Equal(t, scanned.MaxNumTraceSamples(), cached.MaxNumTraceSamples())
	require.Equal(t, scanned.InlineNumbers(), cached.InlineNumbers())
	require.Equal(t, scanned.XlineNumbers(), cached.XlineNumbers())
}

func TestIndexCacheRoundTrip(t *testing.T) {
	for _, compression := range []CompressionType{
		CompressionZstd, CompressionNone, CompressionS2, CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			testCacheRoundTrip(t, compression, cubeTraces())
		})
	}
}

func TestIndexCacheRoundTripDictionaryCatalogs(t *testing.T) {
	// A hole in the cube and duplicate CDPs force the dictionary and
	// nil catalog encodings through the cache.
	traces := append([]traceSpec(nil), cubeTraces()...)
	traces = append(traces[:4], traces[5:]...)
	traces[1].cdp = traces[0].cdp
	testCacheRoundTrip(t, CompressionZstd, traces)
}

func TestIndexCacheRejectsCorruption(t *testing.T) {
	data := buildSegY(t, SampleFormatIEEEFloat, cubeTraces())
	cachePath := filepath.Join(t.TempDir(), "cube.segy.idx")

	scanned, err := NewBytes(data, nil)
	require.NoError(t, err)
	require.NoError(t, scanned.Parse())
	require.NoError(t, scanned.WriteIndexCache(cachePath))

	raw, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	raw[len(raw)/2] ^= 0xff
	require.NoError(t, os.WriteFile(cachePath, raw, 0644))

	corrupted, err := NewBytes(data, nil)
	require.NoError(t, err)
	require.ErrorIs(t, corrupted.loadIndexCache(cachePath), ErrInconsistency)

	// Parse falls back to a fresh scan.
	fresh, err := NewBytes(data, &Options{IndexCachePath: cachePath})
	require.NoError(t, err)
	require.NoError(t, fresh.Parse())
	require.Equal(t, 6, fresh.NumTraces())
}

func TestIndexCacheRejectsDifferentFile(t *testing.T) {
	data := buildSegY(t, SampleFormatIEEEFloat, cubeTraces())
	cachePath := filepath.Join(t.TempDir(), "cube.segy.idx")

	scanned, err := NewBytes(data, nil)
	require.NoError(t, err)
	require.NoError(t, scanned.Parse())
	require.NoError(t, scanned.WriteIndexCache(cachePath))

	other, err := NewBytes(buildSegY(t, SampleFormatIEEEFloat, threeTraces()), nil)
	require.NoError(t, err)
	require.NoError(t, other.ParseBinaryHeader())
	require.ErrorIs(t, other.loadIndexCache(cachePath), ErrInconsistency)
}

func TestWriteIndexCacheRequiresIndex(t *testing.T) {
	sgy, err := NewBytes(buildSegY(t, SampleFormatIEEEFloat, cubeTraces()),
		&Options{HeadersOnly: true})
	require.NoError(t, err)
	require.NoError(t, sgy.Parse())

	err = sgy.WriteIndexCache(filepath.Join(t.TempDir(), "cube.segy.idx"))
	require.ErrorIs(t, err, ErrOperationNotSupported)
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("a"),
		[]byte("regular catalogs compress to almost nothing, almost nothing, almost nothing"),
		make([]byte, 4096),
	}

	for _, compression := range []CompressionType{
		CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4,
	} {
		codec, err := newCodec(compression)
		require.NoError(t, err)
		for _, payload := range payloads {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err, "%s", compression)
			back, err := codec.Decompress(compressed)
			require.NoError(t, err, "%s", compression)
			if len(payload) == 0 {
				require.Empty(t, back, "%s", compression)
			} else {
				require.Equal(t, payload, back, "%s", compression)
			}
		}
	}

	_, err := newCodec(CompressionType(99))
	require.ErrorIs(t, err, ErrInconsistency)
}
