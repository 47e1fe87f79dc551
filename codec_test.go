// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package segy

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeInBytes(t *testing.T) {

	tests := []struct {
		ctype CType
		want  int
	}{
		{CTypeInt8, 1},
		{CTypeUint8, 1},
		{CTypeInt16, 2},
		{CTypeUint16, 2},
		{CTypeInt32, 4},
		{CTypeUint32, 4},
		{CTypeIEEEFloat, 4},
		{CTypeIBMFloat, 4},
	}

	for _, tt := range tests {
		size, err := SizeInBytes(tt.ctype)
		require.NoError(t, err)
		require.Equal(t, tt.want, size, "ctype %q", byte(tt.ctype))
	}

	_, err := SizeInBytes(CType('z'))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestUnpackValues(t *testing.T) {

	tests := []struct {
		name  string
		buf   []byte
		ctype CType
		count int
		bo    binary.ByteOrder
		want  []float64
	}{
		{"int8", []byte{0xff, 0x7f}, CTypeInt8, 2, binary.BigEndian, []float64{-1, 127}},
		{"uint8", []byte{0xff, 0x00}, CTypeUint8, 2, binary.BigEndian, []float64{255, 0}},
		{"int16 big", []byte{0xff, 0xfe, 0x01, 0x00}, CTypeInt16, 2, binary.BigEndian, []float64{-2, 256}},
		{"int16 little", []byte{0xfe, 0xff}, CTypeInt16, 1, binary.LittleEndian, []float64{-2}},
		{"uint16", []byte{0x80, 0x00}, CTypeUint16, 1, binary.BigEndian, []float64{32768}},
		{"int32", []byte{0xff, 0xff, 0xff, 0xd6}, CTypeInt32, 1, binary.BigEndian, []float64{-42}},
		{"uint32", []byte{0x00, 0x01, 0x00, 0x00}, CTypeUint32, 1, binary.BigEndian, []float64{65536}},
		{"ieee float", []byte{0x3f, 0x80, 0x00, 0x00}, CTypeIEEEFloat, 1, binary.BigEndian, []float64{1}},
		{"ibm float", []byte{0xc2, 0x76, 0xa0, 0x00}, CTypeIBMFloat, 1, binary.BigEndian, []float64{-118.625}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnpackValues(tt.buf, tt.ctype, tt.count, tt.bo)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUnpackValuesUnderflow(t *testing.T) {
	_, err := UnpackValues([]byte{0x00, 0x01}, CTypeInt32, 1, binary.BigEndian)
	require.ErrorIs(t, err, ErrUnderflow)

	_, err = UnpackValues(nil, CTypeInt16, 1, binary.BigEndian)
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestUnpackValuesUnknownType(t *testing.T) {
	_, err := UnpackValues([]byte{0x00}, CType('q'), 1, binary.BigEndian)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestPackUnpackRoundTrip(t *testing.T) {

	tests := []struct {
		name   string
		ctype  CType
		values []float64
	}{
		{"int8", CTypeInt8, []float64{-128, -1, 0, 127}},
		{"uint8", CTypeUint8, []float64{0, 1, 255}},
		{"int16", CTypeInt16, []float64{-32768, -1, 0, 12345}},
		{"uint16", CTypeUint16, []float64{0, 65535}},
		{"int32", CTypeInt32, []float64{-2147483648, -1, 0, 2147483647}},
		{"uint32", CTypeUint32, []float64{0, 4294967295}},
		{"ieee float", CTypeIEEEFloat, []float64{-1.5, 0, 0.25, 118.625}},
		{"ibm float", CTypeIBMFloat, []float64{-118.625, 0, 0.15625, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, bo := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
				buf, err := PackValues(tt.values, tt.ctype, bo)
				require.NoError(t, err)
				got, err := UnpackValues(buf, tt.ctype, len(tt.values), bo)
				require.NoError(t, err)
				require.Equal(t, tt.values, got)
			}
		})
	}
}

func TestPackValuesIBMUnrepresentable(t *testing.T) {
	_, err := PackValues([]float64{math.NaN()}, CTypeIBMFloat, binary.BigEndian)
	require.ErrorIs(t, err, ErrEncoding)
}
